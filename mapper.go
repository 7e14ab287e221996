package picopg

import (
	"fmt"
	"reflect"
	"unsafe"
)

// scanRow assigns one result row into the declared fields of the struct
// value rv, matching by column name. Columns the Model does not declare
// are skipped (a nil scan destination); a declared column missing from
// the row is a mapping error.
func (m *Model) scanRow(rows Rows, rv reflect.Value) error {
	mi := m.modelInfo
	if rv.Type() != m.structType {
		// raw query into a different struct type
		mi = &modelInfo{modelFields: parseStruct(rv.Type())}
	}
	columns := rows.Columns()
	dests := make([]interface{}, len(columns))
	matched := map[string]bool{}
	for i, column := range columns {
		field := mi.fieldByColumn(column)
		if field == nil {
			continue
		}
		dests[i] = field.getFieldValueAddrFromStruct(rv)
		matched[column] = true
	}
	for _, field := range mi.modelFields {
		if !matched[field.ColumnName] {
			return fmt.Errorf("%w: %s", ErrMissingColumn, field.ColumnName)
		}
	}
	return rows.Scan(dests...)
}

// recordValues reads every declared field's current value of a record, in
// declaration order.
func (m *Model) recordValues(rv reflect.Value) (out []interface{}) {
	for _, field := range m.modelFields {
		out = append(out, field.valueFrom(rv))
	}
	return
}

// valueFrom reads the field's current value from a struct value. An
// unexported field is read through its address; a non-addressable struct
// is copied first.
func (f Field) valueFrom(structValue reflect.Value) interface{} {
	v := structValue.FieldByName(f.Name)
	if f.Exported {
		return v.Interface()
	}
	if !v.CanAddr() {
		nv := reflect.New(structValue.Type()).Elem()
		nv.Set(structValue)
		v = nv.FieldByName(f.Name)
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem().Interface()
}
