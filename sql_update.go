package picopg

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// BuildUpdate builds an UPDATE statement from a record:
//
//	UPDATE <table> SET c1 = $1, ... WHERE <pk> = $k RETURNING *
//
// Every declared column except the primary key is assigned, in
// declaration order, whether or not its value changed: this is a
// full-record overwrite, not a partial patch. The record's primary key
// value must be set; ErrMissingPrimaryKey is returned before any SQL is
// generated otherwise.
func (m *Model) BuildUpdate(record interface{}) (*SQL, error) {
	rv, err := m.structValue(record)
	if err != nil {
		return nil, err
	}
	pk := m.primaryKeyField()
	if rv.FieldByName(pk.Name).IsZero() {
		return nil, fmt.Errorf("%w: update %s", ErrMissingPrimaryKey, m.TypeName())
	}
	fields := lo.Filter(m.modelFields, func(f Field, _ int) bool {
		return f.ColumnName != m.primaryKey
	})
	sets := lo.Map(fields, func(f Field, i int) string {
		return fmt.Sprintf("%s = $%d", f.ColumnName, i+1)
	})
	values := lo.Map(fields, func(f Field, _ int) interface{} { return f.valueFrom(rv) })
	values = append(values, pk.valueFrom(rv))
	sql := "UPDATE " + m.tableName +
		" SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE %s = $%d", m.primaryKey, len(fields)+1) +
		" RETURNING *"
	return m.NewSQL(sql, values...), nil
}
