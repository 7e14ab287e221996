package picopg

import (
	"fmt"
	"reflect"
)

type (
	// Filter is an ordered set of equality conditions used by SelectOne,
	// SelectAll, Count and Paginate (query by example). A condition whose
	// value is nil matches rows where the column IS NULL; a field that is
	// not present in the filter does not constrain the query at all. A
	// Filter is never persisted and is only valid for the Model that
	// created it.
	Filter struct {
		model *Model
		conds []filterCondition
		err   error
	}

	filterCondition struct {
		field  Field
		value  interface{}
		isNull bool
	}
)

// Filter creates a Filter from field name and value pairs, in the given
// order. Names can be struct field names or column names. A nil value
// means "column IS NULL". A name the Model does not declare makes the
// whole filter invalid; the error surfaces when a statement is built.
//
//	users.Filter("Username", "alice", "IsActive", true)
//	users.Filter("DeletedAt", nil) // deleted_at IS NULL
func (m *Model) Filter(pairs ...interface{}) *Filter {
	f := &Filter{model: m}
	if len(pairs)%2 != 0 {
		f.err = fmt.Errorf("%w: odd number of filter arguments", ErrUnknownField)
		return f
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			f.err = fmt.Errorf("%w: filter name must be string, got %T", ErrUnknownField, pairs[i])
			return f
		}
		field := m.lookupField(name)
		if field == nil {
			f.err = fmt.Errorf("%w: %s is not a field of %s", ErrUnknownField, name, m.TypeName())
			return f
		}
		f.conds = append(f.conds, filterCondition{
			field:  *field,
			value:  pairs[i+1],
			isNull: pairs[i+1] == nil,
		})
	}
	return f
}

// FilterFrom creates a Filter from a partial record: a struct whose field
// names match the Model's declared fields. Fields contribute a condition
// in their declaration order; a pointer field is included iff it is
// non-nil (dereferenced), a non-pointer field iff it is non-zero. Use
// Filter pairs to match a zero value or NULL explicitly.
//
//	type UserPatch struct {
//		Username *string
//		IsActive *bool
//	}
//	users.FilterFrom(UserPatch{IsActive: &active})
func (m *Model) FilterFrom(partial interface{}) *Filter {
	f := &Filter{model: m}
	rv := reflect.ValueOf(partial)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		f.err = fmt.Errorf("%w: partial record", ErrMustBeStruct)
		return f
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		field := m.FieldByName(sf.Name)
		if field == nil {
			f.err = fmt.Errorf("%w: %s is not a field of %s", ErrUnknownField, sf.Name, m.TypeName())
			return f
		}
		v := rv.Field(i)
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				continue
			}
			v = v.Elem()
		} else if v.IsZero() {
			continue
		}
		f.conds = append(f.conds, filterCondition{field: *field, value: v.Interface()})
	}
	return f
}

// Err reports whether the filter was built from invalid input.
func (f *Filter) Err() error {
	if f == nil {
		return nil
	}
	return f.err
}

// Len returns the number of conditions in the filter.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.conds)
}

func (m *Model) lookupField(name string) *Field {
	if f := m.FieldByName(name); f != nil {
		return f
	}
	return m.fieldByColumn(name)
}

// validateFilter checks that a filter is usable with this Model. A nil
// filter matches all rows.
func (m *Model) validateFilter(f *Filter) error {
	if f == nil {
		return nil
	}
	if f.err != nil {
		return f.err
	}
	if f.model != nil && f.model.modelInfo != m.modelInfo {
		return fmt.Errorf("%w: filter built for %s", ErrTypeMismatch, f.model.TypeName())
	}
	return nil
}
