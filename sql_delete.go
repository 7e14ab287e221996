package picopg

import "fmt"

// BuildDelete builds a DELETE statement from a record:
//
//	DELETE FROM <table> WHERE <pk> = $1
//
// The record's primary key value must be set; ErrMissingPrimaryKey is
// returned otherwise.
func (m *Model) BuildDelete(record interface{}) (*SQL, error) {
	rv, err := m.structValue(record)
	if err != nil {
		return nil, err
	}
	pk := m.primaryKeyField()
	if rv.FieldByName(pk.Name).IsZero() {
		return nil, fmt.Errorf("%w: delete %s", ErrMissingPrimaryKey, m.TypeName())
	}
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", m.tableName, m.primaryKey)
	return m.NewSQL(sql, pk.valueFrom(rv)), nil
}
