package picopg

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// BuildInsert builds an INSERT statement from a record:
//
//	INSERT INTO <table> (<columns>) VALUES ($1, ...) RETURNING *
//
// Columns appear in declaration order. The primary key column is excluded
// when its value is unset (the zero value of its field, e.g. a nil
// pointer) so the database can generate it; a set primary key is
// included. RETURNING * brings back server-computed defaults.
func (m *Model) BuildInsert(record interface{}) (*SQL, error) {
	rv, err := m.structValue(record)
	if err != nil {
		return nil, err
	}
	fields := lo.Filter(m.modelFields, func(f Field, _ int) bool {
		if f.ColumnName != m.primaryKey {
			return true
		}
		return !rv.FieldByName(f.Name).IsZero()
	})
	if len(fields) == 0 {
		return m.NewSQL("INSERT INTO " + m.tableName + " DEFAULT VALUES RETURNING *"), nil
	}
	columns := lo.Map(fields, func(f Field, _ int) string { return f.ColumnName })
	numbers := lo.Map(fields, func(_ Field, i int) string { return fmt.Sprintf("$%d", i+1) })
	values := lo.Map(fields, func(f Field, _ int) interface{} { return f.valueFrom(rv) })
	sql := "INSERT INTO " + m.tableName +
		" (" + strings.Join(columns, ", ") + ")" +
		" VALUES (" + strings.Join(numbers, ", ") + ")" +
		" RETURNING *"
	return m.NewSQL(sql, values...), nil
}
