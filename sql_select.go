package picopg

import "fmt"

// BuildSelect builds a SELECT statement:
//
//	SELECT * FROM <table> [WHERE c1 = $1 AND c2 = $2 ...]
//
// Only fields present in the filter contribute WHERE conditions, equality
// only, AND-joined, in the filter's own order. A nil or empty filter
// selects all rows. A condition with a nil value renders as "c IS NULL".
func (m *Model) BuildSelect(filter *Filter) (*SQL, error) {
	return m.buildSelect(filter, nil, nil, "")
}

// BuildCount builds a COUNT statement with the same WHERE construction as
// BuildSelect:
//
//	SELECT COUNT(*) FROM <table> [WHERE ...]
func (m *Model) BuildCount(filter *Filter) (*SQL, error) {
	if err := m.validateFilter(filter); err != nil {
		return nil, err
	}
	where, args, _ := whereClause(filter, 1)
	return m.NewSQL("SELECT COUNT(*) FROM "+m.tableName+where, args...), nil
}

// BuildPaginate builds the page query of Paginate: BuildSelect plus
// ORDER BY the primary key (stable page windows) and bound LIMIT/OFFSET
// parameters. page is 1-indexed; page and pageSize must be positive,
// values <= 0 are a usage error, never clamped.
func (m *Model) BuildPaginate(filter *Filter, page, pageSize int) (*SQL, error) {
	if page <= 0 || pageSize <= 0 {
		return nil, fmt.Errorf("%w: page %d, page size %d", ErrInvalidPage, page, pageSize)
	}
	limit := pageSize
	offset := (page - 1) * pageSize
	return m.buildSelect(filter, &limit, &offset, m.primaryKey)
}

func (m *Model) buildSelect(filter *Filter, limit, offset *int, orderBy string) (*SQL, error) {
	if err := m.validateFilter(filter); err != nil {
		return nil, err
	}
	sql := "SELECT * FROM " + m.tableName
	where, args, next := whereClause(filter, 1)
	sql += where
	if orderBy != "" {
		sql += " ORDER BY " + orderBy
	}
	if limit != nil {
		sql += fmt.Sprintf(" LIMIT $%d", next)
		args = append(args, *limit)
		next += 1
	}
	if offset != nil {
		sql += fmt.Sprintf(" OFFSET $%d", next)
		args = append(args, *offset)
	}
	return m.NewSQL(sql, args...), nil
}
