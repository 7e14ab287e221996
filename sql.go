package picopg

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

type (
	// SQL is a generated statement: SQL text plus its positional
	// parameter values, in the order the text references them. It is a
	// plain value; building one performs no I/O. SQL can be created by
	// the Build* methods or with Model.NewSQL().
	SQL struct {
		model  *Model
		sql    string
		values []interface{}
	}
)

// Create new SQL with a statement as first argument. The rest arguments
// are values for the positional placeholders ($1, $2, ...) in the
// statement.
func (m *Model) NewSQL(sql string, values ...interface{}) *SQL {
	return &SQL{
		model:  m,
		sql:    strings.TrimSpace(sql),
		values: values,
	}
}

func (s SQL) String() string {
	return s.sql
}

// Values returns the positional parameter values of the statement.
func (s SQL) Values() []interface{} {
	return s.values
}

// whereClause renders the filter's conditions in their declared order,
// numbering placeholders from next. Explicit-null conditions render as
// "col IS NULL" and bind no value.
func whereClause(f *Filter, next int) (sql string, args []interface{}, n int) {
	n = next
	if f == nil || len(f.conds) == 0 {
		return
	}
	conds := make([]string, 0, len(f.conds))
	for _, c := range f.conds {
		if c.isNull {
			conds = append(conds, c.field.ColumnName+" IS NULL")
			continue
		}
		conds = append(conds, fmt.Sprintf("%s = $%d", c.field.ColumnName, n))
		args = append(args, c.value)
		n += 1
	}
	sql = " WHERE " + strings.Join(conds, " AND ")
	return
}

func (m *Model) acquire(ctx context.Context) (Conn, error) {
	if m.gateway == nil {
		return nil, ErrNoGateway
	}
	return m.gateway.Acquire(ctx)
}

// Query executes the statement and puts the results into the target,
// which must be a pointer to a struct (first row; ErrNoRowReturned if the
// result is empty) or to a slice (every row). A connection is acquired
// from the gateway for the duration of the call.
func (s *SQL) Query(ctx context.Context, target interface{}) error {
	conn, err := s.model.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrMustBePointer
	}
	rv = rv.Elem()
	switch rv.Kind() {
	case reflect.Slice:
		return s.queryAll(ctx, conn, rv)
	case reflect.Struct:
		found, err := s.queryOne(ctx, conn, rv)
		if err != nil {
			return err
		}
		if !found {
			return ErrNoRowReturned
		}
		return nil
	default:
		return s.queryValue(ctx, conn, target)
	}
}

// QueryRow executes the statement and scans the first row's columns into
// dest. ErrNoRowReturned is returned if the result is empty.
func (s *SQL) QueryRow(ctx context.Context, dest ...interface{}) error {
	conn, err := s.model.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	return s.queryValue(ctx, conn, dest...)
}

// Execute runs a statement that returns no rows (UPDATE, INSERT, DELETE
// without RETURNING) and reports the number of rows affected.
func (s *SQL) Execute(ctx context.Context) (int64, error) {
	conn, err := s.model.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()
	return s.exec(ctx, conn)
}

// queryOne scans the first result row into the struct value rv. It
// reports false, nil when the result is empty.
func (s *SQL) queryOne(ctx context.Context, conn Conn, rv reflect.Value) (bool, error) {
	s.model.log(s.sql, s.values)
	rows, err := conn.Query(ctx, s.sql, s.values...)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return false, rows.Err()
	}
	if err := s.model.scanRow(rows, rv); err != nil {
		return false, err
	}
	rows.Close()
	return true, rows.Err()
}

// queryAll scans every result row into the slice value rv, preserving the
// database return order.
func (s *SQL) queryAll(ctx context.Context, conn Conn, rv reflect.Value) error {
	s.model.log(s.sql, s.values)
	rows, err := conn.Query(ctx, s.sql, s.values...)
	if err != nil {
		return err
	}
	defer rows.Close()
	elemType := rv.Type().Elem()
	for rows.Next() {
		nv := reflect.New(elemType).Elem()
		if elemType.Kind() == reflect.Struct {
			if err := s.model.scanRow(rows, nv); err != nil {
				return err
			}
		} else {
			if err := rows.Scan(nv.Addr().Interface()); err != nil {
				return err
			}
		}
		rv.Set(reflect.Append(rv, nv))
	}
	return rows.Err()
}

// queryValue scans the first row's columns into dest pointers.
func (s *SQL) queryValue(ctx context.Context, conn Conn, dest ...interface{}) error {
	s.model.log(s.sql, s.values)
	rows, err := conn.Query(ctx, s.sql, s.values...)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return ErrNoRowReturned
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	rows.Close()
	return rows.Err()
}

func (s *SQL) exec(ctx context.Context, conn Conn) (int64, error) {
	s.model.log(s.sql, s.values)
	return conn.Exec(ctx, s.sql, s.values...)
}
