package picopg

import (
	"context"
	"reflect"
)

// Insert inserts a record and refreshes it in place from the returned
// row, so database-generated values (sequences, defaults) come back to
// the caller. The record must be a pointer. The statement must return
// exactly one row; none is an integrity error (ErrNoRowReturned).
func (m *Model) Insert(ctx context.Context, record interface{}) error {
	rv, err := m.structPointer(record)
	if err != nil {
		return err
	}
	s, err := m.BuildInsert(record)
	if err != nil {
		return err
	}
	conn, err := m.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	found, err := s.queryOne(ctx, conn, rv)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoRowReturned
	}
	return nil
}

// SelectOne selects a single record matching the filter into target,
// which must be a pointer to the Model's struct type. A missing row is an
// absent result, not an error: SelectOne returns (false, nil) and leaves
// target untouched.
func (m *Model) SelectOne(ctx context.Context, target interface{}, filter *Filter) (bool, error) {
	rv, err := m.structPointer(target)
	if err != nil {
		return false, err
	}
	one := 1
	s, err := m.buildSelect(filter, &one, nil, "")
	if err != nil {
		return false, err
	}
	conn, err := m.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()
	return s.queryOne(ctx, conn, rv)
}

// SelectAll selects every record matching the filter into target, a
// pointer to a slice of the Model's struct type, preserving the database
// return order.
func (m *Model) SelectAll(ctx context.Context, target interface{}, filter *Filter) error {
	rv, err := m.slicePointer(target)
	if err != nil {
		return err
	}
	s, err := m.BuildSelect(filter)
	if err != nil {
		return err
	}
	conn, err := m.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	return s.queryAll(ctx, conn, rv)
}

// Update overwrites the stored row identified by the record's primary key
// with all of the record's current values and refreshes the record from
// the returned row. The record must be a pointer with its primary key
// set. If no row matched, the target did not exist: Update returns
// (false, nil), not an error.
func (m *Model) Update(ctx context.Context, record interface{}) (bool, error) {
	rv, err := m.structPointer(record)
	if err != nil {
		return false, err
	}
	s, err := m.BuildUpdate(record)
	if err != nil {
		return false, err
	}
	conn, err := m.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()
	return s.queryOne(ctx, conn, rv)
}

// Delete deletes the stored row identified by the record's primary key,
// which must be set. It reports whether a row was actually deleted; a
// missing row is a false return, not an error.
func (m *Model) Delete(ctx context.Context, record interface{}) (bool, error) {
	s, err := m.BuildDelete(record)
	if err != nil {
		return false, err
	}
	conn, err := m.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()
	affected, err := s.exec(ctx, conn)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the number of rows matching the filter.
func (m *Model) Count(ctx context.Context, filter *Filter) (int64, error) {
	s, err := m.BuildCount(filter)
	if err != nil {
		return 0, err
	}
	conn, err := m.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()
	var count int64
	if err := s.queryValue(ctx, conn, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// Paginate selects one page of records matching the filter into target
// (a pointer to a slice of the Model's struct type) and returns the total
// number of matching rows, counted with the identical filter and no
// limit. page is 1-indexed; page and pageSize must be positive. Both
// queries run on the same pooled connection but not in one transaction,
// so the pair is approximate under concurrent writes.
func (m *Model) Paginate(ctx context.Context, target interface{}, page, pageSize int, filter *Filter) (int64, error) {
	rv, err := m.slicePointer(target)
	if err != nil {
		return 0, err
	}
	countSQL, err := m.BuildCount(filter)
	if err != nil {
		return 0, err
	}
	pageSQL, err := m.BuildPaginate(filter, page, pageSize)
	if err != nil {
		return 0, err
	}
	conn, err := m.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()
	var total int64
	if err := countSQL.queryValue(ctx, conn, &total); err != nil {
		return 0, err
	}
	if err := pageSQL.queryAll(ctx, conn, rv); err != nil {
		return 0, err
	}
	return total, nil
}

func (m *Model) slicePointer(target interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, ErrMustBePointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Slice {
		return reflect.Value{}, ErrMustBePointer
	}
	return rv, nil
}
