package picopg

import "context"

type (
	// Gateway is the pooled database connection a Model executes
	// statements through. Acquire must honor context cancellation; a
	// cancelled acquire must not leak a pooled connection. Driver errors
	// pass through unmodified. The default implementation backed by
	// jackc/pgx lives in the pgxgateway package.
	Gateway interface {
		Acquire(ctx context.Context) (Conn, error)
	}

	// Conn is a single connection checked out from a Gateway for the
	// duration of one Model operation. Release must be safe to call on
	// every exit path.
	Conn interface {
		Query(ctx context.Context, sql string, args ...interface{}) (Rows, error)
		Exec(ctx context.Context, sql string, args ...interface{}) (rowsAffected int64, err error)
		Release()
	}

	// Rows is a result set with column metadata. Scan follows pgx
	// semantics: a nil destination skips the corresponding column.
	Rows interface {
		Columns() []string
		Next() bool
		Scan(dest ...interface{}) error
		Err() error
		Close()
	}
)
