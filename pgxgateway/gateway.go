// Package pgxgateway implements the picopg Gateway interface on top of a
// jackc/pgx connection pool.
package pgxgateway

import (
	"context"

	picopg "github.com/camarin24/pico-pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	// Gateway wraps a pgxpool.Pool. Construct one per process with Open
	// and inject it into every model; close it at shutdown.
	Gateway struct {
		pool *pgxpool.Pool
	}

	conn struct {
		c *pgxpool.Conn
	}

	rows struct {
		r pgx.Rows
	}
)

// Open creates a connection pool for the given DSN and verifies it with a
// ping.
func Open(ctx context.Context, dsn string) (*Gateway, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Gateway{pool: pool}, nil
}

// NewGateway wraps an existing pool, for callers that configure
// pgxpool.Config themselves.
func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

// Pool returns the underlying pool, for callers that need transactions or
// batches beyond the mapping layer.
func (g *Gateway) Pool() *pgxpool.Pool {
	return g.pool
}

// Close closes the pool and blocks until all acquired connections are
// released.
func (g *Gateway) Close() {
	g.pool.Close()
}

// Acquire checks a connection out of the pool. Cancelling ctx aborts the
// wait without leaking a connection.
func (g *Gateway) Acquire(ctx context.Context) (picopg.Conn, error) {
	c, err := g.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &conn{c: c}, nil
}

func (c *conn) Query(ctx context.Context, sql string, args ...interface{}) (picopg.Rows, error) {
	r, err := c.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &rows{r: r}, nil
}

func (c *conn) Exec(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	tag, err := c.c.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (c *conn) Release() {
	c.c.Release()
}

func (r *rows) Columns() (out []string) {
	for _, fd := range r.r.FieldDescriptions() {
		out = append(out, fd.Name)
	}
	return
}

func (r *rows) Next() bool {
	return r.r.Next()
}

func (r *rows) Scan(dest ...interface{}) error {
	return r.r.Scan(dest...)
}

func (r *rows) Err() error {
	return r.r.Err()
}

func (r *rows) Close() {
	r.r.Close()
}
