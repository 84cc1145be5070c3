package xpgx

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of pgxpool.Pool the store needs. Kept as an interface so
// tests can stub query execution without a running database.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// NewPool connects to postgres and pings it with a short constant backoff,
// so a restart does not race the database coming up.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}

// Selectx runs a squirrel query and scans every row into T by db tag.
func Selectx[T any](ctx context.Context, p Pool, q squirrel.Sqlizer) ([]T, error) {
	rows, err := query(ctx, p, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// Getx runs a squirrel query expected to yield exactly one row.
// Zero rows surface as pgx.ErrNoRows.
func Getx[T any](ctx context.Context, p Pool, q squirrel.Sqlizer) (*T, error) {
	rows, err := query(ctx, p, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
}

// SelectScalarx scans a single-column result set into a slice of T.
func SelectScalarx[T any](ctx context.Context, p Pool, q squirrel.Sqlizer) ([]T, error) {
	rows, err := query(ctx, p, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[T])
}

// Execx runs a squirrel statement that returns no rows.
func Execx(ctx context.Context, p Pool, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build sql: %w", err)
	}

	return p.Exec(ctx, sql, args...)
}

func query(ctx context.Context, p Pool, q squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	return p.Query(ctx, sql, args...)
}
