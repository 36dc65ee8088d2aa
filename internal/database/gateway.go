package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Querier is the slice of *pgxpool.Pool the gateway needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Pinger is implemented by *pgxpool.Pool and used by health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// QueryObserver receives the latency and outcome of every statement.
type QueryObserver interface {
	ObserveQuery(operation, outcome string, d time.Duration)
}

// Statement is a literal statement template with ordered positional
// parameters. It satisfies squirrel.Sqlizer.
type Statement struct {
	SQL  string
	Args []any
}

func (s Statement) ToSql() (string, []any, error) {
	return s.SQL, s.Args, nil
}

// Gateway executes exactly one parameterized statement per call. Values are
// always sent as bound parameters, never interpolated into the SQL text.
type Gateway struct {
	q        Querier
	timeout  time.Duration
	observer QueryObserver
	log      zerolog.Logger
}

type Option func(*Gateway)

// WithObserver reports statement latencies to o.
func WithObserver(o QueryObserver) Option {
	return func(g *Gateway) { g.observer = o }
}

// NewGateway wraps q. A non-positive timeout disables the per-statement
// deadline.
func NewGateway(q Querier, timeout time.Duration, log zerolog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		q:       q,
		timeout: timeout,
		log:     log.With().Str("component", "gateway").Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// QueryAll runs stmt and collects every returned row into a T, matching
// columns to fields by their db tag. Zero rows yield an empty, non-nil slice.
// Errors are *ConstraintViolation or *StorageFailure.
func QueryAll[T any](ctx context.Context, g *Gateway, op string, stmt squirrel.Sqlizer) ([]T, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, &StorageFailure{Op: op, Err: fmt.Errorf("build statement: %w", err)}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	items, err := collect[T](ctx, g.q, sql, args)
	elapsed := time.Since(start)

	if err != nil {
		err = translate(op, err)
		g.observe(op, outcomeOf(err), elapsed)
		g.log.Debug().Err(err).Str("op", op).Dur("elapsed", elapsed).Msg("statement failed")
		return nil, err
	}

	g.observe(op, "ok", elapsed)
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// QueryOne is QueryAll for statements that match at most one row by key.
// found is false when no row came back.
func QueryOne[T any](ctx context.Context, g *Gateway, op string, stmt squirrel.Sqlizer) (item T, found bool, err error) {
	items, err := QueryAll[T](ctx, g, op, stmt)
	if err != nil || len(items) == 0 {
		return item, false, err
	}
	return items[0], true, nil
}

func collect[T any](ctx context.Context, q Querier, sql string, args []any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

func (g *Gateway) observe(op, outcome string, d time.Duration) {
	if g.observer != nil {
		g.observer.ObserveQuery(op, outcome, d)
	}
}

func outcomeOf(err error) string {
	if kind := ViolationOf(err); kind != 0 {
		return kind.String()
	}
	return "error"
}
