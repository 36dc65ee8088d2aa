// Package databasetest provides a scripted stand-in for a PostgreSQL pool so
// repositories, services and handlers can be tested without a server.
package databasetest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Result scripts the answer to one Query call.
type Result struct {
	Columns []string
	Rows    [][]any
	// Err is returned by Query itself.
	Err error
	// RowsErr is returned by Rows.Err after iteration, which is where pgx
	// reports most server-side errors.
	RowsErr error
}

// Call records one statement sent to the Querier.
type Call struct {
	SQL  string
	Args []any
}

// Querier replays scripted Results in order. When the script is exhausted it
// answers with zero rows.
type Querier struct {
	mu      sync.Mutex
	results []Result
	calls   []Call
}

func NewQuerier(results ...Result) *Querier {
	return &Querier{results: results}
}

// Push appends results to the script.
func (q *Querier) Push(results ...Result) *Querier {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.results = append(q.results, results...)
	return q
}

// Calls returns a copy of the statements received so far.
func (q *Querier) Calls() []Call {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Call(nil), q.calls...)
}

// LastCall returns the most recent statement, or a zero Call.
func (q *Querier) LastCall() Call {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.calls) == 0 {
		return Call{}
	}
	return q.calls[len(q.calls)-1]
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.mu.Lock()
	q.calls = append(q.calls, Call{SQL: sql, Args: args})
	var res Result
	if len(q.results) > 0 {
		res = q.results[0]
		q.results = q.results[1:]
	}
	q.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if res.Err != nil {
		return nil, res.Err
	}
	return &Rows{columns: res.Columns, rows: res.Rows, err: res.RowsErr}, nil
}

// Rowset is shorthand for a successful Result.
func Rowset(columns []string, rows ...[]any) Result {
	return Result{Columns: columns, Rows: rows}
}

// Failure is shorthand for a Result whose rows fail with err.
func Failure(err error) Result {
	return Result{RowsErr: err}
}

// UniqueViolation builds the error PostgreSQL returns for a duplicate key.
func UniqueViolation(table, constraint string) error {
	return &pgconn.PgError{Code: "23505", Severity: "ERROR", Message: "duplicate key value violates unique constraint", TableName: table, ConstraintName: constraint}
}

// ForeignKeyViolation builds the error PostgreSQL returns for a missing or
// still-referenced parent row.
func ForeignKeyViolation(table, constraint string) error {
	return &pgconn.PgError{Code: "23503", Severity: "ERROR", Message: "insert or update violates foreign key constraint", TableName: table, ConstraintName: constraint}
}

// Rows is an in-memory pgx.Rows.
type Rows struct {
	columns []string
	rows    [][]any
	pos     int
	err     error
	closed  bool
}

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Err() error { return r.err }

func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *Rows) Next() bool {
	if r.closed || r.err != nil || r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.pos == 0 || r.pos > len(r.rows) {
		return fmt.Errorf("databasetest: Scan called without a current row")
	}
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("databasetest: %d scan targets for %d columns", len(dest), len(row))
	}
	for i := range dest {
		if err := assign(dest[i], row[i]); err != nil {
			return fmt.Errorf("databasetest: column %q: %w", r.columns[i], err)
		}
	}
	return nil
}

func (r *Rows) Values() ([]any, error) {
	if r.pos == 0 || r.pos > len(r.rows) {
		return nil, fmt.Errorf("databasetest: no current row")
	}
	return append([]any(nil), r.rows[r.pos-1]...), nil
}

func (r *Rows) RawValues() [][]byte { return nil }

func (r *Rows) Conn() *pgx.Conn { return nil }

func assign(dest, src any) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("scan target %T is not a non-nil pointer", dest)
	}
	target := dv.Elem()
	if src == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	if target.Kind() == reflect.Pointer {
		ptr := reflect.New(target.Type().Elem())
		if err := convertInto(ptr.Elem(), src); err != nil {
			return err
		}
		target.Set(ptr)
		return nil
	}
	return convertInto(target, src)
}

func convertInto(target reflect.Value, src any) error {
	sv := reflect.ValueOf(src)
	// reflect happily converts ints to strings as runes; refuse that.
	if (target.Kind() == reflect.String) != (sv.Kind() == reflect.String) || !sv.Type().ConvertibleTo(target.Type()) {
		return fmt.Errorf("cannot scan %T into %s", src, target.Type())
	}
	target.Set(sv.Convert(target.Type()))
	return nil
}
