package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes this package understands. Nothing outside this
// file should know about vendor codes.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// ViolationKind identifies which integrity rule rejected a statement.
type ViolationKind int

const (
	UniqueViolation ViolationKind = iota + 1
	ForeignKeyViolation
)

func (k ViolationKind) String() string {
	switch k {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	default:
		return "unknown_violation"
	}
}

// ConstraintViolation is returned when the store rejects a statement because
// of a uniqueness or foreign key rule.
type ConstraintViolation struct {
	Kind       ViolationKind
	Op         string
	Table      string
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s: %s on %q: %v", e.Op, e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// StorageFailure is any other store failure: lost connection, syntax error,
// timeout, statement build error.
type StorageFailure struct {
	Op  string
	Err error
}

func (e *StorageFailure) Error() string {
	return fmt.Sprintf("%s: storage failure: %v", e.Op, e.Err)
}

func (e *StorageFailure) Unwrap() error { return e.Err }

// translate converts a driver error into a *ConstraintViolation or a
// *StorageFailure.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return &ConstraintViolation{Kind: UniqueViolation, Op: op, Table: pgErr.TableName, Constraint: pgErr.ConstraintName, Err: err}
		case foreignKeyViolationCode:
			return &ConstraintViolation{Kind: ForeignKeyViolation, Op: op, Table: pgErr.TableName, Constraint: pgErr.ConstraintName, Err: err}
		}
	}

	return &StorageFailure{Op: op, Err: err}
}

// ViolationOf returns the violation kind carried by err, or 0 when err is not
// a *ConstraintViolation.
func ViolationOf(err error) ViolationKind {
	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return cv.Kind
	}
	return 0
}

// IsUniqueViolation reports whether err is a uniqueness rejection.
func IsUniqueViolation(err error) bool { return ViolationOf(err) == UniqueViolation }

// IsForeignKeyViolation reports whether err is a foreign key rejection.
func IsForeignKeyViolation(err error) bool { return ViolationOf(err) == ForeignKeyViolation }
