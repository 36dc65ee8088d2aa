package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/academia/malla-api/internal/database"
)

// ErrNotFound is returned when a keyed statement touches no row.
var ErrNotFound = errors.New("record not found")

// one runs a keyed statement and returns its single row, or ErrNotFound.
func one[T any](ctx context.Context, db *database.Gateway, op string, stmt squirrel.Sqlizer) (*T, error) {
	item, found, err := database.QueryOne[T](ctx, db, op, stmt)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &item, nil
}
