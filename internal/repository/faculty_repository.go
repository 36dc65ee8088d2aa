package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/model"
)

const facultyTable = "facultades"

var facultyColumns = []string{"codigo", "descripcion"}

type FacultyRepository struct {
	db *database.Gateway
	sb squirrel.StatementBuilderType
}

func NewFacultyRepository(db *database.Gateway) *FacultyRepository {
	return &FacultyRepository{db: db, sb: database.Builder()}
}

func (r *FacultyRepository) List(ctx context.Context) ([]model.Faculty, error) {
	q := r.sb.Select(facultyColumns...).
		From(facultyTable).
		OrderBy("codigo ASC")
	return database.QueryAll[model.Faculty](ctx, r.db, "facultades.list", q)
}

func (r *FacultyRepository) Get(ctx context.Context, code string) (*model.Faculty, error) {
	q := r.sb.Select(facultyColumns...).
		From(facultyTable).
		Where(squirrel.Eq{"codigo": code})
	return one[model.Faculty](ctx, r.db, "facultades.get", q)
}

func (r *FacultyRepository) Create(ctx context.Context, f model.Faculty) (*model.Faculty, error) {
	q := r.sb.Insert(facultyTable).
		Columns(facultyColumns...).
		Values(f.Code, f.Description).
		Suffix("RETURNING codigo, descripcion")
	return one[model.Faculty](ctx, r.db, "facultades.create", q)
}

// Update changes the description. ErrNotFound means no faculty has that code.
func (r *FacultyRepository) Update(ctx context.Context, code, description string) (*model.Faculty, error) {
	q := r.sb.Update(facultyTable).
		Set("descripcion", description).
		Where(squirrel.Eq{"codigo": code}).
		Suffix("RETURNING codigo, descripcion")
	return one[model.Faculty](ctx, r.db, "facultades.update", q)
}

func (r *FacultyRepository) Delete(ctx context.Context, code string) error {
	q := r.sb.Delete(facultyTable).
		Where(squirrel.Eq{"codigo": code}).
		Suffix("RETURNING codigo")
	_, err := one[model.Faculty](ctx, r.db, "facultades.delete", q)
	return err
}
