package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/model"
)

const majorTable = "carreras"

var majorColumns = []string{"facultad_codigo", "codigo", "descripcion"}

type MajorRepository struct {
	db *database.Gateway
	sb squirrel.StatementBuilderType
}

func NewMajorRepository(db *database.Gateway) *MajorRepository {
	return &MajorRepository{db: db, sb: database.Builder()}
}

func (r *MajorRepository) List(ctx context.Context) ([]model.Major, error) {
	q := r.sb.Select(majorColumns...).
		From(majorTable).
		OrderBy("facultad_codigo ASC", "codigo ASC")
	return database.QueryAll[model.Major](ctx, r.db, "carreras.list", q)
}

// ListByFaculty returns the majors of one faculty ordered by code. An unknown
// faculty simply yields no rows.
func (r *MajorRepository) ListByFaculty(ctx context.Context, facultyCode string) ([]model.Major, error) {
	q := r.sb.Select(majorColumns...).
		From(majorTable).
		Where(squirrel.Eq{"facultad_codigo": facultyCode}).
		OrderBy("codigo ASC")
	return database.QueryAll[model.Major](ctx, r.db, "carreras.list_by_faculty", q)
}

func (r *MajorRepository) Get(ctx context.Context, key model.MajorKey) (*model.Major, error) {
	q := r.sb.Select(majorColumns...).
		From(majorTable).
		Where(squirrel.Eq{"facultad_codigo": key.FacultyCode}).
		Where(squirrel.Eq{"codigo": key.Code})
	return one[model.Major](ctx, r.db, "carreras.get", q)
}

func (r *MajorRepository) Create(ctx context.Context, m model.Major) (*model.Major, error) {
	q := r.sb.Insert(majorTable).
		Columns(majorColumns...).
		Values(m.FacultyCode, m.Code, m.Description).
		Suffix("RETURNING facultad_codigo, codigo, descripcion")
	return one[model.Major](ctx, r.db, "carreras.create", q)
}

func (r *MajorRepository) Update(ctx context.Context, key model.MajorKey, description string) (*model.Major, error) {
	q := r.sb.Update(majorTable).
		Set("descripcion", description).
		Where(squirrel.Eq{"facultad_codigo": key.FacultyCode}).
		Where(squirrel.Eq{"codigo": key.Code}).
		Suffix("RETURNING facultad_codigo, codigo, descripcion")
	return one[model.Major](ctx, r.db, "carreras.update", q)
}

func (r *MajorRepository) Delete(ctx context.Context, key model.MajorKey) error {
	q := r.sb.Delete(majorTable).
		Where(squirrel.Eq{"facultad_codigo": key.FacultyCode}).
		Where(squirrel.Eq{"codigo": key.Code}).
		Suffix("RETURNING facultad_codigo, codigo")
	_, err := one[model.Major](ctx, r.db, "carreras.delete", q)
	return err
}
