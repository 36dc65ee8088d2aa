package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/model"
)

const courseTable = "materias"

var courseColumns = []string{"facultad_codigo", "codigo", "descripcion"}

type CourseRepository struct {
	db *database.Gateway
	sb squirrel.StatementBuilderType
}

func NewCourseRepository(db *database.Gateway) *CourseRepository {
	return &CourseRepository{db: db, sb: database.Builder()}
}

func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	q := r.sb.Select(courseColumns...).
		From(courseTable).
		OrderBy("facultad_codigo ASC", "codigo ASC")
	return database.QueryAll[model.Course](ctx, r.db, "materias.list", q)
}

// ListByFaculty returns the courses of one faculty ordered by code. An unknown
// faculty simply yields no rows.
func (r *CourseRepository) ListByFaculty(ctx context.Context, facultyCode string) ([]model.Course, error) {
	q := r.sb.Select(courseColumns...).
		From(courseTable).
		Where(squirrel.Eq{"facultad_codigo": facultyCode}).
		OrderBy("codigo ASC")
	return database.QueryAll[model.Course](ctx, r.db, "materias.list_by_faculty", q)
}

func (r *CourseRepository) Get(ctx context.Context, key model.CourseKey) (*model.Course, error) {
	q := r.sb.Select(courseColumns...).
		From(courseTable).
		Where(squirrel.Eq{"facultad_codigo": key.FacultyCode}).
		Where(squirrel.Eq{"codigo": key.Code})
	return one[model.Course](ctx, r.db, "materias.get", q)
}

func (r *CourseRepository) Create(ctx context.Context, c model.Course) (*model.Course, error) {
	q := r.sb.Insert(courseTable).
		Columns(courseColumns...).
		Values(c.FacultyCode, c.Code, c.Description).
		Suffix("RETURNING facultad_codigo, codigo, descripcion")
	return one[model.Course](ctx, r.db, "materias.create", q)
}

func (r *CourseRepository) Update(ctx context.Context, key model.CourseKey, description string) (*model.Course, error) {
	q := r.sb.Update(courseTable).
		Set("descripcion", description).
		Where(squirrel.Eq{"facultad_codigo": key.FacultyCode}).
		Where(squirrel.Eq{"codigo": key.Code}).
		Suffix("RETURNING facultad_codigo, codigo, descripcion")
	return one[model.Course](ctx, r.db, "materias.update", q)
}

func (r *CourseRepository) Delete(ctx context.Context, key model.CourseKey) error {
	q := r.sb.Delete(courseTable).
		Where(squirrel.Eq{"facultad_codigo": key.FacultyCode}).
		Where(squirrel.Eq{"codigo": key.Code}).
		Suffix("RETURNING facultad_codigo, codigo")
	_, err := one[model.Course](ctx, r.db, "materias.delete", q)
	return err
}
