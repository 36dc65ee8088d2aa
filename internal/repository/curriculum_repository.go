package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/model"
)

const curriculumTable = "malla"

const curriculumReturning = "RETURNING facultad_codigo, carrera_codigo, promo, materia_codigo, anio, semestre, tipo"

// CurriculumRepository reads and writes malla rows. Reads join materias so
// every entry carries its course description.
type CurriculumRepository struct {
	db *database.Gateway
	sb squirrel.StatementBuilderType
}

func NewCurriculumRepository(db *database.Gateway) *CurriculumRepository {
	return &CurriculumRepository{db: db, sb: database.Builder()}
}

func (r *CurriculumRepository) selectJoined() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.facultad_codigo",
		"m.carrera_codigo",
		"m.promo",
		"m.materia_codigo",
		"m.anio",
		"m.semestre",
		"m.tipo",
		"mat.descripcion AS materia_descripcion",
	).
		From("malla m").
		Join("materias mat ON mat.facultad_codigo = m.facultad_codigo AND mat.codigo = m.materia_codigo")
}

func (r *CurriculumRepository) List(ctx context.Context) ([]model.CurriculumEntry, error) {
	q := r.selectJoined().
		OrderBy("m.facultad_codigo ASC", "m.carrera_codigo ASC", "m.promo ASC", "m.materia_codigo ASC")
	return database.QueryAll[model.CurriculumEntry](ctx, r.db, "malla.list", q)
}

func (r *CurriculumRepository) ListByMajor(ctx context.Context, facultyCode, majorCode string) ([]model.CurriculumEntry, error) {
	q := r.selectJoined().
		Where(squirrel.Eq{"m.facultad_codigo": facultyCode}).
		Where(squirrel.Eq{"m.carrera_codigo": majorCode}).
		OrderBy("m.promo ASC", "m.materia_codigo ASC")
	return database.QueryAll[model.CurriculumEntry](ctx, r.db, "malla.list_by_major", q)
}

func (r *CurriculumRepository) ListByMajorPromo(ctx context.Context, facultyCode, majorCode string, promo int) ([]model.CurriculumEntry, error) {
	q := r.selectJoined().
		Where(squirrel.Eq{"m.facultad_codigo": facultyCode}).
		Where(squirrel.Eq{"m.carrera_codigo": majorCode}).
		Where(squirrel.Eq{"m.promo": promo}).
		OrderBy("m.materia_codigo ASC")
	return database.QueryAll[model.CurriculumEntry](ctx, r.db, "malla.list_by_major_promo", q)
}

func (r *CurriculumRepository) Get(ctx context.Context, key model.CurriculumKey) (*model.CurriculumEntry, error) {
	q := r.selectJoined().Where(keyPredicate("m.", key))
	return one[model.CurriculumEntry](ctx, r.db, "malla.get", q)
}

func (r *CurriculumRepository) Create(ctx context.Context, e model.CurriculumEntry) (*model.CurriculumEntry, error) {
	q := r.sb.Insert(curriculumTable).
		Columns("facultad_codigo", "carrera_codigo", "promo", "materia_codigo", "anio", "semestre", "tipo").
		Values(e.FacultyCode, e.MajorCode, e.Promo, e.CourseCode, e.Year, e.Semester, e.Type).
		Suffix(curriculumReturning)
	return one[model.CurriculumEntry](ctx, r.db, "malla.create", q)
}

// Update overwrites every mutable attribute of the entry at key.
func (r *CurriculumRepository) Update(ctx context.Context, key model.CurriculumKey, attrs model.CurriculumAttrs) (*model.CurriculumEntry, error) {
	q := r.sb.Update(curriculumTable).
		Set("anio", attrs.Year).
		Set("semestre", attrs.Semester).
		Set("tipo", attrs.Type).
		Where(keyPredicate("", key)).
		Suffix(curriculumReturning)
	return one[model.CurriculumEntry](ctx, r.db, "malla.update", q)
}

func (r *CurriculumRepository) Delete(ctx context.Context, key model.CurriculumKey) error {
	q := r.sb.Delete(curriculumTable).
		Where(keyPredicate("", key)).
		Suffix("RETURNING facultad_codigo, carrera_codigo, promo, materia_codigo")
	_, err := one[model.CurriculumEntry](ctx, r.db, "malla.delete", q)
	return err
}

// keyPredicate matches the full four-part key. Conditions are emitted in key
// order so the placeholders line up with the key components.
func keyPredicate(prefix string, key model.CurriculumKey) squirrel.And {
	return squirrel.And{
		squirrel.Eq{prefix + "facultad_codigo": key.FacultyCode},
		squirrel.Eq{prefix + "carrera_codigo": key.MajorCode},
		squirrel.Eq{prefix + "promo": key.Promo},
		squirrel.Eq{prefix + "materia_codigo": key.CourseCode},
	}
}
