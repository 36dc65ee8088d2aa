package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/database/databasetest"
	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func gateway(q *databasetest.Querier) *database.Gateway {
	return database.NewGateway(q, time.Second, zerolog.Nop())
}

func TestFacultyListOrdersByCode(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(
		[]string{"codigo", "descripcion"},
		[]any{"FC", "Ciencias"},
		[]any{"FI", "Ingeniería"},
	))
	repo := repository.NewFacultyRepository(gateway(q))

	got, err := repo.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, []model.Faculty{{Code: "FC", Description: "Ciencias"}, {Code: "FI", Description: "Ingeniería"}}, got)
	assert.Equal(t, "SELECT codigo, descripcion FROM facultades ORDER BY codigo ASC", q.LastCall().SQL)
	assert.Empty(t, q.LastCall().Args)
}

func TestFacultyGetMissingIsErrNotFound(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset([]string{"codigo", "descripcion"}))
	repo := repository.NewFacultyRepository(gateway(q))

	_, err := repo.Get(ctx, "XX")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, []any{"XX"}, q.LastCall().Args)
}

func TestFacultyCreateBindsValues(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(
		[]string{"codigo", "descripcion"},
		[]any{"FI", "Facultad de Ingeniería"},
	))
	repo := repository.NewFacultyRepository(gateway(q))

	got, err := repo.Create(ctx, model.Faculty{Code: "FI", Description: "Facultad de Ingeniería"})

	require.NoError(t, err)
	assert.Equal(t, &model.Faculty{Code: "FI", Description: "Facultad de Ingeniería"}, got)
	call := q.LastCall()
	assert.Equal(t, "INSERT INTO facultades (codigo,descripcion) VALUES ($1,$2) RETURNING codigo, descripcion", call.SQL)
	assert.Equal(t, []any{"FI", "Facultad de Ingeniería"}, call.Args)
}

func TestFacultyCreateDuplicateIsUniqueViolation(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Failure(databasetest.UniqueViolation("facultades", "facultades_pkey")))
	repo := repository.NewFacultyRepository(gateway(q))

	_, err := repo.Create(ctx, model.Faculty{Code: "FI", Description: "x"})

	assert.True(t, database.IsUniqueViolation(err))
}

func TestFacultyUpdateAndDelete(t *testing.T) {
	q := databasetest.NewQuerier(
		databasetest.Rowset([]string{"codigo", "descripcion"}, []any{"FI", "Nueva"}),
		databasetest.Rowset([]string{"codigo"}, []any{"FI"}),
		databasetest.Rowset([]string{"codigo"}),
	)
	repo := repository.NewFacultyRepository(gateway(q))

	updated, err := repo.Update(ctx, "FI", "Nueva")
	require.NoError(t, err)
	assert.Equal(t, "Nueva", updated.Description)
	assert.Equal(t, "UPDATE facultades SET descripcion = $1 WHERE codigo = $2 RETURNING codigo, descripcion", q.Calls()[0].SQL)
	assert.Equal(t, []any{"Nueva", "FI"}, q.Calls()[0].Args)

	require.NoError(t, repo.Delete(ctx, "FI"))
	assert.Equal(t, "DELETE FROM facultades WHERE codigo = $1 RETURNING codigo", q.Calls()[1].SQL)

	assert.ErrorIs(t, repo.Delete(ctx, "FI"), repository.ErrNotFound)
}

func TestMajorListByFacultyIsScoped(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset([]string{"facultad_codigo", "codigo", "descripcion"}))
	repo := repository.NewMajorRepository(gateway(q))

	got, err := repo.ListByFaculty(ctx, "FI")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	call := q.LastCall()
	assert.Equal(t, "SELECT facultad_codigo, codigo, descripcion FROM carreras WHERE facultad_codigo = $1 ORDER BY codigo ASC", call.SQL)
	assert.Equal(t, []any{"FI"}, call.Args)
}

func TestMajorUpdateUsesCompositeKey(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(
		[]string{"facultad_codigo", "codigo", "descripcion"},
		[]any{"FI", "ISI", "Sistemas"},
	))
	repo := repository.NewMajorRepository(gateway(q))

	got, err := repo.Update(ctx, model.MajorKey{FacultyCode: "FI", Code: "ISI"}, "Sistemas")

	require.NoError(t, err)
	assert.Equal(t, &model.Major{FacultyCode: "FI", Code: "ISI", Description: "Sistemas"}, got)
	assert.Equal(t, []any{"Sistemas", "FI", "ISI"}, q.LastCall().Args)
}

func TestMajorDeleteReferencedIsForeignKeyViolation(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Failure(databasetest.ForeignKeyViolation("malla", "malla_carrera_fkey")))
	repo := repository.NewMajorRepository(gateway(q))

	err := repo.Delete(ctx, model.MajorKey{FacultyCode: "FI", Code: "ISI"})

	assert.True(t, database.IsForeignKeyViolation(err))
}

func TestCourseListOrdersByFacultyThenCode(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(
		[]string{"facultad_codigo", "codigo", "descripcion"},
		[]any{"FC", "MAT1", "Cálculo"},
		[]any{"FI", "PRG1", "Programación"},
	))
	repo := repository.NewCourseRepository(gateway(q))

	got, err := repo.List(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "SELECT facultad_codigo, codigo, descripcion FROM materias ORDER BY facultad_codigo ASC, codigo ASC", q.LastCall().SQL)
}

func TestCourseCreate(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(
		[]string{"facultad_codigo", "codigo", "descripcion"},
		[]any{"FI", "PRG1", "Programación"},
	))
	repo := repository.NewCourseRepository(gateway(q))

	got, err := repo.Create(ctx, model.Course{FacultyCode: "FI", Code: "PRG1", Description: "Programación"})

	require.NoError(t, err)
	assert.Equal(t, "PRG1", got.Code)
	assert.Equal(t, "INSERT INTO materias (facultad_codigo,codigo,descripcion) VALUES ($1,$2,$3) RETURNING facultad_codigo, codigo, descripcion", q.LastCall().SQL)
}

var curriculumColumns = []string{"facultad_codigo", "carrera_codigo", "promo", "materia_codigo", "anio", "semestre", "tipo", "materia_descripcion"}

func TestCurriculumListByMajorPromoJoinsCourses(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(curriculumColumns,
		[]any{"FI", "ISI", int32(2024), "PRG1", int32(1), int32(1), "OBLIGATORIA", "Programación"},
	))
	repo := repository.NewCurriculumRepository(gateway(q))

	got, err := repo.ListByMajorPromo(ctx, "FI", "ISI", 2024)

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].CourseDescription)
	assert.Equal(t, "Programación", *got[0].CourseDescription)
	assert.Equal(t, 2024, got[0].Promo)

	call := q.LastCall()
	assert.Contains(t, call.SQL, "FROM malla m JOIN materias mat ON mat.facultad_codigo = m.facultad_codigo AND mat.codigo = m.materia_codigo")
	assert.Contains(t, call.SQL, "WHERE m.facultad_codigo = $1 AND m.carrera_codigo = $2 AND m.promo = $3")
	assert.Contains(t, call.SQL, "ORDER BY m.materia_codigo ASC")
	assert.Equal(t, []any{"FI", "ISI", 2024}, call.Args)
}

func TestCurriculumListByMajorOrdersByPromoThenCourse(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(curriculumColumns))
	repo := repository.NewCurriculumRepository(gateway(q))

	got, err := repo.ListByMajor(ctx, "FI", "ISI")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, q.LastCall().SQL, "ORDER BY m.promo ASC, m.materia_codigo ASC")
}

func TestCurriculumUpdateBindsAttrsThenKey(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(curriculumColumns[:7],
		[]any{"FI", "ISI", int32(2024), "PRG1", int32(2), int32(1), "ELECTIVA"},
	))
	repo := repository.NewCurriculumRepository(gateway(q))

	key := model.CurriculumKey{FacultyCode: "FI", MajorCode: "ISI", Promo: 2024, CourseCode: "PRG1"}
	got, err := repo.Update(ctx, key, model.CurriculumAttrs{Year: 2, Semester: 1, Type: "ELECTIVA"})

	require.NoError(t, err)
	assert.Equal(t, "ELECTIVA", got.Type)
	assert.Nil(t, got.CourseDescription)
	call := q.LastCall()
	assert.Equal(t, "UPDATE malla SET anio = $1, semestre = $2, tipo = $3 WHERE (facultad_codigo = $4 AND carrera_codigo = $5 AND promo = $6 AND materia_codigo = $7) RETURNING facultad_codigo, carrera_codigo, promo, materia_codigo, anio, semestre, tipo", call.SQL)
	assert.Equal(t, []any{2, 1, "ELECTIVA", "FI", "ISI", 2024, "PRG1"}, call.Args)
}

func TestCurriculumCreateMissingParentIsForeignKeyViolation(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Failure(databasetest.ForeignKeyViolation("malla", "malla_materia_fkey")))
	repo := repository.NewCurriculumRepository(gateway(q))

	_, err := repo.Create(ctx, model.CurriculumEntry{FacultyCode: "FI", MajorCode: "ISI", Promo: 2024, CourseCode: "NOPE", Year: 1, Semester: 1, Type: "OBLIGATORIA"})

	require.Error(t, err)
	var cv *database.ConstraintViolation
	require.True(t, errors.As(err, &cv))
	assert.Equal(t, database.ForeignKeyViolation, cv.Kind)
	assert.Equal(t, "malla_materia_fkey", cv.Constraint)
}

func TestCurriculumDeleteMissingIsErrNotFound(t *testing.T) {
	q := databasetest.NewQuerier(databasetest.Rowset(curriculumColumns[:4]))
	repo := repository.NewCurriculumRepository(gateway(q))

	err := repo.Delete(ctx, model.CurriculumKey{FacultyCode: "FI", MajorCode: "ISI", Promo: 2024, CourseCode: "PRG1"})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
