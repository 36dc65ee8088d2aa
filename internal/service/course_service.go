package service

import (
	"context"

	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/repository"
	"github.com/academia/malla-api/internal/validator"
	"github.com/rs/zerolog"
)

var (
	courseCreateFields = []validator.Field{
		validator.TextField("facultad_codigo", codeRules),
		validator.TextField("codigo", codeRules),
		validator.TextField("descripcion", descriptionRules),
	}
	courseUpdateFields = []validator.Field{
		validator.TextField("descripcion", descriptionRules),
	}

	courseMessages = messages{
		notFound:         "Materia no encontrada",
		conflict:         "Ya existe una materia con ese código en esa facultad",
		invalidReference: "La facultad especificada no existe",
		dependencyExists: "No se puede eliminar la materia porque tiene registros de malla asociados",
	}
)

// CourseService handles course (materia) business logic.
type CourseService struct {
	repo *repository.CourseRepository
	log  zerolog.Logger
}

func NewCourseService(repo *repository.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{
		repo: repo,
		log:  log.With().Str("component", "course_service").Logger(),
	}
}

func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(s.log, "materias.list", actionRead, err, courseMessages)
	}
	return items, nil
}

// ListByFaculty never reports NotFound; an unknown faculty has no courses.
func (s *CourseService) ListByFaculty(ctx context.Context, facultyCode string) ([]model.Course, error) {
	items, err := s.repo.ListByFaculty(ctx, facultyCode)
	if err != nil {
		return nil, translate(s.log, "materias.list_by_faculty", actionRead, err, courseMessages)
	}
	return items, nil
}

func (s *CourseService) Get(ctx context.Context, key model.CourseKey) (*model.Course, error) {
	m, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, translate(s.log, "materias.get", actionRead, err, courseMessages)
	}
	return m, nil
}

func (s *CourseService) Create(ctx context.Context, input map[string]any) (*model.Course, error) {
	v, err := validate(input, courseCreateFields)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.Create(ctx, model.Course{
		FacultyCode: v.String("facultad_codigo"),
		Code:        v.String("codigo"),
		Description: v.String("descripcion"),
	})
	if err != nil {
		return nil, translate(s.log, "materias.create", actionWrite, err, courseMessages)
	}
	s.log.Info().Str("facultad_codigo", m.FacultyCode).Str("codigo", m.Code).Msg("course created")
	return m, nil
}

func (s *CourseService) Update(ctx context.Context, key model.CourseKey, input map[string]any) (*model.Course, error) {
	v, err := validate(input, courseUpdateFields)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.Update(ctx, key, v.String("descripcion"))
	if err != nil {
		return nil, translate(s.log, "materias.update", actionWrite, err, courseMessages)
	}
	return m, nil
}

func (s *CourseService) Delete(ctx context.Context, key model.CourseKey) (*Deleted, error) {
	if err := s.repo.Delete(ctx, key); err != nil {
		return nil, translate(s.log, "materias.delete", actionDelete, err, courseMessages)
	}
	s.log.Info().Str("facultad_codigo", key.FacultyCode).Str("codigo", key.Code).Msg("course deleted")
	return &Deleted{Message: "Materia eliminada correctamente"}, nil
}
