package service

import (
	"context"

	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/repository"
	"github.com/academia/malla-api/internal/validator"
	"github.com/rs/zerolog"
)

var (
	facultyCreateFields = []validator.Field{
		validator.TextField("codigo", codeRules),
		validator.TextField("descripcion", descriptionRules),
	}
	facultyUpdateFields = []validator.Field{
		validator.TextField("descripcion", descriptionRules),
	}

	facultyMessages = messages{
		notFound:         "Facultad no encontrada",
		conflict:         "Ya existe una facultad con ese código",
		dependencyExists: "No se puede eliminar la facultad porque tiene carreras, materias o registros de malla asociados",
	}
)

// FacultyService handles faculty business logic.
type FacultyService struct {
	repo *repository.FacultyRepository
	log  zerolog.Logger
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(repo *repository.FacultyRepository, log zerolog.Logger) *FacultyService {
	return &FacultyService{
		repo: repo,
		log:  log.With().Str("component", "faculty_service").Logger(),
	}
}

func (s *FacultyService) List(ctx context.Context) ([]model.Faculty, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(s.log, "facultades.list", actionRead, err, facultyMessages)
	}
	return items, nil
}

func (s *FacultyService) Get(ctx context.Context, code string) (*model.Faculty, error) {
	f, err := s.repo.Get(ctx, code)
	if err != nil {
		return nil, translate(s.log, "facultades.get", actionRead, err, facultyMessages)
	}
	return f, nil
}

func (s *FacultyService) Create(ctx context.Context, input map[string]any) (*model.Faculty, error) {
	v, err := validate(input, facultyCreateFields)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.Create(ctx, model.Faculty{
		Code:        v.String("codigo"),
		Description: v.String("descripcion"),
	})
	if err != nil {
		return nil, translate(s.log, "facultades.create", actionWrite, err, facultyMessages)
	}
	s.log.Info().Str("codigo", f.Code).Msg("faculty created")
	return f, nil
}

// Update replaces the description of the faculty identified by code.
func (s *FacultyService) Update(ctx context.Context, code string, input map[string]any) (*model.Faculty, error) {
	v, err := validate(input, facultyUpdateFields)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.Update(ctx, code, v.String("descripcion"))
	if err != nil {
		return nil, translate(s.log, "facultades.update", actionWrite, err, facultyMessages)
	}
	return f, nil
}

func (s *FacultyService) Delete(ctx context.Context, code string) (*Deleted, error) {
	if err := s.repo.Delete(ctx, code); err != nil {
		return nil, translate(s.log, "facultades.delete", actionDelete, err, facultyMessages)
	}
	s.log.Info().Str("codigo", code).Msg("faculty deleted")
	return &Deleted{Message: "Facultad eliminada correctamente"}, nil
}
