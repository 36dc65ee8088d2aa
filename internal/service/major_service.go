package service

import (
	"context"

	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/repository"
	"github.com/academia/malla-api/internal/validator"
	"github.com/rs/zerolog"
)

var (
	majorCreateFields = []validator.Field{
		validator.TextField("facultad_codigo", codeRules),
		validator.TextField("codigo", codeRules),
		validator.TextField("descripcion", descriptionRules),
	}
	majorUpdateFields = []validator.Field{
		validator.TextField("descripcion", descriptionRules),
	}

	majorMessages = messages{
		notFound:         "Carrera no encontrada",
		conflict:         "Ya existe una carrera con ese código en esa facultad",
		invalidReference: "La facultad especificada no existe",
		dependencyExists: "No se puede eliminar la carrera porque tiene registros de malla asociados",
	}
)

// MajorService handles major (carrera) business logic.
type MajorService struct {
	repo *repository.MajorRepository
	log  zerolog.Logger
}

func NewMajorService(repo *repository.MajorRepository, log zerolog.Logger) *MajorService {
	return &MajorService{
		repo: repo,
		log:  log.With().Str("component", "major_service").Logger(),
	}
}

func (s *MajorService) List(ctx context.Context) ([]model.Major, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(s.log, "carreras.list", actionRead, err, majorMessages)
	}
	return items, nil
}

// ListByFaculty never reports NotFound; an unknown faculty has no majors.
func (s *MajorService) ListByFaculty(ctx context.Context, facultyCode string) ([]model.Major, error) {
	items, err := s.repo.ListByFaculty(ctx, facultyCode)
	if err != nil {
		return nil, translate(s.log, "carreras.list_by_faculty", actionRead, err, majorMessages)
	}
	return items, nil
}

func (s *MajorService) Get(ctx context.Context, key model.MajorKey) (*model.Major, error) {
	m, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, translate(s.log, "carreras.get", actionRead, err, majorMessages)
	}
	return m, nil
}

func (s *MajorService) Create(ctx context.Context, input map[string]any) (*model.Major, error) {
	v, err := validate(input, majorCreateFields)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.Create(ctx, model.Major{
		FacultyCode: v.String("facultad_codigo"),
		Code:        v.String("codigo"),
		Description: v.String("descripcion"),
	})
	if err != nil {
		return nil, translate(s.log, "carreras.create", actionWrite, err, majorMessages)
	}
	s.log.Info().Str("facultad_codigo", m.FacultyCode).Str("codigo", m.Code).Msg("major created")
	return m, nil
}

func (s *MajorService) Update(ctx context.Context, key model.MajorKey, input map[string]any) (*model.Major, error) {
	v, err := validate(input, majorUpdateFields)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.Update(ctx, key, v.String("descripcion"))
	if err != nil {
		return nil, translate(s.log, "carreras.update", actionWrite, err, majorMessages)
	}
	return m, nil
}

func (s *MajorService) Delete(ctx context.Context, key model.MajorKey) (*Deleted, error) {
	if err := s.repo.Delete(ctx, key); err != nil {
		return nil, translate(s.log, "carreras.delete", actionDelete, err, majorMessages)
	}
	s.log.Info().Str("facultad_codigo", key.FacultyCode).Str("codigo", key.Code).Msg("major deleted")
	return &Deleted{Message: "Carrera eliminada correctamente"}, nil
}
