package service

import (
	"context"

	"github.com/academia/malla-api/internal/apperror"
	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/repository"
	"github.com/academia/malla-api/internal/validator"
	"github.com/rs/zerolog"
)

var (
	curriculumCreateFields = []validator.Field{
		validator.TextField("facultad_codigo", codeRules),
		validator.TextField("carrera_codigo", codeRules),
		validator.IntegerField("promo"),
		validator.TextField("materia_codigo", codeRules),
		validator.IntegerField("anio"),
		validator.IntegerField("semestre"),
		validator.TextField("tipo", typeRules),
	}
	curriculumUpdateFields = []validator.Field{
		validator.IntegerField("anio"),
		validator.IntegerField("semestre"),
		validator.TextField("tipo", typeRules),
	}
	promoField = []validator.Field{validator.IntegerField("promo")}

	curriculumMessages = messages{
		notFound:         "Registro de malla no encontrado",
		conflict:         "Ya existe un registro de malla para esa facultad/carrera/promo/materia",
		invalidReference: "La facultad, carrera o materia asociada no existe",
	}
)

// CurriculumService handles curriculum (malla) business logic.
type CurriculumService struct {
	repo *repository.CurriculumRepository
	log  zerolog.Logger
}

func NewCurriculumService(repo *repository.CurriculumRepository, log zerolog.Logger) *CurriculumService {
	return &CurriculumService{
		repo: repo,
		log:  log.With().Str("component", "curriculum_service").Logger(),
	}
}

// MsgInvalidPromo is returned when a promo path segment is not an integer.
const MsgInvalidPromo = "La promo debe ser numérica"

// ParsePromo validates a promo taken from a URL path segment.
func ParsePromo(raw string) (int, error) {
	v, err := validate(map[string]any{"promo": raw}, promoField)
	if err != nil {
		return 0, apperror.Validation(MsgInvalidPromo)
	}
	return v.Int("promo"), nil
}

// ParseCurriculumKey builds a curriculum key from raw path segments.
func ParseCurriculumKey(facultyCode, majorCode, promo, courseCode string) (model.CurriculumKey, error) {
	p, err := ParsePromo(promo)
	if err != nil {
		return model.CurriculumKey{}, err
	}
	return model.CurriculumKey{FacultyCode: facultyCode, MajorCode: majorCode, Promo: p, CourseCode: courseCode}, nil
}

func (s *CurriculumService) List(ctx context.Context) ([]model.CurriculumEntry, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(s.log, "malla.list", actionRead, err, curriculumMessages)
	}
	return items, nil
}

func (s *CurriculumService) ListByMajor(ctx context.Context, facultyCode, majorCode string) ([]model.CurriculumEntry, error) {
	items, err := s.repo.ListByMajor(ctx, facultyCode, majorCode)
	if err != nil {
		return nil, translate(s.log, "malla.list_by_major", actionRead, err, curriculumMessages)
	}
	return items, nil
}

func (s *CurriculumService) ListByMajorPromo(ctx context.Context, facultyCode, majorCode, promo string) ([]model.CurriculumEntry, error) {
	p, err := ParsePromo(promo)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListByMajorPromo(ctx, facultyCode, majorCode, p)
	if err != nil {
		return nil, translate(s.log, "malla.list_by_major_promo", actionRead, err, curriculumMessages)
	}
	return items, nil
}

func (s *CurriculumService) Get(ctx context.Context, key model.CurriculumKey) (*model.CurriculumEntry, error) {
	e, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, translate(s.log, "malla.get", actionRead, err, curriculumMessages)
	}
	return e, nil
}

func (s *CurriculumService) Create(ctx context.Context, input map[string]any) (*model.CurriculumEntry, error) {
	v, err := validate(input, curriculumCreateFields)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.Create(ctx, model.CurriculumEntry{
		FacultyCode: v.String("facultad_codigo"),
		MajorCode:   v.String("carrera_codigo"),
		Promo:       v.Int("promo"),
		CourseCode:  v.String("materia_codigo"),
		Year:        v.Int("anio"),
		Semester:    v.Int("semestre"),
		Type:        v.String("tipo"),
	})
	if err != nil {
		return nil, translate(s.log, "malla.create", actionWrite, err, curriculumMessages)
	}
	s.log.Info().
		Str("facultad_codigo", e.FacultyCode).
		Str("carrera_codigo", e.MajorCode).
		Int("promo", e.Promo).
		Str("materia_codigo", e.CourseCode).
		Msg("curriculum entry created")
	return e, nil
}

// Update overwrites anio, semestre and tipo. All three are required.
func (s *CurriculumService) Update(ctx context.Context, key model.CurriculumKey, input map[string]any) (*model.CurriculumEntry, error) {
	v, err := validate(input, curriculumUpdateFields)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.Update(ctx, key, model.CurriculumAttrs{
		Year:     v.Int("anio"),
		Semester: v.Int("semestre"),
		Type:     v.String("tipo"),
	})
	if err != nil {
		return nil, translate(s.log, "malla.update", actionWrite, err, curriculumMessages)
	}
	return e, nil
}

func (s *CurriculumService) Delete(ctx context.Context, key model.CurriculumKey) (*Deleted, error) {
	if err := s.repo.Delete(ctx, key); err != nil {
		return nil, translate(s.log, "malla.delete", actionDelete, err, curriculumMessages)
	}
	return &Deleted{Message: "Registro de malla eliminado correctamente"}, nil
}
