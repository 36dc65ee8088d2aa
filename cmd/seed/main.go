package main

import (
	"context"
	"time"

	"github.com/academia/malla-api/internal/apperror"
	"github.com/academia/malla-api/internal/config"
	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/logger"
	"github.com/academia/malla-api/internal/repository"
	"github.com/academia/malla-api/internal/service"
	"github.com/rs/zerolog"
)

// A small sample catalog for local development. Rows that already exist are
// skipped, so the seeder can be run repeatedly.
var (
	faculties = []map[string]any{
		{"codigo": "FI", "descripcion": "Facultad de Ingeniería"},
		{"codigo": "FC", "descripcion": "Facultad de Ciencias"},
	}
	majors = []map[string]any{
		{"facultad_codigo": "FI", "codigo": "ISI", "descripcion": "Ingeniería en Sistemas de Información"},
		{"facultad_codigo": "FI", "codigo": "IC", "descripcion": "Ingeniería Civil"},
		{"facultad_codigo": "FC", "codigo": "MAT", "descripcion": "Licenciatura en Matemática"},
	}
	courses = []map[string]any{
		{"facultad_codigo": "FI", "codigo": "AM1", "descripcion": "Análisis Matemático I"},
		{"facultad_codigo": "FI", "codigo": "PRG1", "descripcion": "Programación I"},
		{"facultad_codigo": "FI", "codigo": "EST", "descripcion": "Estática"},
		{"facultad_codigo": "FC", "codigo": "ALG", "descripcion": "Álgebra Lineal"},
	}
	curriculum = []map[string]any{
		{"facultad_codigo": "FI", "carrera_codigo": "ISI", "promo": 2024, "materia_codigo": "AM1", "anio": 1, "semestre": 1, "tipo": "OBLIGATORIA"},
		{"facultad_codigo": "FI", "carrera_codigo": "ISI", "promo": 2024, "materia_codigo": "PRG1", "anio": 1, "semestre": 1, "tipo": "OBLIGATORIA"},
		{"facultad_codigo": "FI", "carrera_codigo": "IC", "promo": 2024, "materia_codigo": "AM1", "anio": 1, "semestre": 1, "tipo": "OBLIGATORIA"},
		{"facultad_codigo": "FI", "carrera_codigo": "IC", "promo": 2024, "materia_codigo": "EST", "anio": 1, "semestre": 2, "tipo": "OBLIGATORIA"},
		{"facultad_codigo": "FC", "carrera_codigo": "MAT", "promo": 2024, "materia_codigo": "ALG", "anio": 1, "semestre": 1, "tipo": "OBLIGATORIA"},
	}
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	gw := database.NewGateway(pool, cfg.QueryTimeout, log)
	facultyService := service.NewFacultyService(repository.NewFacultyRepository(gw), log)
	majorService := service.NewMajorService(repository.NewMajorRepository(gw), log)
	courseService := service.NewCourseService(repository.NewCourseRepository(gw), log)
	curriculumService := service.NewCurriculumService(repository.NewCurriculumRepository(gw), log)

	// Parents first so every foreign key resolves.
	seed(ctx, log, "facultades", faculties, func(ctx context.Context, in map[string]any) error {
		_, err := facultyService.Create(ctx, in)
		return err
	})
	seed(ctx, log, "carreras", majors, func(ctx context.Context, in map[string]any) error {
		_, err := majorService.Create(ctx, in)
		return err
	})
	seed(ctx, log, "materias", courses, func(ctx context.Context, in map[string]any) error {
		_, err := courseService.Create(ctx, in)
		return err
	})
	seed(ctx, log, "malla", curriculum, func(ctx context.Context, in map[string]any) error {
		_, err := curriculumService.Create(ctx, in)
		return err
	})

	log.Info().Msg("Seeding complete")
}

func seed(ctx context.Context, log zerolog.Logger, table string, rows []map[string]any, create func(context.Context, map[string]any) error) {
	created, skipped := 0, 0
	for _, row := range rows {
		err := create(ctx, row)
		switch {
		case err == nil:
			created++
		case apperror.Is(err, apperror.KindConflict):
			skipped++
		default:
			log.Fatal().Err(err).Str("table", table).Interface("row", row).Msg("Seeding failed")
		}
	}
	log.Info().Str("table", table).Int("created", created).Int("skipped", skipped).Msg("Seeded")
}
