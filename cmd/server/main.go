package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/academia/malla-api/internal/config"
	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/handler"
	"github.com/academia/malla-api/internal/logger"
	"github.com/academia/malla-api/internal/metrics"
	"github.com/academia/malla-api/internal/middleware"
	"github.com/academia/malla-api/internal/repository"
	"github.com/academia/malla-api/internal/router"
	"github.com/academia/malla-api/internal/service"
	"github.com/academia/malla-api/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting malla API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	var redisPinger database.Pinger
	if rdb != nil {
		defer rdb.Close()
		redisPinger = database.RedisPinger{Client: rdb}
	}

	// ─── Metrics ───────────────────────────────────────────────────────
	m := metrics.New(metrics.NewRegistry(true))

	// ─── Initialize Repositories ───────────────────────────────────────
	gw := database.NewGateway(pool, cfg.QueryTimeout, log, database.WithObserver(m))
	facultyRepo := repository.NewFacultyRepository(gw)
	majorRepo := repository.NewMajorRepository(gw)
	courseRepo := repository.NewCourseRepository(gw)
	curriculumRepo := repository.NewCurriculumRepository(gw)

	// ─── Initialize Services ──────────────────────────────────────────
	facultyService := service.NewFacultyService(facultyRepo, log)
	majorService := service.NewMajorService(majorRepo, log)
	courseService := service.NewCourseService(courseRepo, log)
	curriculumService := service.NewCurriculumService(curriculumRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		System:     handler.NewSystemHandler(pool, redisPinger, log),
		Faculty:    handler.NewFacultyHandler(facultyService),
		Major:      handler.NewMajorHandler(majorService),
		Course:     handler.NewCourseHandler(courseService),
		Curriculum: handler.NewCurriculumHandler(curriculumService),
	}

	// ─── Rate Limiter ──────────────────────────────────────────────────
	// Shared through Redis when available, per process otherwise.
	var limiter middleware.Limiter
	if cfg.RateLimitPerMinute > 0 {
		if rdb != nil {
			limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
		} else {
			memLimiter := middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
			defer memLimiter.Close()
			limiter = memLimiter
		}
		log.Info().Int("per_minute", cfg.RateLimitPerMinute).Bool("redis", rdb != nil).Msg("Rate limiting enabled")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, router.Options{
		Metrics: m,
		Limiter: limiter,
		Log:     log,
	})

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// Stop accepting new HTTP requests and let in-flight ones finish.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
