package router

import (
	"net/http"
	"os"
	"path"
	"time"

	"github.com/academia/malla-api/internal/apperror"
	"github.com/academia/malla-api/internal/config"
	"github.com/academia/malla-api/internal/handler"
	"github.com/academia/malla-api/internal/metrics"
	"github.com/academia/malla-api/internal/middleware"
	"github.com/academia/malla-api/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// staticMaxAge is the Cache-Control max-age of front-end assets.
const staticMaxAge = 3600

// Handlers groups all handler instances for route setup.
type Handlers struct {
	System     *handler.SystemHandler
	Faculty    *handler.FacultyHandler
	Major      *handler.MajorHandler
	Course     *handler.CourseHandler
	Curriculum *handler.CurriculumHandler
}

// Options carries the optional cross-cutting pieces.
type Options struct {
	// Metrics enables request metrics and GET /metrics.
	Metrics *metrics.Metrics
	// Limiter enables per-IP rate limiting of the resource routes.
	Limiter middleware.Limiter
	Log     zerolog.Logger
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config, opts Options) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.AccessLog(opts.Log))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.Brotli())

	// ─── System ────────────────────────────────────────────────────────
	router.GET("/api", handlers.System.Banner)
	router.GET("/health", handlers.System.Health)
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// ─── Resources ─────────────────────────────────────────────────────
	api := router.Group("/")
	api.Use(middleware.NoStore())
	if opts.Limiter != nil {
		api.Use(middleware.RateLimit(opts.Limiter, opts.Log))
	}

	facultades := api.Group("/facultades")
	{
		facultades.GET("", handlers.Faculty.List)
		facultades.POST("", handlers.Faculty.Create)
		facultades.GET("/:codigo", handlers.Faculty.Get)
		facultades.PUT("/:codigo", handlers.Faculty.Update)
		facultades.DELETE("/:codigo", handlers.Faculty.Delete)
	}

	carreras := api.Group("/carreras")
	{
		carreras.GET("", handlers.Major.List)
		carreras.POST("", handlers.Major.Create)
		carreras.GET("/facultad/:facultadCodigo", handlers.Major.ListByFaculty)
		carreras.GET("/:facultadCodigo/:codigo", handlers.Major.Get)
		carreras.PUT("/:facultadCodigo/:codigo", handlers.Major.Update)
		carreras.DELETE("/:facultadCodigo/:codigo", handlers.Major.Delete)
	}

	materias := api.Group("/materias")
	{
		materias.GET("", handlers.Course.List)
		materias.POST("", handlers.Course.Create)
		materias.GET("/facultad/:facultadCodigo", handlers.Course.ListByFaculty)
		materias.GET("/:facultadCodigo/:codigo", handlers.Course.Get)
		materias.PUT("/:facultadCodigo/:codigo", handlers.Course.Update)
		materias.DELETE("/:facultadCodigo/:codigo", handlers.Course.Delete)
	}

	malla := api.Group("/malla")
	{
		malla.GET("", handlers.Curriculum.List)
		malla.POST("", handlers.Curriculum.Create)
		malla.GET("/facultad/:facultadCodigo/carrera/:carreraCodigo", handlers.Curriculum.ListByMajor)
		malla.GET("/facultad/:facultadCodigo/carrera/:carreraCodigo/promo/:promo", handlers.Curriculum.ListByMajorPromo)
		malla.GET("/:facultadCodigo/:carreraCodigo/:promo/:materiaCodigo", handlers.Curriculum.Get)
		malla.PUT("/:facultadCodigo/:carreraCodigo/:promo/:materiaCodigo", handlers.Curriculum.Update)
		malla.DELETE("/:facultadCodigo/:carreraCodigo/:promo/:materiaCodigo", handlers.Curriculum.Delete)
	}

	// ─── Front-end ─────────────────────────────────────────────────────
	router.NoRoute(middleware.CacheControl(staticMaxAge), notFound(cfg.StaticDir))

	return router
}

// notFound serves files from dir for unmatched GETs when dir exists, and
// answers everything else with a JSON 404.
func notFound(dir string) gin.HandlerFunc {
	var root http.FileSystem
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		root = gin.Dir(dir, false)
	}

	return func(c *gin.Context) {
		if root != nil && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			if f, err := root.Open(path.Clean("/" + c.Request.URL.Path)); err == nil {
				_ = f.Close()
				http.FileServer(root).ServeHTTP(c.Writer, c.Request)
				return
			}
		}
		c.Header("Cache-Control", "no-store")
		response.Fail(c, apperror.NotFound(response.MsgNotFound))
	}
}
