package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/academia/malla-api/internal/database"
	"github.com/academia/malla-api/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	bannerMessage = "API de malla curricular con Go + Postgres"
	pingTimeout   = 2 * time.Second
)

// SystemHandler serves the banner and the health check.
type SystemHandler struct {
	db        database.Pinger
	redis     database.Pinger // nil when Redis is not configured
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(db, redis database.Pinger, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		redis:     redis,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

// ---------- Endpoints ----------

// Banner godoc
// GET /api
func (h *SystemHandler) Banner(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": bannerMessage})
}

type healthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Uptime    string `json:"uptime"`
	GoVersion string `json:"go_version"`
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	hs := healthStatus{
		Status:    "ok",
		Database:  h.check(ctx, "database", h.db),
		Redis:     "disabled",
		Uptime:    formatDuration(time.Since(h.startTime)),
		GoVersion: runtime.Version(),
	}
	if h.redis != nil {
		hs.Redis = h.check(ctx, "redis", h.redis)
	}

	status := http.StatusOK
	if hs.Database != "ok" || hs.Redis == "down" {
		hs.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	response.Success(c, status, hs)
}

func (h *SystemHandler) check(ctx context.Context, name string, p database.Pinger) string {
	if err := p.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Str("dependency", name).Msg("health check failed")
		return "down"
	}
	return "ok"
}

// ---------- Helpers ----------

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
