package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "PORT", "QUERY_TIMEOUT_MS", "REDIS_URL", "RATE_LIMIT_PER_MINUTE", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Empty(t, cfg.RedisURL)
	assert.Zero(t, cfg.RateLimitPerMinute)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("QUERY_TIMEOUT_MS", "250")
	t.Setenv("MAX_DB_CONNS", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 250*time.Millisecond, cfg.QueryTimeout)
	assert.Equal(t, int32(10), cfg.MaxDBConns)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestGetEnvDurationRejectsNonPositive(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-3")
	assert.Equal(t, 5*time.Second, getEnvDuration("SHUTDOWN_TIMEOUT_SECONDS", 5, time.Second))
}
