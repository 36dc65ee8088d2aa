package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONIncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, "json"), "faculty_service")

	log.Info().Str("codigo", "FI").Msg("created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "faculty_service", entry["component"])
	assert.Equal(t, "FI", entry["codigo"])
	assert.Equal(t, "created", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewPrettyIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "pretty")

	log.Warn().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}
