package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("stage", "parse").Msg("parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "parsed", entry["message"])
	assert.Equal(t, "parse", entry["stage"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New("chatty", "json", &buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "console", &buf)

	logger.Debug().Msg("readable")
	assert.Contains(t, buf.String(), "readable")
	assert.NotContains(t, buf.String(), `"message"`)
}
