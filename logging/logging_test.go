package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	t.Cleanup(func() { Setup("info", nil) })

	log := For("board")
	log.Warn().Int("bomb", 7).Msg("unknown bomb")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "board", entry["component"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(7), entry["bomb"])
	assert.Equal(t, "unknown bomb", entry["message"])
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup("error", &buf)
	t.Cleanup(func() { Setup("info", nil) })

	For("player").Info().Msg("hidden")
	assert.Zero(t, buf.Len())
}
