package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestNewJSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel, JSONFormat)

	log.Debug().Msg("hidden")
	log.Info().Str("pipeline", "simple_sample").Msg("done")

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"pipeline":"simple_sample"`)
	assert.Contains(t, out, `"time":`)
}

func TestNewConsoleIsPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.DebugLevel, ConsoleFormat)

	log.Debug().Str("stage", "mask").Msg("stage complete")

	out := buf.String()
	assert.Contains(t, out, "stage complete")
	assert.Contains(t, out, "stage=mask")
	assert.NotContains(t, out, "\x1b[")
}
