package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"dispatch/internal/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}

	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestComponentLoggerCarriesServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "debug", Service: "dispatch", Output: &buf})

	l := logger.Component("event_feed")
	l.Info().Int64("cursor", 12).Msg("replayed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dispatch", entry["service"])
	assert.Equal(t, "event_feed", entry["component"])
	assert.Equal(t, "replayed", entry["message"])
	assert.InDelta(t, 12, entry["cursor"], 0)
}

func TestLevelFiltersLowerEntries(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "warn", Output: &buf})

	l := logger.Get()
	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}
