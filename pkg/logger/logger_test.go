package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/epitools/covidtrends/pkg/config"
	"github.com/epitools/covidtrends/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.want, logger.ParseLevel(v.in), v.in)
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Format: "json", Level: "info"}

	log := logger.NewWithWriter(&cfg, &buf)
	log.Info("dataset loaded", "rows", 42)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "dataset loaded", rec["msg"])
	assert.Equal(t, 42.0, rec["rows"])
}

func TestNewWithWriterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Format: "text", Level: "warn"}

	log := logger.NewWithWriter(&cfg, &buf)
	log.Info("quiet")
	assert.Empty(t, buf.String())

	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewDoesNotPanicOnInvalid(t *testing.T) {
	cfg := config.LogConfig{Format: "xml", Level: "silly", Destination: "pipe"}
	log := logger.New(&cfg)
	require.NotNil(t, log)
}
