package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsbinspect-go/internal/config"
)

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLogger(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("workbook extracted", slog.String("file", "a.xlsb"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "workbook extracted", entry["msg"])
	assert.Equal(t, "a.xlsb", entry["file"])
	assert.NotEmpty(t, entry["run_id"])
}

func TestSetupLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLogger(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("skipped")
	logger.Warn("file unreadable")

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, "file unreadable")
	assert.Contains(t, out, "run_id=")
}

func TestSetupLoggerRejectsUnknownFormat(t *testing.T) {
	_, err := SetupLogger(config.LoggingConfig{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, level, tt.input)
	}
}
