package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	// Неизвестный уровень трактуется как info
	assert.Equal(t, LevelInfo, ParseLevel("trace"))
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking created id=%d", 42)
	log.Debug("this must be filtered out")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "booking created id=42")
	assert.Contains(t, string(data), "[INFO]")
	assert.NotContains(t, string(data), "filtered out")
}

func TestLoggerLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "error")
	require.NoError(t, err)

	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "info message")
	assert.NotContains(t, string(data), "warn message")
	assert.Contains(t, string(data), "error message")
}
