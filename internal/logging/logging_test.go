package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/taskboard/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
	assert.NoError(t, Sync(nil))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "taskboard.log")
	logger, err := New(config.LoggingConfig{File: p})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("fetched tasks")
	_ = Sync(logger)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "fetched tasks", entry["msg"])
}

func TestNew_DebugConsole(t *testing.T) {
	p := filepath.Join(t.TempDir(), "taskboard.log")
	logger, err := New(config.LoggingConfig{File: p, Format: "console", Debug: true})
	require.NoError(t, err)

	logger.Debug("seeding board")
	_ = Sync(logger)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug")
	assert.Contains(t, string(data), "seeding board")
}
