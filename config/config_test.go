package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mezonai/blockmine/engine"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultMineConfig(t *testing.T) {
	cfg := DefaultMineConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.WindowSize)
	assert.Equal(t, engine.KindSumIndex, cfg.EngineKind())
	assert.True(t, cfg.StopOnFirstInvalid)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadINI(t *testing.T) {
	path := writeFile(t, "config.ini", `
[mine]
window_size = 25
engine = sorted-scan
stop_on_first_invalid = false
metrics_file = ./metrics.prom
`)
	cfg, err := LoadMineConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.WindowSize)
	assert.Equal(t, engine.KindSortedScan, cfg.EngineKind())
	assert.False(t, cfg.StopOnFirstInvalid)
	assert.Equal(t, FormatText, cfg.Format, "unset keys keep defaults")
	assert.Equal(t, "./metrics.prom", cfg.MetricsFile)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "mine.yml", `
mine:
  window_size: 5
  format: json
`)
	cfg, err := LoadMineConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.WindowSize)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, engine.KindSumIndex, cfg.EngineKind())
	assert.True(t, cfg.StopOnFirstInvalid)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := writeFile(t, "config.ini", "[mine]\nwindow_size = 1\n")
	_, err := LoadMineConfig(path)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	path = writeFile(t, "mine.yaml", "mine:\n  engine: hash\n")
	_, err = LoadMineConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	path = writeFile(t, "mine.yaml", "mine:\n  format: xml\n")
	_, err = LoadMineConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadMineConfig("mine.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadMineConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
