package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/zigzag/config"
	"github.com/katalvlaran/zigzag/zigzag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, zigzag.Classic, mode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, cfg.Matrix)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
matrix:
  - [2, 4]
  - [9, 11]
order: legacy
logging:
  level: debug
`))
	require.NoError(t, err)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, zigzag.Legacy, mode)
	assert.Equal(t, "debug", cfg.Logging.Level)

	m, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 26, m.Total())
}

func TestParse_EmptyFallsBackToSample(t *testing.T) {
	cfg, err := config.Parse([]byte("order: classic\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Matrix)

	m, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 45, m.Total())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"ragged matrix", "matrix: [[1, 2], [3]]\n"},
		{"rectangular matrix", "matrix: [[1, 2, 3], [4, 5, 6]]\n"},
		{"unknown order", "order: spiral\n"},
		{"unknown level", "logging: {level: loud}\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse([]byte("matrix: [1, 2\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zigzag.yaml")

	cfg := config.DefaultConfig()
	cfg.Order = "legacy"
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
