package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "", cfg.Catalog)
	assert.Equal(t, 0, cfg.Stars)
	assert.True(t, cfg.ShowStarNames)
	assert.Equal(t, 2.0, cfg.FovX)
	assert.Equal(t, 1.0, cfg.FovY)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
catalog: builtin
stars: 300
show_distance: true
fov_x: 1.5
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "builtin", cfg.Catalog)
	assert.Equal(t, 300, cfg.Stars)
	assert.True(t, cfg.ShowDistance)
	assert.Equal(t, 1.5, cfg.FovX)
	// Unset fields keep their defaults.
	assert.Equal(t, 1.0, cfg.FovY)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Catalog = "bsc5.csv"
	cfg.Stars = 1200
	cfg.SinglePane = true

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
