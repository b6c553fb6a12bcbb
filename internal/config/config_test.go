package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1280, cfg.Graphics.Width)
	assert.Equal(t, 720, cfg.Graphics.Height)
	assert.False(t, cfg.Graphics.Fullscreen)
	assert.True(t, cfg.Graphics.VSync)
	assert.Equal(t, "textures", cfg.Assets.TextureDir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
assets:
  texture_dir: /opt/scene/textures
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, path))

	assert.Equal(t, 1920, cfg.Graphics.Width)
	assert.Equal(t, 1080, cfg.Graphics.Height)
	assert.True(t, cfg.Graphics.Fullscreen)
	assert.Equal(t, "/opt/scene/textures", cfg.Assets.TextureDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Graphics.VSync)
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Assets.TextureDir = "assets/tex"
	require.NoError(t, Save(cfg, path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}
