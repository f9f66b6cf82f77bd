package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CAROUSEL_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "carousel", "carousel.db"), cfg.Database.Path)
	require.True(t, cfg.UI.Resume)
	require.Equal(t, "#89b4fa", cfg.UI.ThemeAccent)
	require.Nil(t, cfg.Carousel.Nav)
	require.Nil(t, cfg.Carousel.Interval)
}

func TestLoadFileOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/tmp/decks.db"

[ui]
resume = false
log_path = "/tmp/carousel.log"
theme_accent = "#f5c2e7"

[carousel]
autoplay = false
interval = "4s"
`), 0o644))
	t.Setenv("CAROUSEL_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/decks.db", cfg.Database.Path)
	require.False(t, cfg.UI.Resume)
	require.Equal(t, "/tmp/carousel.log", cfg.UI.LogPath)
	require.Equal(t, "#f5c2e7", cfg.UI.ThemeAccent)
	require.NotNil(t, cfg.Carousel.Autoplay)
	require.False(t, *cfg.Carousel.Autoplay)
	require.Equal(t, 4*time.Second, *cfg.Carousel.Interval)
	require.Nil(t, cfg.Carousel.Nav)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAROUSEL_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestEnvOverridesCarouselKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAROUSEL_CONFIG", "")
	t.Setenv("CAROUSEL_CAROUSEL_IDLENESS", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Carousel.Idleness)
	require.Zero(t, *cfg.Carousel.Idleness)
	require.Nil(t, cfg.Carousel.Autoplay)
}

func TestBareDurationsAreMilliseconds(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[carousel]
idleness = 3000
`), 0o644))
	t.Setenv("CAROUSEL_CONFIG", path)
	t.Setenv("CAROUSEL_CAROUSEL_INTERVAL", "2500")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, *cfg.Carousel.Idleness)
	require.Equal(t, 2500*time.Millisecond, *cfg.Carousel.Interval)
}

func TestBadDurationFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAROUSEL_CONFIG", "")
	t.Setenv("CAROUSEL_CAROUSEL_INTERVAL", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "carousel.interval")
}
