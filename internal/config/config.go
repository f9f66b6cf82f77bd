package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/carousel/internal/deck"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	// Carousel holds only the carousel options the user actually set, so
	// defaults that depend on the deck (nav) still apply.
	Carousel deck.Options `mapstructure:"-"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Resume      bool
	LogPath     string `mapstructure:"log_path"`
	ThemeAccent string `mapstructure:"theme_accent"`
}

// Load reads configuration from file and env. Env var overrides use prefix CAROUSEL_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "carousel", "carousel.db"))
	v.SetDefault("ui.resume", true)
	v.SetDefault("ui.log_path", filepath.Join(home, ".local", "state", "carousel", "carousel.log"))
	v.SetDefault("ui.theme_accent", "#89b4fa")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CAROUSEL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "carousel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CAROUSEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	overrides, err := carouselOverrides(v)
	if err != nil {
		return Config{}, fmt.Errorf("carousel config: %w", err)
	}
	c.Carousel = overrides
	return c, nil
}

func carouselOverrides(v *viper.Viper) (deck.Options, error) {
	var o deck.Options
	boolKey := func(key string) *bool {
		if !v.IsSet(key) {
			return nil
		}
		b := v.GetBool(key)
		return &b
	}
	o.Nav = boolKey("carousel.nav")
	o.Arrows = boolKey("carousel.arrows")
	o.FullScreen = boolKey("carousel.fullscreen")
	o.Autoplay = boolKey("carousel.autoplay")
	var err error
	if o.Interval, err = durationKey(v, "carousel.interval"); err != nil {
		return o, err
	}
	if o.Idleness, err = durationKey(v, "carousel.idleness"); err != nil {
		return o, err
	}
	return o, nil
}

// durationKey reads key as a duration. Bare numbers are milliseconds,
// anything else needs a unit ("3s", "750ms").
func durationKey(v *viper.Viper, key string) (*time.Duration, error) {
	if !v.IsSet(key) {
		return nil, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if ms, err := strconv.ParseFloat(raw, 64); err == nil {
		d := time.Duration(ms * float64(time.Millisecond))
		return &d, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &d, nil
}
