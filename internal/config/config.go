// Package config loads converter settings from an optional YAML file,
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"image/png"
	"strings"

	"github.com/spf13/viper"

	"github.com/imgforge/imgforge/internal/converr"
)

// Config holds the tunable settings of the converter.
type Config struct {
	Log  Log  `mapstructure:"log"`
	JPEG JPEG `mapstructure:"jpeg"`
	PNG  PNG  `mapstructure:"png"`
}

// Log holds logging configuration.
type Log struct {
	Level string `mapstructure:"level"` // zerolog level name
}

// JPEG holds JPEG encoder configuration.
type JPEG struct {
	Quality int `mapstructure:"quality"` // encode quality, 1-100
}

// PNG holds PNG encoder configuration.
type PNG struct {
	Compression string `mapstructure:"compression"` // default / none / speed / best
}

// Load reads configuration from the given file path, or, when path is
// empty, from an optional imgforge.yml in the working directory or
// $HOME/.config/imgforge. Environment variables prefixed with IMGFORGE_
// override file values. A missing default config file is not an error;
// the defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("jpeg.quality", 90)
	v.SetDefault("png.compression", "default")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("imgforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/imgforge")
	}

	v.SetEnvPrefix("IMGFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded settings for out-of-range values.
func (c *Config) Validate() error {
	if c.JPEG.Quality < 1 || c.JPEG.Quality > 100 {
		return converr.InvalidArgument(fmt.Sprintf("jpeg quality must be in range 1-100, got %d", c.JPEG.Quality))
	}
	switch c.PNG.Compression {
	case "default", "none", "speed", "best":
	default:
		return converr.InvalidArgument("png compression must be one of: default, none, speed, best")
	}
	return nil
}

// CompressionLevel maps the configured PNG compression name to the
// encoder's level.
func (p PNG) CompressionLevel() png.CompressionLevel {
	switch p.Compression {
	case "none":
		return png.NoCompression
	case "speed":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}
