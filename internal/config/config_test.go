package config

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgforge/imgforge/internal/converr"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 90, cfg.JPEG.Quality)
	assert.Equal(t, "default", cfg.PNG.Compression)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imgforge.yml")
	require.NoError(t, os.WriteFile(path, []byte("jpeg:\n  quality: 75\nlog:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 75, cfg.JPEG.Quality)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "default", cfg.PNG.Compression, "unset keys keep defaults")
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("IMGFORGE_JPEG_QUALITY", "55")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 55, cfg.JPEG.Quality)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(cfg *Config)
		expectErr bool
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}},
		{name: "quality too low", mutate: func(cfg *Config) { cfg.JPEG.Quality = 0 }, expectErr: true},
		{name: "quality too high", mutate: func(cfg *Config) { cfg.JPEG.Quality = 101 }, expectErr: true},
		{name: "unknown compression", mutate: func(cfg *Config) { cfg.PNG.Compression = "turbo" }, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Log:  Log{Level: "info"},
				JPEG: JPEG{Quality: 90},
				PNG:  PNG{Compression: "default"},
			}
			tc.mutate(cfg)

			err := cfg.Validate()

			if !tc.expectErr {
				assert.NoError(t, err)
				return
			}
			var ce *converr.Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, converr.KindInvalidArgument, ce.Kind)
		})
	}
}

func TestCompressionLevel(t *testing.T) {
	assert.Equal(t, png.NoCompression, PNG{Compression: "none"}.CompressionLevel())
	assert.Equal(t, png.BestSpeed, PNG{Compression: "speed"}.CompressionLevel())
	assert.Equal(t, png.BestCompression, PNG{Compression: "best"}.CompressionLevel())
	assert.Equal(t, png.DefaultCompression, PNG{Compression: "default"}.CompressionLevel())
}
