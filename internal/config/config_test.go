package config

import (
	"os"
	"path/filepath"
	"testing"

	"image-distorter/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "distort.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, codec.NameOpenCV, cfg.Codec)
	assert.Equal(t, 0.5, cfg.Probability)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	path := writeConfig(t, `
codec = "imaging"
seed = 1234
probability = 0.25

[log]
level = "warn"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "imaging", cfg.Codec)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Probability)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load(writeConfig(t, `seed = 7`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.5, cfg.Probability)
	assert.Equal(t, codec.NameOpenCV, cfg.Codec)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "codec = \"opencv\"\nthreads = 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threads")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnv(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	cfg := Default()
	cfg.ApplyEnv(env(map[string]string{"DEBUG": "1"}))
	assert.Equal(t, "debug", cfg.Log.Level)

	cfg = Default()
	cfg.ApplyEnv(env(map[string]string{"DEBUG": "1", "LOG_LEVEL": "error"}))
	assert.Equal(t, "error", cfg.Log.Level)

	cfg = Default()
	cfg.ApplyEnv(env(nil))
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unknown codec", func(c *Config) { c.Codec = "magick" }, "unknown codec"},
		{"probability too high", func(c *Config) { c.Probability = 1.5 }, "probability"},
		{"negative probability", func(c *Config) { c.Probability = -0.1 }, "probability"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
