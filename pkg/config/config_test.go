package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := LoadDefaults()

	assert.Empty(t, cfg.Store.Dir)
	assert.Equal(t, -1, cfg.Run.AllocBudget)
	assert.Equal(t, 0.1, cfg.Filter.Threshold)
	assert.Equal(t, int64(1000), cfg.Filter.Particles)
	assert.Equal(t, 0.85, cfg.Filter.Damping)
	assert.Equal(t, 100, cfg.Filter.MaxIterations)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BIFROST_STORE_DIR", "/var/lib/bifrost")
	t.Setenv("BIFROST_ALLOC_BUDGET", "32")
	t.Setenv("BIFROST_FILTER_THRESHOLD", "0.25")
	t.Setenv("BIFROST_FILTER_PARTICLES", "500")
	t.Setenv("BIFROST_LOG_LEVEL", "DEBUG")
	t.Setenv("BIFROST_LOG_FORMAT", "json")

	cfg := LoadFromEnv()

	assert.Equal(t, "/var/lib/bifrost", cfg.Store.Dir)
	assert.Equal(t, 32, cfg.Run.AllocBudget)
	assert.Equal(t, 0.25, cfg.Filter.Threshold)
	assert.Equal(t, int64(500), cfg.Filter.Particles)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bifrost.yaml")
	data := []byte(`
store:
  dir: ./fixtures.db
filter:
  threshold: 0.2
  particles: 200
logging:
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "./fixtures.db", cfg.Store.Dir)
	assert.Equal(t, 0.2, cfg.Filter.Threshold)
	assert.Equal(t, int64(200), cfg.Filter.Particles)
	// Untouched sections keep defaults.
	assert.Equal(t, 0.85, cfg.Filter.Damping)
	assert.Equal(t, "json", cfg.Logging.Format)

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("BIFROST_FILTER_THRESHOLD", "0.5")
		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 0.5, cfg.Filter.Threshold)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("empty path skips file", func(t *testing.T) {
		cfg, err := LoadFromFile("")
		require.NoError(t, err)
		assert.Equal(t, 0.1, cfg.Filter.Threshold)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold above one", func(c *Config) { c.Filter.Threshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Filter.Threshold = -0.1 }},
		{"zero particles", func(c *Config) { c.Filter.Particles = 0 }},
		{"damping at one", func(c *Config) { c.Filter.Damping = 1 }},
		{"zero iterations", func(c *Config) { c.Filter.MaxIterations = 0 }},
		{"bad alloc budget", func(c *Config) { c.Run.AllocBudget = -2 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadDefaults()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
