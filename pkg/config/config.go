// Package config handles Bifrost configuration via YAML files and
// environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags (--fixture, --alloc-budget, etc.)
//  2. Environment variables (BIFROST_*)
//  3. Config file (bifrost.yaml)
//  4. Built-in defaults
//
// Environment variables (all use the BIFROST_ prefix):
//
// Store:
//   - BIFROST_STORE_DIR="./fixtures.db" (empty keeps the store in memory)
//
// Run:
//   - BIFROST_ALLOC_BUDGET=-1 (simulated allocations before faults, -1 unlimited)
//
// Filter defaults:
//   - BIFROST_FILTER_THRESHOLD=0.1
//   - BIFROST_FILTER_PARTICLES=1000
//   - BIFROST_FILTER_DAMPING=0.85
//   - BIFROST_FILTER_MAX_ITERATIONS=100
//
// Logging:
//   - BIFROST_LOG_LEVEL="info"
//   - BIFROST_LOG_FORMAT="console" or "json"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all Bifrost configuration.
type Config struct {
	// Store settings for the fixture database
	Store StoreConfig `yaml:"store"`

	// Run settings for procedure invocations
	Run RunConfig `yaml:"run"`

	// Filter holds particle filtering defaults
	Filter FilterConfig `yaml:"filter"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig holds fixture store settings.
type StoreConfig struct {
	// Dir is the badger directory for imported fixtures. Empty keeps the
	// store in memory.
	Dir string `yaml:"dir"`
}

// RunConfig holds settings for running procedures against the simulator.
type RunConfig struct {
	// AllocBudget is the number of simulated allocations before the host
	// starts reporting failures. -1 means unlimited.
	AllocBudget int `yaml:"alloc_budget"`
}

// FilterConfig holds particle filtering defaults used when the caller
// omits the optional arguments.
type FilterConfig struct {
	Threshold     float64 `yaml:"threshold"`
	Particles     int64   `yaml:"particles"`
	Damping       float64 `yaml:"damping"`
	MaxIterations int     `yaml:"max_iterations"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// LoadDefaults returns the built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		Store: StoreConfig{Dir: ""},
		Run:   RunConfig{AllocBudget: -1},
		Filter: FilterConfig{
			Threshold:     0.1,
			Particles:     1000,
			Damping:       0.85,
			MaxIterations: 100,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// LoadFromEnv loads configuration from defaults plus environment overrides.
func LoadFromEnv() *Config {
	cfg := LoadDefaults()
	applyEnvVars(cfg)
	return cfg
}

// LoadFromFile loads configuration with full precedence: defaults, then the
// YAML file, then environment overrides. An empty path skips the file step.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	applyEnvVars(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches standard locations for bifrost.yaml. Returns the
// first match, or empty string when none exists.
func FindConfigFile() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".bifrost", "config.yaml"))
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "bifrost.yaml"))
	}
	candidates = append(candidates, "bifrost.yaml")
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "bifrost", "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Filter.Threshold < 0 || c.Filter.Threshold > 1 {
		return fmt.Errorf("filter threshold %g out of range [0, 1]", c.Filter.Threshold)
	}
	if c.Filter.Particles <= 0 {
		return fmt.Errorf("filter particles %d must be positive", c.Filter.Particles)
	}
	if c.Filter.Damping <= 0 || c.Filter.Damping >= 1 {
		return fmt.Errorf("filter damping %g out of range (0, 1)", c.Filter.Damping)
	}
	if c.Filter.MaxIterations <= 0 {
		return fmt.Errorf("filter max iterations %d must be positive", c.Filter.MaxIterations)
	}
	if c.Run.AllocBudget < -1 {
		return fmt.Errorf("alloc budget %d must be -1 or non-negative", c.Run.AllocBudget)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

func applyEnvVars(c *Config) {
	c.Store.Dir = getEnv("BIFROST_STORE_DIR", c.Store.Dir)
	c.Run.AllocBudget = getEnvInt("BIFROST_ALLOC_BUDGET", c.Run.AllocBudget)
	c.Filter.Threshold = getEnvFloat("BIFROST_FILTER_THRESHOLD", c.Filter.Threshold)
	c.Filter.Particles = int64(getEnvInt("BIFROST_FILTER_PARTICLES", int(c.Filter.Particles)))
	c.Filter.Damping = getEnvFloat("BIFROST_FILTER_DAMPING", c.Filter.Damping)
	c.Filter.MaxIterations = getEnvInt("BIFROST_FILTER_MAX_ITERATIONS", c.Filter.MaxIterations)
	c.Logging.Level = strings.ToLower(getEnv("BIFROST_LOG_LEVEL", c.Logging.Level))
	c.Logging.Format = strings.ToLower(getEnv("BIFROST_LOG_FORMAT", c.Logging.Format))
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
