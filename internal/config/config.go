// Package config loads expiryd settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/expiry"
)

// CacheConfig holds cache behavior settings
type CacheConfig struct {
	DefaultTTL    time.Duration `yaml:"default_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// MetricsConfig holds Prometheus exporter settings
type MetricsConfig struct {
	Addr      string `yaml:"addr"`
	Namespace string `yaml:"namespace"`
}

// Config is the central configuration struct
type Config struct {
	Cache    CacheConfig   `yaml:"cache"`
	Metrics  MetricsConfig `yaml:"metrics"`
	LogLevel string        `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			DefaultTTL: expiry.DefaultTTL,
		},
		Metrics: MetricsConfig{
			Addr:      ":9108",
			Namespace: "expiry",
		},
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnv applies environment variable overrides to the config
func LoadFromEnv(cfg *Config) error {
	if v := os.Getenv("EXPIRY_DEFAULT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("EXPIRY_DEFAULT_TTL: %w", err)
		}
		cfg.Cache.DefaultTTL = d
	}
	if v := os.Getenv("EXPIRY_SWEEP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("EXPIRY_SWEEP_INTERVAL: %w", err)
		}
		cfg.Cache.SweepInterval = d
	}
	if v := os.Getenv("EXPIRY_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("EXPIRY_METRICS_NAMESPACE"); v != "" {
		cfg.Metrics.Namespace = v
	}
	if v := os.Getenv("EXPIRY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Load reads path when it is non-empty, then applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the cache cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Cache.DefaultTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache.default_ttl must be positive, got %s", c.Cache.DefaultTTL))
	}
	if c.Cache.SweepInterval < 0 {
		errs = append(errs, fmt.Errorf("cache.sweep_interval must not be negative, got %s", c.Cache.SweepInterval))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CacheOptions translates the cache section into expiry options.
func (c *Config) CacheOptions(logger *slog.Logger) []expiry.Option {
	opts := []expiry.Option{
		expiry.WithDefaultTTL(c.Cache.DefaultTTL),
		expiry.WithLogger(logger),
	}
	if c.Cache.SweepInterval > 0 {
		opts = append(opts, expiry.WithSweepInterval(c.Cache.SweepInterval))
	}
	return opts
}

// ParseLevel maps "debug", "info", "warn" or "error" onto a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug", "DEBUG":
		return slog.LevelDebug, nil
	case "info", "INFO", "":
		return slog.LevelInfo, nil
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn, nil
	case "error", "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
