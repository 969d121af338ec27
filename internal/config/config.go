// Package config loads and validates prober configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Input      InputConfig   `mapstructure:"input"`
	Probe      ProbeConfig   `mapstructure:"probe"`
	HTTP       HTTPConfig    `mapstructure:"http"`
	Pool       PoolConfig    `mapstructure:"pool"`
	Report     ReportConfig  `mapstructure:"report"`
	Server     ServerConfig  `mapstructure:"server"`
	Logging    LoggingConfig `mapstructure:"logging"`
	Strategies []string      `mapstructure:"strategies"`
}

// InputConfig locates the company list.
type InputConfig struct {
	Path string `mapstructure:"path"`
}

// ProbeConfig governs the engine and its limiters.
type ProbeConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	MaxConcurrent  int `mapstructure:"max_concurrent"`
	MinIntervalMs  int `mapstructure:"min_interval_ms"`
}

// HTTPConfig configures the outbound HTTP client.
type HTTPConfig struct {
	UserAgent string `mapstructure:"user_agent"`
}

// PoolConfig sizes the pooled strategy's worker pool.
type PoolConfig struct {
	Workers int `mapstructure:"workers"`
}

// ReportConfig sets where batch artifacts land.
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// ServerConfig controls the optional observability listener.
type ServerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROBER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "companies.txt")
	v.SetDefault("probe.timeout_seconds", 3)
	v.SetDefault("probe.max_concurrent", 10)
	v.SetDefault("probe.min_interval_ms", 200)
	v.SetDefault("http.user_agent", "reachability-prober/0.1")
	v.SetDefault("pool.workers", 10)
	v.SetDefault("report.output_dir", "reports")
	v.SetDefault("server.enabled", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("logging.development", true)
	v.SetDefault("strategies", []string{"sequential", "pooled", "concurrent"})
}

// Validate enforces required values before any probing begins.
func (c Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path must be set")
	}
	if c.Probe.TimeoutSeconds <= 0 {
		return fmt.Errorf("probe.timeout_seconds must be > 0")
	}
	if c.Probe.MaxConcurrent <= 0 {
		return fmt.Errorf("probe.max_concurrent must be > 0")
	}
	if c.Probe.MinIntervalMs < 0 {
		return fmt.Errorf("probe.min_interval_ms must be >= 0")
	}
	if c.Pool.Workers <= 0 {
		return fmt.Errorf("pool.workers must be > 0")
	}
	if c.Server.Enabled && c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0 when server is enabled")
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("strategies must name at least one strategy")
	}
	for _, name := range c.Strategies {
		switch name {
		case "sequential", "pooled", "concurrent":
		default:
			return fmt.Errorf("unknown strategy %q", name)
		}
	}
	return nil
}

// Timeout converts the per-attempt timeout into a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}

// MinInterval converts the rate limiter spacing into a duration.
func (c Config) MinInterval() time.Duration {
	return time.Duration(c.Probe.MinIntervalMs) * time.Millisecond
}
