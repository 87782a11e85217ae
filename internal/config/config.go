// Package config loads the server configuration from YAML
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/redis"
)

const maxPort = 65535

// Config is the full server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Chart    ChartConfig    `yaml:"chart"`
	External ExternalConfig `yaml:"external"`
}

// ServerConfig holds listener ports
type ServerConfig struct {
	GRPCPort int `yaml:"grpc_port"`
	HTTPPort int `yaml:"http_port"`
}

// RedisConfig selects plan storage. An empty Addr keeps plans in memory.
type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	PoolSize    int           `yaml:"pool_size"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	UseTLS      bool          `yaml:"use_tls"`
}

// ChartConfig tunes the grid packer
type ChartConfig struct {
	MaxPerRow     int     `yaml:"max_per_row"`
	WidthExponent float64 `yaml:"width_exponent"`
}

// ExternalConfig configures the D&D 5e API monster catalog
type ExternalConfig struct {
	Enabled     bool          `yaml:"enabled"`
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort: 50051,
			HTTPPort: 8080,
		},
		Redis: RedisConfig{
			PoolSize:    10,
			MaxRetries:  3,
			DialTimeout: 5 * time.Second,
		},
		Chart: ChartConfig{
			MaxPerRow:     grid.DefaultMaxPerRow,
			WidthExponent: grid.DefaultWidthExponent,
		},
		External: ExternalConfig{
			BaseURL:     external.DefaultBaseURL,
			HTTPTimeout: 30 * time.Second,
			CacheTTL:    24 * time.Hour,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.InvalidArgumentf("failed to parse config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot start with
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.GRPCPort < 1 || c.Server.GRPCPort > maxPort {
		vb.Fieldf("server.grpc_port", "must be between 1 and %d", maxPort)
	}
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > maxPort {
		vb.Fieldf("server.http_port", "must be between 1 and %d", maxPort)
	}
	if c.Server.GRPCPort == c.Server.HTTPPort {
		vb.Field("server.http_port", "must differ from grpc_port")
	}
	errors.ValidateMin("redis.pool_size", c.Redis.PoolSize, 0, vb)
	errors.ValidateMin("redis.max_retries", c.Redis.MaxRetries, 0, vb)
	if c.Redis.DialTimeout < 0 {
		vb.Field("redis.dial_timeout", "must not be negative")
	}
	errors.ValidateMin("chart.max_per_row", c.Chart.MaxPerRow, 1, vb)
	if c.Chart.WidthExponent <= 0 {
		vb.Field("chart.width_exponent", "must be positive")
	}
	if c.External.HTTPTimeout < 0 {
		vb.Field("external.http_timeout", "must not be negative")
	}
	if c.External.CacheTTL < 0 {
		vb.Field("external.cache_ttl", "must not be negative")
	}

	return vb.Build()
}

// GridConfig returns the packer configuration
func (c *ChartConfig) GridConfig() *grid.Config {
	return &grid.Config{
		MaxPerRow:     c.MaxPerRow,
		WidthExponent: c.WidthExponent,
	}
}

// ClientConfig returns the catalog client configuration
func (c *ExternalConfig) ClientConfig() *external.Config {
	return &external.Config{
		BaseURL:     c.BaseURL,
		HTTPTimeout: c.HTTPTimeout,
		CacheTTL:    c.CacheTTL,
	}
}

// Options returns the redis client options
func (c *RedisConfig) Options() *redis.Options {
	return &redis.Options{
		PoolSize:    c.PoolSize,
		MaxRetries:  c.MaxRetries,
		DialTimeout: c.DialTimeout,
		UseTLS:      c.UseTLS,
	}
}
