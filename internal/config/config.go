package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string        `env:"APP_ENV" envDefault:"development"`
	DBDriver              string        `env:"DB_DRIVER" envDefault:"sqlite3"`
	DBPath                string        `env:"DB_PATH" envDefault:"./data/feedback.db"`
	DBMigrate             bool          `env:"DB_MIGRATE" envDefault:"true"`
	RedisAddr             string        `env:"REDIS_ADDR"`
	RedisPassword         string        `env:"REDIS_PASSWORD"`
	RedisDB               int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL              time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	CacheRefreshAhead     bool          `env:"CACHE_REFRESH_AHEAD" envDefault:"false"`
	GRPCPort              int           `env:"GRPC_PORT" envDefault:"50051"`
	GRPCReflectionEnabled bool          `env:"GRPC_REFLECTION_ENABLED" envDefault:"false"`
	HTTPPort              int           `env:"HTTP_PORT" envDefault:"8080"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid GRPC_PORT %d", c.GRPCPort)
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("invalid CACHE_TTL %s", c.CacheTTL)
	}
	return nil
}

// CacheEnabled reports whether a redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
