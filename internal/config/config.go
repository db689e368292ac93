// Package config loads process configuration from the environment, with
// optional .env autoload for local development.
package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Address       string        `env:"ADDRESS" envDefault:":8080" validate:"hostname_port"`
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev-session-secret-change-me-in-prod" validate:"min=32"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	DatabaseDSN   string        `env:"DATABASE_DSN"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsToken   string `env:"METRICS_TOKEN"`
}

func Load() (Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
