// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
// All variables are optional; the defaults run a single-operator instance on
// localhost with a 5 MiB durable storage budget.
type Config struct {
	ListenAddr    string     `env:"STUDIOPANEL_LISTEN_ADDR" envDefault:"127.0.0.1:8080"`
	DBPath        string     `env:"STUDIOPANEL_DB_PATH" envDefault:"studiopanel.db"`
	StorageBudget int64      `env:"STUDIOPANEL_STORAGE_BUDGET" envDefault:"5242880"`
	LogLevel      slog.Level `env:"STUDIOPANEL_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables and returns a validated
// Config. A StorageBudget of zero disables the budget entirely; negative
// values are rejected.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.StorageBudget < 0 {
		return nil, fmt.Errorf("STUDIOPANEL_STORAGE_BUDGET must not be negative, got %d", cfg.StorageBudget)
	}

	return &cfg, nil
}
