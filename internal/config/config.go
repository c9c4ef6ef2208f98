// Package config loads server configuration from environment
// variables. Every knob is optional except the database DSN, which the
// server (but not the in-memory CLI mode) refuses to start without.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings for the fiefforge server.
type Config struct {
	Addr          string `env:"FIEFFORGE_ADDR" envDefault:":8080"`
	DBDSN         string `env:"FIEFFORGE_DB_DSN"`
	AdminToken    string `env:"FIEFFORGE_ADMIN_TOKEN"`
	MigrationsDir string `env:"FIEFFORGE_MIGRATIONS_DIR"`
	RandSeed      int64  `env:"FIEFFORGE_RAND_SEED"`
	LogLevel      string `env:"FIEFFORGE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
