// Package config reads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application. Everything has a
// sensible desktop default; the environment (SHIPLEDGER_* variables) and CLI
// flags override it.
type Config struct {
	DBPath    string `envconfig:"DB_PATH" default:"shipments.db"`
	LogFile   string `envconfig:"LOG_FILE" default:"shipment_manager.log"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads configuration from SHIPLEDGER_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shipledger", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
