package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment variables read by txproc.
const (
	EnvLogLevel = "TXPROC_LOG_LEVEL"
	EnvFormat   = "TXPROC_FORMAT"
)

// Config holds the settings read from the environment. Without any variable
// set, txproc prints the CSV report and only logs warnings.
type Config struct {
	LogLevel string `env:"TXPROC_LOG_LEVEL" envDefault:"warn"`
	Format   string `env:"TXPROC_FORMAT" envDefault:"csv"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseFormat(cfg.Format); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", EnvFormat, err)
	}
	return cfg, nil
}
