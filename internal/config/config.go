// Package config loads the trailsim host configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the host command's configuration.
type Config struct {
	Seed       int64   `env:"TRAILSIM_SEED"`
	Stops      int     `env:"TRAILSIM_STOPS" envDefault:"7"`
	Candidate  string  `env:"TRAILSIM_CANDIDATE" envDefault:"Pat Quinn"`
	OfficeTier int     `env:"TRAILSIM_OFFICE_TIER" envDefault:"1"`
	Approval   float64 `env:"TRAILSIM_APPROVAL" envDefault:"50"`
	Chaos      float64 `env:"TRAILSIM_CHAOS" envDefault:"1"`

	DBPath     string `env:"TRAILSIM_DB" envDefault:"data/trailsim.db"`
	ReportHTML string `env:"TRAILSIM_REPORT_HTML"`
	HTTPAddr   string `env:"TRAILSIM_HTTP_ADDR"` // serve the journal after the run when set

	RandomOrgKey string `env:"TRAILSIM_RANDOM_ORG_KEY"`
	LogLevel     string `env:"TRAILSIM_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Stops <= 0 {
		return fmt.Errorf("TRAILSIM_STOPS must be > 0")
	}
	if c.OfficeTier < 1 || c.OfficeTier > 5 {
		return fmt.Errorf("TRAILSIM_OFFICE_TIER must be within [1,5], got %d", c.OfficeTier)
	}
	if c.Approval < 0 || c.Approval > 100 {
		return fmt.Errorf("TRAILSIM_APPROVAL must be within [0,100], got %v", c.Approval)
	}
	if c.Chaos < 0 {
		return fmt.Errorf("TRAILSIM_CHAOS must be >= 0")
	}
	if strings.TrimSpace(c.Candidate) == "" {
		return fmt.Errorf("TRAILSIM_CANDIDATE must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown TRAILSIM_LOG_LEVEL %q", c.LogLevel)
	}
}
