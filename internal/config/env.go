// Package config loads the command line tool settings from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/giantswarm/microerror"
)

// Config holds the settings of the statetree command.
type Config struct {
	// Chart is the path of the YAML chart definition.
	Chart string `env:"STATETREE_CHART"`
	// Format selects the output: text, json, yaml or dot.
	Format string `env:"STATETREE_FORMAT" envDefault:"text"`
	Debug  bool   `env:"STATETREE_DEBUG"`
	// History overrides the definition and makes entries prefer history.
	History bool `env:"STATETREE_HISTORY"`
	// Events is the buffer size of the event channel; zero disables it.
	Events int `env:"STATETREE_EVENTS" envDefault:"0"`
}

// Formats lists the accepted values of Config.Format.
var Formats = []string{"text", "json", "yaml", "dot"}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return microerror.Maskf(invalidConfigError, "parse env: %s", err)
	}
	return nil
}

// Load parses a Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, microerror.Mask(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, microerror.Mask(err)
	}
	return cfg, nil
}

// Validate checks the format and the event buffer size.
func (c Config) Validate() error {
	known := false
	for _, f := range Formats {
		if c.Format == f {
			known = true
			break
		}
	}
	if !known {
		return microerror.Maskf(invalidConfigError, "unknown format %q", c.Format)
	}
	if c.Events < 0 {
		return microerror.Maskf(invalidConfigError, "event buffer must not be negative, got %d", c.Events)
	}
	return nil
}
