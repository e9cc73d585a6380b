// Package config loads chronic's defaults from the environment and an
// optional configuration file.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jparise/chronic/internal/timeparse"
)

// Config holds defaults for command-line flags. Flags given explicitly on
// the command line take precedence.
type Config struct {
	Format      string `yaml:"format" json:"format" toml:"format" env:"CHRONIC_FORMAT" env-default:"default" env-description:"output style: micro, short, default, long, chrono"`
	DefaultUnit string `yaml:"default-unit" json:"default-unit" toml:"default-unit" env:"CHRONIC_DEFAULT_UNIT" env-default:"seconds" env-description:"unit for bare numbers"`
	Strict      bool   `yaml:"strict" json:"strict" toml:"strict" env:"CHRONIC_STRICT" env-description:"reject unknown words"`
	HideSeconds bool   `yaml:"hide-seconds" json:"hide-seconds" toml:"hide-seconds" env:"CHRONIC_HIDE_SECONDS" env-description:"omit seconds from output"`
	Jobs        int    `yaml:"jobs" json:"jobs" toml:"jobs" env:"CHRONIC_JOBS" env-default:"10" env-description:"files converted concurrently"`
	Color       string `yaml:"color" json:"color" toml:"color" env:"CHRONIC_COLOR" env-default:"auto" env-description:"colorize output: auto, always, never"`
}

// Load reads the configuration. When path is non-empty the file is read
// first and environment variables override it.
func Load(path string) (Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("error reading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is one the command line would accept.
func (c Config) Validate() error {
	if _, err := timeparse.ParseStyle(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	if _, err := timeparse.ParseUnit(c.DefaultUnit); err != nil {
		return fmt.Errorf("invalid default unit: %w", err)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be one of \"auto\", \"always\", or \"never\"", c.Color)
	}
	if c.Jobs < 1 || c.Jobs > 100 {
		return fmt.Errorf("jobs must be between 1 and 100, got %d", c.Jobs)
	}
	return nil
}

// Usage describes the environment variables Load reads.
func Usage() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}
