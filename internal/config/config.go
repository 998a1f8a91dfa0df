// Package config loads calculator settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nickandperla.net/reckon/internal/calc"
)

// Config holds the tunable calculator settings. Precision is the number
// of decimal places results are rounded to internally; DisplayPrecision
// is how many places the command surface shows.
type Config struct {
	Precision          int    `yaml:"precision"`
	DisplayPrecision   int    `yaml:"display_precision"`
	HistorySize        int    `yaml:"history_size"`
	AngleMode          string `yaml:"angle_mode"`
	ThousandsSeparator bool   `yaml:"thousands_separator"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Precision:          calc.DefaultPrecision,
		DisplayPrecision:   6,
		HistorySize:        calc.DefaultHistorySize,
		AngleMode:          calc.Radians.String(),
		ThousandsSeparator: true,
	}
}

// Load reads a YAML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the calculator cannot run with.
func (c Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision must be non-negative, got %d", c.Precision)
	}
	if c.DisplayPrecision < 0 {
		return fmt.Errorf("display_precision must be non-negative, got %d", c.DisplayPrecision)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("history_size must be at least 1, got %d", c.HistorySize)
	}
	if _, ok := calc.ParseAngleMode(c.AngleMode); !ok {
		return fmt.Errorf("angle_mode must be \"radians\" or \"degrees\", got %q", c.AngleMode)
	}
	return nil
}
