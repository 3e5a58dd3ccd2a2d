// =============================================================================
// dobby - Configuration Module
// =============================================================================
//
// Loads the run configuration from an optional YAML file and applies
// defaults for anything unset. The CLI layers flag overrides on top, then
// the config is sealed for the run: the pipeline only ever reads it.
//
// CONFIGURATION SOURCES (highest precedence first):
//   1. Command-line flags (--rbd, --year, --local, --skip-validation)
//   2. YAML config file (--config, default dobby.yaml if present)
//   3. Built-in defaults
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for one transformation run.
type Config struct {
	// RBD is the school identifier stamped on every output row.
	RBD int `yaml:"rbd" validate:"gt=0"`

	// Year is the academic year stamped on every output row.
	Year int `yaml:"year" validate:"gte=2000,lte=2100"`

	// Local is the school location label.
	Local string `yaml:"local" validate:"required"`

	// CSVSeparator is the field separator of both input and output files.
	CSVSeparator string `yaml:"csv_separator" validate:"len=1"`

	// ValidateRUT enables check-digit validation of student identifiers.
	ValidateRUT bool `yaml:"validate_rut"`

	// ValidateEmail enables structural validation of email fields.
	ValidateEmail bool `yaml:"validate_email"`
}

// fileConfig mirrors Config with pointer booleans so an explicit `false`
// in the YAML file can be told apart from an absent key.
type fileConfig struct {
	RBD           int    `yaml:"rbd"`
	Year          int    `yaml:"year"`
	Local         string `yaml:"local"`
	CSVSeparator  string `yaml:"csv_separator"`
	ValidateRUT   *bool  `yaml:"validate_rut"`
	ValidateEmail *bool  `yaml:"validate_email"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RBD:           574,
		Year:          2025,
		Local:         "Principal",
		CSVSeparator:  ";",
		ValidateRUT:   true,
		ValidateEmail: true,
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if fc.RBD != 0 {
		cfg.RBD = fc.RBD
	}
	if fc.Year != 0 {
		cfg.Year = fc.Year
	}
	if fc.Local != "" {
		cfg.Local = fc.Local
	}
	if fc.CSVSeparator != "" {
		cfg.CSVSeparator = fc.CSVSeparator
	}
	if fc.ValidateRUT != nil {
		cfg.ValidateRUT = *fc.ValidateRUT
	}
	if fc.ValidateEmail != nil {
		cfg.ValidateEmail = *fc.ValidateEmail
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to the defaults when the
// file does not exist. Used for the implicit dobby.yaml lookup.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}

// Separator returns the CSV separator as a rune.
func (c *Config) Separator() rune {
	return []rune(c.CSVSeparator)[0]
}
