// =============================================================================
// PFAS Reporting Toolkit - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration from a
// single YAML file. Every setting has a sensible default, so the tool runs
// without any configuration file at all; a config file only needs to name
// the settings it overrides.
//
// CONFIGURATION AREAS:
//   1. Dictionary  : default PFAS dictionary path
//   2. Columns     : header aliases for the canonical declaration fields
//   3. Output      : report directory and file name pattern
//   4. Server      : listen address and upload limits for 'pfas serve'
//   5. Dashboard   : optional custom regulatory ruleset file
//   6. Log         : level and format for structured logging
//
// The default dictionary path is deliberately an explicit configuration
// value rather than an ambient package default, so every run is
// reproducible from its config alone.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// DictionaryPath is the PFAS dictionary used when the caller does not
	// supply one explicitly (CLI --pfas-dict flag, upload form field).
	// Default: "./pfas_dictionary.txt"
	DictionaryPath string `yaml:"dictionary_path"`

	// Columns maps the canonical declaration fields to their accepted
	// header aliases.
	Columns ColumnAliases `yaml:"columns"`

	// Output controls where and how report files are written.
	Output OutputSettings `yaml:"output"`

	// Server configures the 'pfas serve' HTTP front-end.
	Server ServerSettings `yaml:"server"`

	// Dashboard configures the regulatory dashboard command.
	Dashboard DashboardSettings `yaml:"dashboard"`

	// Log configures structured logging.
	Log LogSettings `yaml:"log"`
}

// ColumnAliases lists the accepted header spellings for each canonical
// field. Headers are compared case-insensitively after trimming, so
// aliases should be listed in lowercase.
//
// CUSTOMIZATION: Add the header spellings your suppliers actually use.
// The first header matching any alias wins; resolution happens once per
// file, before row iteration begins.
type ColumnAliases struct {
	// Supplier aliases. Required: a file whose header matches none of
	// these is rejected as malformed.
	// Default: ["supplier name", "supplier", "company name", "reporting entity name"]
	Supplier []string `yaml:"supplier"`

	// Substance aliases. Required, same rejection rule as Supplier.
	// Default: ["substance name", "substance", "chemical name", "chemical"]
	Substance []string `yaml:"substance"`

	// Quantity aliases. Optional.
	// Default: ["quantity", "qty", "amount"]
	Quantity []string `yaml:"quantity"`

	// Unit aliases. Optional.
	// Default: ["unit", "units", "uom"]
	Unit []string `yaml:"unit"`
}

// OutputSettings controls report file placement and naming.
type OutputSettings struct {
	// Dir is the directory where report files are written when the
	// caller does not give an explicit output path.
	// Default: "./reports"
	Dir string `yaml:"dir"`

	// NamePattern is the report file name pattern.
	// Placeholders:
	//   {uuid}      - a random UUID
	//   {timestamp} - generation time (YYYYMMDD_HHMMSS)
	// Default: "pfas_report_{timestamp}_{uuid}.json"
	NamePattern string `yaml:"name_pattern"`
}

// ServerSettings configures the HTTP front-end.
type ServerSettings struct {
	// Addr is the listen address.
	// Default: ":8080"
	Addr string `yaml:"addr"`

	// MaxUploadBytes caps the size of a single upload request.
	// Default: 10 MiB
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// DashboardSettings configures the regulatory dashboard.
type DashboardSettings struct {
	// RulesFile is an optional YAML ruleset overriding the built-in
	// regulatory rules. Empty means use the built-ins.
	RulesFile string `yaml:"rules_file"`
}

// LogSettings configures structured logging.
type LogSettings struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration with every setting at its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file, applies defaults for any
// unset values, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the configuration file if it exists and falls back
// to the defaults when it does not. Any other error is still reported.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.DictionaryPath == "" {
		cfg.DictionaryPath = "./pfas_dictionary.txt"
	}

	if len(cfg.Columns.Supplier) == 0 {
		cfg.Columns.Supplier = []string{"supplier name", "supplier", "company name", "reporting entity name"}
	}
	if len(cfg.Columns.Substance) == 0 {
		cfg.Columns.Substance = []string{"substance name", "substance", "chemical name", "chemical"}
	}
	if len(cfg.Columns.Quantity) == 0 {
		cfg.Columns.Quantity = []string{"quantity", "qty", "amount"}
	}
	if len(cfg.Columns.Unit) == 0 {
		cfg.Columns.Unit = []string{"unit", "units", "uom"}
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./reports"
	}
	if cfg.Output.NamePattern == "" {
		cfg.Output.NamePattern = "pfas_report_{timestamp}_{uuid}.json"
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 10 << 20
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// validate checks the configuration for values the rest of the pipeline
// cannot work with.
func validate(cfg *Config) error {
	if len(cfg.Columns.Supplier) == 0 {
		return fmt.Errorf("columns.supplier must list at least one alias")
	}
	if len(cfg.Columns.Substance) == 0 {
		return fmt.Errorf("columns.substance must list at least one alias")
	}
	if cfg.Server.MaxUploadBytes < 0 {
		return fmt.Errorf("server.max_upload_bytes must not be negative")
	}
	return nil
}
