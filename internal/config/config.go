// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"foster-budget/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Rules contains rule-table configuration
	Rules RulesConfig `json:"rules"`

	// Validation contains validation settings
	Validation ValidationConfig `json:"validation"`

	// Report contains batch reporting settings
	Report ReportConfig `json:"report"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Archive contains report archive configuration
	Archive ArchiveConfig `json:"archive"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// RulesConfig selects the statutory rule table
type RulesConfig struct {
	// TablePath is the HCL rule-table file; empty means the built-in table
	TablePath string `json:"table_path,omitempty"`

	// FiscalYear is the expected fiscal year; 0 disables the check
	FiscalYear int `json:"fiscal_year,omitempty"`
}

// ValidationConfig contains validation settings
type ValidationConfig struct {
	// TolerancePercent is the allowed stored-vs-calculated deviation
	TolerancePercent float64 `json:"tolerance_percent"`

	// FetchTimeoutSeconds bounds each external fetch
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds"`
}

// ReportConfig contains batch reporting settings
type ReportConfig struct {
	// Workers bounds concurrent validations in a batch run
	Workers int `json:"workers"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowResults includes per-placement results in rendered reports
	ShowResults bool `json:"show_results"`
}

// ArchiveConfig contains report archive settings
type ArchiveConfig struct {
	// Backend is the archive backend (memory, file)
	Backend string `json:"backend"`

	// Directory is the file-backend directory
	Directory string `json:"directory,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	archiveDir := filepath.Join(homeDir, ".foster-budget", "reports")

	return &Config{
		Version: "1.0",
		Rules:   RulesConfig{},
		Validation: ValidationConfig{
			TolerancePercent:    5.0,
			FetchTimeoutSeconds: 10,
		},
		Report: ReportConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowResults:   true,
		},
		Archive: ArchiveConfig{
			Backend:   "file",
			Directory: archiveDir,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
