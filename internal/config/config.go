// Package config loads punchlist configuration from the user config
// file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Storage backend names
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config represents the full punchlist configuration. Environment
// variables override values from the config file.
type Config struct {
	// DataDir holds the task blob, the theme preference, and the log file.
	DataDir string `json:"dataDir" env:"PUNCHLIST_DATA_DIR"`
	// Backend selects the persistence backend: "file" or "sqlite".
	Backend string `json:"backend" env:"PUNCHLIST_BACKEND"`
	// Theme forces "dark" or "light"; empty follows the stored
	// preference, falling back to the ambient terminal background.
	Theme string `json:"theme" env:"PUNCHLIST_THEME"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return &Config{
		DataDir: filepath.Join(configDir, "punchlist"),
		Backend: BackendFile,
	}
}

// LoadConfig loads configuration with priority:
// 1. Environment variables
// 2. config.json in the given directory
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(dir, "config.json")
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration as JSON to dir/config.json.
func SaveConfig(cfg *Config, dir string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.Backend == "" {
		cfg.Backend = defaults.Backend
	}
	return cfg
}

// Validate rejects values the rest of the application cannot honor.
func (c *Config) Validate() error {
	if c.Backend != BackendFile && c.Backend != BackendSQLite {
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendFile, BackendSQLite)
	}
	if c.Theme != "" && c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("unknown theme %q (want \"dark\" or \"light\")", c.Theme)
	}
	return nil
}

// Load is a convenience function that loads config from the default
// user config directory.
func Load() (*Config, error) {
	return LoadConfig(DefaultConfig().DataDir)
}
