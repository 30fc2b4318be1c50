// Package config loads the engine's YAML configuration file and
// applies environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting.
type Config struct {
	// Gemini credentials and model selection.
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`

	// Path to the SQLite database file.
	Database string `yaml:"database"`

	// Per-request upstream timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults: the flash model, a
// database under the user config directory, and a 30 second timeout.
func DefaultConfig() *Config {
	return &Config{
		Model:          "gemini-2.5-flash",
		Database:       defaultDatabasePath(),
		TimeoutSeconds: 30,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tpe.yaml"
	}
	return filepath.Join(dir, "tpe", "config.yaml")
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tpe.db"
	}
	return filepath.Join(dir, "tpe", "tpe.db")
}

// Load reads the config at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("TPE_API_KEY"); key != "" {
		c.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && c.APIKey == "" {
		c.APIKey = key
	}
	if model := os.Getenv("TPE_MODEL"); model != "" {
		c.Model = model
	}
	if db := os.Getenv("TPE_DATABASE"); db != "" {
		c.Database = db
	}
	if timeout := os.Getenv("TPE_TIMEOUT_SECONDS"); timeout != "" {
		if n, err := strconv.Atoi(timeout); err == nil && n > 0 {
			c.TimeoutSeconds = n
		}
	}
}
