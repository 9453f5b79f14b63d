// Package config loads the YAML configuration file and supplies
// defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds everything the player can preset in the config file.
// Flags layer on top of these values.
type Config struct {
	// Catalog selects the sky source: empty for a random sky,
	// "builtin" for the embedded catalog, or a path to a converted
	// catalog file.
	Catalog string `yaml:"catalog"`

	// Stars is the sky size; 0 picks the source's default.
	Stars int `yaml:"stars"`

	ShowDistance  bool `yaml:"show_distance"`
	ShowStarNames bool `yaml:"show_star_names"`
	SinglePane    bool `yaml:"single_pane"`

	// Initial field of view and rotation step.
	FovX float64 `yaml:"fov_x"`
	FovY float64 `yaml:"fov_y"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File receives log output while the TUI owns the terminal. Empty
	// means a default file under the config directory.
	File string `yaml:"file"`
}

// DefaultConfig returns the built-in defaults: a random dozen-star
// sky, the reference field of view, names on.
func DefaultConfig() Config {
	return Config{
		Catalog:       "",
		Stars:         0,
		ShowStarNames: true,
		FovX:          2.0,
		FovY:          1.0,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "ls-skymatch", "config.yaml")
}

// DefaultLogPath returns the log file location used while the TUI is
// running, beside the config file.
func DefaultLogPath() string {
	return filepath.Join(filepath.Dir(DefaultPath()), "ls-skymatch.log")
}

// Load reads the config file at path. A missing file is not an error:
// the defaults come back. Unreadable or invalid YAML is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
