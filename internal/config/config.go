// Package config handles loading and saving user configuration for jianjin.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds user settings.
type Config struct {
	LogLevel  string `yaml:"log_level"`            // debug, info, warn, error
	LogFormat string `yaml:"log_format"`           // console or json
	Template  string `yaml:"template,omitempty"`   // Path to a custom render template
	Words     string `yaml:"words,omitempty"`      // Default word list (JSON Lines)
	Field     string `yaml:"anki_field,omitempty"` // Default Anki field holding pinyin
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "console",
		Field:     "Pinyin",
	}
}

// Load reads config.yaml from dir. Missing keys keep their defaults and a
// missing file yields Default().
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Dir returns the default configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jianjin"), nil
}

// EnsureDir creates dir and writes a default config file if none exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Save(path, Default())
	}

	return nil
}
