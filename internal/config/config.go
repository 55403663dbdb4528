package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	appName    = "dnshell"
	configFile = "config.json"
)

const (
	// DefaultDNS is used when the user submits a blank DNS address.
	DefaultDNS = "8.8.8.8"

	// DefaultInterface is the fallback Windows adapter name when the user
	// submits a blank interface and enumeration found nothing better. It is
	// the localized name of the wired adapter on Chinese-language Windows;
	// the prompt flow offers the enumerated adapters instead whenever it can.
	DefaultInterface = "以太网"
)

// Config holds the persisted tool configuration.
type Config struct {
	DefaultDNS       string `json:"defaultDns"`       // pre-filled DNS address
	DefaultInterface string `json:"defaultInterface"` // pre-filled Windows adapter name
	LastDNS          string `json:"lastDns,omitempty"`
	LastInterface    string `json:"lastInterface,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultDNS:       DefaultDNS,
		DefaultInterface: DefaultInterface,
	}
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the configuration from disk, falling back to defaults for a
// missing file or missing fields.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultDNS == "" {
		cfg.DefaultDNS = DefaultDNS
	}
	if cfg.DefaultInterface == "" {
		cfg.DefaultInterface = DefaultInterface
	}

	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
