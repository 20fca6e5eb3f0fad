// config.go - configuration for the Mint-Asset smoke-proof demo
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config controls the demo driver only: how many statements to round-trip
// and where to cache the Groth16 keys. It has no bearing on the Mint-Asset
// statement itself, which takes no configuration.
type Config struct {
	Iterations       int    `json:"iterations"`
	ProvingKeyPath   string `json:"proving_key_path"`
	VerifyingKeyPath string `json:"verifying_key_path"`
	LogLevel         string `json:"log_level"`
}

// DefaultConfig returns the demo's default configuration.
func DefaultConfig() *Config {
	return &Config{
		Iterations:       1,
		ProvingKeyPath:   "mintasset.pk",
		VerifyingKeyPath: "mintasset.vk",
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from file, or writes and returns the
// default configuration if the file does not yet exist.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		var cfg Config
		if err := json.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
		return &cfg, nil
	}

	cfg := DefaultConfig()
	if err := SaveConfig(cfg, path); err != nil {
		return nil, fmt.Errorf("save default config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes configuration to path, creating its directory if needed.
func SaveConfig(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive")
	}
	if c.ProvingKeyPath == "" || c.VerifyingKeyPath == "" {
		return fmt.Errorf("proving_key_path and verifying_key_path must be set")
	}
	return nil
}
