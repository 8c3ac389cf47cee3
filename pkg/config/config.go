// Package config handles loading and managing veritext configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the veritext service.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Limits LimitsConfig `yaml:"limits"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port          string `yaml:"port"`
	APIKey        string `yaml:"api_key"`        // empty disables auth
	AllowedOrigin string `yaml:"allowed_origin"` // empty allows all origins
}

// LimitsConfig bounds what the service accepts per request.
type LimitsConfig struct {
	MaxBodyBytes int64 `yaml:"max_body_bytes"` // 0 disables the cap
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          "8000",
			AllowedOrigin: "*",
		},
		Limits: LimitsConfig{
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Load reads a config file from the given path.
// If the path is empty or the file does not exist, it returns the default
// config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
