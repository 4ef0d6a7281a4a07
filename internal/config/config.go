package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings loaded from a YAML file, with
// environment variable overrides for deployment.
type Config struct {
	Port         string `yaml:"port"`
	DatabasePath string `yaml:"database_path"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Port:         ":8008",
		DatabasePath: "project-allocation.db",
	}
}

// Load reads the config file at path if it exists, then applies environment
// overrides (PORT, DATABASE_PATH). A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if cfg.Port != "" && cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	return cfg, nil
}
