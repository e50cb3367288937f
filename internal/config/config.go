// Package config loads the vastcheck tool configuration from layered
// sources: built-in defaults, a global config file, an optional local
// config file, and environment variables. Config values are defaults for
// validation runs; command-line flags always win over them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the vastcheck CLI tool configuration.
type Configuration struct {
	ImplementationType string `koanf:"implementation_type" validate:"omitempty,oneof=web app ctv audio doh"`
	Programmatic       bool   `koanf:"programmatic"`
	Decode             bool   `koanf:"decode"`
	JSON               bool   `koanf:"json"`
	Quiet              bool   `koanf:"quiet"`
	Color              string `koanf:"color" validate:"omitempty,oneof=auto always never"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".vastcheck", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("VASTCHECK_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: VASTCHECK_IMPLEMENTATION_TYPE -> implementation_type
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "VASTCHECK_"))
}
