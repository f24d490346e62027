// File: control/config.go
// Author: momentics <momentics@gmail.com>
//
// Environment-driven configuration for the library's default manager.
// Variables are prefixed SILO_, e.g. SILO_PROBE_ATTEMPTS=5.

package control

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config captures tunables of the default allocation manager.
type Config struct {
	// ProbeAttempts bounds probe/commit rounds per multi-node allocation.
	ProbeAttempts int `envconfig:"PROBE_ATTEMPTS" default:"3"`

	// RegistryShards sets the pointer-registry shard count.
	RegistryShards int `envconfig:"REGISTRY_SHARDS" default:"16"`

	// LogLevel selects the logger verbosity: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("silo", &cfg); err != nil {
		return nil, fmt.Errorf("control: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching the
// environment.
func Default() *Config {
	return &Config{
		ProbeAttempts:  3,
		RegistryShards: 16,
		LogLevel:       "info",
	}
}
