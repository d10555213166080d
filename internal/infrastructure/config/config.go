// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package config loads the service configuration from an optional YAML file
// and the environment, with the environment taking precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the service configuration
type AppConfig struct {
	// NATSURL is the NATS server URL
	NATSURL string `env:"NATS_URL" yaml:"nats_url"`

	// NATSTimeout is the request timeout for collaborator calls
	NATSTimeout time.Duration `env:"NATS_TIMEOUT" yaml:"nats_timeout"`

	// NATSMaxReconnect is the maximum number of reconnect attempts
	NATSMaxReconnect int `env:"NATS_MAX_RECONNECT" yaml:"nats_max_reconnect"`

	// NATSReconnectWait is the wait time between reconnect attempts
	NATSReconnectWait time.Duration `env:"NATS_RECONNECT_WAIT" yaml:"nats_reconnect_wait"`

	// RepositorySource selects the collaborator implementation (nats or mock)
	RepositorySource string `env:"REPOSITORY_SOURCE" yaml:"repository_source"`

	// ExcludeUserProvider is the initial comma-separated list of user
	// directory provider tags excluded from contributor listings; "*"
	// excludes every directory source. Runtime changes arrive through the
	// settings watcher.
	ExcludeUserProvider string `env:"EXCLUDE_USER_PROVIDER" yaml:"exclude_user_provider"`
}

// defaults returns the built-in configuration values.
func defaults() AppConfig {
	return AppConfig{
		NATSURL:           "nats://localhost:4222",
		NATSTimeout:       10 * time.Second,
		NATSMaxReconnect:  3,
		NATSReconnectWait: 2 * time.Second,
		RepositorySource:  "nats",
	}
}

// Load builds the configuration: built-in defaults, overlaid by the YAML
// file at path when non-empty, overlaid by environment variables.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
