// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.Equal(t, 10*time.Second, cfg.NATSTimeout)
	assert.Equal(t, 3, cfg.NATSMaxReconnect)
	assert.Equal(t, 2*time.Second, cfg.NATSReconnectWait)
	assert.Equal(t, "nats", cfg.RepositorySource)
	assert.Empty(t, cfg.ExcludeUserProvider)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
nats_url: nats://queue.internal:4222
nats_timeout: 5s
exclude_user_provider: "ldap,crowd"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nats://queue.internal:4222", cfg.NATSURL)
	assert.Equal(t, 5*time.Second, cfg.NATSTimeout)
	assert.Equal(t, "ldap,crowd", cfg.ExcludeUserProvider)
	// Untouched values keep their defaults
	assert.Equal(t, 3, cfg.NATSMaxReconnect)
}

func TestLoadEnvironmentOverridesYAML(t *testing.T) {
	path := writeConfigFile(t, `
nats_url: nats://queue.internal:4222
repository_source: nats
`)

	t.Setenv("NATS_URL", "nats://env.internal:4222")
	t.Setenv("REPOSITORY_SOURCE", "mock")
	t.Setenv("EXCLUDE_USER_PROVIDER", "*")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nats://env.internal:4222", cfg.NATSURL)
	assert.Equal(t, "mock", cfg.RepositorySource)
	assert.Equal(t, "*", cfg.ExcludeUserProvider)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "nats_url: [broken")
	_, err := Load(path)
	assert.Error(t, err)
}
