// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"CHATWEB_API_URL", "CHATWEB_LOG_LEVEL", "CHATWEB_TIMEOUT", "CHATWEB_KEYRING_BACKEND", "CHATWEB_KEYRING_PASSPHRASE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return filepath.Join(dir, "chatweb", "config.json")
}

func TestLoad_defaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 15*time.Second, c.Timeout.Std())
}

func TestSaveLoad(t *testing.T) {
	p := isolate(t)

	c := Default()
	require.NoError(t, c.Set("api_base_url", "https://chat.example.com/api/"))
	require.NoError(t, c.Set("timeout", "30s"))
	c.KeyringPassphrase = "never-on-disk"
	require.NoError(t, Save(c))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "never-on-disk")
	assert.Contains(t, string(b), `"timeout": "30s"`)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.com/api", got.APIBaseURL)
	assert.Equal(t, 30*time.Second, got.Timeout.Std())
	assert.Empty(t, got.KeyringPassphrase)
}

func TestLoad_envOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(Default()))

	t.Setenv("CHATWEB_API_URL", "https://override.example.com")
	t.Setenv("CHATWEB_TIMEOUT", "2s")
	t.Setenv("CHATWEB_KEYRING_PASSPHRASE", "pw")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", c.APIBaseURL)
	assert.Equal(t, 2*time.Second, c.Timeout.Std())
	assert.Equal(t, "pw", c.KeyringPassphrase)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoad_dotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("CHATWEB_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CHATWEB_LOG_LEVEL") })

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoad_invalidFile(t *testing.T) {
	p := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o700))
	require.NoError(t, os.WriteFile(p, []byte(`{"timeout": 5}`), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"api_base_url", "http://localhost:3002/api", false},
		{"api_base_url", "localhost:3002", true},
		{"log_level", "debug", false},
		{"log_level", "loud", true},
		{"timeout", "1m", false},
		{"timeout", "soon", true},
		{"timeout", "-1s", true},
		{"keyring_backend", "file", false},
		{"color", "red", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			c := Default()
			err := c.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
