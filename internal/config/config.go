// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept in the file; CHATWEB_* environment
// variables (optionally from a .env file) override it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"chatweb/cli/internal/xdg"
)

// Config holds CLI settings.
type Config struct {
	APIBaseURL     string   `json:"api_base_url" env:"CHATWEB_API_URL"`
	LogLevel       string   `json:"log_level" env:"CHATWEB_LOG_LEVEL"`
	Timeout        Duration `json:"timeout" env:"CHATWEB_TIMEOUT"`
	KeyringBackend string   `json:"keyring_backend" env:"CHATWEB_KEYRING_BACKEND"`

	// KeyringPassphrase unlocks the file keyring. It is never written to disk.
	KeyringPassphrase string `json:"-" env:"CHATWEB_KEYRING_PASSPHRASE"`
}

// Duration is a time.Duration that reads and writes as "15s" in JSON and env vars.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timeout must be a duration string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIBaseURL: "http://localhost:3002/api",
		LogLevel:   "warn",
		Timeout:    Duration(15 * time.Second),
	}
}

// Keys lists the settings accepted by Set.
var Keys = []string{"api_base_url", "log_level", "timeout", "keyring_backend"}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file (missing file means defaults), then applies
// .env and environment overrides.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse environment: %w", err)
	}
	return c, c.Validate()
}

// LoadFile reads only the config file, without environment overrides.
func LoadFile() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Set updates a single setting by its JSON key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_base_url":
		c.APIBaseURL = strings.TrimRight(value, "/")
	case "log_level":
		c.LogLevel = value
	case "timeout":
		if err := c.Timeout.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
	case "keyring_backend":
		c.KeyringBackend = value
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return c.Validate()
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("api_base_url must start with http:// or https://, got %q", c.APIBaseURL)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}
