// Package xdg resolves the XDG Base Directory locations used by chatweb:
// configuration in the config dir, local user state and captcha images in the state dir.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the subdirectory created under every XDG base directory.
const AppName = "chatweb"

// ConfigDir returns $XDG_CONFIG_HOME/chatweb (default ~/.config/chatweb).
func ConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/chatweb (default ~/.local/state/chatweb).
func StateDir() (string, error) {
	return appDir("XDG_STATE_HOME", ".local", "state")
}

// appDir resolves and creates a private (0700) application directory.
func appDir(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
