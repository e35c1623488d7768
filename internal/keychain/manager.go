// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain keeps chatweb's secrets in the OS credential store.
// Only the access token lives here; non-secret user state goes to local storage.
package keychain

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "chatweb"

// Keys used for storing secrets in the OS keychain.
const (
	KeyAccessToken = "auth_access_token"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("secret not found")

// Options selects and configures the keyring backend.
type Options struct {
	// Backend forces a single keyring backend ("keychain", "wincred",
	// "secret-service", "kwallet", "pass", "file"). Empty picks per OS.
	Backend string
	// FileDir is the directory used by the encrypted file backend.
	FileDir string
	// FilePassphrase unlocks the encrypted file backend.
	FilePassphrase string
}

// Manager provides thread-safe access to a keyring.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// New opens the OS keyring described by opts.
func New(opts Options) (*Manager, error) {
	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends(opts.Backend),
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
		FileDir:         opts.FileDir,
		FilePasswordFunc: func(string) (string, error) {
			if opts.FilePassphrase == "" {
				return "", errors.New("file keyring requires CHATWEB_KEYRING_PASSPHRASE")
			}
			return opts.FilePassphrase, nil
		},
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return NewWithRing(ring), nil
}

// NewWithRing wraps an already opened keyring.
func NewWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// allowedBackends maps a configured backend name to keyring backends.
// Without one, native stores are preferred and the encrypted file is the last resort.
func allowedBackends(name string) []keyring.BackendType {
	if name != "" {
		return []keyring.BackendType{keyring.BackendType(name)}
	}
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend, keyring.FileBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend, keyring.FileBackend}
	default:
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}
}

// Set stores value under key.
func (m *Manager) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{Key: key, Data: value, Label: ServiceName + " " + key})
}

// Get returns the value stored under key, or ErrNotFound.
func (m *Manager) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(it.Data) == 0 {
		return nil, ErrNotFound
	}
	return it.Data, nil
}

// Remove deletes key. A missing key is not an error.
func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// SaveAccessToken stores the access token.
func (m *Manager) SaveAccessToken(token string) error {
	if token == "" {
		return errors.New("empty access token")
	}
	return m.Set(KeyAccessToken, []byte(token))
}

// LoadAccessToken retrieves the access token, or ErrNotFound.
func (m *Manager) LoadAccessToken() (string, error) {
	b, err := m.Get(KeyAccessToken)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ClearAuth removes all auth-related secrets.
func (m *Manager) ClearAuth() error {
	return m.Remove(KeyAccessToken)
}
