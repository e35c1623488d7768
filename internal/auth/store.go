// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth holds the CLI's authentication state: the access token issued
// at login. The token is persisted in a secret store and cached in memory, so
// Token is cheap enough to call before every navigation and request.
package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chatweb/cli/internal/keychain"
)

// SecretStore persists the access token.
type SecretStore interface {
	SaveAccessToken(token string) error
	LoadAccessToken() (string, error)
	ClearAuth() error
}

// Store is the shared auth state.
type Store struct {
	mu      sync.RWMutex
	secrets SecretStore
	token   string
}

// NewStore creates a store and loads any previously saved token.
// A missing token is not an error.
func NewStore(secrets SecretStore) (*Store, error) {
	s := &Store{secrets: secrets}
	token, err := secrets.LoadAccessToken()
	if err != nil && !errors.Is(err, keychain.ErrNotFound) {
		return nil, fmt.Errorf("load access token: %w", err)
	}
	s.token = token
	return s, nil
}

// Token returns the current access token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// SetToken persists token and makes it current.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.secrets.SaveAccessToken(token); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	s.token = token
	return nil
}

// RemoveToken forgets the token locally and in the secret store.
func (s *Store) RemoveToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := s.secrets.ClearAuth(); err != nil {
		return fmt.Errorf("clear access token: %w", err)
	}
	return nil
}

// Expiry reads the exp claim when the token is a JWT. The signature is not
// verified; the result is informational only.
func (s *Store) Expiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
