// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/99designs/keyring"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatweb/cli/internal/keychain"
)

func newStore(t *testing.T) (*Store, *keychain.Manager) {
	t.Helper()
	km := keychain.NewWithRing(keyring.NewArrayKeyring(nil))
	s, err := NewStore(km)
	require.NoError(t, err)
	return s, km
}

func TestStore_lifecycle(t *testing.T) {
	s, km := newStore(t)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())

	require.NoError(t, s.SetToken("tok"))
	assert.True(t, s.LoggedIn())
	saved, err := km.LoadAccessToken()
	require.NoError(t, err)
	assert.Equal(t, "tok", saved)

	require.NoError(t, s.RemoveToken())
	assert.False(t, s.LoggedIn())
	_, err = km.LoadAccessToken()
	assert.ErrorIs(t, err, keychain.ErrNotFound)
}

func TestNewStore_loadsSavedToken(t *testing.T) {
	km := keychain.NewWithRing(keyring.NewArrayKeyring(nil))
	require.NoError(t, km.SaveAccessToken("saved"))

	s, err := NewStore(km)
	require.NoError(t, err)
	assert.Equal(t, "saved", s.Token())
}

type brokenSecrets struct{ err error }

func (b brokenSecrets) SaveAccessToken(string) error     { return b.err }
func (b brokenSecrets) LoadAccessToken() (string, error) { return "", b.err }
func (b brokenSecrets) ClearAuth() error                 { return b.err }

func TestNewStore_secretStoreFailure(t *testing.T) {
	locked := errors.New("keychain locked")
	_, err := NewStore(brokenSecrets{err: locked})
	assert.ErrorIs(t, err, locked)
}

func TestStore_SetToken_failureKeepsState(t *testing.T) {
	locked := errors.New("keychain locked")
	s := &Store{secrets: brokenSecrets{err: locked}}

	err := s.SetToken("tok")
	assert.ErrorIs(t, err, locked)
	assert.Empty(t, s.Token())
}

func TestStore_Expiry(t *testing.T) {
	s, _ := newStore(t)
	_, ok := s.Expiry()
	assert.False(t, ok)

	require.NoError(t, s.SetToken("opaque-token"))
	_, ok = s.Expiry()
	assert.False(t, ok)

	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, s.SetToken(signed))

	got, ok := s.Expiry()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}
