// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenHolder struct{ token string }

func (h *tokenHolder) Token() string { return h.token }

func TestPageGuard(t *testing.T) {
	tests := []struct {
		name  string
		token string
		path  string
		want  *Location
	}{
		{"anonymous on error page", "", ErrorPath, &Location{Name: RootName}},
		{"anonymous elsewhere", "", "/me", nil},
		{"anonymous on root", "", RootPath, nil},
		{"logged in on error page", "tok", ErrorPath, nil},
		{"logged in elsewhere", "tok", "/me", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := PageGuard(&tokenHolder{token: tt.token})
			got, err := guard(context.Background(), Route{Path: tt.path}, Route{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupPageGuard_navigation(t *testing.T) {
	auth := &tokenHolder{}
	r := New(testRoutes...)
	SetupPageGuard(r, auth)

	got, err := r.Push(context.Background(), ErrorPath)
	require.NoError(t, err)
	assert.Equal(t, Route{Name: RootName, Path: RootPath}, got)

	got, err = r.Push(context.Background(), "/login")
	require.NoError(t, err)
	assert.Equal(t, "/login", got.Path)

	// The accessor is consulted on every navigation, not captured once.
	auth.token = "tok"
	got, err = r.Push(context.Background(), ErrorPath)
	require.NoError(t, err)
	assert.Equal(t, ErrorPath, got.Path)
}
