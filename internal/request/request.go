// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package request is the HTTP transport used by the user API client.
// It sends JSON requests to the chatweb backend and unwraps the
// { status, message, data } envelope every endpoint responds with.
package request

import (
	"context"
	"encoding/json"
)

// Envelope statuses returned by the backend.
const (
	StatusSuccess      = "Success"
	StatusFail         = "Fail"
	StatusUnauthorized = "Unauthorized"
)

// Request describes a single call against the backend.
// URL is relative to the client's base URL.
type Request struct {
	Method string
	URL    string
	Data   any
}

// Envelope is the raw response body. Data is left undecoded so the
// caller can decode it into whatever type it expects.
type Envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  string          `json:"status"`
}

// Response is an Envelope whose data has been decoded into T.
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Requester performs exactly one backend call per Do.
// Implementations may call the real HTTP backend or provide fakes for tests.
type Requester interface {
	Do(ctx context.Context, req Request) (*Envelope, error)
}

// TokenSource yields the current access token, or "" when logged out.
type TokenSource interface {
	Token() string
}
