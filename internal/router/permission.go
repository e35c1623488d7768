// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package router

import "context"

// Well-known routes the page guard refers to.
const (
	RootName  = "Root"
	RootPath  = "/"
	ErrorPath = "/500"
)

// TokenSource exposes the authentication token held by the auth store.
type TokenSource interface {
	Token() string
}

// PageGuard sends anonymous visitors of the server error page back to Root.
// Every other navigation proceeds unchanged.
func PageGuard(auth TokenSource) NavigationGuard {
	return func(_ context.Context, to, _ Route) (*Location, error) {
		if auth.Token() == "" && to.Path == ErrorPath {
			return &Location{Name: RootName}, nil
		}
		return nil, nil
	}
}

// SetupPageGuard registers PageGuard on r. Call it once at startup.
func SetupPageGuard(r *Router, auth TokenSource) {
	r.BeforeEach(PageGuard(auth))
}
