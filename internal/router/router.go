// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package router maps the CLI's pages to routes and runs navigation guards
// before every page transition.
package router

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// maxRedirects bounds how many times a single navigation may be redirected.
const maxRedirects = 10

var (
	// ErrNotFound is returned when no route matches the navigation target.
	ErrNotFound = errors.New("route not found")
	// ErrRedirectLoop is returned when guards keep redirecting.
	ErrRedirectLoop = errors.New("too many redirects")
)

// Route is a named page reachable by path.
type Route struct {
	Name string
	Path string
}

// Location identifies a navigation target by name or path. Name wins when both are set.
type Location struct {
	Name string
	Path string
}

func (l Location) String() string {
	if l.Name != "" {
		return "name:" + l.Name
	}
	return l.Path
}

// NavigationGuard runs before a transition from one route to another.
// Returning a nil Location lets the navigation proceed; a non-nil one redirects it.
type NavigationGuard func(ctx context.Context, to, from Route) (*Location, error)

// Router holds the route table and the guards registered with BeforeEach.
// Navigations are serialised: at most one runs at a time.
type Router struct {
	mu      sync.Mutex
	routes  []Route
	guards  []NavigationGuard
	current Route
}

// New creates a router for the given routes.
func New(routes ...Route) *Router {
	return &Router{routes: append([]Route(nil), routes...)}
}

// BeforeEach registers a guard. Guards run in registration order.
func (r *Router) BeforeEach(g NavigationGuard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guards = append(r.guards, g)
}

// Current returns the route of the last completed navigation.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Resolve finds the route for loc.
func (r *Router) Resolve(loc Location) (Route, error) {
	for _, rt := range r.routes {
		if loc.Name != "" {
			if rt.Name == loc.Name {
				return rt, nil
			}
			continue
		}
		if rt.Path == loc.Path {
			return rt, nil
		}
	}
	return Route{}, fmt.Errorf("%w: %s", ErrNotFound, loc)
}

// Push navigates to the route at path and returns the route finally reached.
func (r *Router) Push(ctx context.Context, path string) (Route, error) {
	return r.Navigate(ctx, Location{Path: path})
}

// Navigate runs every guard for the transition to loc. A redirect restarts the
// guard chain at the redirect target.
func (r *Router) Navigate(ctx context.Context, loc Location) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	from := r.current
	for redirects := 0; ; redirects++ {
		if redirects > maxRedirects {
			return Route{}, fmt.Errorf("%w: last target %s", ErrRedirectLoop, loc)
		}
		to, err := r.Resolve(loc)
		if err != nil {
			return Route{}, err
		}

		next, err := r.runGuards(ctx, to, from)
		if err != nil {
			return Route{}, err
		}
		if next == nil {
			r.current = to
			return to, nil
		}
		loc = *next
	}
}

func (r *Router) runGuards(ctx context.Context, to, from Route) (*Location, error) {
	for _, g := range r.guards {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := g(ctx, to, from)
		if err != nil {
			return nil, fmt.Errorf("navigation to %s aborted: %w", to.Path, err)
		}
		if next != nil {
			return next, nil
		}
	}
	return nil, nil
}
