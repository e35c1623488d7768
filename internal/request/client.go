// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chatweb/cli/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userAgent = "chatweb-cli/1.0"

// Client implements Requester over the backend's REST endpoints.
type Client struct {
	// baseURL is prefixed to every request URL (e.g., "http://localhost:3002/api")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// tokens supplies the bearer token; nil means requests are anonymous
	tokens TokenSource
	log    *zap.Logger

	// OnUnauthorized runs when the backend answers with an Unauthorized envelope.
	OnUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource attaches an Authorization header to every request when a token is present.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithOnUnauthorized registers the hook run on Unauthorized envelopes.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.OnUnauthorized = fn }
}

// NewClient creates a Client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req and returns the decoded envelope when its status is Success.
func (c *Client) Do(ctx context.Context, req Request) (*Envelope, error) {
	var body io.Reader = http.NoBody
	if req.Data != nil {
		b, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	c.setStandardHeaders(httpReq, requestID)
	if req.Data != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", req.URL),
	)
	if req.Data != nil && log.Core().Enabled(zap.DebugLevel) {
		b, _ := json.Marshal(req.Data)
		log.Debug("sending request", zap.String("body", logging.Mask(string(b))))
	} else {
		log.Debug("sending request")
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	log.Debug("response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	return c.handleResponse(resp.StatusCode, raw)
}

// setStandardHeaders applies headers shared by every request.
func (c *Client) setStandardHeaders(req *http.Request, requestID string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func (c *Client) handleResponse(code int, raw []byte) (*Envelope, error) {
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		if code == http.StatusUnauthorized {
			c.unauthorized()
			return nil, ErrUnauthorized
		}
		return nil, &StatusError{Code: code, Body: strings.TrimSpace(string(raw))}
	}

	trimmed := bytes.TrimSpace(raw)
	// A bare JSON string body is passed through as data.
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return &Envelope{Data: json.RawMessage(trimmed), Status: StatusSuccess}, nil
	}

	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch env.Status {
	case StatusSuccess:
		return &env, nil
	case StatusUnauthorized:
		c.unauthorized()
		return nil, ErrUnauthorized
	default:
		return nil, &APIError{Status: env.Status, Message: env.Message}
	}
}

func (c *Client) unauthorized() {
	if c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
}
