// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package request

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned when the backend rejects the access token.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a well-formed envelope whose status is not Success.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed: status %s", e.Status)
	}
	return fmt.Sprintf("request failed: %s", e.Message)
}

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.Code, e.Body)
}

// IsServerError reports whether err is a 5xx response or a failed envelope,
// i.e. something the user cannot fix by changing their input.
func IsServerError(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= http.StatusInternalServerError
	}
	var ae *APIError
	return errors.As(err, &ae) && ae.Status != StatusFail
}
