// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"chatweb/cli/internal/request"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"http status", &request.StatusError{Code: 502, Body: "bad gateway"}, Generic},
		{"deadline", fmt.Errorf("GET /user/info: %w", context.DeadlineExceeded), Timeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "chat.invalid"}, DNS},
		{"refused", &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, ConnectionRefused},
		{"tls", errors.New("tls: failed to verify certificate: x509: unknown authority"), TLS},
		{"other", errors.New("unexpected EOF"), Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFormatNetworkError(t *testing.T) {
	assert.NoError(t, FormatNetworkError(nil, "logging in", "localhost"))

	cause := errors.New("unexpected EOF")
	err := FormatNetworkError(cause, "logging in", "localhost:3002")
	assert.ErrorIs(t, err, cause)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 100))

	long := strings.Repeat("é", 150)
	got := truncate(long, 100)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "localhost:3002", ExtractHostFromURL("http://localhost:3002/api"))
	assert.Equal(t, "server", ExtractHostFromURL("not a url"))
}
