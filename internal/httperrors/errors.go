// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for HTTP requests.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Category groups network failures by the advice shown to the user.
type Category int

const (
	Generic Category = iota
	Timeout
	DNS
	ConnectionRefused
	TLS
)

// maxDetail bounds the technical details shown for unrecognised failures.
const maxDetail = 100

// FormatNetworkError prints troubleshooting hints for err and returns it wrapped
// for logging. host names the backend in the hints.
func FormatNetworkError(err error, action, host string) error {
	if err == nil {
		return nil
	}

	displayErrorMessage(err, action, host)
	return fmt.Errorf("network error: %w", err)
}

// Classify reports which kind of network failure err is.
func Classify(err error) Category {
	switch {
	case err == nil:
		return Generic
	case isTimeoutError(err):
		return Timeout
	case isDNSError(err):
		return DNS
	case isConnectionRefusedError(err):
		return ConnectionRefused
	case isSSLError(err):
		return TLS
	default:
		return Generic
	}
}

func displayErrorMessage(err error, action, host string) {
	switch Classify(err) {
	case Timeout:
		showTimeoutError(action)
	case DNS:
		showDNSError(action, host)
	case ConnectionRefused:
		showConnectionRefusedError(action, host)
	case TLS:
		showSSLError(action)
	default:
		showGenericError(action, host, err.Error())
	}
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

func showTimeoutError(action string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", action)
	pterm.Println()
	pterm.Println("The server took too long to respond. This could mean:")
	pterm.Println("  • Slow internet connection")
	pterm.Println("  • Server is under heavy load")
	pterm.Println()
	pterm.Println("Try again, or raise the limit with 'chatweb config set timeout 30s'.")
	pterm.Println()
}

func showDNSError(action, host string) {
	pterm.Printf("🌐 Cannot resolve server address while %s\n", action)
	pterm.Println()
	pterm.Printf("Unable to look up %s. Please check:\n", host)
	pterm.Println("  • Your internet connection is working")
	pterm.Println("  • api_base_url in 'chatweb config show' is spelled correctly")
	pterm.Println()
}

func showConnectionRefusedError(action, host string) {
	pterm.Printf("🚫 Connection refused while %s\n", action)
	pterm.Println()
	pterm.Printf("Nothing is accepting connections at %s. This could mean:\n", host)
	pterm.Println("  • The chat server is not running")
	pterm.Println("  • Wrong server address or port")
	pterm.Println()
}

func showSSLError(action string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", action)
	pterm.Println()
	pterm.Println("Cannot establish a secure HTTPS connection. This could mean:")
	pterm.Println("  • SSL/TLS certificate issue")
	pterm.Println("  • Network proxy interfering with HTTPS")
	pterm.Println("  • System clock is incorrect")
	pterm.Println()
}

func showGenericError(action, host, errDetails string) {
	pterm.Printf("❌ Cannot reach %s while %s\n", host, action)
	pterm.Println()
	pterm.Println("Please check:")
	pterm.Println("  • Your internet connection")
	pterm.Println("  • Firewall settings that might block the request")
	pterm.Println()

	if errDetails != "" {
		pterm.Debug.Printf("Technical details: %s\n", truncate(errDetails, maxDetail))
		pterm.Println()
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
