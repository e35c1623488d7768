// Package errors defines typed errors with categories for user-friendly reporting.
// A Kind tells the CLI how to present a failure; the wrapped error keeps the
// technical cause for logging.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// NotLoggedIn indicates a command needs a token and none is stored.
	NotLoggedIn Kind = "not_logged_in"
	// KeychainUnavailable indicates the OS credential store could not be opened.
	KeychainUnavailable Kind = "keychain_unavailable"
	// InvalidInput indicates a flag, argument or prompt answer was rejected.
	InvalidInput Kind = "invalid_input"
	// ConfigInvalid indicates the config file or environment could not be used.
	ConfigInvalid Kind = "config_invalid"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first *E in err's chain, or "".
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
