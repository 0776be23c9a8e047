package openweather

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure so the HTTP boundary can pick a status
// code without inspecting error text.
type Kind int

const (
	// KindUpstream covers transport failures, provider 5xx and payloads
	// that cannot be decoded. Transient; the user may simply retry.
	KindUpstream Kind = iota
	// KindConfiguration means the credential is missing or malformed. No
	// upstream call is attempted.
	KindConfiguration
	// KindAuthentication means the provider rejected the credential.
	KindAuthentication
	// KindNotFound means the provider knows no such city.
	KindNotFound
)

// Error carries a user-displayable message separate from the internal
// diagnostic cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf reports the kind of err, defaulting to KindUpstream for errors
// that did not originate here.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindUpstream
}

// UserMessage returns the user-displayable message carried by err, or
// fallback when err carries none.
func UserMessage(err error, fallback string) string {
	var cerr *Error
	if errors.As(err, &cerr) && cerr.Message != "" {
		return cerr.Message
	}
	return fallback
}
