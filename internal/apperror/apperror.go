// Package apperror defines the error kinds a resource operation can end in.
// Handlers map a Kind to an HTTP status; the message is safe to show to
// clients, the wrapped cause is only ever logged.
package apperror

import (
	"errors"
	"fmt"
)

// Kind is a typed error code for consistent API error identification.
type Kind string

const (
	KindValidation       Kind = "VALIDATION_ERROR"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindInvalidReference Kind = "INVALID_REFERENCE"
	KindDependencyExists Kind = "DEPENDENCY_EXISTS"
	KindRateLimited      Kind = "RATE_LIMIT_EXCEEDED"
	KindInternal         Kind = "INTERNAL_ERROR"
)

// InternalMessage is the only message ever shown for KindInternal.
const InternalMessage = "Error interno del servidor"

// Error is an application error with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

// Internal wraps an unexpected failure. The cause never reaches the client.
func Internal(err error) *Error { return Wrap(KindInternal, InternalMessage, err) }

// KindOf reports the Kind of err, defaulting to KindInternal for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
