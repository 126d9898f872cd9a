// Package serrors provides semantic error kinds used across the application.
// A Kind is a sentinel that classifies an error (not found, conflict, ...)
// independently of how it is transported; API layers map kinds to status
// codes and workers map them to retry decisions.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel classifying an error category. Kinds are compared by
// identity, so they must be declared once as package-level variables.
type Kind struct{ name string }

// NewKind declares a new error kind with the given stable name.
func NewKind(name string) *Kind { return &Kind{name: name} }

// Error implements the error interface so kinds can be matched with errors.Is.
func (k *Kind) Error() string { return k.name }

// Default kinds covering typical application semantics.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrInvalid indicates the client sent invalid data.
	ErrInvalid = NewKind("INVALID_REQUEST")
	// ErrConflict indicates a state conflict, e.g. the resource already exists.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates the requested resource exists but cannot serve right now.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrUpstream indicates a dependency (e.g. the OCR engine) failed.
	ErrUpstream = NewKind("UPSTREAM_FAILED")
	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is an error classified by a Kind, optionally wrapping a cause and
// carrying a human-readable message. errors.Is matches both the kind sentinel
// and the wrapped cause through multi-error unwrapping.
type Error struct {
	kind  *Kind
	msg   string
	cause error
}

// With creates an Error of the given kind with a formatted message.
func With(k *Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind wrapping cause, with a formatted message.
func Wrap(k *Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

// KindOnly creates an Error carrying just the kind.
func KindOnly(k *Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.cause != nil {
		out = append(out, e.cause)
	}

	return out
}

// Kind returns the kind sentinel of this error, or nil.
func (e *Error) Kind() *Kind { return e.kind }

// Message returns the human-readable message attached to this error. Unlike
// Error it never includes the cause, so it is safe to expose to API clients.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.cause }

// KindOf returns the kind of the first semantic error in err's chain. It
// matches both *Error values and bare Kind sentinels, returning nil when the
// chain carries no kind.
func KindOf(err error) *Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	var k *Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// Message returns the message of the first semantic error in err's chain,
// falling back to the kind name and then to a generic message. The cause is
// never included, so the result is safe to expose to API clients.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	if k := KindOf(err); k != nil {
		return k.Error()
	}

	return "internal error"
}
