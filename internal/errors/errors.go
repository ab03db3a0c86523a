// Package errors defines the two error kinds the API distinguishes.
// Validation errors are the caller's fault and map to 400; anything else
// is internal and maps to 500.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is the error type returned across the service and API layers.
type Error struct {
	Kind    Kind
	Message string
	// Missing lists required fields absent from the input.
	Missing []string
	// Extra carries additional fields rendered into the error response.
	Extra map[string]interface{}
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Details returns the root cause text, or the message when there is none.
func (e *Error) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Validation returns a validation error with the given message.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// MissingFields returns a validation error naming the absent fields.
func MissingFields(missing []string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Missing required fields: " + strings.Join(missing, ", "),
		Missing: missing,
	}
}

// Internal wraps err as an internal error with a caller-facing message.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// WithExtra attaches a field to the rendered error response.
func (e *Error) WithExtra(key string, value interface{}) *Error {
	if e.Extra == nil {
		e.Extra = make(map[string]interface{})
	}
	e.Extra[key] = value
	return e
}

// KindOf reports the kind of err. Errors not created by this package are
// internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}
