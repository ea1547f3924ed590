// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-req.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrTransportFailure marks any error the native wait/test primitive
	// reports. Transports wrap their failures with it so callers can match
	// the whole class via errors.Is.
	ErrTransportFailure = fmt.Errorf("transport failure")

	// ErrInvariantViolation marks an internal contract breach: a caller bug,
	// not a recoverable condition.
	ErrInvariantViolation = fmt.Errorf("invariant violation")

	// ErrAlreadyChained is returned by AddPriorRequest when the request being
	// attached already owns a prior chain of its own.
	ErrAlreadyChained = fmt.Errorf("request already owns a prior chain: %w", ErrInvariantViolation)
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeTransportFailure
	ErrCodeInvariantViolation
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back onto the class sentinels so errors.Is keeps
// working on structured errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeTransportFailure:
		return ErrTransportFailure
	case ErrCodeInvariantViolation:
		return ErrInvariantViolation
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
