// Package errors provides the coded error type used throughout prettyplot.
//
// Every failure in this module is an input or programming error: a ratio
// name that does not exist, a malformed size, a color that cannot be
// parsed. Errors carry a machine readable Code so callers can branch on
// the kind of failure, and a message naming the offending argument and
// the violated constraint.
//
//	_, err := layout.ParseRatio("silver")
//	if errors.Is(err, errors.ErrCodeInvalidRatio) {
//	    // handle
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Validation errors
	ErrCodeInvalidRatio  Code = "INVALID_RATIO"
	ErrCodeInvalidSize   Code = "INVALID_SIZE"
	ErrCodeInvalidSide   Code = "INVALID_SIDE"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidMode   Code = "INVALID_MODE"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidNumber Code = "INVALID_NUMBER"
	ErrCodeInvalidExtent Code = "INVALID_EXTENT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Constraint errors
	ErrCodeTooManyCategories Code = "TOO_MANY_CATEGORIES"

	// Lookup errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Output errors
	ErrCodeRender Code = "RENDER_FAILED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// The chain is unwrapped until the first *Error is found.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
// Errors that are not *Error are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
