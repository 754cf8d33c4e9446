// Package errors provides structured error types for hasse.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The poset builder reports the input taxonomy:
//   - EMPTY_INPUT: no elements or no numbers supplied
//   - INVALID_FORMAT: a relation line is neither "A < B" nor "A,B"
//   - UNKNOWN_ELEMENT: a relation references an undeclared element
//   - INVALID_NUMBER: a divisibility token is not a positive integer
//
// The diagram pipeline adds CYCLIC_POSET, INVALID_LAYOUT and TOO_LARGE.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownElement, "unknown element in relation: %q", id)
//	if errors.Is(err, errors.ErrCodeUnknownElement) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Poset builder errors
	ErrCodeEmptyInput     Code = "EMPTY_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeUnknownElement Code = "UNKNOWN_ELEMENT"
	ErrCodeInvalidNumber  Code = "INVALID_NUMBER"

	// Diagram pipeline errors
	ErrCodeCyclicPoset   Code = "CYCLIC_POSET"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeTooLarge      Code = "TOO_LARGE"

	// Generic input and lookup errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeNotFound     Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInputError reports whether err was caused by bad caller input rather
// than by an internal failure. The HTTP API maps these to 4xx responses.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeEmptyInput, ErrCodeInvalidFormat, ErrCodeUnknownElement,
		ErrCodeInvalidNumber, ErrCodeCyclicPoset, ErrCodeInvalidLayout,
		ErrCodeTooLarge, ErrCodeInvalidInput:
		return true
	}
	return false
}
