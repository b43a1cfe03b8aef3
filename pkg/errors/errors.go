// Package errors provides structured error types for surepatch.
//
// Every layer (loaders, parsers, dispatch, backend, config) reports failures
// as an *Error carrying a machine-readable Code and a human-readable message.
// The CLI prints [UserMessage] and decides whether to continue; nothing in
// the library terminates the process.
//
// # Error Codes
//
// Codes are grouped by the kind of failure:
//   - FILE_NOT_FOUND, ENCODING_UNDEFINED: the input could not be read
//   - INVALID_*, MALFORMED_LISTING: the input was read but has the wrong shape
//   - COMMAND_FAILED, TIMEOUT: an external command failed
//   - NETWORK_ERROR, UNAUTHORIZED, NOT_FOUND: the backend call failed
//   - UNSUPPORTED: no loader/parser pair serves the requested combination
//
// # Usage
//
//	err := errors.New(errors.ErrCodeFileNotFound, "file %s does not exist", path)
//	if errors.Is(err, errors.ErrCodeFileNotFound) {
//	    // Report and abort this extraction
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCommandFailed, origErr, "run %q", line)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidManifest   Code = "INVALID_MANIFEST"
	ErrCodeMalformedListing  Code = "MALFORMED_LISTING"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"
	ErrCodeEncodingUndefined Code = "ENCODING_UNDEFINED"

	// Configuration errors
	ErrCodeConfigNotFound Code = "CONFIG_NOT_FOUND"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// External command errors
	ErrCodeCommandFailed Code = "COMMAND_FAILED"
	ErrCodeTimeout       Code = "TIMEOUT"

	// Backend errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeAlreadyExists Code = "ALREADY_EXISTS"
	ErrCodeNetwork       Code = "NETWORK_ERROR"
	ErrCodeUnauthorized  Code = "UNAUTHORIZED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Hint    string // Optional suggestion shown to the user
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

// WithHint attaches a user-facing suggestion and returns e.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Hint returns the suggestion attached to the first *Error in the chain.
func Hint(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Hint
	}
	return ""
}
