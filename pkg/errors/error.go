// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown errors
//   - Parse errors (100-199): Malformed term/yield fields, bad configuration, missing arguments
//   - I/O errors (200-299): Missing input files, read and write failures
//   - Precondition errors (300-399): Empty government curve, terms outside the curve
//   - Version errors (400-499): Incompatible configuration versions
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeEmptyCurve, "no government bonds loaded")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeOutOfCurveRange, "term %v is outside the curve", term)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeInvalidYield, "failed to parse yield", parseErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeEmptyCurve) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsParseError reports whether err carries a parse category code.
func IsParseError(err error) bool {
	return GetCode(err).Category() == CategoryParse
}

// IsPreconditionError reports whether err is a curve precondition violation,
// such as interpolating outside the government curve.
func IsPreconditionError(err error) bool {
	return GetCode(err).Category() == CategoryPrecondition
}
