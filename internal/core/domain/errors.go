package domain

import (
	"errors"
	"fmt"
)

// DomainError is an error carrying a stable code.
// Codes have the form DC-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // e.g. "DC-FILE-5000"
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error wrapping cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Argument errors (ARG).
var (
	// ErrUsage indicates a missing required flag, a flag that failed to
	// parse, or unexpected positional arguments.
	ErrUsage = NewDomainError("DC-ARG-4000", "invalid usage")
)

// File errors (FILE).
var (
	// ErrFileNotFound indicates the configuration file does not exist.
	ErrFileNotFound = NewDomainError("DC-FILE-4040", "configuration file not found")

	// ErrMalformedLine indicates a line that is not KEY=value.
	ErrMalformedLine = NewDomainError("DC-FILE-4220", "malformed line")

	// ErrInvalidPort indicates REMOTE_PORT is not an integer.
	ErrInvalidPort = NewDomainError("DC-FILE-4221", "invalid remote port")

	// ErrWriteFailed indicates the configuration file could not be written.
	ErrWriteFailed = NewDomainError("DC-FILE-5000", "cannot write configuration file")

	// ErrReadFailed indicates the configuration file could not be read.
	ErrReadFailed = NewDomainError("DC-FILE-5001", "cannot read configuration file")
)
