// Package errors defines the failure taxonomy of a report run.
// Every fatal error returned by the pipeline wraps exactly one of the
// sentinel kinds below so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds.
var (
	// ErrInputUnavailable means the log file is missing, unreadable or
	// could not be read to the end.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrNoValidRecords means the file was read but no line matched the
	// log grammar.
	ErrNoValidRecords = errors.New("no valid records")
	// ErrInvalidConfig means configuration or CLI arguments were rejected.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// kindError carries a user-facing message, its kind and an optional cause.
type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// New returns an error of the given kind with a formatted message.
func New(kind error, format string, args ...interface{}) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrapf returns an error of the given kind that wraps cause.
// It returns nil when cause is nil.
func Wrapf(kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

// Describe returns the message shown to the operator for a fatal error.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoValidRecords):
		return fmt.Sprintf("Error: %v", err)
	case errors.Is(err, ErrInputUnavailable):
		return fmt.Sprintf("Error: cannot read log file: %v", err)
	case errors.Is(err, ErrInvalidConfig):
		return fmt.Sprintf("Configuration error: %v", err)
	default:
		return fmt.Sprintf("Error while processing file: %v", err)
	}
}
