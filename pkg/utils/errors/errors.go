package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType uint

const (
	// ErrorTypeUnknown is the zero classification.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeInvalidArgument marks rejected input, including invalid
	// generation configurations.
	ErrorTypeInvalidArgument
	// ErrorTypeNotFound marks a missing portfolio or scenario.
	ErrorTypeNotFound
	// ErrorTypeUnavailable marks an unreachable upstream service.
	ErrorTypeUnavailable
	// ErrorTypeInternal marks everything the service cannot blame on its
	// caller.
	ErrorTypeInternal
)

// AppError carries a classification alongside the message.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an unclassified error.
func New(message string) error {
	return &AppError{Type: ErrorTypeUnknown, Message: message}
}

// Wrap wraps an error with a message, preserving an existing
// classification.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	errType := ErrorTypeUnknown
	var appErr *AppError
	if errors.As(err, &appErr) {
		errType = appErr.Type
	}
	return &AppError{Type: errType, Message: message, Err: err}
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// TypeOf returns the classification of err, or ErrorTypeUnknown for
// foreign errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// IsType reports whether err carries the given classification.
func IsType(err error, t ErrorType) bool {
	return TypeOf(err) == t
}

// InvalidArgument creates an ErrorTypeInvalidArgument error.
func InvalidArgument(message string) error {
	return &AppError{Type: ErrorTypeInvalidArgument, Message: message}
}

// NotFound creates an ErrorTypeNotFound error.
func NotFound(message string) error {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// Unavailable creates an ErrorTypeUnavailable error.
func Unavailable(message string) error {
	return &AppError{Type: ErrorTypeUnavailable, Message: message}
}

// Internal creates an ErrorTypeInternal error.
func Internal(message string) error {
	return &AppError{Type: ErrorTypeInternal, Message: message}
}
