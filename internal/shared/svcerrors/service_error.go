package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryNotFound        = "not_found"
	categoryInternal        = "internal"
)

// CodeInternalError is the only code surfaced for internal failures. The
// underlying cause is logged, never sent to the client.
const CodeInternalError = "INTERNAL_ERROR"

// ServiceError represents a service-level error with category, code, message,
// and cause. It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // invalid_argument, not_found or internal
	Code           string // stable client-facing code (e.g. INVALID_DATE)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // HTTP status code
}

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 400,
	}
}

// NewNotFoundError creates a new ServiceError with category not_found.
func NewNotFoundError(code, message string) *ServiceError {
	return &ServiceError{
		Category:       categoryNotFound,
		Code:           code,
		Message:        message,
		HttpStatusCode: 404,
	}
}

// NewInternalError creates a new ServiceError with category internal. The
// client-facing message is deliberately generic; cause carries the detail.
func NewInternalError(message string, cause error) *ServiceError {
	if message == "" {
		message = "Internal server error"
	}
	return &ServiceError{
		Category:       categoryInternal,
		Code:           CodeInternalError,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewInternalErrorPanic wraps a recovered panic value as an internal error.
func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError("Internal server error", fmt.Errorf("panic: %w", cause))
}

// AsServiceError extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
