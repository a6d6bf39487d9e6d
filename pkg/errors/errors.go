// Package errors defines the structured error types used across the FieldBase
// service. Every error carries an application code and the HTTP status it maps
// to, so handlers can render failures without switching on error strings.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// AppError is a structured application error.
type AppError struct {
	Code    constants.ErrorCode
	Status  int
	Message string
	Details map[string]string
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail adds a field-level detail to the error.
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates an AppError with an explicit code and status.
func New(code constants.ErrorCode, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// Validation creates an invalid_request error (HTTP 400). Used for malformed
// or missing fields and for references to catalog rows that do not exist.
func Validation(message string) *AppError {
	return New(constants.ErrCodeInvalidRequest, http.StatusBadRequest, message)
}

// NotFound creates a not_found error (HTTP 404) for the named resource.
func NotFound(resource string) *AppError {
	return New(constants.ErrCodeNotFound, http.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

// Forbidden creates a forbidden error (HTTP 403). Used when a mutation targets
// a read-only catalog row.
func Forbidden(message string) *AppError {
	return New(constants.ErrCodeForbidden, http.StatusForbidden, message)
}

// Unauthorized creates an unauthorized error (HTTP 401).
func Unauthorized(message string) *AppError {
	return New(constants.ErrCodeUnauthorized, http.StatusUnauthorized, message)
}

// Conflict creates a conflict error (HTTP 409), e.g. duplicate project name.
func Conflict(message string) *AppError {
	return New(constants.ErrCodeConflict, http.StatusConflict, message)
}

// Internal wraps an unexpected error as internal_error (HTTP 500).
func Internal(cause error) *AppError {
	return New(constants.ErrCodeInternal, http.StatusInternalServerError, "internal error").WithCause(cause)
}

// Database wraps a failed storage operation.
func Database(cause error) *AppError {
	return New(constants.ErrCodeInternal, http.StatusInternalServerError, "database operation failed").WithCause(cause)
}

// AsAppError attempts to cast an error to *AppError, walking the error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a not_found AppError.
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == constants.ErrCodeNotFound
	}
	return false
}

// IsForbidden reports whether err is a forbidden AppError.
func IsForbidden(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == constants.ErrCodeForbidden
	}
	return false
}

// IsValidation reports whether err is an invalid_request AppError.
func IsValidation(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == constants.ErrCodeInvalidRequest
	}
	return false
}

// StatusOf returns the HTTP status for any error, defaulting to 500.
func StatusOf(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
