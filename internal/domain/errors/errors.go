// Package errors defines the application error taxonomy. Each predefined
// error carries the HTTP status and business error code the delivery layer
// maps it to.
package errors

import (
	"net/http"

	"liftlog/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// Status-code policy: registration conflicts and login failures are 403,
// matching the original service's behavior; a missing, invalid, or expired
// token is 401; an authenticated non-owner is 403. Login failure and
// "user not found" share one generic response so callers cannot enumerate
// registered emails.
var (
	ErrEmailTaken = NewBaseError(
		http.StatusForbidden,
		"EMAIL_TAKEN",
		"email already exists",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusForbidden,
		"USERNAME_TAKEN",
		"username already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusForbidden,
		"INVALID_CREDENTIALS",
		"invalid credentials",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"missing, invalid, or expired token",
		"",
	)

	ErrNotResourceOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_RESOURCE_OWNER",
		"not authorized to perform this action",
		"",
	)

	ErrSplitNotFound = NewBaseError(
		http.StatusNotFound,
		"SPLIT_NOT_FOUND",
		"split not found",
		"",
	)

	ErrWorkoutNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKOUT_NOT_FOUND",
		"workout not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)
)

// NewDatabaseExecuteError wraps an underlying persistence failure as a generic
// 500. Infrastructure errors are never masked as domain errors.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.Wrap(base, message)
}
