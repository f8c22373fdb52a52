package errors

import (
	"fmt"
	"net/http"

	"leadforge/internal/errors"
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

// Is matches any BaseError carrying the same business code, so values
// returned by WithDetails still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Request errors
	ErrInvalidRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Missing or invalid request parameters",
		"",
	)

	ErrInvalidQuery = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_QUERY",
		"Unsupported query term",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Geocoding errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Could not geocode location",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Username or email already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username/email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid user ID in token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the minimum length",
		"",
	)

	// Lead-related errors
	ErrLeadNotFound = NewBaseError(
		http.StatusNotFound,
		"LEAD_NOT_FOUND",
		"Lead not found",
		"",
	)

	ErrLeadAlreadySaved = NewBaseError(
		http.StatusConflict,
		"LEAD_ALREADY_SAVED",
		"Lead already saved",
		"",
	)

	ErrInvalidLeadStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LEAD_STATUS",
		"Invalid lead status",
		"",
	)

	ErrLeadIdentifierRequired = NewBaseError(
		http.StatusBadRequest,
		"LEAD_IDENTIFIER_REQUIRED",
		"A google_place_id or osm_id is required",
		"",
	)

	ErrLeadCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"LEAD_CREATION_FAILED",
		"Failed to save lead",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UpstreamError reports a network, HTTP or decoding failure from an external dependency.
type UpstreamError struct {
	Upstream   string
	StatusCode int
	err        error
}

// NewUpstreamError wraps err as a failure of the named upstream.
// statusCode is zero when no HTTP response was received.
func NewUpstreamError(upstream string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{Upstream: upstream, StatusCode: statusCode, err: err}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s upstream failed with status %d: %v", e.Upstream, e.StatusCode, e.err)
	}

	return fmt.Sprintf("%s upstream failed: %v", e.Upstream, e.err)
}

// Unwrap returns the underlying cause
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "An upstream service is unavailable"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.Upstream
}

// IsUpstream reports whether err is or wraps an UpstreamError.
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError

	return errors.As(err, &upstreamErr)
}
