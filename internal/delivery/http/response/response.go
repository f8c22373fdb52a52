// Package response renders the JSON envelope shared by every HTTP endpoint.
package response

import (
	"net/http"

	deliverycontext "leadforge/internal/delivery/context"
	domainerrors "leadforge/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-friendly message
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "LEAD_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

func write(c echo.Context, resp Response) error {
	resp.RequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

	return c.JSON(resp.Code, resp)
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return write(c, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return write(c, Response{
		Code:    statusCode,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode, Details: details},
	})
}

// AppError renders an application error. Details are withheld for 5xx.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	details := appErr.Details()
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		details = ""
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// Outcome renders data that carries its own status, such as a search
// outcome, keeping the payload on failure statuses as well.
func Outcome(c echo.Context, statusCode int, errorCode string, data any, message string) error {
	resp := Response{
		Success: statusCode < http.StatusBadRequest,
		Code:    statusCode,
		Message: message,
		Data:    data,
	}
	if !resp.Success {
		resp.Error = &ErrorInfo{Code: errorCode, Details: message}
	}

	return write(c, resp)
}

// BindingError reports a request body or parameter that could not be parsed.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
