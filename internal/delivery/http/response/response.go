// Package response defines the unified API response envelope.
package response

import (
	"net/http"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "COURSE_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
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

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError maps application and repository errors onto the response
// envelope. Unknown errors fall through to a generic 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	switch {
	case errors.Is(err, repository.ErrCourseNotFound):
		return NotFound(c, "COURSE_NOT_FOUND", "Course not found")
	case errors.Is(err, repository.ErrVideoNotFound):
		return NotFound(c, "VIDEO_NOT_FOUND", "Video not found")
	case errors.Is(err, repository.ErrUserNotFound):
		return NotFound(c, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, repository.ErrCartItemNotFound):
		return NotFound(c, "CART_ITEM_NOT_FOUND", "Course is not in the cart")
	case errors.Is(err, repository.ErrDuplicateCourse):
		return Conflict(c, "COURSE_ALREADY_EXISTS", "A course with this id already exists")
	case errors.Is(err, repository.ErrDuplicateVideoIndex):
		return Conflict(c, "DUPLICATE_VIDEO_INDEX", "A video with this index already exists for the course")
	case errors.Is(err, repository.ErrDuplicatePurchase):
		return Conflict(c, "COURSE_ALREADY_PURCHASED", "Course already purchased")
	case errors.Is(err, repository.ErrDuplicateCartItem):
		return Conflict(c, "COURSE_ALREADY_IN_CART", "Course is already in the cart")
	case errors.Is(err, repository.ErrDuplicateEmail):
		return Conflict(c, "USER_ALREADY_EXISTS", "Email is already registered")
	}

	return InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}
