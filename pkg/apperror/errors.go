package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable reasons attached to receipt pipeline errors.
const (
	ReasonNotFound       = "NOT_FOUND"
	ReasonBadRequest     = "BAD_REQUEST"
	ReasonInternal       = "INTERNAL"
	ReasonTempFile       = "RENDER_TEMP_FILE"
	ReasonTemplateRender = "RENDER_TEMPLATE"
	ReasonConfig         = "CONFIG_INVALID"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Reason  string       `json:"reason,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Reason: ReasonNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Reason: ReasonBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Reason: ReasonInternal, Message: "Internal server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an internal error with a status code, reason and message.
func Wrap(code int, reason, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Reason:  reason,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Reason:  ReasonBadRequest,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Reason:  ReasonNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Reason:  ReasonBadRequest,
		Message: message,
	}
}

// NewTempFileError reports a failure to materialize a template on disk.
// It is always surfaced: the merchant has to fix the environment.
func NewTempFileError(err error) *AppError {
	return Wrap(http.StatusInternalServerError, ReasonTempFile, "Failed to prepare receipt template file", err)
}

// NewTemplateRenderError reports a failure while executing a merchant template.
func NewTemplateRenderError(err error) *AppError {
	return Wrap(http.StatusInternalServerError, ReasonTemplateRender, "Failed to render receipt template", err)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// HasReason reports whether err is an AppError with the given reason.
func HasReason(err error, reason string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Reason == reason
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Reason:  ReasonInternal,
		Message: err.Error(),
	}
}
