package errors

import (
	"net/http"

	"prepcat/internal/errors"
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

// Is matches errors by business error code, so copies carrying extra details
// still compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if errors.As(target, &other) {
		return e.errorCode == other.errorCode
	}

	return false
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

// Predefined error types
var (
	// Catalog read-model errors
	ErrSnapshotUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SNAPSHOT_UNAVAILABLE",
		"Catalog snapshot has not been loaded yet",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrMasterItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MASTER_ITEM_NOT_FOUND",
		"Master item not found",
		"",
	)

	ErrUnknownTagDimension = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_TAG_DIMENSION",
		"Unknown tag dimension",
		"",
	)

	// Command-layer errors
	ErrDuplicateASIN = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ASIN",
		"Another product already uses this ASIN",
		"",
	)

	ErrEmptyBulkSelection = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_BULK_SELECTION",
		"Bulk update requires at least one product",
		"",
	)

	// Session errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"Maximum number of concurrent sessions reached",
		"",
	)

	ErrMultiSelectActive = NewBaseError(
		http.StatusConflict,
		"MULTI_SELECT_ACTIVE",
		"Single-product actions are disabled while multiple products are selected",
		"",
	)

	// Clipboard errors
	ErrClipboardEmpty = NewBaseError(
		http.StatusBadRequest,
		"CLIPBOARD_EMPTY",
		"Nothing has been copied yet",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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
