package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Settings errors
	ErrSettingsLoad     ErrorCode = "SETTINGS_LOAD"
	ErrSettingsSave     ErrorCode = "SETTINGS_SAVE"
	ErrStoragePathUnset ErrorCode = "STORAGE_PATH_UNSET"

	// Catalog errors
	ErrCatalogParse   ErrorCode = "CATALOG_PARSE"
	ErrCatalogTooNew  ErrorCode = "CATALOG_TOO_NEW"
	ErrCatalogPersist ErrorCode = "CATALOG_PERSIST"
	ErrRelativePath   ErrorCode = "RELATIVE_PATH"

	// Link errors
	ErrDestinationMissing ErrorCode = "DESTINATION_MISSING"
	ErrDestinationExists  ErrorCode = "DESTINATION_EXISTS"
	ErrSourceExists       ErrorCode = "SOURCE_EXISTS"
	ErrSourceNotFound     ErrorCode = "SOURCE_NOT_FOUND"
	ErrAlreadyLinked      ErrorCode = "ALREADY_LINKED"
	ErrLinkFailed         ErrorCode = "LINK_FAILED"
	ErrMoveFailed         ErrorCode = "MOVE_FAILED"
	ErrLinkPermission     ErrorCode = "LINK_PERMISSION"
	ErrNotALink           ErrorCode = "NOT_A_LINK"
)

// SaveliError represents a structured error with code and details
type SaveliError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SaveliError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SaveliError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SaveliError) Is(target error) bool {
	var targetErr *SaveliError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SaveliError with the given code and message
func New(code ErrorCode, message string) *SaveliError {
	return &SaveliError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SaveliError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SaveliError {
	return &SaveliError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SaveliError
func Wrap(err error, code ErrorCode, message string) *SaveliError {
	if err == nil {
		return nil
	}
	return &SaveliError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SaveliError {
	if err == nil {
		return nil
	}
	return &SaveliError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SaveliError) WithDetail(key string, value interface{}) *SaveliError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var saveliErr *SaveliError
	if errors.As(err, &saveliErr) {
		return saveliErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SaveliError
func GetErrorCode(err error) ErrorCode {
	var saveliErr *SaveliError
	if errors.As(err, &saveliErr) {
		return saveliErr.Code
	}
	return ErrUnknown
}
