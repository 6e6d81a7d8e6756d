package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole   ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Configuration errors
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// Not-found errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Authorization errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Internal errors
	ErrCodeInternal    ErrorCode = "INTERNAL_ERROR"
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError carries an error code alongside the message
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// Configuration creates a configuration error
func Configuration(message string) *AppError {
	return NewAppError(ErrCodeConfiguration, message, nil)
}

// NotFound creates a not-found error
func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

// Unauthorized creates an authorization error for a missing identity
func Unauthorized(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, nil)
}

// Forbidden creates an authorization error for an actor lacking permission
func Forbidden(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, nil)
}

// Internal wraps a persistence or infrastructure failure. The message shown
// to clients stays generic, the wrapped error is for operator logs only.
func Internal(err error) *AppError {
	return NewAppError(ErrCodeInternal, "internal server error", err)
}

// IsAppError checks whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")

	ErrBookingNotFound = errors.New("booking not found")
	ErrGarageNotFound  = errors.New("garage not found")
)
