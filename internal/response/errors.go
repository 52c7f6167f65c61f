package response

import "fmt"

// Error codes shared between services and handlers
const (
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeDepthExceeded = "DEPTH_EXCEEDED"
)

// AppError is an application error carrying a code, a user-facing
// message and optional details for logging
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError with an arbitrary code
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates an AppError with the validation code
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewNotFoundError creates an AppError with the not-found code
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewAlreadyExistsError creates an AppError with the already-exists code
func NewAlreadyExistsError(message, details string) *AppError {
	return NewAppError(ErrCodeAlreadyExists, message, details)
}

// NewForbiddenError creates an AppError with the forbidden code
func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}

// NewDepthExceededError creates an AppError for paths deeper than the
// allowed nesting level
func NewDepthExceededError(message, details string) *AppError {
	return NewAppError(ErrCodeDepthExceeded, message, details)
}
