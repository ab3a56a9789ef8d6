// Package errors provides application-level error types and utilities.
// It defines the recoverable error taxonomy of the helpdesk: authentication
// failures, scope violations, lifecycle violations and storage conflicts.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeInternal          ErrorType = "internal_error"
	ErrorTypeBadRequest        ErrorType = "bad_request"
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeStaleWrite        ErrorType = "stale_write"
	ErrorTypeInvalidValue      ErrorType = "invalid_value"
	ErrorTypeEmptyDescription  ErrorType = "empty_description"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewDuplicateKeyError creates a conflict error for a primary key collision
func NewDuplicateKeyError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewAuthFailureError creates an authentication failure error.
// The message is intentionally generic: callers must not reveal whether the
// username or the credential was wrong.
func NewAuthFailureError(details ...string) *AppError {
	return newError(ErrorTypeUnauthorized, http.StatusUnauthorized, "invalid credentials", details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error for role/scope violations
func NewForbiddenError(message string, details ...string) *AppError {
	return newError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInvalidTransitionError creates an error for mutating a terminal ticket
func NewInvalidTransitionError(message string, details ...string) *AppError {
	return newError(ErrorTypeInvalidTransition, http.StatusConflict, message, details)
}

// NewStaleWriteError creates an error for an optimistic-lock conflict
func NewStaleWriteError(message string, details ...string) *AppError {
	return newError(ErrorTypeStaleWrite, http.StatusConflict, message, details)
}

// NewInvalidValueError creates an error for a negative ticket value
func NewInvalidValueError(message string, details ...string) *AppError {
	return newError(ErrorTypeInvalidValue, http.StatusBadRequest, message, details)
}

// NewEmptyDescriptionError creates an error for a blank ticket description
func NewEmptyDescriptionError(details ...string) *AppError {
	return newError(ErrorTypeEmptyDescription, http.StatusBadRequest, "description is required", details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}
