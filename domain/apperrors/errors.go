package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies application errors for the HTTP boundary.
type ErrorCode string

const (
	ErrCodeValidation        ErrorCode = "VALIDATION"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeForbidden         ErrorCode = "FORBIDDEN"
	ErrCodeTransientProvider ErrorCode = "TRANSIENT_PROVIDER"
	ErrCodeInternal          ErrorCode = "INTERNAL"
)

// AppError carries a code, a human-readable message safe to return to the
// client, and the HTTP status the boundary should respond with.
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidation reports invalid caller input. Never retried automatically.
func NewValidation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewNotFound reports an absent video, comment or profile.
func NewNotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, HTTPStatus: http.StatusNotFound}
}

// NewForbidden reports an operation on another identity's resource.
func NewForbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

// NewTransientProvider wraps a failed or timed-out streaming provider call.
// Local state is unchanged beyond facts already confirmed; the caller is
// expected to retry.
func NewTransientProvider(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeTransientProvider, Message: message, HTTPStatus: http.StatusBadGateway, Cause: cause}
}

// NewInternal wraps an unexpected error without leaking detail to clients.
func NewInternal(cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: "Server error.", HTTPStatus: http.StatusInternalServerError, Cause: cause}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
