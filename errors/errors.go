package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so handlers can pick a response status
// without matching on error strings.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindUnavailable  Kind = "UNAVAILABLE"
	KindInternal     Kind = "INTERNAL"
)

// AppError is the error type returned by services and repositories.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *AppError   { return New(KindValidation, message) }
func Unauthorized(message string) *AppError { return New(KindUnauthorized, message) }
func NotFound(message string) *AppError     { return New(KindNotFound, message) }
func Conflict(message string) *AppError     { return New(KindConflict, message) }

func Internal(message string, err error) *AppError {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the kind of err. Errors that are not AppError count as
// internal failures.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message for err. Internal causes are
// never exposed to the client.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error to a response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
