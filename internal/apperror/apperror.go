package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so the HTTP layer can map it to a
// status code without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindAuthentication
	KindAuthorization
	KindConflict
	KindGeneration
)

// Error is the application error carried from repositories and services up
// to the controllers.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, code, message string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: cause}
}

func NotFound(message string) *Error {
	return newError(KindNotFound, "NOT_FOUND", message, nil)
}

func Validation(message string) *Error {
	return newError(KindValidation, "VALIDATION_ERROR", message, nil)
}

func Authentication(message string) *Error {
	return newError(KindAuthentication, "AUTHENTICATION_ERROR", message, nil)
}

func Authorization(message string) *Error {
	return newError(KindAuthorization, "AUTHORIZATION_ERROR", message, nil)
}

func Conflict(message string) *Error {
	return newError(KindConflict, "CONFLICT", message, nil)
}

// Generation marks a failed or malformed response from the AI provider.
func Generation(message string, cause error) *Error {
	return newError(KindGeneration, "GENERATION_ERROR", message, cause)
}

func Internal(message string, cause error) *Error {
	return newError(KindInternal, "INTERNAL_ERROR", message, cause)
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus maps an error to the status code of its kind. Unknown errors
// map to 500.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the machine-readable code for an error, "INTERNAL_ERROR"
// when the error is not an application error.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "INTERNAL_ERROR"
}

// DetailOf returns the client-safe message for an error. Uncaught errors
// get a generic message; the full detail stays in server logs only.
func DetailOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
