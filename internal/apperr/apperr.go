package apperr

import (
	"errors"
	"net/http"
)

// Code is the stable error code surfaced in the response envelope.
type Code string

const (
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeConflict           Code = "CONFLICT"
	CodeInternal           Code = "INTERNAL_ERROR"
	CodeDatabase           Code = "DATABASE_ERROR"
	CodeEmailFailed        Code = "EMAIL_SENDING_FAILED"
	CodeRateLimited        Code = "RATE_LIMIT_EXCEEDED"
)

// Error carries a code, a user-facing message and optional per-field details.
type Error struct {
	Code    Code
	Message string
	Details any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// From classifies any error into an *Error. Unrecognized errors become
// INTERNAL_ERROR with a generic message; the original error is kept as cause.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Code: CodeInternal, Message: "internal server error", cause: err}
}

// HTTPStatus maps every code to exactly one HTTP status. The mapping is total:
// unknown codes fall back to 500.
func HTTPStatus(code Code) int {
	switch code {
	case CodeUnauthorized, CodeInvalidToken, CodeTokenExpired, CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeInternal, CodeDatabase, CodeEmailFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
