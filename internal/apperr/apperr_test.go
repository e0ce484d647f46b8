package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidToken, http.StatusUnauthorized},
		{CodeTokenExpired, http.StatusUnauthorized},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDatabase, http.StatusInternalServerError},
		{CodeEmailFailed, http.StatusInternalServerError},
		{Code("SOMETHING_NEW"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.code); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestFrom(t *testing.T) {
	ae := New(CodeNotFound, "record not found")
	if got := From(ae); got != ae {
		t.Error("From must return the original *Error")
	}

	wrapped := fmt.Errorf("handler: %w", ae)
	if got := From(wrapped); got.Code != CodeNotFound {
		t.Errorf("From(wrapped).Code = %s, want NOT_FOUND", got.Code)
	}

	plain := errors.New("dial tcp: connection refused")
	got := From(plain)
	if got.Code != CodeInternal {
		t.Errorf("From(plain).Code = %s, want INTERNAL_ERROR", got.Code)
	}
	if got.Message != "internal server error" {
		t.Errorf("From(plain).Message = %q, must not leak the cause", got.Message)
	}
	if !errors.Is(got, plain) {
		t.Error("From(plain) must keep the original as cause")
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("constraint failed")
	err := Wrap(CodeDatabase, "create failed", cause)

	if !errors.Is(err, cause) {
		t.Error("Wrap must preserve the cause chain")
	}
	if want := "create failed: constraint failed"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if New(CodeNotFound, "gone").Error() != "gone" {
		t.Error("Error() without cause must be the message alone")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").
		WithDetails(map[string]string{"email": "email is required"})

	details, ok := err.Details.(map[string]string)
	if !ok || details["email"] != "email is required" {
		t.Errorf("Details = %#v", err.Details)
	}
}
