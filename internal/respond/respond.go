package respond

import (
	"encoding/json"
	"net/http"
	"time"

	"portfolio/internal/apperr"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// debug controls whether error causes are exposed in the envelope.
// Set once at startup; never enabled in production.
var debug bool

func SetDebug(on bool) { debug = on }

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"requestId,omitempty"`
}

type ErrorBody struct {
	Code    apperr.Code `json:"code"`
	Details any         `json:"details,omitempty"`
}

type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta"`
}

func meta(r *http.Request) Meta {
	return Meta{
		Timestamp: time.Now().UTC(),
		RequestID: chimw.GetReqID(r.Context()),
	}
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func OK(w http.ResponseWriter, r *http.Request, message string, data any) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data, Meta: meta(r)})
}

func Created(w http.ResponseWriter, r *http.Request, message string, data any) {
	write(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data, Meta: meta(r)})
}

// Err translates any error into the failure envelope. All handler errors go
// through here so the code→status mapping stays in one place.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.From(err)

	body := &ErrorBody{Code: ae.Code, Details: ae.Details}
	if debug && body.Details == nil {
		if cause := ae.Unwrap(); cause != nil {
			body.Details = cause.Error()
		}
	}

	write(w, apperr.HTTPStatus(ae.Code), Envelope{
		Success: false,
		Message: ae.Message,
		Error:   body,
		Meta:    meta(r),
	})
}
