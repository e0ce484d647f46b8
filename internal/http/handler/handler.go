package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"portfolio/internal/apperr"

	"github.com/go-chi/chi/v5"
)

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.New(apperr.CodeInvalidInput, "malformed JSON body")
	}
	return nil
}

func parseID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperr.New(apperr.CodeInvalidInput, "invalid id")
	}
	return id, nil
}

// fieldErrors collects per-field validation messages for VALIDATION_ERROR
// details.
type fieldErrors map[string]string

func (fe fieldErrors) require(field, value string) {
	if value == "" {
		fe[field] = field + " is required"
	}
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return apperr.New(apperr.CodeValidation, "validation failed").WithDetails(fe)
}
