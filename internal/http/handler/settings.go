package handler

import (
	"encoding/json"
	"net/http"

	"portfolio/internal/respond"
	"portfolio/internal/settings"

	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	Svc *settings.Service
}

func (h *SettingsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.All(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "settings", out)
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	val, err := h.Svc.Get(r.Context(), key)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "setting", map[string]any{"key": key, "value": val})
}

func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var value json.RawMessage
	if err := decode(r, &value); err != nil {
		respond.Err(w, r, err)
		return
	}

	if err := h.Svc.Set(r.Context(), key, value); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "setting saved", map[string]any{"key": key, "value": value})
}

func (h *SettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := h.Svc.Delete(r.Context(), key); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "setting deleted", nil)
}

// Effective serves the merged profile view used by the front-end.
func (h *SettingsHandler) Effective(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Effective(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "effective profile", p)
}
