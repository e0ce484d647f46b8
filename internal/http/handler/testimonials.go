package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/respond"
	"portfolio/internal/testimonial"
)

type TestimonialHandler struct {
	Svc *testimonial.Service
}

func (h *TestimonialHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Visible(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "testimonials", out)
}

func (h *TestimonialHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "testimonials", out)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t testimonial.Testimonial
	if err := decode(r, &t); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("name", strings.TrimSpace(t.Name))
	fe.require("content", strings.TrimSpace(t.Content))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	t.ID = 0
	if err := h.Svc.Create(r.Context(), &t); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "testimonial created", t)
}

type testimonialPatch struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Company      *string `json:"company"`
	Content      *string `json:"content"`
	AvatarURL    *string `json:"avatarUrl"`
	Visible      *bool   `json:"visible"`
	DisplayOrder *int    `json:"order"`
}

func (p testimonialPatch) columns() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Role != nil {
		m["role"] = *p.Role
	}
	if p.Company != nil {
		m["company"] = *p.Company
	}
	if p.Content != nil {
		m["content"] = *p.Content
	}
	if p.AvatarURL != nil {
		m["avatar_url"] = *p.AvatarURL
	}
	if p.Visible != nil {
		m["visible"] = *p.Visible
	}
	if p.DisplayOrder != nil {
		m["display_order"] = *p.DisplayOrder
	}
	return m
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var patch testimonialPatch
	if err := decode(r, &patch); err != nil {
		respond.Err(w, r, err)
		return
	}

	out, err := h.Svc.Update(r.Context(), id, patch.columns())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "testimonial updated", out)
}

func (h *TestimonialHandler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	out, err := h.Svc.ToggleVisibility(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "visibility toggled", out)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "testimonial deleted", nil)
}
