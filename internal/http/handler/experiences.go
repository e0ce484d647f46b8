package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/experience"
	"portfolio/internal/respond"
)

type ExperienceHandler struct {
	Svc *experience.Service
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "experiences", out)
}

func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	out, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "experience", out)
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e experience.Experience
	if err := decode(r, &e); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("company", strings.TrimSpace(e.Company))
	fe.require("position", strings.TrimSpace(e.Position))
	fe.require("startDate", e.StartDate)
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	e.ID = 0
	if err := h.Svc.Create(r.Context(), &e); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "experience created", e)
}

type experiencePatch struct {
	Company      *string `json:"company"`
	Position     *string `json:"position"`
	Location     *string `json:"location"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Current      *bool   `json:"current"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"order"`
}

func (p experiencePatch) columns() map[string]any {
	m := map[string]any{}
	if p.Company != nil {
		m["company"] = *p.Company
	}
	if p.Position != nil {
		m["position"] = *p.Position
	}
	if p.Location != nil {
		m["location"] = *p.Location
	}
	if p.StartDate != nil {
		m["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		m["end_date"] = *p.EndDate
	}
	if p.Current != nil {
		m["current"] = *p.Current
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.DisplayOrder != nil {
		m["display_order"] = *p.DisplayOrder
	}
	return m
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var patch experiencePatch
	if err := decode(r, &patch); err != nil {
		respond.Err(w, r, err)
		return
	}

	out, err := h.Svc.Update(r.Context(), id, patch.columns())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "experience updated", out)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "experience deleted", nil)
}
