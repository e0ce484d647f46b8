package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/project"
	"portfolio/internal/respond"

	"github.com/lib/pq"
)

type ProjectHandler struct {
	Svc *project.Service
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "projects", out)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	respond.OK(w, r, "project", out)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p project.Project
	if err := decode(r, &p); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("title", strings.TrimSpace(p.Title))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	p.ID = 0
	if err := h.Svc.Create(r.Context(), &p); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "project created", p)
}

type projectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	GithubURL    *string   `json:"githubUrl"`
	LiveURL      *string   `json:"liveUrl"`
	ImageURL     *string   `json:"imageUrl"`
	Featured     *bool     `json:"featured"`
	DisplayOrder *int      `json:"order"`
}

func (p projectPatch) columns() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Technologies != nil {
		m["technologies"] = pq.StringArray(*p.Technologies)
	}
	if p.GithubURL != nil {
		m["github_url"] = *p.GithubURL
	}
	if p.LiveURL != nil {
		m["live_url"] = *p.LiveURL
	}
	if p.ImageURL != nil {
		m["image_url"] = *p.ImageURL
	}
	if p.Featured != nil {
		m["featured"] = *p.Featured
	}
	if p.DisplayOrder != nil {
		m["display_order"] = *p.DisplayOrder
	}
	return m
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var patch projectPatch
	if err := decode(r, &patch); err != nil {
		respond.Err(w, r, err)
		return
	}

	out, err := h.Svc.Update(r.Context(), id, patch.columns())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "project updated", out)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "project deleted", nil)
}
