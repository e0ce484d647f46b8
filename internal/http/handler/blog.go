package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/blog"
	"portfolio/internal/respond"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

type BlogHandler struct {
	Svc *blog.Service
}

// List serves the public feed (published only) unless the caller is on the
// admin surface, which mounts ListAll instead.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Published(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "posts", out)
}

func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "posts", out)
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	respond.OK(w, r, "post", out)
}

func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	out, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "post", out)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p blog.BlogPost
	if err := decode(r, &p); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("title", strings.TrimSpace(p.Title))
	fe.require("content", strings.TrimSpace(p.Content))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	p.ID = 0
	p.Views = 0
	p.Shares = 0
	if err := h.Svc.CreatePost(r.Context(), &p); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "post created", p)
}

type blogPatch struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	CoverImage *string   `json:"coverImage"`
	Tags       *[]string `json:"tags"`
	Published  *bool     `json:"published"`
}

func (p blogPatch) columns() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Slug != nil {
		m["slug"] = *p.Slug
	}
	if p.Excerpt != nil {
		m["excerpt"] = *p.Excerpt
	}
	if p.Content != nil {
		m["content"] = *p.Content
	}
	if p.CoverImage != nil {
		m["cover_image"] = *p.CoverImage
	}
	if p.Tags != nil {
		m["tags"] = pq.StringArray(*p.Tags)
	}
	if p.Published != nil {
		m["published"] = *p.Published
	}
	return m
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var patch blogPatch
	if err := decode(r, &patch); err != nil {
		respond.Err(w, r, err)
		return
	}

	out, err := h.Svc.Update(r.Context(), id, patch.columns())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "post updated", out)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "post deleted", nil)
}

type commentReq struct {
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Content     string `json:"content"`
}

func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var req commentReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("authorName", strings.TrimSpace(req.AuthorName))
	fe.require("content", strings.TrimSpace(req.Content))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	c := blog.Comment{
		AuthorName:  strings.TrimSpace(req.AuthorName),
		AuthorEmail: strings.TrimSpace(strings.ToLower(req.AuthorEmail)),
		Content:     req.Content,
	}
	if err := h.Svc.AddComment(r.Context(), id, &c); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "comment added", c)
}

func (h *BlogHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	out, err := h.Svc.Comments(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "comments", out)
}

func (h *BlogHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.IncrementView(r.Context(), id, r.RemoteAddr, r.UserAgent()); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "view recorded", nil)
}

func (h *BlogHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.IncrementShare(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "share recorded", nil)
}

func (h *BlogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Svc.GetStats(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "blog stats", st)
}
