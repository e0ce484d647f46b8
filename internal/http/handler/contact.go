package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/contact"
	"portfolio/internal/respond"
)

type ContactHandler struct {
	Svc *contact.Service
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Subject = strings.TrimSpace(req.Subject)

	fe := fieldErrors{}
	fe.require("name", req.Name)
	fe.require("email", req.Email)
	fe.require("subject", req.Subject)
	fe.require("message", strings.TrimSpace(req.Message))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	c := contact.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.Svc.Submit(r.Context(), &c); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "message received", c)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "contacts", out)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	respond.OK(w, r, "contact", out)
}

func (h *ContactHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	out, err := h.Svc.MarkAsRead(r.Context(), id)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "marked as read", out)
}

func (h *ContactHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.UnreadCount(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "unread count", map[string]any{"unread": n})
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "contact deleted", nil)
}
