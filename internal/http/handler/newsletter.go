package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/newsletter"
	"portfolio/internal/respond"
)

type NewsletterHandler struct {
	Svc *newsletter.Service
}

type subscribeReq struct {
	Email string `json:"email"`
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("email", strings.TrimSpace(req.Email))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	sub, err := h.Svc.Subscribe(r.Context(), req.Email)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "subscribed", sub)
}

type unsubscribeReq struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	key := strings.TrimSpace(req.Token)
	if key == "" {
		key = strings.TrimSpace(req.Email)
	}
	if key == "" {
		respond.Err(w, r, fieldErrors{"token": "token or email is required"}.err())
		return
	}

	if err := h.Svc.Unsubscribe(r.Context(), key); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "unsubscribed", nil)
}

func (h *NewsletterHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Subscribers(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "subscribers", out)
}

func (h *NewsletterHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Svc.GetStats(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "newsletter stats", st)
}

type sendArticleReq struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *NewsletterHandler) SendArticle(w http.ResponseWriter, r *http.Request) {
	var req sendArticleReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("subject", strings.TrimSpace(req.Subject))
	fe.require("body", strings.TrimSpace(req.Body))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	res, err := h.Svc.SendArticle(r.Context(), req.Subject, req.Body)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "article sent", res)
}
