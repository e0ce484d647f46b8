package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/chatbot"
	"portfolio/internal/respond"
)

type ChatbotHandler struct {
	Responder *chatbot.Responder
}

type chatReq struct {
	Message string `json:"message"`
}

func (h *ChatbotHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("message", strings.TrimSpace(req.Message))
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	respond.OK(w, r, "reply", map[string]any{
		"reply": h.Responder.Reply(req.Message),
	})
}
