package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/apperr"
	"portfolio/internal/auth"
	"portfolio/internal/respond"
)

type AuthHandler struct {
	Svc *auth.Service
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("email", strings.TrimSpace(req.Email))
	fe.require("password", req.Password)
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	token, admin, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	respond.OK(w, r, "logged in", map[string]any{
		"token": token,
		"admin": admin,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	respond.OK(w, r, "ok", map[string]any{
		"adminId": claims.AdminID,
		"role":    claims.Role,
	})
}

func (h *AuthHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Svc.ListAdmins(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "admins", admins)
}

type createAdminReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	fe := fieldErrors{}
	fe.require("email", strings.TrimSpace(req.Email))
	if len(req.Password) < 8 {
		fe["password"] = "password must be at least 8 characters"
	}
	if req.Role == "" {
		req.Role = auth.RoleAdmin
	}
	if !auth.ValidRole(req.Role) {
		fe["role"] = "role must be admin or super_admin"
	}
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	admin, err := h.Svc.CreateAdmin(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "admin created", admin)
}

func (h *AuthHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respond.Err(w, r, apperr.New(apperr.CodeUnauthorized, "missing bearer token"))
		return
	}

	if err := h.Svc.DeleteAdmin(r.Context(), id, claims.AdminID); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "admin deleted", nil)
}
