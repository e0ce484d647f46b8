package handler

import (
	"net/http"
	"strings"

	"portfolio/internal/apperr"
	"portfolio/internal/appointment"
	"portfolio/internal/respond"
)

type AppointmentHandler struct {
	Svc *appointment.Service
}

func (h *AppointmentHandler) Available(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		respond.Err(w, r, apperr.New(apperr.CodeValidation, "validation failed").
			WithDetails(fieldErrors{"date": "date query parameter is required"}))
		return
	}

	slots, err := h.Svc.AvailableSlots(r.Context(), date)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "available slots", map[string]any{
		"date":  date,
		"slots": slots,
	})
}

type createAppointmentReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Urgency string `json:"urgency"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentReq
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
	fe.require("date", req.Date)
	fe.require("time", req.Time)
	if err := fe.err(); err != nil {
		respond.Err(w, r, err)
		return
	}

	a, err := h.Svc.Create(r.Context(), appointment.CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Urgency: req.Urgency,
		Date:    req.Date,
		Time:    req.Time,
		Notes:   req.Notes,
	})
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.Created(w, r, "appointment booked", a)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("upcoming") == "true" {
		out, err := h.Svc.Upcoming(r.Context())
		if err != nil {
			respond.Err(w, r, err)
			return
		}
		respond.OK(w, r, "upcoming appointments", out)
		return
	}

	out, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "appointments", out)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	var req updateStatusReq
	if err := decode(r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}

	a, err := h.Svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "status updated", a)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.OK(w, r, "appointment deleted", nil)
}
