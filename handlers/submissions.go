// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/middleware"
	"github.com/danielhkuo/placings/models"
)

// SubmissionHandler serves judges through their link token
type SubmissionHandler struct {
	svc *competition.Service
}

func NewSubmissionHandler(svc *competition.Service) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// GetSubmission handles GET /submission/{token}
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetSubmission(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// UpdateSubmission handles POST /submission/{token}.
// Omitted fields are left unchanged.
func (h *SubmissionHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindMissingParameter, "token is required")
		return
	}

	var req models.UpdateSubmissionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}

	if err := h.svc.UpdateSubmission(r.Context(), token, req.Answers, req.Submitted); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}
