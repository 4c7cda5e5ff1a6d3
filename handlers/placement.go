// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/middleware"
	"github.com/danielhkuo/placings/models"
)

// PlacementHandler serves the organizer's manual placement overlay
type PlacementHandler struct {
	svc *competition.Service
}

func NewPlacementHandler(svc *competition.Service) *PlacementHandler {
	return &PlacementHandler{svc: svc}
}

// GetPlacement handles GET /manual-placement?user=
func (h *PlacementHandler) GetPlacement(w http.ResponseWriter, r *http.Request) {
	placements, err := h.svc.ManualPlacement(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, placements)
}

// SavePlacement handles POST /manual-placement. Placements must cover every
// team once with places 1..N.
func (h *PlacementHandler) SavePlacement(w http.ResponseWriter, r *http.Request) {
	var req models.SaveManualPlacementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}

	if err := h.svc.SaveManualPlacement(r.Context(), req.User, req.Placements); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

// ResetPlacement handles POST /manual-placement/reset
func (h *PlacementHandler) ResetPlacement(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}

	if err := h.svc.ResetManualPlacement(r.Context(), req.User); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}
