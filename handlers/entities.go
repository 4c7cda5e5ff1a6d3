// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/middleware"
	"github.com/danielhkuo/placings/models"
)

// EntityHandler serves the organizer's judges, stages, teams, distribution
// and report settings
type EntityHandler struct {
	svc *competition.Service
}

func NewEntityHandler(svc *competition.Service) *EntityHandler {
	return &EntityHandler{svc: svc}
}

// GetJudges handles GET /judges?user=
func (h *EntityHandler) GetJudges(w http.ResponseWriter, r *http.Request) {
	judges, err := h.svc.Judges(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.JudgesResponse{Judges: judges})
}

// SaveJudges handles POST /judges
func (h *EntityHandler) SaveJudges(w http.ResponseWriter, r *http.Request) {
	var req models.SaveJudgesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}
	if err := h.svc.SaveJudges(r.Context(), req.User, req.Judges); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

// GetStages handles GET /stages?user=
func (h *EntityHandler) GetStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.svc.Stages(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.StagesResponse{Stages: stages})
}

// SaveStages handles POST /stages. Issued links are discarded.
func (h *EntityHandler) SaveStages(w http.ResponseWriter, r *http.Request) {
	var req models.SaveStagesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}
	if err := h.svc.SaveStages(r.Context(), req.User, req.Stages); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

// GetTeams handles GET /teams?user=
func (h *EntityHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.Teams(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.TeamsResponse{Teams: teams})
}

// SaveTeams handles POST /teams
func (h *EntityHandler) SaveTeams(w http.ResponseWriter, r *http.Request) {
	var req models.SaveTeamsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}
	if err := h.svc.SaveTeams(r.Context(), req.User, req.Teams); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

// GetDistribution handles GET /distribution?user=
func (h *EntityHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.svc.Distribution(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DistributionResponse{Distribution: pairs})
}

// SaveDistribution handles POST /distribution
func (h *EntityHandler) SaveDistribution(w http.ResponseWriter, r *http.Request) {
	var req models.SaveDistributionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}
	if err := h.svc.SaveDistribution(r.Context(), req.User, req.Distribution); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

// GetReportSettings handles GET /report-settings?user=
func (h *EntityHandler) GetReportSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.ReportSettings(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, settings)
}

// SaveReportSettings handles POST /report-settings
func (h *EntityHandler) SaveReportSettings(w http.ResponseWriter, r *http.Request) {
	var req models.SaveReportSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}
	settings := models.ReportSettings{Title: req.Title, Signature: req.Signature}
	if err := h.svc.SaveReportSettings(r.Context(), req.User, settings); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}
