// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/middleware"
	"github.com/danielhkuo/placings/models"
)

// ReportHandler issues judge links and serves status and results
type ReportHandler struct {
	svc *competition.Service
}

func NewReportHandler(svc *competition.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// SendLinks handles POST /report/send
func (h *ReportHandler) SendLinks(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}

	links, err := h.svc.IssueLinksForAllJudges(r.Context(), req.User)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SendLinksResponse{Links: links})
}

// SendOne handles POST /report/send-one. The link is returned, not mailed.
func (h *ReportHandler) SendOne(w http.ResponseWriter, r *http.Request) {
	var req models.SendOneRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}

	link, err := h.svc.IssueOrReuseLinkForJudge(r.Context(), req.User, req.JudgeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, link)
}

// GetStatus handles GET /report/status?user=
func (h *ReportHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Status: status})
}

// Reset handles POST /report/reset
func (h *ReportHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		invalidJSON(w)
		return
	}

	if err := h.svc.ResetSubmissions(r.Context(), req.User); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

// GetResults handles GET /report/results?user=
func (h *ReportHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.ComputeResults(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetDocument handles GET /report/document?user=
func (h *ReportHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.BuildReport(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}
