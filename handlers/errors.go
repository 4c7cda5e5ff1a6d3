// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/middleware"
	"github.com/danielhkuo/placings/models"
)

// writeServiceError maps a competition error to its status code and kind
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, competition.ErrMissingParameter):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindMissingParameter, err.Error())
	case errors.Is(err, competition.ErrInvalidPayload):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindInvalidPayload, err.Error())
	case errors.Is(err, competition.ErrInvalidToken):
		middleware.ErrorResponse(w, http.StatusNotFound, models.KindInvalidToken, "Invalid or expired link")
	case errors.Is(err, competition.ErrNoJudges):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindNoJudges, err.Error())
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Server error")
	}
}

func invalidJSON(w http.ResponseWriter) {
	middleware.ErrorResponse(w, http.StatusBadRequest, models.KindInvalidPayload, "Invalid JSON")
}

func writeOK(w http.ResponseWriter) {
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
