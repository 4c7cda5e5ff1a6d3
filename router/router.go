// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/handlers"
	"github.com/danielhkuo/placings/middleware"
)

func NewRouter(svc *competition.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	entityHandler := handlers.NewEntityHandler(svc)
	reportHandler := handlers.NewReportHandler(svc)
	submissionHandler := handlers.NewSubmissionHandler(svc)
	placementHandler := handlers.NewPlacementHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Organizer data
	mux.HandleFunc("GET /judges", middleware.WithLogging(entityHandler.GetJudges))
	mux.HandleFunc("POST /judges", middleware.WithLogging(entityHandler.SaveJudges))
	mux.HandleFunc("GET /stages", middleware.WithLogging(entityHandler.GetStages))
	mux.HandleFunc("POST /stages", middleware.WithLogging(entityHandler.SaveStages))
	mux.HandleFunc("GET /teams", middleware.WithLogging(entityHandler.GetTeams))
	mux.HandleFunc("POST /teams", middleware.WithLogging(entityHandler.SaveTeams))
	mux.HandleFunc("GET /distribution", middleware.WithLogging(entityHandler.GetDistribution))
	mux.HandleFunc("POST /distribution", middleware.WithLogging(entityHandler.SaveDistribution))
	mux.HandleFunc("GET /report-settings", middleware.WithLogging(entityHandler.GetReportSettings))
	mux.HandleFunc("POST /report-settings", middleware.WithLogging(entityHandler.SaveReportSettings))

	// Links, status and results
	mux.HandleFunc("POST /report/send", middleware.WithLogging(reportHandler.SendLinks))
	mux.HandleFunc("POST /report/send-one", middleware.WithLogging(reportHandler.SendOne))
	mux.HandleFunc("GET /report/status", middleware.WithLogging(reportHandler.GetStatus))
	mux.HandleFunc("POST /report/reset", middleware.WithLogging(reportHandler.Reset))
	mux.HandleFunc("GET /report/results", middleware.WithLogging(reportHandler.GetResults))
	mux.HandleFunc("GET /report/document", middleware.WithLogging(reportHandler.GetDocument))

	// Judge form (public, token is the credential)
	mux.HandleFunc("GET /submission/{token}", middleware.WithLogging(submissionHandler.GetSubmission))
	mux.HandleFunc("POST /submission/{token}", middleware.WithLogging(submissionHandler.UpdateSubmission))

	// Manual placement
	mux.HandleFunc("GET /manual-placement", middleware.WithLogging(placementHandler.GetPlacement))
	mux.HandleFunc("POST /manual-placement", middleware.WithLogging(placementHandler.SavePlacement))
	mux.HandleFunc("POST /manual-placement/reset", middleware.WithLogging(placementHandler.ResetPlacement))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("placings API v1"))
	})

	return mux
}
