// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /judges", middleware.WithLogging(handler))

Each request gets an id (taken from X-Request-ID or a fresh UUID), echoed in
the response header and attached to the start and completion log lines
together with client IP, status and duration_ms.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST and OPTIONS from any origin.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, models.KindInvalidToken, "unknown link")

	var req models.SaveJudgesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindInvalidPayload, "Invalid JSON")
		return
	}
*/
package middleware
