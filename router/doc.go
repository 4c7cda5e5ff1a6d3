// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the placings API.

	mux := router.NewRouter(svc)

# Endpoints

Health:

	GET /health

Organizer data (?user= on GET, {user, ...} on POST):

	GET/POST /judges
	GET/POST /stages          - POST discards issued links
	GET/POST /teams
	GET/POST /distribution
	GET/POST /report-settings

Links and results:

	POST /report/send      - New link for every judge, mailed
	POST /report/send-one  - Link for one judge, reused if present
	GET  /report/status    - Per-judge submitted flag
	POST /report/reset     - Discard all links
	GET  /report/results   - Ranked results
	GET  /report/document  - Report table with manual places applied

Judge form:

	GET  /submission/{token}
	POST /submission/{token}

Manual placement:

	GET/POST /manual-placement
	POST     /manual-placement/reset
*/
package router
