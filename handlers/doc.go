// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the placings API.

# Handler Types

Each handler wraps the competition service:

  - EntityHandler: judges, stages, teams, distribution, report settings
  - ReportHandler: link issuance, status, reset, results and report document
  - SubmissionHandler: the judge-facing form behind a link token
  - PlacementHandler: the organizer's manual placement overlay

	entityHandler := handlers.NewEntityHandler(svc)

# Organizer Scope

Organizer endpoints identify the organizer by a "user" value, sent as a
query parameter on GET and in the JSON body on POST.

# Judge Flow

	POST /report/send           → SendLinks (mails every judge a new link)
	GET  /submission/{token}    → GetSubmission
	POST /submission/{token}    → UpdateSubmission (draft or final)

# Errors

Service errors map to a status code and a machine-readable kind:

	missing_parameter, invalid_payload, no_judges → 400
	invalid_token                               → 404
	internal                                    → 500
*/
package handlers
