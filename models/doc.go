// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names are camelCase to match the organizer and judge front ends.

# Domain Types

  - Judge, Stage, Team: organizer-entered entities
  - DistributionPair: judge → stage assignment
  - SubmissionRecord: one issued link with its answers
  - ManualPlacement: organizer override of a computed place
  - ReportSettings: report title and signature

# Result Types

  - Results: stage columns, teams and ranked rows
  - Report: tabular document for a renderer

# Request Types

  - SaveJudgesRequest, SaveStagesRequest, SaveTeamsRequest,
    SaveDistributionRequest, SaveReportSettingsRequest
  - UserRequest: {user} for send/reset operations
  - SendOneRequest: user and optional judgeId
  - UpdateSubmissionRequest: optional answers and submitted flag
  - SaveManualPlacementRequest: user and placements

# Response Types

  - OKResponse, SendLinksResponse, Link, StatusResponse, SubmissionView
  - ErrorResponse: error, message, kind

# FlexString

Numbers and placement values may arrive as JSON strings or numbers:

	var v models.FlexString
	json.Unmarshal([]byte(`3`), &v)   // "3"
	json.Unmarshal([]byte(`"3"`), &v) // "3"
	json.Unmarshal([]byte(`null`), &v) // ""

# Collections

Document collections in the store:

	CollectionJudges, CollectionStages, CollectionTeams,
	CollectionDistribution, CollectionSubmissions,
	CollectionManualPlacement, CollectionReportSettings
*/
package models
