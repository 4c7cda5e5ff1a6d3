// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Document collections
const (
	CollectionJudges          = "judges"
	CollectionStages          = "stages"
	CollectionTeams           = "teams"
	CollectionDistribution    = "distribution"
	CollectionSubmissions     = "submissions"
	CollectionManualPlacement = "manual_placement"
	CollectionReportSettings  = "report_settings"
)

// Error kinds reported to API clients
const (
	KindMissingParameter = "missing_parameter"
	KindInvalidPayload   = "invalid_payload"
	KindInvalidToken     = "invalid_token"
	KindNoJudges         = "no_judges"
	KindInternal         = "internal"
)

// FlexString accepts a JSON string, number or null and always encodes as a string.
// Stage/team numbers and placement values arrive in either form from the forms.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// Domain types

type Judge struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type Stage struct {
	ID     string     `json:"id"`
	Number FlexString `json:"number"`
	Name   string     `json:"name"`
}

// DisplayName renders "<number>. <name>", or just the name when unnumbered
func (s Stage) DisplayName() string {
	if s.Number != "" {
		return string(s.Number) + ". " + s.Name
	}
	return s.Name
}

type Team struct {
	ID     string     `json:"id"`
	Number FlexString `json:"number"`
	Name   string     `json:"name"`
}

type DistributionPair struct {
	ID      string `json:"id"`
	JudgeID string `json:"judgeId"`
	StageID string `json:"stageId"`
}

type Answer struct {
	TeamID string     `json:"teamId"`
	Value  FlexString `json:"value"`
}

// SubmissionRecord is one issued link. Stage, Teams and JudgeName are a
// snapshot taken at issuance; Answers and Submitted are authoritative.
type SubmissionRecord struct {
	Token     string    `json:"token"`
	JudgeID   string    `json:"judgeId"`
	Submitted bool      `json:"submitted"`
	Answers   []Answer  `json:"answers"`
	Stage     *Stage    `json:"stage"`
	Teams     []Team    `json:"teams"`
	JudgeName string    `json:"judgeName"`
	IssuedAt  time.Time `json:"issuedAt"`
}

type ManualPlacement struct {
	TeamID string `json:"teamId"`
	Place  int    `json:"place"`
}

type ReportSettings struct {
	Title     string `json:"title"`
	Signature string `json:"signature"`
}

// Result types

type StageColumn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TeamRef struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Number FlexString `json:"number"`
}

type ResultRow struct {
	TeamID     string              `json:"teamId"`
	TeamName   string              `json:"teamName"`
	TeamNumber FlexString          `json:"teamNumber"`
	PerStage   map[string]*float64 `json:"perStage"`
	Total      float64             `json:"total"`
	Place      int                 `json:"place"`
}

type Results struct {
	Stages []StageColumn `json:"stages"`
	Teams  []TeamRef     `json:"teams"`
	Rows   []ResultRow   `json:"rows"`
}

// Report is the tabular document handed to a renderer
type Report struct {
	Title     string     `json:"title"`
	Signature string     `json:"signature"`
	Manual    bool       `json:"manual"`
	Header    []string   `json:"header"`
	Body      [][]string `json:"body"`
}

// Request types

type UserRequest struct {
	User string `json:"user"`
}

type SaveJudgesRequest struct {
	User   string  `json:"user"`
	Judges []Judge `json:"judges"`
}

type SaveStagesRequest struct {
	User   string  `json:"user"`
	Stages []Stage `json:"stages"`
}

type SaveTeamsRequest struct {
	User  string `json:"user"`
	Teams []Team `json:"teams"`
}

type SaveDistributionRequest struct {
	User         string             `json:"user"`
	Distribution []DistributionPair `json:"distribution"`
}

type SaveReportSettingsRequest struct {
	User      string `json:"user"`
	Title     string `json:"title"`
	Signature string `json:"signature"`
}

type SendOneRequest struct {
	User    string `json:"user"`
	JudgeID string `json:"judgeId"`
}

// Answers is nil when the field is absent so drafts can toggle status only
type UpdateSubmissionRequest struct {
	Answers   []Answer `json:"answers"`
	Submitted *bool    `json:"submitted"`
}

type SaveManualPlacementRequest struct {
	User       string            `json:"user"`
	Placements []ManualPlacement `json:"placements"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type Link struct {
	JudgeID string `json:"judgeId"`
	Token   string `json:"token"`
	URL     string `json:"url"`
}

type SendLinksResponse struct {
	Links []Link `json:"links"`
}

type JudgeStatus struct {
	JudgeID   string `json:"judgeId"`
	Submitted bool   `json:"submitted"`
}

type StatusResponse struct {
	Status []JudgeStatus `json:"status"`
}

// SubmissionView is what a judge sees behind their link
type SubmissionView struct {
	JudgeID   string   `json:"judgeId"`
	JudgeName string   `json:"judgeName"`
	Stage     *Stage   `json:"stage"`
	Teams     []Team   `json:"teams"`
	Answers   []Answer `json:"answers"`
	Submitted bool     `json:"submitted"`
}

type JudgesResponse struct {
	Judges []Judge `json:"judges"`
}

type StagesResponse struct {
	Stages []Stage `json:"stages"`
}

type TeamsResponse struct {
	Teams []Team `json:"teams"`
}

type DistributionResponse struct {
	Distribution []DistributionPair `json:"distribution"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}
