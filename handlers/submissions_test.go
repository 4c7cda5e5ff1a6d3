// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/placings/models"
	"github.com/danielhkuo/placings/testutil"
)

func TestGetSubmission(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	handler := NewSubmissionHandler(svc)
	testutil.SeedCompetition(t, svc, "org")
	tokens := testutil.IssueTestLinks(t, svc, "org")

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{"valid token", tokens["j1"], http.StatusOK},
		{"unknown token", "does-not-exist", http.StatusNotFound},
		{"empty token", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/submission/"+tt.token, nil, nil)
			req.SetPathValue("token", tt.token)
			w := httptest.NewRecorder()

			handler.GetSubmission(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var view models.SubmissionView
				testutil.AssertJSON(t, w, &view)
				if view.JudgeID != "j1" {
					t.Errorf("Expected judge 'j1', got '%s'", view.JudgeID)
				}
				if view.Stage == nil || view.Stage.ID != "s1" {
					t.Errorf("Expected stage 's1', got %+v", view.Stage)
				}
				if len(view.Teams) != 2 {
					t.Errorf("Expected 2 teams, got %d", len(view.Teams))
				}
			}
		})
	}
}

func TestUpdateSubmission(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	handler := NewSubmissionHandler(svc)
	testutil.SeedCompetition(t, svc, "org")
	tokens := testutil.IssueTestLinks(t, svc, "org")
	token := tokens["j1"]

	tests := []struct {
		name              string
		body              string
		expectedStatus    int
		expectedSubmitted bool
		expectedAnswers   int
	}{
		{
			name:            "save draft with numeric values",
			body:            `{"answers":[{"teamId":"A","value":2},{"teamId":"B","value":"1"}]}`,
			expectedStatus:  http.StatusOK,
			expectedAnswers: 2,
		},
		{
			name:              "submit without answers keeps draft",
			body:              `{"submitted":true}`,
			expectedStatus:    http.StatusOK,
			expectedSubmitted: true,
			expectedAnswers:   2,
		},
		{
			name:            "reopen",
			body:            `{"submitted":false}`,
			expectedStatus:  http.StatusOK,
			expectedAnswers: 2,
		},
		{
			name:            "invalid json",
			body:            `{"answers":`,
			expectedStatus:  http.StatusBadRequest,
			expectedAnswers: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/submission/"+token, strings.NewReader(tt.body))
			req.SetPathValue("token", token)
			w := httptest.NewRecorder()

			handler.UpdateSubmission(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			req = testutil.MakeRequest("GET", "/submission/"+token, nil, nil)
			req.SetPathValue("token", token)
			w = httptest.NewRecorder()
			handler.GetSubmission(w, req)

			var view models.SubmissionView
			testutil.AssertJSON(t, w, &view)
			if view.Submitted != tt.expectedSubmitted {
				t.Errorf("Expected submitted=%v, got %v", tt.expectedSubmitted, view.Submitted)
			}
			if len(view.Answers) != tt.expectedAnswers {
				t.Errorf("Expected %d answers, got %d", tt.expectedAnswers, len(view.Answers))
			}
		})
	}
}

func TestUpdateSubmissionUnknownToken(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	handler := NewSubmissionHandler(svc)

	req := httptest.NewRequest("POST", "/submission/nope", strings.NewReader(`{"submitted":true}`))
	req.SetPathValue("token", "nope")
	w := httptest.NewRecorder()

	handler.UpdateSubmission(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != models.KindInvalidToken {
		t.Errorf("Expected kind '%s', got '%s'", models.KindInvalidToken, resp.Kind)
	}
}
