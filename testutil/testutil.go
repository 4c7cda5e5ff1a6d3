// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/placings/cliparse"
	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/db"
	"github.com/danielhkuo/placings/models"
	"github.com/danielhkuo/placings/notify"
)

// TestBaseURL is the public base URL used in test configs
const TestBaseURL = "http://judging.test"

// SetupTestStore opens a private in-memory SQLite database with the full schema
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db.NewStore(conn)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  db.TypeSQLite,
		DatabaseURL:   ":memory:",
		PublicBaseURL: TestBaseURL,
		LogLevel:      "info",
	}
}

// RecordingNotifier keeps every invitation it is asked to send.
// Set Err to make every Invite fail.
type RecordingNotifier struct {
	mu          sync.Mutex
	Err         error
	Invitations []notify.Invitation
}

func (n *RecordingNotifier) Invite(ctx context.Context, inv notify.Invitation) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Invitations = append(n.Invitations, inv)
	return n.Err
}

func (n *RecordingNotifier) Sent() []notify.Invitation {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Invitation, len(n.Invitations))
	copy(out, n.Invitations)
	return out
}

// SetupTestService returns a service over a fresh store and a recording
// notifier, with links built from the test config's base URL
func SetupTestService(t *testing.T) (*competition.Service, *RecordingNotifier) {
	t.Helper()

	cfg := GetTestConfig()
	notifier := &RecordingNotifier{}
	svc := competition.NewService(SetupTestStore(t), notifier, cfg.PublicBaseURL)
	return svc, notifier
}

// Competition is a seeded two-stage, two-team event with one judge per stage
type Competition struct {
	User   string
	Judges []models.Judge
	Stages []models.Stage
	Teams  []models.Team
}

// SeedCompetition saves judges j1 and j2 assigned to stages s1 and s2,
// and teams A and B
func SeedCompetition(t *testing.T, svc *competition.Service, user string) Competition {
	t.Helper()
	ctx := context.Background()

	c := Competition{
		User: user,
		Judges: []models.Judge{
			{ID: "j1", FullName: "Ada Lovelace", Email: "ada@example.com"},
			{ID: "j2", FullName: "Alan Turing", Email: "alan@example.com"},
		},
		Stages: []models.Stage{
			{ID: "s1", Number: "1", Name: "Sprint"},
			{ID: "s2", Number: "2", Name: "Relay"},
		},
		Teams: []models.Team{
			{ID: "A", Number: "7", Name: "Alpha"},
			{ID: "B", Number: "9", Name: "Bravo"},
		},
	}

	if err := svc.SaveJudges(ctx, user, c.Judges); err != nil {
		t.Fatalf("Failed to save judges: %v", err)
	}
	if err := svc.SaveStages(ctx, user, c.Stages); err != nil {
		t.Fatalf("Failed to save stages: %v", err)
	}
	if err := svc.SaveTeams(ctx, user, c.Teams); err != nil {
		t.Fatalf("Failed to save teams: %v", err)
	}
	err := svc.SaveDistribution(ctx, user, []models.DistributionPair{
		{ID: "d1", JudgeID: "j1", StageID: "s1"},
		{ID: "d2", JudgeID: "j2", StageID: "s2"},
	})
	if err != nil {
		t.Fatalf("Failed to save distribution: %v", err)
	}

	return c
}

// IssueTestLinks issues links for all judges and returns tokens by judge ID
func IssueTestLinks(t *testing.T, svc *competition.Service, user string) map[string]string {
	t.Helper()

	links, err := svc.IssueLinksForAllJudges(context.Background(), user)
	if err != nil {
		t.Fatalf("Failed to issue links: %v", err)
	}

	tokens := make(map[string]string, len(links))
	for _, l := range links {
		tokens[l.JudgeID] = l.Token
	}
	return tokens
}

// SubmitTestAnswers stores final answers (team ID -> place) behind a token
func SubmitTestAnswers(t *testing.T, svc *competition.Service, token string, places map[string]string) {
	t.Helper()

	answers := make([]models.Answer, 0, len(places))
	for teamID, place := range places {
		answers = append(answers, models.Answer{TeamID: teamID, Value: models.FlexString(place)})
	}

	submitted := true
	if err := svc.UpdateSubmission(context.Background(), token, answers, &submitted); err != nil {
		t.Fatalf("Failed to submit answers: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
