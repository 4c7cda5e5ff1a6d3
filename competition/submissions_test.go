// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/placings/competition"
	"github.com/danielhkuo/placings/models"
	"github.com/danielhkuo/placings/testutil"
)

func boolPtr(b bool) *bool { return &b }

func TestUpdateSubmissionDraftThenSubmit(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")
	token := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	draft := []models.Answer{{TeamID: "A", Value: "2"}, {TeamID: "B", Value: "1"}}
	require.NoError(t, svc.UpdateSubmission(ctx, token, draft, nil))

	view, err := svc.GetSubmission(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, draft, view.Answers)
	assert.False(t, view.Submitted)

	// Status-only update keeps answers
	require.NoError(t, svc.UpdateSubmission(ctx, token, nil, boolPtr(true)))

	view, err = svc.GetSubmission(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, draft, view.Answers)
	assert.True(t, view.Submitted)
}

func TestUpdateSubmissionReplacesAnswers(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")
	token := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	require.NoError(t, svc.UpdateSubmission(ctx, token, []models.Answer{{TeamID: "A", Value: "1"}}, nil))
	require.NoError(t, svc.UpdateSubmission(ctx, token, []models.Answer{}, nil))

	view, err := svc.GetSubmission(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, view.Answers)
}

func TestUnsubmitClearsEveryTokenOfJudge(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")

	old := testutil.IssueTestLinks(t, svc, c.User)["j1"]
	latest := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	require.NoError(t, svc.UpdateSubmission(ctx, old, nil, boolPtr(true)))
	require.NoError(t, svc.UpdateSubmission(ctx, latest, nil, boolPtr(true)))

	require.NoError(t, svc.UpdateSubmission(ctx, latest, nil, boolPtr(false)))

	for _, token := range []string{old, latest} {
		view, err := svc.GetSubmission(ctx, token)
		require.NoError(t, err)
		assert.False(t, view.Submitted)
	}

	status, err := svc.Status(ctx, c.User)
	require.NoError(t, err)
	assert.Equal(t, []models.JudgeStatus{{JudgeID: "j1"}, {JudgeID: "j2"}}, status)
}

func TestSubmitFinalizesOnlyThatToken(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")

	old := testutil.IssueTestLinks(t, svc, c.User)["j1"]
	latest := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	require.NoError(t, svc.UpdateSubmission(ctx, latest, nil, boolPtr(true)))

	view, err := svc.GetSubmission(ctx, old)
	require.NoError(t, err)
	assert.False(t, view.Submitted)
}

func TestStatusIsOrAcrossTokens(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")

	old := testutil.IssueTestLinks(t, svc, c.User)["j1"]
	testutil.IssueTestLinks(t, svc, c.User)

	status, err := svc.Status(ctx, c.User)
	require.NoError(t, err)
	assert.Equal(t, []models.JudgeStatus{{JudgeID: "j1"}, {JudgeID: "j2"}}, status)

	// Finalizing the older link still marks the judge done
	require.NoError(t, svc.UpdateSubmission(ctx, old, nil, boolPtr(true)))

	status, err = svc.Status(ctx, c.User)
	require.NoError(t, err)
	assert.Equal(t, []models.JudgeStatus{{JudgeID: "j1", Submitted: true}, {JudgeID: "j2"}}, status)
}

func TestStatusWithoutRecords(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	c := testutil.SeedCompetition(t, svc, "org")

	status, err := svc.Status(context.Background(), c.User)
	require.NoError(t, err)
	require.Len(t, status, 2)
	assert.False(t, status[0].Submitted)
	assert.False(t, status[1].Submitted)

	_, err = svc.Status(context.Background(), "")
	assert.ErrorIs(t, err, competition.ErrMissingParameter)
}

func TestSubmissionViewResolvesLiveData(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")
	token := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	// Rename the judge, add a team and move the judge to the other stage
	judges := []models.Judge{{ID: "j1", FullName: "Ada King", Email: "ada@example.com"}, c.Judges[1]}
	require.NoError(t, svc.SaveJudges(ctx, c.User, judges))
	teams := append([]models.Team{}, c.Teams...)
	teams = append(teams, models.Team{ID: "C", Name: "Charlie"})
	require.NoError(t, svc.SaveTeams(ctx, c.User, teams))
	require.NoError(t, svc.SaveDistribution(ctx, c.User, []models.DistributionPair{{ID: "d", JudgeID: "j1", StageID: "s2"}}))

	view, err := svc.GetSubmission(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", view.JudgeName)
	assert.Len(t, view.Teams, 3)
	require.NotNil(t, view.Stage)
	assert.Equal(t, "s2", view.Stage.ID)
}

func TestSubmissionViewFallsBackToSnapshot(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")
	token := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	require.NoError(t, svc.SaveJudges(ctx, c.User, []models.Judge{}))
	require.NoError(t, svc.SaveTeams(ctx, c.User, []models.Team{}))
	require.NoError(t, svc.SaveDistribution(ctx, c.User, []models.DistributionPair{}))

	view, err := svc.GetSubmission(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", view.JudgeName)
	require.NotNil(t, view.Stage)
	assert.Equal(t, "s1", view.Stage.ID)
}

func TestSubmissionViewTeamsAreAlwaysCurrent(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")
	token := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	// Removing every team leaves the judge with nothing to rank
	require.NoError(t, svc.SaveTeams(ctx, c.User, []models.Team{}))

	view, err := svc.GetSubmission(ctx, token)
	require.NoError(t, err)
	assert.NotNil(t, view.Teams)
	assert.Empty(t, view.Teams)
}

func TestSubmissionUnknownToken(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	testutil.SeedCompetition(t, svc, "org")
	testutil.IssueTestLinks(t, svc, "org")

	_, err := svc.GetSubmission(ctx, "not-a-token")
	assert.ErrorIs(t, err, competition.ErrInvalidToken)

	err = svc.UpdateSubmission(ctx, "not-a-token", nil, boolPtr(true))
	assert.ErrorIs(t, err, competition.ErrInvalidToken)

	_, err = svc.GetSubmission(ctx, "")
	assert.ErrorIs(t, err, competition.ErrMissingParameter)
}

func TestTokensResolveAcrossUsers(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	testutil.SeedCompetition(t, svc, "org-a")
	testutil.SeedCompetition(t, svc, "org-b")

	a := testutil.IssueTestLinks(t, svc, "org-a")["j1"]
	b := testutil.IssueTestLinks(t, svc, "org-b")["j1"]

	require.NoError(t, svc.UpdateSubmission(ctx, b, nil, boolPtr(true)))

	statusA, err := svc.Status(ctx, "org-a")
	require.NoError(t, err)
	assert.False(t, statusA[0].Submitted)

	statusB, err := svc.Status(ctx, "org-b")
	require.NoError(t, err)
	assert.True(t, statusB[0].Submitted)

	_, err = svc.GetSubmission(ctx, a)
	assert.NoError(t, err)
}

func TestUpdateSubmissionClearsManualPlacement(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	ctx := context.Background()
	c := testutil.SeedCompetition(t, svc, "org")
	token := testutil.IssueTestLinks(t, svc, c.User)["j1"]

	require.NoError(t, svc.SetManualPlacement(ctx, c.User, []models.ManualPlacement{{TeamID: "A", Place: 1}, {TeamID: "B", Place: 2}}))
	require.NoError(t, svc.UpdateSubmission(ctx, token, []models.Answer{{TeamID: "A", Value: "1"}}, nil))

	placements, err := svc.ManualPlacement(ctx, c.User)
	require.NoError(t, err)
	assert.Empty(t, placements)
}
