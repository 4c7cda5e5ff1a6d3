// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/placings/auth"
	"github.com/danielhkuo/placings/models"
	"github.com/danielhkuo/placings/notify"
)

func (s *Service) linkURL(token string) string {
	return s.baseURL + "/s/" + token
}

// newRecord issues a fresh token for the judge, snapshotting the assigned
// stage and the current team list
func (s *Service) newRecord(judge models.Judge, r roster) (models.SubmissionRecord, error) {
	token, err := auth.GenerateSubmissionToken()
	if err != nil {
		return models.SubmissionRecord{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	teams := make([]models.Team, len(r.teams))
	copy(teams, r.teams)

	return models.SubmissionRecord{
		Token:     token,
		JudgeID:   judge.ID,
		Submitted: false,
		Answers:   []models.Answer{},
		Stage:     assignedStage(judge.ID, r.distribution, r.stages),
		Teams:     teams,
		JudgeName: judge.FullName,
		IssuedAt:  s.now().UTC(),
	}, nil
}

// IssueLinksForAllJudges gives every judge a new token, leaving older tokens
// in place, and mails invitations. Mail failures never fail the issuance.
func (s *Service) IssueLinksForAllJudges(ctx context.Context, user string) ([]models.Link, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	links, invitations, err := s.issueAll(ctx, user)
	if err != nil {
		return nil, err
	}

	for _, inv := range invitations {
		if inv.Email == "" {
			continue
		}
		if err := s.notifier.Invite(ctx, inv); err != nil {
			slog.Warn("failed to send invitation", "error", err, "user", user)
		}
	}

	return links, nil
}

func (s *Service) issueAll(ctx context.Context, user string) ([]models.Link, []notify.Invitation, error) {
	unlock := s.locks.lock(user)
	defer unlock()

	r, err := s.loadRoster(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	records, err := loadList[models.SubmissionRecord](ctx, s.docs, models.CollectionSubmissions, user)
	if err != nil {
		return nil, nil, err
	}

	links := make([]models.Link, 0, len(r.judges))
	invitations := make([]notify.Invitation, 0, len(r.judges))
	for _, judge := range r.judges {
		rec, err := s.newRecord(judge, r)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)

		url := s.linkURL(rec.Token)
		links = append(links, models.Link{JudgeID: judge.ID, Token: rec.Token, URL: url})
		invitations = append(invitations, notify.Invitation{
			JudgeName: judge.FullName,
			Email:     judge.Email,
			Stage:     rec.Stage,
			URL:       url,
		})
	}

	if err := s.save(ctx, models.CollectionSubmissions, user, records); err != nil {
		return nil, nil, err
	}

	slog.Info("links issued", "user", user, "count", len(links))
	return links, invitations, nil
}

// IssueOrReuseLinkForJudge returns the judge's most recent token, issuing one
// if the judge has none. An empty judgeID selects the first judge.
func (s *Service) IssueOrReuseLinkForJudge(ctx context.Context, user, judgeID string) (models.Link, error) {
	if err := requireUser(user); err != nil {
		return models.Link{}, err
	}

	unlock := s.locks.lock(user)
	defer unlock()

	r, err := s.loadRoster(ctx, user)
	if err != nil {
		return models.Link{}, err
	}
	if len(r.judges) == 0 {
		return models.Link{}, ErrNoJudges
	}

	judge := r.judges[0]
	if judgeID != "" {
		found := false
		for _, j := range r.judges {
			if j.ID == judgeID {
				judge, found = j, true
				break
			}
		}
		if !found {
			return models.Link{}, fmt.Errorf("%w: judge %s not found", ErrNoJudges, judgeID)
		}
	}

	records, err := loadList[models.SubmissionRecord](ctx, s.docs, models.CollectionSubmissions, user)
	if err != nil {
		return models.Link{}, err
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].JudgeID == judge.ID {
			token := records[i].Token
			return models.Link{JudgeID: judge.ID, Token: token, URL: s.linkURL(token)}, nil
		}
	}

	rec, err := s.newRecord(judge, r)
	if err != nil {
		return models.Link{}, err
	}
	records = append(records, rec)
	if err := s.save(ctx, models.CollectionSubmissions, user, records); err != nil {
		return models.Link{}, err
	}

	slog.Info("link issued", "user", user, "judge_id", judge.ID)
	return models.Link{JudgeID: judge.ID, Token: rec.Token, URL: s.linkURL(rec.Token)}, nil
}

// ResetSubmissions deletes every issued link of the user
func (s *Service) ResetSubmissions(ctx context.Context, user string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	unlock := s.locks.lock(user)
	defer unlock()

	if err := s.drop(ctx, models.CollectionSubmissions, user); err != nil {
		return err
	}
	if err := s.drop(ctx, models.CollectionManualPlacement, user); err != nil {
		return err
	}

	slog.Info("submissions reset", "user", user)
	return nil
}
