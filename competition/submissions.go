// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/placings/models"
)

func indexOfToken(records []models.SubmissionRecord, token string) int {
	for i, rec := range records {
		if rec.Token == token {
			return i
		}
	}
	return -1
}

// locate finds the user owning a token by scanning every registry.
// Cost grows with the total number of issued tokens.
func (s *Service) locate(ctx context.Context, token string) (string, []models.SubmissionRecord, int, error) {
	if token == "" {
		return "", nil, -1, fmt.Errorf("%w: token is required", ErrMissingParameter)
	}

	users, err := s.docs.Users(ctx, models.CollectionSubmissions)
	if err != nil {
		return "", nil, -1, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	for _, user := range users {
		records, err := loadList[models.SubmissionRecord](ctx, s.docs, models.CollectionSubmissions, user)
		if err != nil {
			return "", nil, -1, err
		}
		if i := indexOfToken(records, token); i >= 0 {
			return user, records, i, nil
		}
	}

	return "", nil, -1, ErrInvalidToken
}

// resolveView merges a record with the user's current data. Teams are always
// the current list; stage and judge name fall back to the snapshot when the
// live value cannot be resolved.
func resolveView(rec models.SubmissionRecord, r roster) models.SubmissionView {
	view := models.SubmissionView{
		JudgeID:   rec.JudgeID,
		JudgeName: rec.JudgeName,
		Stage:     rec.Stage,
		Teams:     r.teams,
		Answers:   rec.Answers,
		Submitted: rec.Submitted,
	}

	if stage := assignedStage(rec.JudgeID, r.distribution, r.stages); stage != nil {
		view.Stage = stage
	}
	for _, judge := range r.judges {
		if judge.ID == rec.JudgeID {
			view.JudgeName = judge.FullName
			break
		}
	}

	if view.Teams == nil {
		view.Teams = []models.Team{}
	}
	if view.Answers == nil {
		view.Answers = []models.Answer{}
	}
	return view
}

// GetSubmission returns the judge-facing view behind a token
func (s *Service) GetSubmission(ctx context.Context, token string) (models.SubmissionView, error) {
	user, records, i, err := s.locate(ctx, token)
	if err != nil {
		return models.SubmissionView{}, err
	}

	r, err := s.loadRoster(ctx, user)
	if err != nil {
		return models.SubmissionView{}, err
	}

	return resolveView(records[i], r), nil
}

// UpdateSubmission replaces answers when given (nil leaves them alone).
// submitted=true finalizes this record only; submitted=false reopens every
// record of the same judge so no stale token keeps reporting them done.
func (s *Service) UpdateSubmission(ctx context.Context, token string, answers []models.Answer, submitted *bool) error {
	user, _, _, err := s.locate(ctx, token)
	if err != nil {
		return err
	}

	unlock := s.locks.lock(user)
	defer unlock()

	// Re-read under the lock; the registry may have been reset meanwhile
	records, err := loadList[models.SubmissionRecord](ctx, s.docs, models.CollectionSubmissions, user)
	if err != nil {
		return err
	}
	i := indexOfToken(records, token)
	if i < 0 {
		return ErrInvalidToken
	}

	if answers != nil {
		records[i].Answers = answers
	}
	if submitted != nil {
		if *submitted {
			records[i].Submitted = true
		} else {
			judgeID := records[i].JudgeID
			for j := range records {
				if records[j].JudgeID == judgeID {
					records[j].Submitted = false
				}
			}
		}
	}

	if err := s.save(ctx, models.CollectionSubmissions, user, records); err != nil {
		return err
	}
	if err := s.drop(ctx, models.CollectionManualPlacement, user); err != nil {
		return err
	}

	slog.Info("submission updated",
		"user", user,
		"judge_id", records[i].JudgeID,
		"answers", len(records[i].Answers),
		"submitted", records[i].Submitted,
	)
	return nil
}

// Status reports, per judge, whether any of their links was finalized
func (s *Service) Status(ctx context.Context, user string) ([]models.JudgeStatus, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	judges, err := loadList[models.Judge](ctx, s.docs, models.CollectionJudges, user)
	if err != nil {
		return nil, err
	}
	records, err := loadList[models.SubmissionRecord](ctx, s.docs, models.CollectionSubmissions, user)
	if err != nil {
		return nil, err
	}

	done := make(map[string]bool)
	for _, rec := range records {
		if rec.Submitted {
			done[rec.JudgeID] = true
		}
	}

	status := make([]models.JudgeStatus, 0, len(judges))
	for _, judge := range judges {
		status = append(status, models.JudgeStatus{JudgeID: judge.ID, Submitted: done[judge.ID]})
	}
	return status, nil
}
