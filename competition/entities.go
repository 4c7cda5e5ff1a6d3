// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/placings/auth"
	"github.com/danielhkuo/placings/models"
)

func (s *Service) Judges(ctx context.Context, user string) ([]models.Judge, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return loadList[models.Judge](ctx, s.docs, models.CollectionJudges, user)
}

// SaveJudges replaces the user's judges and drops the manual placement
func (s *Service) SaveJudges(ctx context.Context, user string, judges []models.Judge) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if judges == nil {
		return fmt.Errorf("%w: judges must be an array", ErrInvalidPayload)
	}
	for i := range judges {
		if judges[i].ID == "" {
			judges[i].ID = auth.NewID()
		}
	}

	unlock := s.locks.lock(user)
	defer unlock()

	if err := s.save(ctx, models.CollectionJudges, user, judges); err != nil {
		return err
	}
	if err := s.drop(ctx, models.CollectionManualPlacement, user); err != nil {
		return err
	}

	slog.Info("judges saved", "user", user, "count", len(judges))
	return nil
}

func (s *Service) Stages(ctx context.Context, user string) ([]models.Stage, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return loadList[models.Stage](ctx, s.docs, models.CollectionStages, user)
}

// SaveStages replaces the user's stages. Issued links carry stage snapshots,
// so the whole submission registry is cleared along with the manual placement.
func (s *Service) SaveStages(ctx context.Context, user string, stages []models.Stage) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if stages == nil {
		return fmt.Errorf("%w: stages must be an array", ErrInvalidPayload)
	}
	for i := range stages {
		if stages[i].ID == "" {
			stages[i].ID = auth.NewID()
		}
	}

	unlock := s.locks.lock(user)
	defer unlock()

	if err := s.save(ctx, models.CollectionStages, user, stages); err != nil {
		return err
	}
	if err := s.drop(ctx, models.CollectionSubmissions, user); err != nil {
		return err
	}
	if err := s.drop(ctx, models.CollectionManualPlacement, user); err != nil {
		return err
	}

	slog.Info("stages saved, submissions cleared", "user", user, "count", len(stages))
	return nil
}

func (s *Service) Teams(ctx context.Context, user string) ([]models.Team, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return loadList[models.Team](ctx, s.docs, models.CollectionTeams, user)
}

func (s *Service) SaveTeams(ctx context.Context, user string, teams []models.Team) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if teams == nil {
		return fmt.Errorf("%w: teams must be an array", ErrInvalidPayload)
	}
	for i := range teams {
		if teams[i].ID == "" {
			teams[i].ID = auth.NewID()
		}
	}

	unlock := s.locks.lock(user)
	defer unlock()

	if err := s.save(ctx, models.CollectionTeams, user, teams); err != nil {
		return err
	}
	if err := s.drop(ctx, models.CollectionManualPlacement, user); err != nil {
		return err
	}

	slog.Info("teams saved", "user", user, "count", len(teams))
	return nil
}

func (s *Service) Distribution(ctx context.Context, user string) ([]models.DistributionPair, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return loadList[models.DistributionPair](ctx, s.docs, models.CollectionDistribution, user)
}

// SaveDistribution stores pairs as given; several pairs per judge are
// allowed and the first one wins on lookup.
func (s *Service) SaveDistribution(ctx context.Context, user string, pairs []models.DistributionPair) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if pairs == nil {
		return fmt.Errorf("%w: distribution must be an array", ErrInvalidPayload)
	}
	for i := range pairs {
		if pairs[i].ID == "" {
			pairs[i].ID = auth.NewID()
		}
	}

	unlock := s.locks.lock(user)
	defer unlock()

	if err := s.save(ctx, models.CollectionDistribution, user, pairs); err != nil {
		return err
	}
	if err := s.drop(ctx, models.CollectionManualPlacement, user); err != nil {
		return err
	}

	slog.Info("distribution saved", "user", user, "count", len(pairs))
	return nil
}

func (s *Service) ReportSettings(ctx context.Context, user string) (models.ReportSettings, error) {
	if err := requireUser(user); err != nil {
		return models.ReportSettings{}, err
	}

	var settings models.ReportSettings
	if _, err := s.docs.Get(ctx, models.CollectionReportSettings, user, &settings); err != nil {
		return models.ReportSettings{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return settings, nil
}

func (s *Service) SaveReportSettings(ctx context.Context, user string, settings models.ReportSettings) error {
	if err := requireUser(user); err != nil {
		return err
	}
	return s.save(ctx, models.CollectionReportSettings, user, settings)
}
