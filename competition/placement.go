// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/placings/models"
)

func (s *Service) ManualPlacement(ctx context.Context, user string) ([]models.ManualPlacement, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	return loadList[models.ManualPlacement](ctx, s.docs, models.CollectionManualPlacement, user)
}

// SetManualPlacement stores placements without checking them.
// SaveManualPlacement is the validating entry point.
func (s *Service) SetManualPlacement(ctx context.Context, user string, placements []models.ManualPlacement) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if placements == nil {
		return fmt.Errorf("%w: placements must be an array", ErrInvalidPayload)
	}

	unlock := s.locks.lock(user)
	defer unlock()

	return s.save(ctx, models.CollectionManualPlacement, user, placements)
}

// SaveManualPlacement checks placements against the current results and
// stores them. Validation and write run under the user lock, so a
// concurrent data change either precedes the check or clears the overlay.
func (s *Service) SaveManualPlacement(ctx context.Context, user string, placements []models.ManualPlacement) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if placements == nil {
		return fmt.Errorf("%w: placements must be an array", ErrInvalidPayload)
	}

	unlock := s.locks.lock(user)
	defer unlock()

	results, err := s.ComputeResults(ctx, user)
	if err != nil {
		return err
	}

	teamIDs := make([]string, 0, len(results.Rows))
	for _, row := range results.Rows {
		teamIDs = append(teamIDs, row.TeamID)
	}
	if err := ValidatePlacements(placements, teamIDs); err != nil {
		return err
	}

	if err := s.save(ctx, models.CollectionManualPlacement, user, placements); err != nil {
		return err
	}

	slog.Info("manual placement saved", "user", user, "teams", len(placements))
	return nil
}

func (s *Service) ResetManualPlacement(ctx context.Context, user string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	unlock := s.locks.lock(user)
	defer unlock()

	return s.drop(ctx, models.CollectionManualPlacement, user)
}

// ValidatePlacements requires one placement per team in teamIDs and places
// forming a permutation of 1..N
func ValidatePlacements(placements []models.ManualPlacement, teamIDs []string) error {
	n := len(teamIDs)
	if len(placements) != n {
		return fmt.Errorf("%w: expected %d placements, got %d", ErrInvalidPayload, n, len(placements))
	}

	known := make(map[string]bool, n)
	for _, id := range teamIDs {
		known[id] = true
	}

	seenTeams := make(map[string]bool, n)
	seenPlaces := make(map[int]bool, n)
	for _, p := range placements {
		if !known[p.TeamID] {
			return fmt.Errorf("%w: unknown team %q", ErrInvalidPayload, p.TeamID)
		}
		if seenTeams[p.TeamID] {
			return fmt.Errorf("%w: team %q placed twice", ErrInvalidPayload, p.TeamID)
		}
		if p.Place < 1 || p.Place > n {
			return fmt.Errorf("%w: place %d out of range 1..%d", ErrInvalidPayload, p.Place, n)
		}
		if seenPlaces[p.Place] {
			return fmt.Errorf("%w: place %d used twice", ErrInvalidPayload, p.Place)
		}
		seenTeams[p.TeamID] = true
		seenPlaces[p.Place] = true
	}
	return nil
}

// ApplyManualPlacement overrides computed places by team ID. Totals and
// per-stage values are left as computed. The input is not modified.
func ApplyManualPlacement(results models.Results, placements []models.ManualPlacement) models.Results {
	if len(placements) == 0 {
		return results
	}

	manual := make(map[string]int, len(placements))
	for _, p := range placements {
		manual[p.TeamID] = p.Place
	}

	rows := make([]models.ResultRow, len(results.Rows))
	copy(rows, results.Rows)
	for i := range rows {
		if place, ok := manual[rows[i].TeamID]; ok {
			rows[i].Place = place
		}
	}

	results.Rows = rows
	return results
}
