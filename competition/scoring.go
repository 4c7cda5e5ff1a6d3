// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/placings/models"
)

// ComputeResults ranks the user's teams from all submitted placements
func (s *Service) ComputeResults(ctx context.Context, user string) (models.Results, error) {
	if err := requireUser(user); err != nil {
		return models.Results{}, err
	}

	stages, err := loadList[models.Stage](ctx, s.docs, models.CollectionStages, user)
	if err != nil {
		return models.Results{}, err
	}
	teams, err := loadList[models.Team](ctx, s.docs, models.CollectionTeams, user)
	if err != nil {
		return models.Results{}, err
	}
	records, err := loadList[models.SubmissionRecord](ctx, s.docs, models.CollectionSubmissions, user)
	if err != nil {
		return models.Results{}, err
	}

	return Score(stages, teams, records), nil
}

// Score sums each team's placements across stages; the lowest total wins.
//
// Placements are keyed by the stage snapshot on each record. When several
// records cover the same stage and team, the later record in registry order
// overwrites the earlier one. A missing or non-numeric placement shows as
// null and adds 0 to the total. Equal totals keep team-list order and places
// are sequential, never shared.
func Score(stages []models.Stage, teams []models.Team, records []models.SubmissionRecord) models.Results {
	// stage ID -> team ID -> place
	places := make(map[string]map[string]float64)
	for _, rec := range records {
		if rec.Stage == nil || rec.Stage.ID == "" {
			continue
		}
		byTeam, ok := places[rec.Stage.ID]
		if !ok {
			byTeam = make(map[string]float64)
			places[rec.Stage.ID] = byTeam
		}
		for _, a := range rec.Answers {
			if a.TeamID == "" || a.Value == "" {
				continue
			}
			byTeam[a.TeamID] = parsePlace(a.Value)
		}
	}

	rows := make([]models.ResultRow, 0, len(teams))
	for _, team := range teams {
		row := models.ResultRow{
			TeamID:     team.ID,
			TeamName:   team.Name,
			TeamNumber: team.Number,
			PerStage:   make(map[string]*float64, len(stages)),
		}
		for _, stage := range stages {
			v, ok := places[stage.ID][team.ID]
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
				row.PerStage[stage.ID] = nil
				continue
			}
			row.PerStage[stage.ID] = &v
			row.Total += v
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total < rows[j].Total
	})
	for i := range rows {
		rows[i].Place = i + 1 // 1-indexed ranking
	}

	columns := make([]models.StageColumn, 0, len(stages))
	for _, stage := range stages {
		columns = append(columns, models.StageColumn{ID: stage.ID, Name: stage.DisplayName()})
	}

	refs := make([]models.TeamRef, 0, len(teams))
	for _, team := range teams {
		refs = append(refs, models.TeamRef{ID: team.ID, Name: team.Name, Number: team.Number})
	}

	return models.Results{Stages: columns, Teams: refs, Rows: rows}
}

// parsePlace accepts decimal notation only. Blank, hex and other
// non-numeric values return NaN and are scored as missing.
func parsePlace(v models.FlexString) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
