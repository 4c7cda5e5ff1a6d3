// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"context"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/placings/models"
)

const defaultReportTitle = "Final report"

// BuildReport renders the final results table, with the manual placement
// applied when one is saved
func (s *Service) BuildReport(ctx context.Context, user string) (models.Report, error) {
	results, err := s.ComputeResults(ctx, user)
	if err != nil {
		return models.Report{}, err
	}
	placements, err := s.ManualPlacement(ctx, user)
	if err != nil {
		return models.Report{}, err
	}
	settings, err := s.ReportSettings(ctx, user)
	if err != nil {
		return models.Report{}, err
	}

	manual := len(placements) > 0
	if manual {
		results = ApplyManualPlacement(results, placements)
	}
	return RenderReport(results, settings, manual), nil
}

// RenderReport lays results out as rows ordered by place
func RenderReport(results models.Results, settings models.ReportSettings, manual bool) models.Report {
	title := settings.Title
	if title == "" {
		title = defaultReportTitle
	}

	header := []string{"Number", "Team"}
	for _, col := range results.Stages {
		header = append(header, col.Name)
	}
	header = append(header, "Total", "Place")

	rows := make([]models.ResultRow, len(results.Rows))
	copy(rows, results.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Place < rows[j].Place
	})

	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := []string{string(row.TeamNumber), row.TeamName}
		for _, col := range results.Stages {
			if v := row.PerStage[col.ID]; v != nil {
				line = append(line, humanize.Ftoa(*v))
			} else {
				line = append(line, "")
			}
		}
		line = append(line, humanize.Ftoa(row.Total), strconv.Itoa(row.Place))
		body = append(body, line)
	}

	return models.Report{
		Title:     title,
		Signature: settings.Signature,
		Manual:    manual,
		Header:    header,
		Body:      body,
	}
}
