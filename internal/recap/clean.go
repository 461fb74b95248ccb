// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package recap

import (
	"strings"

	"github.com/tomtom215/reelwrap/internal/models"
	"github.com/tomtom215/reelwrap/internal/netflix"
)

// Clean applies the validity filters in a fixed order:
//
//  1. profile selection (when configured)
//  2. target-year filter on the start timestamp
//  3. minimum-duration filter
//  4. non-content filter (trailers, hooks, previews)
//
// The year filter runs before the others so records from other years never
// reach any later stage. No filter may be skipped. The surviving records
// carry the parsed show name and episode flag.
func Clean(records []models.ViewingRecord, p Params) []models.CleanedRecord {
	cleaned := make([]models.CleanedRecord, 0, len(records))

	for _, r := range records {
		if p.Profile != "" && !strings.EqualFold(r.ProfileName, p.Profile) {
			continue
		}
		if r.StartTime.Year() != p.Year {
			continue
		}
		if r.Duration < p.MinDuration {
			continue
		}
		if netflix.IsNonContent(r.Title, r.Supplemental) {
			continue
		}

		show, isEpisode := netflix.ParseTitle(r.Title)
		cleaned = append(cleaned, models.CleanedRecord{
			ViewingRecord: r,
			Show:          show,
			IsEpisode:     isEpisode,
		})
	}

	return cleaned
}
