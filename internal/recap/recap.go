// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

// Package recap turns raw viewing records into the annual recap statistics.
//
// The pipeline is a pure deterministic fold: Clean applies the year,
// duration and non-content filters in that order, then Aggregate makes a
// single pass over the cleaned records building per-show aggregates,
// histograms, streaks and binge sessions, and finally classifies the
// viewer's personality from a priority-ordered decision table. Re-running
// with identical input and parameters yields identical output; no statistic
// depends on the wall clock.
package recap

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/reelwrap/internal/models"
	"github.com/tomtom215/reelwrap/internal/validation"
)

// ErrNoQualifyingRecords means cleaning left nothing to aggregate for the
// requested year. Fatal: no artifact is written.
var ErrNoQualifyingRecords = errors.New("no qualifying viewing records for the requested year")

// Params are the explicit inputs of the aggregation. They are passed by
// value into every stage; nothing is read from ambient state.
type Params struct {
	// Year is the target calendar year. Records outside it contribute to
	// nothing.
	Year int `validate:"required,min=1997,max=2100"`

	// Profile, when non-empty, restricts the recap to one profile name.
	Profile string

	// MinDuration discards views shorter than the threshold.
	MinDuration time.Duration `validate:"min=0"`

	// TopShows is the length of the ranked top-shows list.
	TopShows int `validate:"min=1,max=100"`

	// BingeEpisodes is the minimum episode count for a binge session.
	BingeEpisodes int `validate:"min=2"`

	// SessionGap is the maximum pause between one record's end and the
	// next record's start within a single viewing session.
	SessionGap time.Duration `validate:"min=1m"`
}

// Generate runs the full pipeline: validate parameters, clean, aggregate.
func Generate(records []models.ViewingRecord, p Params) (*models.RecapStats, error) {
	if err := validation.ValidateStruct(&p); err != nil {
		return nil, fmt.Errorf("recap parameters: %w", err)
	}

	cleaned := Clean(records, p)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: year %d", ErrNoQualifyingRecords, p.Year)
	}

	return Aggregate(cleaned, p), nil
}

// ResolveYear returns the most recent calendar year present in the records.
// Used when no target year is configured; derived from the data, not the
// clock, so runs stay reproducible.
func ResolveYear(records []models.ViewingRecord) (int, error) {
	year := 0
	for _, r := range records {
		if y := r.StartTime.Year(); y > year {
			year = y
		}
	}
	if year == 0 {
		return 0, ErrNoQualifyingRecords
	}
	return year, nil
}
