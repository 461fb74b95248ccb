// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

// Package report persists the recap artifact and renders the run summary.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelwrap/internal/models"
)

// ErrWriteFailed means the artifact could not be persisted.
var ErrWriteFailed = errors.New("recap artifact could not be written")

// Write serializes the stats to path as indented JSON, overwriting any
// prior artifact. The write goes through a temp file and rename in the same
// directory, so a failed run never leaves a truncated artifact behind.
func Write(stats *models.RecapStats, path string) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrWriteFailed, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".recap_stats-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()          //nolint:errcheck // error path cleanup
		os.Remove(tmpName)   //nolint:errcheck // error path cleanup
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck // error path cleanup
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck // error path cleanup
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return nil
}

// Summary renders the human-readable run summary printed to stdout on
// success.
func Summary(stats *models.RecapStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recap for %d\n", stats.Year)
	fmt.Fprintf(&b, "  Total watch time: %.1f hours (%.1f days)\n", stats.TotalHours, stats.EstimatedDays)
	fmt.Fprintf(&b, "  Titles watched:   %d (%d unique shows)\n", stats.TotalTitles, stats.UniqueShows)

	if len(stats.TopShows) > 0 {
		top := stats.TopShows[0]
		fmt.Fprintf(&b, "  #1 show:          %s (%d plays, %.1f hours)\n", top.Name, top.Plays, top.Hours)
	}

	fmt.Fprintf(&b, "  Longest streak:   %d days\n", stats.LongestStreakDays)
	fmt.Fprintf(&b, "  Binge sessions:   %d\n", stats.BingeSessions)
	fmt.Fprintf(&b, "  Personality:      %s\n", stats.Personality)

	return b.String()
}
