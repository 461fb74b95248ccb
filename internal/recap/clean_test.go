// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package recap

import (
	"testing"
	"time"

	"github.com/tomtom215/reelwrap/internal/models"
)

// testParams returns defaults matching the shipped configuration.
func testParams(year int) Params {
	return Params{
		Year:          year,
		MinDuration:   time.Minute,
		TopShows:      10,
		BingeEpisodes: 3,
		SessionGap:    30 * time.Minute,
	}
}

func record(profile, title string, start time.Time, d time.Duration) models.ViewingRecord {
	return models.ViewingRecord{
		ProfileName: profile,
		Title:       title,
		StartTime:   start,
		Duration:    d,
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	in2025 := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

	t.Run("drops records from other years", func(t *testing.T) {
		t.Parallel()

		records := []models.ViewingRecord{
			record("Alice", "Keeper", in2025, time.Hour),
			record("Alice", "Old", time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), time.Hour),
			record("Alice", "New", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Hour),
		}

		cleaned := Clean(records, testParams(2025))
		if len(cleaned) != 1 {
			t.Fatalf("len(cleaned) = %d, want 1", len(cleaned))
		}
		if cleaned[0].Title != "Keeper" {
			t.Errorf("kept %q, want Keeper", cleaned[0].Title)
		}
	})

	t.Run("minimum duration is inclusive", func(t *testing.T) {
		t.Parallel()

		records := []models.ViewingRecord{
			record("Alice", "Too Short", in2025, 59*time.Second),
			record("Alice", "Exactly", in2025, time.Minute),
			record("Alice", "Long Enough", in2025, time.Hour),
		}

		cleaned := Clean(records, testParams(2025))
		if len(cleaned) != 2 {
			t.Fatalf("len(cleaned) = %d, want 2", len(cleaned))
		}
		for _, c := range cleaned {
			if c.Title == "Too Short" {
				t.Error("sub-threshold record survived")
			}
		}
	})

	t.Run("drops promotional rows", func(t *testing.T) {
		t.Parallel()

		records := []models.ViewingRecord{
			record("Alice", "The Irishman", in2025, time.Hour),
			{ProfileName: "Alice", Title: "Some Show", StartTime: in2025, Duration: time.Hour, Supplemental: "HOOK"},
			record("Alice", "The Gray Man Trailer", in2025, time.Hour),
		}

		cleaned := Clean(records, testParams(2025))
		if len(cleaned) != 1 {
			t.Fatalf("len(cleaned) = %d, want 1", len(cleaned))
		}
		if cleaned[0].Title != "The Irishman" {
			t.Errorf("kept %q, want The Irishman", cleaned[0].Title)
		}
	})

	t.Run("profile filter is case-insensitive", func(t *testing.T) {
		t.Parallel()

		records := []models.ViewingRecord{
			record("alice", "Hers", in2025, time.Hour),
			record("Bob", "His", in2025, time.Hour),
		}

		p := testParams(2025)
		p.Profile = "Alice"
		cleaned := Clean(records, p)
		if len(cleaned) != 1 {
			t.Fatalf("len(cleaned) = %d, want 1", len(cleaned))
		}
		if cleaned[0].Title != "Hers" {
			t.Errorf("kept %q, want Hers", cleaned[0].Title)
		}
	})

	t.Run("empty profile merges all profiles", func(t *testing.T) {
		t.Parallel()

		records := []models.ViewingRecord{
			record("Alice", "Hers", in2025, time.Hour),
			record("Bob", "His", in2025, time.Hour),
		}

		cleaned := Clean(records, testParams(2025))
		if len(cleaned) != 2 {
			t.Errorf("len(cleaned) = %d, want 2", len(cleaned))
		}
	})

	t.Run("survivors carry parsed show and episode flag", func(t *testing.T) {
		t.Parallel()

		records := []models.ViewingRecord{
			record("Alice", "Dark: Season 1: Secrets", in2025, time.Hour),
			record("Alice", "The Irishman", in2025, time.Hour),
		}

		cleaned := Clean(records, testParams(2025))
		if len(cleaned) != 2 {
			t.Fatalf("len(cleaned) = %d, want 2", len(cleaned))
		}
		if cleaned[0].Show != "Dark" || !cleaned[0].IsEpisode {
			t.Errorf("episode parsed as %q/%v, want Dark/true", cleaned[0].Show, cleaned[0].IsEpisode)
		}
		if cleaned[1].Show != "The Irishman" || cleaned[1].IsEpisode {
			t.Errorf("movie parsed as %q/%v, want The Irishman/false", cleaned[1].Show, cleaned[1].IsEpisode)
		}
	})
}
