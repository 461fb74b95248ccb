// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package recap

import (
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/reelwrap/internal/models"
)

func TestGenerateTotalsAndTopShows(t *testing.T) {
	t.Parallel()

	records := []models.ViewingRecord{
		record("Alice", "Show A: Season 1: One", time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC), time.Hour),
		record("Alice", "Show A: Season 1: Two", time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC), 45*time.Minute),
		record("Alice", "Show B", time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC), 5*time.Minute),
	}

	p := testParams(2025)
	p.MinDuration = 10 * time.Minute

	stats, err := Generate(records, p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if stats.Year != 2025 {
		t.Errorf("Year = %d, want 2025", stats.Year)
	}
	if stats.TotalTitles != 2 {
		t.Errorf("TotalTitles = %d, want 2", stats.TotalTitles)
	}
	if stats.UniqueShows != 1 {
		t.Errorf("UniqueShows = %d, want 1", stats.UniqueShows)
	}
	if stats.TotalHours != 1.75 {
		t.Errorf("TotalHours = %v, want 1.75", stats.TotalHours)
	}
	if stats.EpisodesWatched != 2 || stats.MoviesWatched != 0 {
		t.Errorf("episodes/movies = %d/%d, want 2/0", stats.EpisodesWatched, stats.MoviesWatched)
	}

	if len(stats.TopShows) != 1 {
		t.Fatalf("len(TopShows) = %d, want 1", len(stats.TopShows))
	}
	top := stats.TopShows[0]
	if top.Name != "Show A" || top.Plays != 2 || top.Hours != 1.75 {
		t.Errorf("TopShows[0] = %+v, want {Show A 2 1.75}", top)
	}

	if stats.Monthly["March"] != 2 {
		t.Errorf("Monthly[March] = %d, want 2", stats.Monthly["March"])
	}
	if stats.PeakMonth != "March" {
		t.Errorf("PeakMonth = %q, want March", stats.PeakMonth)
	}
	if stats.FirstWatchDate != "2025-03-01" || stats.LastWatchDate != "2025-03-02" {
		t.Errorf("watch dates = %s..%s, want 2025-03-01..2025-03-02", stats.FirstWatchDate, stats.LastWatchDate)
	}
}

func TestGenerateHistogramsCompleteAndConsistent(t *testing.T) {
	t.Parallel()

	records := []models.ViewingRecord{
		record("Alice", "A", time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC), time.Hour),   // Monday morning
		record("Alice", "B", time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC), time.Hour), // Saturday afternoon
		record("Alice", "C", time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC), time.Hour), // Saturday evening
		record("Alice", "D", time.Date(2025, 11, 2, 23, 0, 0, 0, time.UTC), time.Hour), // Sunday night
	}

	stats, err := Generate(records, testParams(2025))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Every display key must be present even when zero.
	if len(stats.Monthly) != 12 {
		t.Errorf("len(Monthly) = %d, want 12", len(stats.Monthly))
	}
	if len(stats.DayOfWeek) != 7 {
		t.Errorf("len(DayOfWeek) = %d, want 7", len(stats.DayOfWeek))
	}
	if len(stats.TimeOfDay) != 4 {
		t.Errorf("len(TimeOfDay) = %d, want 4", len(stats.TimeOfDay))
	}

	for _, h := range []map[string]int{stats.Monthly, stats.DayOfWeek, stats.TimeOfDay} {
		sum := 0
		for _, n := range h {
			sum += n
		}
		if sum != stats.TotalTitles {
			t.Errorf("histogram sums to %d, want TotalTitles %d", sum, stats.TotalTitles)
		}
	}

	if stats.TimeOfDay[models.BucketMorning] != 1 {
		t.Errorf("TimeOfDay[Morning] = %d, want 1", stats.TimeOfDay[models.BucketMorning])
	}
	if stats.FavoriteDay != "Saturday" {
		t.Errorf("FavoriteDay = %q, want Saturday", stats.FavoriteDay)
	}
	if stats.PeakMonth != "June" {
		t.Errorf("PeakMonth = %q, want June", stats.PeakMonth)
	}
}

func TestGenerateStreaks(t *testing.T) {
	t.Parallel()

	// Two consecutive days, a five-day gap, then one more day.
	records := []models.ViewingRecord{
		record("Alice", "A", time.Date(2025, 2, 1, 20, 0, 0, 0, time.UTC), time.Hour),
		record("Alice", "A", time.Date(2025, 2, 1, 22, 0, 0, 0, time.UTC), time.Hour), // same day twice
		record("Alice", "A", time.Date(2025, 2, 2, 20, 0, 0, 0, time.UTC), time.Hour),
		record("Alice", "A", time.Date(2025, 2, 8, 20, 0, 0, 0, time.UTC), time.Hour),
	}

	stats, err := Generate(records, testParams(2025))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if stats.ActiveDays != 3 {
		t.Errorf("ActiveDays = %d, want 3", stats.ActiveDays)
	}
	if stats.LongestStreakDays != 2 {
		t.Errorf("LongestStreakDays = %d, want 2", stats.LongestStreakDays)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	records := []models.ViewingRecord{
		record("Alice", "Show A: Season 1: One", time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC), time.Hour),
		record("Alice", "Show B: Season 2: Nine", time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC), time.Hour),
		record("Alice", "The Irishman", time.Date(2025, 5, 4, 21, 0, 0, 0, time.UTC), 3*time.Hour),
		record("Alice", "Show A: Season 1: Two", time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC), time.Hour),
	}

	reversed := make([]models.ViewingRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	a, err := Generate(records, testParams(2025))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate(reversed, testParams(2025))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("output depends on input order:\n%+v\n%+v", a, b)
	}
}

func TestRankShows(t *testing.T) {
	t.Parallel()

	shows := map[string]*models.ShowAggregate{
		"Beta":  {Name: "Beta", Plays: 3, WatchTime: 3 * time.Hour},
		"Alpha": {Name: "Alpha", Plays: 3, WatchTime: 3 * time.Hour},
		"Gamma": {Name: "Gamma", Plays: 3, WatchTime: 5 * time.Hour},
		"Delta": {Name: "Delta", Plays: 10, WatchTime: time.Hour},
	}

	top := rankShows(shows, 3)
	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(top))
	}

	// Plays desc, then watch time desc, then name asc.
	want := []string{"Delta", "Gamma", "Alpha"}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d] = %q, want %q", i, top[i].Name, name)
		}
	}
}

func TestLongestStreak(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{name: "empty", dates: nil, want: 0},
		{name: "single day", dates: []time.Time{day(1)}, want: 1},
		{name: "run of three", dates: []time.Time{day(1), day(2), day(3), day(10)}, want: 3},
		{name: "longest run last", dates: []time.Time{day(1), day(5), day(6), day(7), day(8)}, want: 4},
		{name: "no consecutive days", dates: []time.Time{day(1), day(3), day(5)}, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := longestStreak(tt.dates); got != tt.want {
				t.Errorf("longestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPeakKeyTieBreaksToDisplayOrder(t *testing.T) {
	t.Parallel()

	h := map[string]int{"Morning": 2, "Afternoon": 2, "Evening": 1, "Night": 0}
	if got := peakKey(h, models.TimeOfDayBuckets); got != models.BucketMorning {
		t.Errorf("peakKey() = %q, want Morning", got)
	}
}
