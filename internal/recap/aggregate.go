// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package recap

import (
	"math"
	"sort"
	"time"

	"github.com/tomtom215/reelwrap/internal/models"
)

// Aggregate folds cleaned records into the recap statistics in a single
// pass. The caller guarantees len(cleaned) > 0.
//
// Invariants maintained here: every cleaned record lands in exactly one
// ShowAggregate, the per-show watch times sum to the total watch time, and
// the monthly histogram sums to the total title count.
func Aggregate(cleaned []models.CleanedRecord, p Params) *models.RecapStats {
	// Chronological order with a title tiebreak keeps the whole fold
	// deterministic regardless of input row order.
	sorted := make([]models.CleanedRecord, len(cleaned))
	copy(sorted, cleaned)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].StartTime.Before(sorted[j].StartTime)
		}
		return sorted[i].Title < sorted[j].Title
	})

	stats := &models.RecapStats{
		Year:      p.Year,
		Monthly:   emptyHistogram(models.MonthNames[1:]),
		DayOfWeek: emptyHistogram(models.DayNames),
		TimeOfDay: emptyHistogram(models.TimeOfDayBuckets),
	}

	shows := make(map[string]*models.ShowAggregate)
	seenDates := make(map[time.Time]struct{})
	var totalWatch time.Duration

	for _, r := range sorted {
		agg := shows[r.Show]
		if agg == nil {
			agg = &models.ShowAggregate{Name: r.Show}
			shows[r.Show] = agg
		}
		agg.Plays++
		agg.WatchTime += r.Duration
		agg.WatchTimes = append(agg.WatchTimes, r.StartTime)

		totalWatch += r.Duration
		stats.TotalTitles++
		if r.IsEpisode {
			stats.EpisodesWatched++
		} else {
			stats.MoviesWatched++
		}

		stats.Monthly[models.MonthNames[r.StartTime.Month()]]++
		stats.DayOfWeek[models.DayNames[r.StartTime.Weekday()]]++
		stats.TimeOfDay[models.TimeOfDayBucket(r.StartTime.Hour())]++

		seenDates[models.DateKey(r.StartTime)] = struct{}{}
	}

	stats.TotalHours = round2(totalWatch.Hours())
	stats.EstimatedDays = round2(totalWatch.Hours() / 24)
	stats.UniqueShows = len(shows)
	stats.TopShows = rankShows(shows, p.TopShows)

	stats.PeakMonth = peakKey(stats.Monthly, models.MonthNames[1:])
	stats.FavoriteDay = peakKey(stats.DayOfWeek, models.DayNames)
	stats.PeakTimeOfDay = peakKey(stats.TimeOfDay, models.TimeOfDayBuckets)

	dates := sortedDates(seenDates)
	stats.ActiveDays = len(dates)
	stats.LongestStreakDays = longestStreak(dates)
	stats.FirstWatchDate = dates[0].Format("2006-01-02")
	stats.LastWatchDate = dates[len(dates)-1].Format("2006-01-02")

	stats.BingeSessions, stats.BiggestBinge = bingeStats(sorted, p)

	stats.Personality, stats.PersonalityDescription = classify(personalityFacts{
		TotalHours:    stats.TotalHours,
		BingeSessions: stats.BingeSessions,
		PeakTimeOfDay: stats.PeakTimeOfDay,
		LongestStreak: stats.LongestStreakDays,
	})

	stats.FunFacts = funFacts(stats)

	return stats
}

// rankShows orders aggregates by play count descending, ties broken by
// total watch time descending, then by name for full determinism, and
// truncates to the top n.
func rankShows(shows map[string]*models.ShowAggregate, n int) []models.TopShow {
	ranked := make([]*models.ShowAggregate, 0, len(shows))
	for _, agg := range shows {
		ranked = append(ranked, agg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Plays != ranked[j].Plays {
			return ranked[i].Plays > ranked[j].Plays
		}
		if ranked[i].WatchTime != ranked[j].WatchTime {
			return ranked[i].WatchTime > ranked[j].WatchTime
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	top := make([]models.TopShow, 0, len(ranked))
	for _, agg := range ranked {
		top = append(top, models.TopShow{
			Name:  agg.Name,
			Plays: agg.Plays,
			Hours: round2(agg.Hours()),
		})
	}
	return top
}

// emptyHistogram returns a histogram with every named bucket present and
// zero, so the artifact always carries the full key set.
func emptyHistogram(keys []string) map[string]int {
	h := make(map[string]int, len(keys))
	for _, k := range keys {
		h[k] = 0
	}
	return h
}

// peakKey returns the key with the highest count. Ties resolve to the
// earliest key in display order.
func peakKey(h map[string]int, order []string) string {
	best := order[0]
	for _, k := range order[1:] {
		if h[k] > h[best] {
			best = k
		}
	}
	return best
}

// sortedDates returns the distinct watch dates in ascending order.
func sortedDates(set map[time.Time]struct{}) []time.Time {
	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// longestStreak returns the longest run of consecutive calendar dates.
// dates must be distinct and ascending.
func longestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	longest, current := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

// round2 rounds to two decimal places for stable artifact output.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
