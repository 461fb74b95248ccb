// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package recap

import (
	"sort"

	"github.com/tomtom215/reelwrap/internal/models"
)

// bingeStats detects binge sessions among episode records.
//
// Records are partitioned by show and ordered by start time. A record
// continues the current session when it starts within SessionGap of the
// previous record's end (start + duration); otherwise it opens a new one.
// Sessions of at least BingeEpisodes episodes count as binges. The biggest
// binge is the session with the most episodes, ties resolved to the
// earliest session start.
func bingeStats(cleaned []models.CleanedRecord, p Params) (int, *models.BingeHighlight) {
	byShow := make(map[string][]models.CleanedRecord)
	for _, r := range cleaned {
		if !r.IsEpisode {
			continue
		}
		byShow[r.Show] = append(byShow[r.Show], r)
	}

	// Iterate shows in name order so tie-breaking is deterministic.
	names := make([]string, 0, len(byShow))
	for name := range byShow {
		names = append(names, name)
	}
	sort.Strings(names)

	count := 0
	var biggest *models.BingeHighlight
	var biggestStart models.CleanedRecord

	for _, name := range names {
		episodes := byShow[name]
		// Input is already chronological (Aggregate sorts), but a
		// per-show re-sort keeps this function safe standalone.
		sort.Slice(episodes, func(i, j int) bool {
			return episodes[i].StartTime.Before(episodes[j].StartTime)
		})

		sessionLen := 1
		sessionStart := episodes[0]
		flush := func() {
			if sessionLen < p.BingeEpisodes {
				return
			}
			count++
			if biggest == nil ||
				sessionLen > biggest.Episodes ||
				(sessionLen == biggest.Episodes && sessionStart.StartTime.Before(biggestStart.StartTime)) {
				biggest = &models.BingeHighlight{
					Show:     name,
					Episodes: sessionLen,
					Date:     sessionStart.StartTime.Format("2006-01-02"),
				}
				biggestStart = sessionStart
			}
		}

		for i := 1; i < len(episodes); i++ {
			gap := episodes[i].StartTime.Sub(episodes[i-1].EndTime())
			if gap <= p.SessionGap {
				sessionLen++
				continue
			}
			flush()
			sessionLen = 1
			sessionStart = episodes[i]
		}
		flush()
	}

	return count, biggest
}
