// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package recap

import (
	"fmt"
	"math"

	"github.com/tomtom215/reelwrap/internal/models"
)

// maxFunFacts keeps the stat-card grid on the recap site balanced.
const maxFunFacts = 4

// funFacts derives the small stat cards shown on the recap site.
// Cards are appended in a fixed order and capped at maxFunFacts, so the
// output is deterministic.
func funFacts(stats *models.RecapStats) []models.FunFact {
	facts := make([]models.FunFact, 0, maxFunFacts)

	if stats.TotalHours > 0 {
		facts = append(facts, models.FunFact{
			Icon:  "clock",
			Stat:  fmt.Sprintf("%.0f", math.Round(stats.TotalHours)),
			Label: "hours of entertainment",
		})
	}

	if stats.UniqueShows > 0 {
		facts = append(facts, models.FunFact{
			Icon:  "grid",
			Stat:  fmt.Sprintf("%d", stats.UniqueShows),
			Label: "different shows explored",
		})
	}

	total := 0
	for _, n := range stats.TimeOfDay {
		total += n
	}
	if total > 0 {
		nightPct := int(math.Round(float64(stats.TimeOfDay[models.BucketNight]) / float64(total) * 100))
		if nightPct > 20 {
			facts = append(facts, models.FunFact{
				Icon:  "moon",
				Stat:  fmt.Sprintf("%d%%", nightPct),
				Label: "late night sessions",
			})
		}
	}

	if stats.ActiveDays > 0 {
		facts = append(facts, models.FunFact{
			Icon:  "calendar",
			Stat:  fmt.Sprintf("%d", stats.ActiveDays),
			Label: "days you tuned in",
		})
	}

	if len(facts) > maxFunFacts {
		facts = facts[:maxFunFacts]
	}
	return facts
}
