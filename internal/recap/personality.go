// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package recap

import "github.com/tomtom215/reelwrap/internal/models"

// personalityFacts are the aggregate inputs of the classification.
type personalityFacts struct {
	TotalHours    float64
	BingeSessions int
	PeakTimeOfDay string
	LongestStreak int
}

// personalityRule pairs a predicate with the label it awards.
type personalityRule struct {
	label       string
	description string
	matches     func(f personalityFacts) bool
}

// personalityRules is the decision table, evaluated top to bottom; the
// first matching rule wins. Keeping the rules in one ordered list makes the
// classification auditable and testable in isolation.
var personalityRules = []personalityRule{
	{
		label:       "The Streaming Champion",
		description: "Netflix might as well be your second home. You have seen it ALL.",
		matches:     func(f personalityFacts) bool { return f.TotalHours > 500 },
	},
	{
		label:       "The Binge Master",
		description: "One more episode? Make that ten. Sleep is optional when the plot thickens.",
		matches:     func(f personalityFacts) bool { return f.BingeSessions > 50 },
	},
	{
		label:       "The Night Owl",
		description: "The best shows come out at night. Or maybe you just lost track of time again.",
		matches:     func(f personalityFacts) bool { return f.PeakTimeOfDay == models.BucketNight },
	},
	{
		label:       "The Devoted Streamer",
		description: "Rain or shine, you never miss a day. Netflix is part of your daily routine.",
		matches:     func(f personalityFacts) bool { return f.LongestStreak > 30 },
	},
	{
		label:       "The Enthusiast",
		description: "You know what you like and you are not afraid to watch it all.",
		matches:     func(f personalityFacts) bool { return f.TotalHours > 200 },
	},
	{
		label:       "The Early Bird",
		description: "Coffee and Netflix? You start your days right.",
		matches:     func(f personalityFacts) bool { return f.PeakTimeOfDay == models.BucketMorning },
	},
	{
		label:       "The Casual Viewer",
		description: "You enjoy Netflix at a comfortable pace.",
		matches:     func(personalityFacts) bool { return true },
	},
}

// classify evaluates the decision table and returns the label and its
// description. The final catch-all rule guarantees a match.
func classify(f personalityFacts) (label, description string) {
	for _, rule := range personalityRules {
		if rule.matches(f) {
			return rule.label, rule.description
		}
	}
	// Unreachable: the table ends with a catch-all.
	last := personalityRules[len(personalityRules)-1]
	return last.label, last.description
}
