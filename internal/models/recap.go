// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package models

import "time"

// MonthNames maps month number (1-12) to its English name.
// Index 0 is unused so time.Month values can index directly.
var MonthNames = []string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayNames maps time.Weekday (0 = Sunday) to its English name.
var DayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Time-of-day bucket names. Boundaries: Morning 06-11, Afternoon 12-17,
// Evening 18-21, Night 22-05.
const (
	BucketMorning   = "Morning"
	BucketAfternoon = "Afternoon"
	BucketEvening   = "Evening"
	BucketNight     = "Night"
)

// TimeOfDayBuckets lists the bucket names in display order.
var TimeOfDayBuckets = []string{BucketMorning, BucketAfternoon, BucketEvening, BucketNight}

// TopShow is one entry of the ranked top-shows list in the recap artifact.
type TopShow struct {
	Name  string  `json:"name"`
	Plays int     `json:"plays"`
	Hours float64 `json:"hours"`
}

// BingeHighlight describes the largest single binge session of the year.
type BingeHighlight struct {
	Show     string `json:"show"`
	Episodes int    `json:"episodes"`
	Date     string `json:"date"`
}

// FunFact is a small stat card rendered by the recap site.
type FunFact struct {
	Icon  string `json:"icon"`
	Stat  string `json:"stat"`
	Label string `json:"label"`
}

// RecapStats is the write-once output record of the pipeline, serialized as
// the single recap_stats.json artifact consumed by the static site.
type RecapStats struct {
	Year int `json:"year"`

	TotalHours      float64 `json:"total_hours"`
	EstimatedDays   float64 `json:"estimated_days"`
	TotalTitles     int     `json:"total_titles"`
	UniqueShows     int     `json:"unique_shows"`
	MoviesWatched   int     `json:"movies_watched"`
	EpisodesWatched int     `json:"episodes_watched"`

	TopShows []TopShow `json:"top_shows"`

	Monthly   map[string]int `json:"monthly"`
	DayOfWeek map[string]int `json:"day_of_week"`
	TimeOfDay map[string]int `json:"time_of_day"`

	PeakMonth     string `json:"peak_month"`
	FavoriteDay   string `json:"favorite_day"`
	PeakTimeOfDay string `json:"peak_time_of_day"`

	ActiveDays        int `json:"active_days"`
	LongestStreakDays int `json:"longest_streak_days"`

	BingeSessions int             `json:"binge_sessions"`
	BiggestBinge  *BingeHighlight `json:"biggest_binge,omitempty"`

	FirstWatchDate string `json:"first_watch_date"`
	LastWatchDate  string `json:"last_watch_date"`

	Personality            string `json:"personality"`
	PersonalityDescription string `json:"personality_description"`

	FunFacts []FunFact `json:"fun_facts"`
}

// TimeOfDayBucket returns the bucket name for an hour of day (0-23).
func TimeOfDayBucket(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 18:
		return BucketAfternoon
	case hour >= 18 && hour < 22:
		return BucketEvening
	default:
		return BucketNight
	}
}

// DateKey truncates a timestamp to its calendar date in the timestamp's
// location. Used for streak and active-day computations.
func DateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
