// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

// Package models defines the data types shared across the Reelwrap pipeline:
// raw export rows, cleaned rows, per-show aggregates, and the final recap
// statistics artifact.
package models

import "time"

// ViewingRecord is one raw row from a Netflix ViewingActivity.csv export.
// Records are immutable once read; device and bookmark metadata beyond
// DeviceType is not carried.
type ViewingRecord struct {
	ProfileName string
	Title       string
	StartTime   time.Time
	Duration    time.Duration
	// Supplemental is the "Supplemental Video Type" column. Non-empty values
	// (HOOK, TRAILER, TEASER_TRAILER, ...) mark promotional content.
	Supplemental string
	DeviceType   string
}

// CleanedRecord is a ViewingRecord that passed all cleaning filters, with
// the show/episode hierarchy parsed out of the title. Never mutated after
// creation.
type CleanedRecord struct {
	ViewingRecord

	// Show is the normalized show or movie name (title text before the
	// season/episode hierarchy).
	Show string

	// IsEpisode reports whether the title carried a "Show: Season X: ..."
	// hierarchy. False means the record is a movie, special or standalone.
	IsEpisode bool
}

// EndTime returns the moment playback stopped (start + elapsed duration).
func (r CleanedRecord) EndTime() time.Time {
	return r.StartTime.Add(r.Duration)
}

// ShowAggregate accumulates plays and watch time for one normalized show or
// movie name. Built incrementally by folding CleanedRecords; finalized once
// at the end of the pass.
type ShowAggregate struct {
	Name       string
	Plays      int
	WatchTime  time.Duration
	WatchTimes []time.Time
}

// Hours returns the accumulated watch time in fractional hours.
func (a *ShowAggregate) Hours() float64 {
	return a.WatchTime.Hours()
}
