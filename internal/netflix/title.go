// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package netflix

import (
	"regexp"
	"strings"
)

// Episode titles follow "Show Name: Season X: Episode Title" with variants
// like "Show Name: Limited Series: Episode" or "Show Name: Part 2: ...".
var seasonMarkers = []string{
	": season",
	": series",
	": limited series",
	": part",
	": volume",
	": book",
	": chapter",
	": episode",
}

// Promotional rows carry marker suffixes or prefixes in the title itself
// even when the Supplemental Video Type column is empty.
var (
	promoSuffix = regexp.MustCompile(`(?i)(_hook|_primary|_teaser|_preview|_billboard)`)
	promoPrefix = regexp.MustCompile(`(?i)^(clip\s*\d*:|teaser[^:]*:|trailer[^:]*:)`)
	promoWords  = []string{"trailer", "teaser", "(preview)", "_hook"}
)

// ParseTitle extracts the normalized show (or movie) name from an export
// title and reports whether the row is a series episode.
//
// Episodes keep everything before the first season/episode marker. Movies
// keep the full title with promotional prefixes and suffixes stripped.
func ParseTitle(title string) (show string, isEpisode bool) {
	title = strings.TrimSpace(title)
	lower := strings.ToLower(title)

	for _, marker := range seasonMarkers {
		if i := strings.Index(lower, marker); i >= 0 {
			show = strings.TrimSpace(title[:i])
			if show == "" {
				show = title
			}
			return show, true
		}
	}

	clean := promoSuffix.ReplaceAllString(title, "")
	clean = promoPrefix.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		clean = title
	}
	return clean, false
}

// IsNonContent reports whether a row is a trailer, hook or other
// promotional material rather than a real view. The Supplemental Video Type
// column is authoritative when present; title markers cover older exports
// that lack the column.
func IsNonContent(title, supplemental string) bool {
	if strings.TrimSpace(supplemental) != "" {
		return true
	}

	lower := strings.ToLower(title)
	for _, w := range promoWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return promoSuffix.MatchString(title) || promoPrefix.MatchString(title)
}
