// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

// Package netflix locates and reads Netflix personal-data exports.
//
// A Netflix privacy archive extracts to a directory tree shaped like
//
//	netflix-report/
//	  <account-id>/
//	    CONTENT_INTERACTION/
//	      ViewingActivity.csv
//	      Ratings.csv
//	      ...
//
// This package finds ViewingActivity.csv anywhere under a data root, parses
// it row by row with partial-failure tolerance (bad rows are skipped and
// counted, a structurally unreadable file is fatal), and decodes the title
// hierarchy Netflix encodes as "Show Name: Season X: Episode Title".
package netflix

import "errors"

// Sentinel errors for the export pipeline. Callers match with errors.Is.
var (
	// ErrExportNotFound means no ViewingActivity.csv (nor any CSV fallback)
	// exists under the data root.
	ErrExportNotFound = errors.New("viewing history export not found")

	// ErrMalformedExport means the file exists but cannot be parsed as a
	// viewing history export (unreadable CSV, or required columns missing).
	ErrMalformedExport = errors.New("viewing history export is malformed")
)
