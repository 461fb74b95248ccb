// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package netflix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/reelwrap/internal/logging"
	"github.com/tomtom215/reelwrap/internal/models"
)

// Column names as they appear in the real export header.
const (
	colProfileName  = "Profile Name"
	colStartTime    = "Start Time"
	colDuration     = "Duration"
	colTitle        = "Title"
	colSupplemental = "Supplemental Video Type"
	colDeviceType   = "Device Type"
)

// requiredColumns must all be present in the header for the file to be
// treated as a viewing history export.
var requiredColumns = []string{colProfileName, colStartTime, colDuration, colTitle}

// startTimeLayouts are tried in order when parsing the Start Time column.
// Netflix exports use "2006-01-02 15:04:05" (UTC, no zone marker).
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ReadResult is the outcome of parsing one export file.
type ReadResult struct {
	Records []models.ViewingRecord

	// RowsRead counts data rows seen (header excluded).
	RowsRead int

	// RowsSkipped counts malformed rows that were dropped with a warning.
	RowsSkipped int
}

// ReadExport parses a ViewingActivity.csv file.
//
// A missing file, an unreadable CSV stream or a header lacking the required
// columns is fatal (ErrMalformedExport). Individual rows with a bad
// timestamp or too few fields are skipped, logged at warn level and counted
// in RowsSkipped.
func ReadExport(path string) (*ReadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row length is validated per row below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %v", ErrMalformedExport, path, err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedExport, path, err)
	}

	result := &ReadResult{}
	line := 1
	for {
		line++
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A CSV-level parse error on one row (bare quote, bad escaping)
			// drops that row, not the whole file.
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				result.RowsSkipped++
				logging.Warn().Int("line", line).Err(err).Msg("skipping unparsable row")
				continue
			}
			return nil, fmt.Errorf("%w: reading %s: %v", ErrMalformedExport, path, err)
		}

		result.RowsRead++
		rec, rowErr := parseRow(row, idx)
		if rowErr != nil {
			result.RowsSkipped++
			logging.Warn().Int("line", line).Err(rowErr).Msg("skipping malformed row")
			continue
		}
		result.Records = append(result.Records, rec)
	}

	logging.Debug().
		Str("path", path).
		Int("rows", result.RowsRead).
		Int("skipped", result.RowsSkipped).
		Msg("export parsed")

	return result, nil
}

// columnIndex maps required and optional column names to field positions.
// Optional columns that are absent map to -1.
func columnIndex(header []string) (map[string]int, error) {
	idx := map[string]int{
		colProfileName:  -1,
		colStartTime:    -1,
		colDuration:     -1,
		colTitle:        -1,
		colSupplemental: -1,
		colDeviceType:   -1,
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := idx[name]; ok {
			idx[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if idx[name] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseRow converts one CSV row into a ViewingRecord.
func parseRow(row []string, idx map[string]int) (models.ViewingRecord, error) {
	field := func(name string) string {
		i := idx[name]
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	title := field(colTitle)
	if title == "" {
		return models.ViewingRecord{}, errors.New("empty title")
	}

	start, err := parseStartTime(field(colStartTime))
	if err != nil {
		return models.ViewingRecord{}, fmt.Errorf("start time: %w", err)
	}

	// Unparsable durations become zero and fall to the minimum-duration
	// filter, matching how the export treats rows without elapsed time.
	duration, _ := ParseClockDuration(field(colDuration))

	return models.ViewingRecord{
		ProfileName:  field(colProfileName),
		Title:        title,
		StartTime:    start,
		Duration:     duration,
		Supplemental: field(colSupplemental),
		DeviceType:   field(colDeviceType),
	}, nil
}

// parseStartTime tries each known Start Time layout.
func parseStartTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty")
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ParseClockDuration converts the export's elapsed-time format ("HH:MM:SS",
// or occasionally "MM:SS") to a time.Duration.
func ParseClockDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("empty duration")
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("unrecognized duration %q", s)
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("unrecognized duration %q", s)
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, nil
}
