// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

// Package main is the entry point for the reelwrap command.
//
// Reelwrap turns the ViewingActivity.csv from a Netflix personal-data
// export into a single recap_stats.json consumed by the static recap site.
// It is a one-shot batch job: locate the export under a data root, parse
// and clean the rows, aggregate one calendar year of viewing into summary
// statistics, write the artifact, print a summary, exit.
//
// # Pipeline
//
//  1. Configuration: defaults -> optional YAML file -> environment -> flags (Koanf v2)
//  2. Discovery: find ViewingActivity.csv under the data root (deterministic first match)
//  3. Ingestion: parse the CSV; malformed rows are skipped with a warning
//  4. Cleaning: target-year, minimum-duration and non-content filters, in that order
//  5. Aggregation: totals, top shows, histograms, streaks, binges, personality
//  6. Output: recap_stats.json (overwritten atomically) + stdout summary
//
// # Usage
//
//	reelwrap -data ./netflix-report -year 2025
//	reelwrap -export ./ViewingActivity.csv -year 2025 -profile Alice
//	DATA_ROOT=./netflix-report TARGET_YEAR=2025 reelwrap
//
// Exit code 0 on success. Any fatal condition (export not found, unreadable
// file, zero qualifying records, write failure) exits nonzero with a
// descriptive message and writes no partial artifact. Omitting the year
// selects the most recent year present in the export; the clock is never
// consulted, so identical input always produces identical output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tomtom215/reelwrap/internal/config"
	"github.com/tomtom215/reelwrap/internal/logging"
	"github.com/tomtom215/reelwrap/internal/netflix"
	"github.com/tomtom215/reelwrap/internal/recap"
	"github.com/tomtom215/reelwrap/internal/report"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logging.Err(err).Msg("recap failed")
		os.Exit(1)
	}
}

//nolint:gocyclo // linear pipeline with explicit flag plumbing
func run(args []string) error {
	fs := flag.NewFlagSet("reelwrap", flag.ExitOnError)
	var (
		dataRoot    = fs.String("data", "", "data root searched for the viewing history export")
		exportPath  = fs.String("export", "", "explicit path to ViewingActivity.csv (skips discovery)")
		profile     = fs.String("profile", "", "restrict the recap to one profile name")
		year        = fs.Int("year", 0, "target calendar year (default: most recent year in the export)")
		minDuration = fs.Duration("min-duration", 0, "minimum playback duration for a view to count")
		topShows    = fs.Int("top", 0, "number of entries in the top-shows list")
		outputPath  = fs.String("output", "", "artifact destination (default: <data>/recap_stats.json)")
		logLevel    = fs.String("log-level", "", "log level: debug, info, warn, error")
		logFormat   = fs.String("log-format", "", "log format: console or json")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	// Flags beat every other configuration layer. Only flags the user
	// actually set are applied.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data.Root = *dataRoot
		case "export":
			cfg.Data.Export = *exportPath
		case "profile":
			cfg.Data.Profile = *profile
		case "year":
			cfg.Recap.Year = *year
		case "min-duration":
			cfg.Recap.MinDuration = *minDuration
		case "top":
			cfg.Recap.TopShows = *topShows
		case "output":
			cfg.Output.Path = *outputPath
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		}
	})

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	path := cfg.Data.Export
	if path == "" {
		path, err = netflix.LocateExport(cfg.Data.Root)
		if err != nil {
			return err
		}
	}
	logging.Info().Str("export", path).Msg("processing viewing history")

	result, err := netflix.ReadExport(path)
	if err != nil {
		return err
	}
	if result.RowsSkipped > 0 {
		logging.Warn().Int("skipped", result.RowsSkipped).Msg("rows skipped during parsing")
	}
	logging.Info().Int("rows", len(result.Records)).Msg("export loaded")

	targetYear := cfg.Recap.Year
	if targetYear == 0 {
		targetYear, err = recap.ResolveYear(result.Records)
		if err != nil {
			return err
		}
		logging.Info().Int("year", targetYear).Msg("no year configured, using most recent year in export")
	}

	stats, err := recap.Generate(result.Records, recap.Params{
		Year:          targetYear,
		Profile:       cfg.Data.Profile,
		MinDuration:   cfg.Recap.MinDuration,
		TopShows:      cfg.Recap.TopShows,
		BingeEpisodes: cfg.Recap.BingeEpisodes,
		SessionGap:    cfg.Recap.SessionGap,
	})
	if err != nil {
		if errors.Is(err, recap.ErrNoQualifyingRecords) {
			return fmt.Errorf("%w (try another -year)", err)
		}
		return err
	}

	out := cfg.OutputPath()
	if err := report.Write(stats, out); err != nil {
		return err
	}
	logging.Info().Str("path", out).Msg("recap artifact written")

	fmt.Print(report.Summary(stats))
	return nil
}
