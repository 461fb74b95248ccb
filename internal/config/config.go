// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

// Package config provides layered configuration for Reelwrap using Koanf v2.
//
// Precedence (highest wins): CLI flags > environment variables > config file
// > built-in defaults. The loaded Config is turned into an explicit parameter
// struct for the pipeline; nothing downstream reads ambient state, so a run
// is a pure function of its inputs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tomtom215/reelwrap/internal/validation"
)

// Config is the complete Reelwrap configuration.
type Config struct {
	Data    DataConfig    `koanf:"data"`
	Recap   RecapConfig   `koanf:"recap"`
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// DataConfig locates the Netflix export.
type DataConfig struct {
	// Root is the directory searched for ViewingActivity.csv. Netflix
	// nests the file under <account-id>/CONTENT_INTERACTION/ inside the
	// extracted archive; the search walks the whole tree.
	Root string `koanf:"root" validate:"required"`

	// Export, when set, is an explicit path to the export file and skips
	// discovery entirely.
	Export string `koanf:"export"`

	// Profile restricts the recap to one profile name. Empty means all
	// profiles in the export are merged.
	Profile string `koanf:"profile"`
}

// RecapConfig holds the aggregation parameters.
type RecapConfig struct {
	// Year is the target calendar year. Zero means the most recent year
	// present in the export (resolved from the data, never from the clock).
	Year int `koanf:"year" validate:"omitempty,min=1997,max=2100"`

	// MinDuration discards views shorter than this threshold (previews,
	// accidental plays). Netflix counts anything; we don't.
	MinDuration time.Duration `koanf:"min_duration" validate:"min=0"`

	// TopShows is the length of the ranked top-shows list.
	TopShows int `koanf:"top_shows" validate:"min=1,max=100"`

	// BingeEpisodes is the minimum episode count for a session to count
	// as a binge.
	BingeEpisodes int `koanf:"binge_episodes" validate:"min=2"`

	// SessionGap is the maximum pause between one record's end and the
	// next record's start for both to belong to the same viewing session.
	SessionGap time.Duration `koanf:"session_gap" validate:"min=1m"`
}

// OutputConfig controls the artifact destination.
type OutputConfig struct {
	// Path of the JSON artifact. Empty means <data.root>/recap_stats.json.
	Path string `koanf:"path"`
}

// LoggingConfig mirrors logging.Config for the koanf layer.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"omitempty,oneof=console json"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file, env vars and flags.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Root:    "data",
			Export:  "",
			Profile: "",
		},
		Recap: RecapConfig{
			Year:          0, // latest year in the export
			MinDuration:   time.Minute,
			TopShows:      10,
			BingeEpisodes: 3,
			SessionGap:    30 * time.Minute,
		},
		Output: OutputConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks that the configuration is complete and coherent.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if c.Data.Export != "" {
		if _, err := os.Stat(c.Data.Export); err != nil {
			return fmt.Errorf("DATA_EXPORT points at an unreadable file: %w", err)
		}
	}

	return nil
}

// OutputPath returns the artifact destination, deriving the default from the
// data root when unset.
func (c *Config) OutputPath() string {
	if c.Output.Path != "" {
		return c.Output.Path
	}
	return filepath.Join(c.Data.Root, "recap_stats.json")
}
