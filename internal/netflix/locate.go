// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

package netflix

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tomtom215/reelwrap/internal/logging"
)

// ExportFileName is the canonical viewing history file inside a Netflix
// privacy archive.
const ExportFileName = "ViewingActivity.csv"

// LocateExport searches the directory tree under root for the viewing
// history export. Exact ExportFileName matches are preferred; if none exist,
// any .csv file is accepted as a fallback (users often rename or move the
// file out of the archive).
//
// Discovery is deterministic: candidates are sorted lexicographically by
// path and the first is taken. Multiple candidates produce a warning naming
// the ignored files.
func LocateExport(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: data root %q: %v", ErrExportNotFound, root, err)
	}
	if !info.IsDir() {
		// A file path is accepted directly.
		return root, nil
	}

	var exact, fallback []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return fs.SkipDir
			}
			return nil
		}
		switch {
		case strings.EqualFold(d.Name(), ExportFileName):
			exact = append(exact, path)
		case strings.EqualFold(filepath.Ext(d.Name()), ".csv"):
			fallback = append(fallback, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("search %q: %w", root, err)
	}

	candidates := exact
	if len(candidates) == 0 {
		candidates = fallback
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no %s under %q", ErrExportNotFound, ExportFileName, root)
	}

	sort.Strings(candidates)
	if len(candidates) > 1 {
		logging.Warn().
			Str("selected", candidates[0]).
			Strs("ignored", candidates[1:]).
			Msg("multiple export candidates found, taking first in path order")
	}

	return candidates[0], nil
}
