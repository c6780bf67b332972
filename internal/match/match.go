// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package match associates roster records with waiver PDFs by filename
// identifier prefix.
package match

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// DuplicateFile is a waiver whose identifier was already claimed by an
// earlier (lexicographically smaller) filename.
type DuplicateFile struct {
	// ID is the identifier shared with the kept file.
	ID string `json:"id" yaml:"id"`

	// Path is the skipped file.
	Path string `json:"path" yaml:"path"`

	// KeptPath is the file that won the tie-break.
	KeptPath string `json:"kept_path" yaml:"kept_path"`
}

// Result holds the outcome of matching a roster against a waiver directory.
type Result struct {
	// Records is the full roster with waiver paths attached where found.
	Records []types.Record

	// Matched is the subset of Records with a waiver, in roster order.
	Matched []types.Record

	// Unmatched is the subset of Records without a waiver, in roster order.
	Unmatched []types.Record

	// Duplicates lists waiver files skipped by the tie-break.
	Duplicates []DuplicateFile

	// Ignored lists files in the waiver directory that do not follow the
	// naming convention (including non-PDF files).
	Ignored []string
}

// Run scans the waiver directory, builds an identifier-to-path mapping with
// keyFor, and attaches paths to the records. Zero matches is a valid
// outcome, not an error. When several files share an identifier the
// lexicographically smallest filename is kept; sorting the listing first
// makes that choice independent of directory enumeration order.
func Run(records []types.Record, waiverDir string, keyFor KeyFunc) (Result, error) {
	entries, err := os.ReadDir(waiverDir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", types.ErrWaiverDirNotFound, waiverDir)
		}
		return Result{}, fmt.Errorf("reading waiver directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var res Result
	byID := make(map[string]string, len(names))
	for _, name := range names {
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			res.Ignored = append(res.Ignored, name)
			continue
		}
		id, ok := keyFor(name)
		if !ok {
			res.Ignored = append(res.Ignored, name)
			continue
		}
		path := filepath.Join(waiverDir, name)
		if kept, exists := byID[id]; exists {
			res.Duplicates = append(res.Duplicates, DuplicateFile{
				ID:       id,
				Path:     path,
				KeptPath: kept,
			})
			continue
		}
		byID[id] = path
	}

	res.Records = make([]types.Record, len(records))
	copy(res.Records, records)
	for i := range res.Records {
		if path, ok := byID[res.Records[i].ID]; ok {
			res.Records[i].WaiverPath = path
			res.Matched = append(res.Matched, res.Records[i])
		} else {
			res.Unmatched = append(res.Unmatched, res.Records[i])
		}
	}

	return res, nil
}
