// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package merge concatenates matched waiver PDFs into one output document
// in a deterministic student order.
package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// SkippedFile records a document dropped from the merge and why.
type SkippedFile struct {
	// Path is the waiver file that could not be merged.
	Path string `json:"path" yaml:"path"`

	// Reason is a short human-readable explanation.
	Reason string `json:"reason" yaml:"reason"`
}

// Result holds the outcome of a merge run.
type Result struct {
	// Merged is the number of documents appended to the output.
	Merged int

	// Pages is the total page count of the merged student documents
	// (cover page excluded).
	Pages int

	// Skipped lists documents dropped because they could not be read or
	// validated.
	Skipped []SkippedFile

	// Wrote reports whether an output file was produced. False when the
	// input was empty or every document was skipped.
	Wrote bool
}

// HasFailures reports whether any documents were skipped.
func (r Result) HasFailures() bool {
	return len(r.Skipped) > 0
}

// SortRecords orders matched records by case-insensitive (last name,
// first name), with the identifier as a final tie-break so reruns are
// byte-stable. It returns a sorted copy; the input is untouched.
func SortRecords(records []types.Record) []types.Record {
	sorted := make([]types.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := strings.ToLower(sorted[i].LastName), strings.ToLower(sorted[j].LastName)
		if li != lj {
			return li < lj
		}
		fi, fj := strings.ToLower(sorted[i].FirstName), strings.ToLower(sorted[j].FirstName)
		if fi != fj {
			return fi < fj
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// CoverFunc renders a cover page for the records that survived validation
// and returns the path of the rendered PDF. Running it after validation
// keeps skipped students off the cover and its counts.
type CoverFunc func(included []types.Record) (string, error)

// Run merges the matched records' waivers into cfg.OutputPath. Records are
// sorted with SortRecords first, so output order never depends on the
// caller's enumeration order. Documents that fail validation are skipped
// with a reported reason; the merge continues with the rest.
//
// coverFor, when non-nil, is called with the validated records in merge
// order; the returned PDF is prepended before all student documents.
//
// With cfg.Overwrite false and an existing output file, Run returns
// ErrOutputExists without touching the file. An empty or fully-skipped
// input produces no output file at all.
//
// Guarantee: document N of the output is the waiver of the Nth record in
// the sorted order (after the cover, if any), and page order within each
// waiver is preserved.
func Run(e Engine, matched []types.Record, cfg types.MergeConfig, coverFor CoverFunc, w io.Writer) (Result, error) {
	var res Result

	if !cfg.Overwrite {
		if _, err := os.Stat(cfg.OutputPath); err == nil {
			return res, fmt.Errorf("%w: %s", types.ErrOutputExists, cfg.OutputPath)
		}
	}

	sorted := SortRecords(matched)

	fmt.Fprintf(w, "Merging waivers for %d students...\n", len(sorted))

	inFiles := make([]string, 0, len(sorted)+1)
	included := make([]types.Record, 0, len(sorted))
	for _, rec := range sorted {
		if err := e.Validate(rec.WaiverPath); err != nil {
			reason := fmt.Sprintf("invalid PDF: %v", err)
			res.Skipped = append(res.Skipped, SkippedFile{Path: rec.WaiverPath, Reason: reason})
			fmt.Fprintf(w, "skipped: %s (%s)\n", filepath.Base(rec.WaiverPath), reason)
			continue
		}
		pages, err := e.PageCount(rec.WaiverPath)
		if err != nil {
			reason := fmt.Sprintf("page count: %v", err)
			res.Skipped = append(res.Skipped, SkippedFile{Path: rec.WaiverPath, Reason: reason})
			fmt.Fprintf(w, "skipped: %s (%s)\n", filepath.Base(rec.WaiverPath), reason)
			continue
		}
		inFiles = append(inFiles, rec.WaiverPath)
		included = append(included, rec)
		res.Merged++
		res.Pages += pages
		fmt.Fprintf(w, "appended: %s (%s, %d pages)\n", filepath.Base(rec.WaiverPath), rec.DisplayName(), pages)
	}

	if res.Merged == 0 {
		fmt.Fprintln(w, "No valid waivers to merge; no output written.")
		return res, nil
	}

	if coverFor != nil {
		coverPath, err := coverFor(included)
		if err != nil {
			return res, fmt.Errorf("rendering cover page: %w", err)
		}
		inFiles = append([]string{coverPath}, inFiles...)
	}

	if err := e.Merge(inFiles, cfg.OutputPath); err != nil {
		return res, fmt.Errorf("writing merged output: %w", err)
	}
	res.Wrote = true

	fmt.Fprintf(w, "\nMerged %d waivers (%d pages) into %s (%d skipped)\n",
		res.Merged, res.Pages, cfg.OutputPath, len(res.Skipped))
	return res, nil
}
