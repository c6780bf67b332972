// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package report computes and renders the waiver status summary: counts,
// missing-waiver students, and skipped duplicate files.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/match"
)

// Entry identifies one student in the unmatched list.
type Entry struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	HasConsent bool   `json:"has_consent" yaml:"has_consent"`
}

// Summary is the waiver status report. Matched + Unmatched always equals
// Total.
type Summary struct {
	Total      int `json:"total" yaml:"total"`
	Matched    int `json:"matched" yaml:"matched"`
	Unmatched  int `json:"unmatched" yaml:"unmatched"`
	Duplicates int `json:"duplicates_skipped" yaml:"duplicates_skipped"`
	Ignored    int `json:"ignored_files" yaml:"ignored_files"`

	// Missing lists the students without a waiver, in roster order.
	Missing []Entry `json:"missing,omitempty" yaml:"missing,omitempty"`

	// DuplicateFiles lists waivers skipped by the duplicate tie-break.
	DuplicateFiles []match.DuplicateFile `json:"duplicate_files,omitempty" yaml:"duplicate_files,omitempty"`

	// Generated is the report timestamp.
	Generated time.Time `json:"generated" yaml:"generated"`
}

// Build computes the summary from a match result. Pure computation: no
// side effects beyond the returned struct.
func Build(res match.Result, now time.Time) Summary {
	s := Summary{
		Total:          len(res.Records),
		Matched:        len(res.Matched),
		Unmatched:      len(res.Unmatched),
		Duplicates:     len(res.Duplicates),
		Ignored:        len(res.Ignored),
		DuplicateFiles: res.Duplicates,
		Generated:      now,
	}
	for _, r := range res.Unmatched {
		s.Missing = append(s.Missing, Entry{
			ID:         r.ID,
			Name:       r.DisplayName(),
			HasConsent: r.HasConsent,
		})
	}
	return s
}

// Render formats the summary as a plain-text status report suitable for
// display or export alongside the merged PDF.
func (s Summary) Render() string {
	var b strings.Builder

	b.WriteString("FERPA Waiver Status Report\n")
	fmt.Fprintf(&b, "Generated: %s\n", s.Generated.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Total students:     %d\n", s.Total)
	fmt.Fprintf(&b, "Matched waivers:    %d\n", s.Matched)
	fmt.Fprintf(&b, "Missing waivers:    %d\n", s.Unmatched)
	fmt.Fprintf(&b, "Duplicates skipped: %d\n", s.Duplicates)
	if s.Ignored > 0 {
		fmt.Fprintf(&b, "Ignored files:      %d\n", s.Ignored)
	}
	b.WriteString("\n")

	if len(s.Missing) > 0 {
		fmt.Fprintf(&b, "MISSING WAIVERS (%d students)\n", len(s.Missing))
		b.WriteString(strings.Repeat("-", 30) + "\n")
		for _, e := range s.Missing {
			fmt.Fprintf(&b, "  - %s: %s\n", e.ID, e.Name)
		}
		b.WriteString("\n")
	}

	if len(s.DuplicateFiles) > 0 {
		fmt.Fprintf(&b, "DUPLICATE FILES (%d skipped)\n", len(s.DuplicateFiles))
		b.WriteString(strings.Repeat("-", 30) + "\n")
		for _, d := range s.DuplicateFiles {
			fmt.Fprintf(&b, "  - ID %s: %s (kept %s)\n", d.ID, d.Path, d.KeptPath)
		}
		b.WriteString("\n")
	}

	if len(s.Missing) == 0 && len(s.DuplicateFiles) == 0 {
		b.WriteString("All students have exactly one waiver on file.\n")
	}

	return b.String()
}
