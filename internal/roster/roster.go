// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package roster loads the student roster from a CSV table into Records.
// The identifier column is required and must be unique, the name columns
// are required; every other column is a passthrough attribute.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// Default column names, matching the records-office export.
const (
	defaultIDColumn        = "student_id"
	defaultFirstNameColumn = "firstname"
	defaultLastNameColumn  = "lastname"
	defaultConsentColumn   = "has_ferpa"
)

// Optional passthrough columns recognized by name.
const (
	emailColumn   = "email"
	programColumn = "major"
)

// Load reads the roster CSV at cfg.Path and returns one Record per row.
// Header names are matched case-insensitively. A duplicate identifier is a
// load error; an empty roster (header only) is valid and returns no
// records.
func Load(cfg types.RosterConfig) ([]types.Record, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrRosterNotFound, cfg.Path)
		}
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	// Exports sometimes drop trailing empty cells; short rows read as "".
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", cfg.Path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster %s has no header row", cfg.Path)
	}

	cols, err := mapColumns(rows[0], cfg)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", cfg.Path, err)
	}

	records := make([]types.Record, 0, len(rows)-1)
	seen := make(map[string]bool, len(rows)-1)
	var dups []string

	for i, row := range rows[1:] {
		id := strings.TrimSpace(cols.field(row, cols.id))
		if id == "" {
			return nil, fmt.Errorf("roster %s row %d: empty identifier", cfg.Path, i+2)
		}
		if seen[id] {
			dups = append(dups, id)
			continue
		}
		seen[id] = true

		records = append(records, types.Record{
			ID:         id,
			FirstName:  strings.TrimSpace(cols.field(row, cols.first)),
			LastName:   strings.TrimSpace(cols.field(row, cols.last)),
			Email:      strings.TrimSpace(cols.field(row, cols.email)),
			Program:    strings.TrimSpace(cols.field(row, cols.program)),
			HasConsent: parseConsent(cols.field(row, cols.consent)),
		})
	}

	if len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrDuplicateRecordID, strings.Join(dups, ", "))
	}

	return records, nil
}

// columnIndexes holds the resolved column positions. A value of -1 means
// the column is absent.
type columnIndexes struct {
	id      int
	first   int
	last    int
	email   int
	program int
	consent int
}

// field returns the cell at idx, or "" for absent columns and short rows.
func (c columnIndexes) field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// mapColumns resolves header names to positions. The identifier and name
// columns are mandatory; email, program, and consent columns are attached
// when present.
func mapColumns(header []string, cfg types.RosterConfig) (columnIndexes, error) {
	idCol := cfg.IDColumn
	if idCol == "" {
		idCol = defaultIDColumn
	}
	firstCol := cfg.FirstNameColumn
	if firstCol == "" {
		firstCol = defaultFirstNameColumn
	}
	lastCol := cfg.LastNameColumn
	if lastCol == "" {
		lastCol = defaultLastNameColumn
	}
	consentCol := cfg.ConsentColumn
	if consentCol == "" {
		consentCol = defaultConsentColumn
	}

	cols := columnIndexes{id: -1, first: -1, last: -1, email: -1, program: -1, consent: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(idCol):
			cols.id = i
		case strings.ToLower(firstCol):
			cols.first = i
		case strings.ToLower(lastCol):
			cols.last = i
		case emailColumn:
			cols.email = i
		case programColumn:
			cols.program = i
		case strings.ToLower(consentCol):
			cols.consent = i
		}
	}

	if cols.id == -1 {
		return cols, fmt.Errorf("missing identifier column %q", idCol)
	}
	if cols.first == -1 {
		return cols, fmt.Errorf("missing first name column %q", firstCol)
	}
	if cols.last == -1 {
		return cols, fmt.Errorf("missing last name column %q", lastCol)
	}
	return cols, nil
}

// parseConsent interprets the consent flag cell. Accepts yes/y/1/true in
// any case; everything else, including an absent column, is false.
func parseConsent(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "yes", "y", "1", "true":
		return true
	}
	return false
}
