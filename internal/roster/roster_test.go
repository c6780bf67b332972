// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// writeRoster writes a CSV file into a temp dir and returns its path.
func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	csv := `student_id,firstname,lastname,email,major,has_ferpa
STU001,John,Doe,john.doe@university.edu,Computer Science,Yes
STU002,Jane,Smith,jane.smith@university.edu,Business,no
STU003,Michael,Johnson,,Mechanical Engineering,1
`
	records, err := Load(types.RosterConfig{Path: writeRoster(t, csv)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.ID != "STU001" || first.FirstName != "John" || first.LastName != "Doe" {
		t.Errorf("first record = %+v", first)
	}
	if first.Email != "john.doe@university.edu" || first.Program != "Computer Science" {
		t.Errorf("passthrough attributes = %+v", first)
	}
	if !first.HasConsent {
		t.Error("STU001 should have consent")
	}
	if records[1].HasConsent {
		t.Error("STU002 should not have consent")
	}
	if !records[2].HasConsent {
		t.Error("STU003 consent flag '1' should parse as true")
	}
	if records[0].Matched() {
		t.Error("freshly loaded records must have no waiver path")
	}
}

func TestLoad_HeaderCaseInsensitive(t *testing.T) {
	csv := "Student_ID,FirstName,LastName\nS1,Ada,Lovelace\n"
	records, err := Load(types.RosterConfig{Path: writeRoster(t, csv)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 || records[0].ID != "S1" {
		t.Fatalf("records = %+v", records)
	}
}

func TestLoad_ColumnOverrides(t *testing.T) {
	csv := "EYFID,first,last,consented\n1001,Sam,Ames,yes\n"
	cfg := types.RosterConfig{
		Path:            writeRoster(t, csv),
		IDColumn:        "EYFID",
		FirstNameColumn: "first",
		LastNameColumn:  "last",
		ConsentColumn:   "consented",
	}
	records, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.ID != "1001" || r.LastName != "Ames" || !r.HasConsent {
		t.Errorf("record = %+v", r)
	}
}

func TestLoad_EmptyRoster(t *testing.T) {
	records, err := Load(types.RosterConfig{Path: writeRoster(t, "student_id,firstname,lastname\n")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("header-only roster should yield zero records, got %d", len(records))
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr error
	}{
		{
			name:    "duplicate identifiers",
			csv:     "student_id,firstname,lastname\nS1,John,Doe\nS1,Jane,Doe\n",
			wantErr: types.ErrDuplicateRecordID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(types.RosterConfig{Path: writeRoster(t, tt.csv)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("missing identifier column", func(t *testing.T) {
		_, err := Load(types.RosterConfig{Path: writeRoster(t, "name,email\nJohn Doe,j@x.org\n")})
		if err == nil {
			t.Fatal("expected error for roster without identifier column")
		}
	})

	t.Run("missing name columns", func(t *testing.T) {
		// A roster without name columns would sort every record on an
		// empty (last, first) key; reject it at load time instead.
		_, err := Load(types.RosterConfig{Path: writeRoster(t, "student_id,email\nS1,a@b.org\n")})
		if err == nil {
			t.Fatal("expected error for roster without name columns")
		}
	})

	t.Run("missing last name column", func(t *testing.T) {
		_, err := Load(types.RosterConfig{Path: writeRoster(t, "student_id,firstname\nS1,John\n")})
		if err == nil {
			t.Fatal("expected error for roster without a last name column")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(types.RosterConfig{Path: filepath.Join(t.TempDir(), "absent.csv")})
		if !errors.Is(err, types.ErrRosterNotFound) {
			t.Errorf("err = %v, want ErrRosterNotFound", err)
		}
	})
}

func TestParseConsent(t *testing.T) {
	truthy := []string{"yes", "Yes", "Y", "1", "true", "TRUE", " y "}
	falsy := []string{"", "no", "0", "false", "maybe"}

	for _, v := range truthy {
		if !parseConsent(v) {
			t.Errorf("parseConsent(%q) = false, want true", v)
		}
	}
	for _, v := range falsy {
		if parseConsent(v) {
			t.Errorf("parseConsent(%q) = true, want false", v)
		}
	}
}
