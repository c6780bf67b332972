// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package types

// RosterConfig holds settings for loading the student roster.
type RosterConfig struct {
	// Path is the roster CSV file.
	Path string `json:"path" yaml:"path"`

	// IDColumn overrides the identifier column name (default "student_id").
	IDColumn string `json:"id_column,omitempty" yaml:"id_column,omitempty"`

	// FirstNameColumn and LastNameColumn override the name column names
	// (defaults "firstname" and "lastname").
	FirstNameColumn string `json:"first_name_column,omitempty" yaml:"first_name_column,omitempty"`
	LastNameColumn  string `json:"last_name_column,omitempty" yaml:"last_name_column,omitempty"`

	// ConsentColumn overrides the consent flag column name (default "has_ferpa").
	ConsentColumn string `json:"consent_column,omitempty" yaml:"consent_column,omitempty"`
}

// NamingScheme identifies a waiver filename convention.
type NamingScheme string

const (
	// NamingUnderscore matches "{id}_{rest}.pdf": the identifier is the
	// token before the first underscore.
	NamingUnderscore NamingScheme = "underscore"

	// NamingConsentForm matches the records-office convention
	// "{id}_{name}_KCS Records Consent_{rest}.pdf" with a numeric id.
	NamingConsentForm NamingScheme = "consent-form"
)

// MatchConfig holds settings for matching roster records to waiver files.
type MatchConfig struct {
	// WaiverDir is the directory containing waiver PDFs.
	WaiverDir string `json:"waiver_dir" yaml:"waiver_dir"`

	// Naming selects the filename convention: underscore or consent-form.
	Naming NamingScheme `json:"naming" yaml:"naming"`
}

// MergeConfig holds settings for the merge stage.
type MergeConfig struct {
	// OutputPath is the merged PDF destination.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Overwrite allows replacing an existing output file. When false and
	// the output exists, the merge aborts without touching it.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`

	// CoverPage prepends a generated summary cover page.
	CoverPage bool `json:"cover_page" yaml:"cover_page"`

	// Strict aborts the merge when any consenting record lacks a waiver,
	// instead of merging the matched subset.
	Strict bool `json:"strict" yaml:"strict"`
}

// StoreConfig holds settings for the SQLite roster store.
type StoreConfig struct {
	// Path is the database file (default "students.db").
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Roster RosterConfig `json:"roster" yaml:"roster"`
	Match  MatchConfig  `json:"match" yaml:"match"`
	Merge  MergeConfig  `json:"merge" yaml:"merge"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}
