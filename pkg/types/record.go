// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package types holds the shared data model for the waiver pipeline:
// student records, stage configuration, and sentinel errors.
package types

// Record is one student row from the roster plus its matched waiver, if any.
type Record struct {
	// ID is the unique, stable student identifier (e.g. "STU001" or an
	// EYF ID). It is the join key between the roster and waiver filenames.
	ID string `json:"id" yaml:"id"`

	// FirstName and LastName are the student's display name.
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`

	// Email is an optional passthrough attribute from the roster.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// Program is the student's program or major, passthrough.
	Program string `json:"program,omitempty" yaml:"program,omitempty"`

	// HasConsent records the roster's consent flag. A record with consent
	// but no matched waiver is the main thing the missing-document report
	// exists to surface.
	HasConsent bool `json:"has_consent" yaml:"has_consent"`

	// WaiverPath is the matched waiver PDF path. Empty until the matcher
	// attaches a document; stays empty for unmatched records.
	WaiverPath string `json:"waiver_path,omitempty" yaml:"waiver_path,omitempty"`
}

// DisplayName returns "First Last" for status lines and the cover page.
func (r Record) DisplayName() string {
	if r.FirstName == "" {
		return r.LastName
	}
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// Matched reports whether a waiver document has been attached.
func (r Record) Matched() bool {
	return r.WaiverPath != ""
}
