// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package types

import "errors"

// Sentinel errors shared across the pipeline stages. Callers distinguish
// fatal conditions (missing inputs, refusing to overwrite) from the
// recoverable ones, which stages accumulate into the report instead of
// returning.
var (
	// ErrRosterNotFound: the roster file does not exist.
	ErrRosterNotFound = errors.New("roster file not found")

	// ErrWaiverDirNotFound: the waiver directory does not exist.
	ErrWaiverDirNotFound = errors.New("waiver directory not found")

	// ErrOutputExists: the merge output path exists and overwrite is off.
	ErrOutputExists = errors.New("output file already exists")

	// ErrDuplicateRecordID: the roster lists the same identifier twice.
	ErrDuplicateRecordID = errors.New("duplicate student identifier in roster")
)
