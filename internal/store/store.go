// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package store persists the matched roster in a SQLite database so the
// consent status survives between runs and can be listed without re-reading
// the roster export.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// defaultDBFile is used when no store path is configured.
const defaultDBFile = "students.db"

// Store manages the student roster SQLite database.
type Store struct {
	db *sql.DB
}

// New opens or creates the roster database at cfg.Path and creates the
// schema if it does not exist.
func New(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBFile
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			student_id TEXT PRIMARY KEY,
			firstname TEXT NOT NULL,
			lastname TEXT NOT NULL,
			email TEXT,
			program TEXT,
			has_consent INTEGER NOT NULL DEFAULT 0,
			waiver_path TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_name ON students(lastname, firstname)`,
		`CREATE INDEX IF NOT EXISTS idx_students_consent ON students(has_consent)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from a roster import.
type ImportSummary struct {
	Imported    int
	WithConsent int
	WithWaiver  int
}

// Import replaces the stored roster with records. Each run is a fresh
// import; the previous contents are cleared first.
func (s *Store) Import(records []types.Record) (ImportSummary, error) {
	var sum ImportSummary

	tx, err := s.db.Begin()
	if err != nil {
		return sum, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM students`); err != nil {
		return sum, fmt.Errorf("clearing students: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO students
		(student_id, firstname, lastname, email, program, has_consent, waiver_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return sum, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		consent := 0
		if r.HasConsent {
			consent = 1
		}
		if _, err := stmt.Exec(r.ID, r.FirstName, r.LastName, r.Email, r.Program, consent, r.WaiverPath); err != nil {
			return sum, fmt.Errorf("inserting %s: %w", r.ID, err)
		}
		sum.Imported++
		if r.HasConsent {
			sum.WithConsent++
		}
		if r.Matched() {
			sum.WithWaiver++
		}
	}

	if err := tx.Commit(); err != nil {
		return sum, fmt.Errorf("committing import: %w", err)
	}
	return sum, nil
}

// All returns every stored student ordered by (last name, first name).
func (s *Store) All() ([]types.Record, error) {
	return s.query(`SELECT student_id, firstname, lastname, email, program, has_consent, waiver_path
		FROM students
		ORDER BY lastname COLLATE NOCASE, firstname COLLATE NOCASE, student_id`)
}

// MergeCandidates returns students with consent and a matched waiver,
// ordered by (last name, first name).
func (s *Store) MergeCandidates() ([]types.Record, error) {
	return s.query(`SELECT student_id, firstname, lastname, email, program, has_consent, waiver_path
		FROM students
		WHERE has_consent = 1 AND waiver_path IS NOT NULL AND waiver_path != ''
		ORDER BY lastname COLLATE NOCASE, firstname COLLATE NOCASE, student_id`)
}

// MissingWaivers returns consenting students without a matched waiver.
func (s *Store) MissingWaivers() ([]types.Record, error) {
	return s.query(`SELECT student_id, firstname, lastname, email, program, has_consent, waiver_path
		FROM students
		WHERE has_consent = 1 AND (waiver_path IS NULL OR waiver_path = '')
		ORDER BY lastname COLLATE NOCASE, firstname COLLATE NOCASE, student_id`)
}

func (s *Store) query(q string) ([]types.Record, error) {
	rows, err := s.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("querying students: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r types.Record
		var email, program, waiver sql.NullString
		var consent int
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &email, &program, &consent, &waiver); err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		r.Email = email.String
		r.Program = program.String
		r.WaiverPath = waiver.String
		r.HasConsent = consent == 1
		records = append(records, r)
	}
	return records, rows.Err()
}
