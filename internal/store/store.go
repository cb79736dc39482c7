// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives fetch runs in a local SQLite database.
// Archiving is opt-in through the --db flag; the core fetch pipeline
// keeps no state between invocations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubfetch/pkg/types"
)

// Store manages the run archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			created_at TEXT NOT NULL,
			paper_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			pubmed_id TEXT NOT NULL,
			title TEXT,
			pub_date TEXT,
			non_academic_authors TEXT,
			company_affiliations TEXT,
			corresponding_email TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_run_id ON papers(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun records one fetch run and its papers in a single transaction
// and returns the new run ID. Paper rows keep the search order.
func (s *Store) SaveRun(ctx context.Context, query string, records []types.PaperRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (query, created_at, paper_count) VALUES (?, ?, ?)`,
		query, time.Now().UTC().Format(time.RFC3339), len(records),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (run_id, pubmed_id, title, pub_date, non_academic_authors, company_affiliations, corresponding_email)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			runID, r.PubmedID, r.Title, r.PubDate,
			strings.Join(r.NonAcademicAuthors, "; "),
			strings.Join(r.CompanyAffiliations, "; "),
			r.CorrespondingAuthorEmail,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", r.PubmedID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Run summarizes one archived run.
type Run struct {
	ID        int64
	Query     string
	CreatedAt string
	Papers    int
}

// Runs lists archived runs, most recent first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, created_at, paper_count FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Query, &r.CreatedAt, &r.Papers); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Papers returns the records archived for a run, in insertion order.
func (s *Store) Papers(ctx context.Context, runID int64) ([]types.PaperRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pubmed_id, title, pub_date, non_academic_authors, company_affiliations, corresponding_email
		 FROM papers WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying papers for run %d: %w", runID, err)
	}
	defer rows.Close()

	var records []types.PaperRecord
	for rows.Next() {
		var r types.PaperRecord
		var authors, companies string
		if err := rows.Scan(&r.PubmedID, &r.Title, &r.PubDate, &authors, &companies, &r.CorrespondingAuthorEmail); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		r.NonAcademicAuthors = splitList(authors)
		r.CompanyAffiliations = splitList(companies)
		records = append(records, r)
	}
	return records, rows.Err()
}

// splitList reverses the "; " join used when storing list fields.
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "; ")
}
