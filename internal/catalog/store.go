// Package catalog scans a workspace for canvas documents, lints each one
// and persists the results to SQLite so large workspaces can be reported
// on without re-linting.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/canvaskit/canvaslint/internal/lint"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps the catalog database. All inserts for one run happen inside
// a single transaction committed by Close.
type Store struct {
	db *sql.DB
	tx *sql.Tx

	stmtCanvas *sql.Stmt
	stmtIssue  *sql.Stmt
}

// Entry is one cataloged document.
type Entry struct {
	Path     string `json:"path"`
	Version  string `json:"version"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
}

// NewStore opens (or creates) a catalog database and begins a run
// transaction.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		workspace TEXT NOT NULL,
		started_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS canvases (
		run_id TEXT NOT NULL,
		path TEXT NOT NULL,
		version TEXT NOT NULL,
		errors INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		PRIMARY KEY (run_id, path)
	);
	CREATE TABLE IF NOT EXISTS issues (
		run_id TEXT NOT NULL,
		path TEXT NOT NULL,
		ord INTEGER NOT NULL,
		rule TEXT NOT NULL,
		severity TEXT NOT NULL,
		message TEXT NOT NULL,
		pointer TEXT NOT NULL,
		PRIMARY KEY (run_id, path, ord)
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.begin(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) begin() error {
	var err error
	s.tx, err = s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	s.stmtCanvas, err = s.tx.Prepare(`
		INSERT OR REPLACE INTO canvases (run_id, path, version, errors, warnings)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	s.stmtIssue, err = s.tx.Prepare(`
		INSERT OR REPLACE INTO issues (run_id, path, ord, rule, severity, message, pointer)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	return err
}

// BeginRun records a run row and returns its id.
func (s *Store) BeginRun(workspace string) (string, error) {
	runID := uuid.NewString()
	_, err := s.tx.Exec(`INSERT INTO runs (id, workspace, started_at) VALUES (?, ?, ?)`,
		runID, workspace, time.Now().UnixNano())
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return runID, nil
}

// AddCanvas records one linted document and its issues.
func (s *Store) AddCanvas(runID, path, version string, issues []lint.Issue) error {
	var errs, warns int
	for _, is := range issues {
		switch is.Severity {
		case lint.SeverityError:
			errs++
		case lint.SeverityWarning:
			warns++
		}
	}
	if _, err := s.stmtCanvas.Exec(runID, path, version, errs, warns); err != nil {
		return fmt.Errorf("insert canvas %s: %w", path, err)
	}
	for ord, is := range issues {
		if _, err := s.stmtIssue.Exec(runID, path, ord, is.Rule, string(is.Severity), is.Message, is.Path); err != nil {
			return fmt.Errorf("insert issue %s[%d]: %w", path, ord, err)
		}
	}
	return nil
}

// Summary returns the per-canvas counts for one run, ordered by path.
func (s *Store) Summary(runID string) ([]Entry, error) {
	rows, err := s.tx.Query(`
		SELECT path, version, errors, warnings FROM canvases
		WHERE run_id = ? ORDER BY path
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.Version, &e.Errors, &e.Warnings); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close commits the run and closes the database.
func (s *Store) Close() error {
	if s.stmtCanvas != nil {
		_ = s.stmtCanvas.Close()
	}
	if s.stmtIssue != nil {
		_ = s.stmtIssue.Close()
	}
	if err := s.tx.Commit(); err != nil {
		_ = s.db.Close()
		return fmt.Errorf("commit run: %w", err)
	}
	return s.db.Close()
}
