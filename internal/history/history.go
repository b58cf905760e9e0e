// Package history journals committed renames to a SQLite database so a
// run's changes can be reviewed after the fact.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "embed"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Entry is one journaled rename.
type Entry struct {
	ID        int64
	RunID     string
	Project   string
	OldPath   string
	NewPath   string
	CreatedAt time.Time
}

// Store wraps the journal database. Safe for the single-actor batch
// loop; no internal locking.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the journal at path and applies
// the schema. Pass ":memory:" for an ephemeral store in tests.
func NewStore(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewRunID mints the identifier shared by every rename in one batch.
func NewRunID() string {
	return uuid.NewString()
}

// RecordRename journals one committed rename.
func (s *Store) RecordRename(runID, projectName, oldPath, newPath string) error {
	_, err := s.db.Exec(
		`INSERT INTO renames (run_id, project, old_path, new_path) VALUES (?, ?, ?, ?)`,
		runID, projectName, oldPath, newPath,
	)
	if err != nil {
		return fmt.Errorf("record rename: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries, most recent first, bounded by
// limit.
func (s *Store) ListRecent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, project, old_path, new_path, created_at
		 FROM renames ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Project, &e.OldPath, &e.NewPath, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListRun returns every entry journaled under one run, oldest first.
func (s *Store) ListRun(runID string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, project, old_path, new_path, created_at
		 FROM renames WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query history run: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Project, &e.OldPath, &e.NewPath, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
