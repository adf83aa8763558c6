// Package archive keeps a per-run history of fetched datasets in a local
// SQLite file. The CSV outputs are overwritten on every run; the archive is
// what lets snapshots be compared across runs.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"quotewatch/internal/logger"
)

// RunRecord is one fetch unit run.
type RunRecord struct {
	ID        int64     `db:"id"`
	Dataset   string    `db:"dataset"`
	FetchedAt time.Time `db:"fetched_at"`
	Rows      int       `db:"rows"`
	Notional  float64   `db:"notional"`
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	dataset    TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL,
	rows       INTEGER NOT NULL,
	notional   REAL NOT NULL
)`

// Store wraps the archive database.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create archive dir: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize archive schema: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordRun inserts one run row.
func (s *Store) RecordRun(ctx context.Context, dataset string, rows int, notional float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (dataset, fetched_at, rows, notional) VALUES (?, ?, ?, ?)`,
		dataset, time.Now().UTC(), rows, notional)
	return err
}

// Runs returns the recorded history for one dataset, oldest first.
func (s *Store) Runs(ctx context.Context, dataset string) ([]RunRecord, error) {
	var out []RunRecord
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, dataset, fetched_at, rows, notional FROM runs WHERE dataset = ? ORDER BY fetched_at, id`,
		dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return out, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record is the best-effort entry point the fetch units use: archive trouble
// is logged as a warning and never fails the run.
func Record(ctx context.Context, path, dataset string, rows int, notional float64) {
	store, err := Open(path)
	if err != nil {
		logger.Warn(ctx, "Archive unavailable, skipping run record", "error", err)
		return
	}
	defer store.Close()

	if err := store.RecordRun(ctx, dataset, rows, notional); err != nil {
		logger.Warn(ctx, "Failed to record run in archive", "dataset", dataset, "error", err)
	}
}
