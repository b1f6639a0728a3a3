// Copyright Daniel Amado, 2026. All rights reserved.

// Package history persists a record of finished conversion jobs in a
// SQLite database, replacing the transient log pane of the desktop
// front end with something that survives restarts.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

const dbFile = "history.db"

// Record is one row of the job history.
type Record struct {
	ID         int64
	InputPath  string
	OutputDir  string
	PPTXPath   string
	DPI        int
	Pages      int
	State      types.JobState
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store manages the job history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at dir/history.db, creating
// the schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
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
	const stmt = `CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input_path TEXT NOT NULL,
		output_dir TEXT NOT NULL,
		pptx_path TEXT,
		dpi INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		state TEXT NOT NULL,
		error TEXT,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Add inserts one finished job. convErr may be nil on success; paths may
// be nil on failure.
func (s *Store) Add(job *types.ConversionJob, paths *types.OutputPaths, convErr error) (int64, error) {
	var pptxPath string
	if paths != nil {
		pptxPath = paths.PPTXPath
	}
	var errText string
	if convErr != nil {
		errText = convErr.Error()
	}

	res, err := s.db.Exec(
		`INSERT INTO jobs (input_path, output_dir, pptx_path, dpi, pages, state, error, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.InputPath, job.OutputDir, pptxPath, job.DPI, job.PagesDone,
		string(job.State), errText,
		job.StartedAt.UTC().Format(time.RFC3339),
		job.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting job: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent jobs, newest first, up to limit.
func (s *Store) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, input_path, output_dir, pptx_path, dpi, pages, state, error, started_at, finished_at
		 FROM jobs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var state, started, finished string
		if err := rows.Scan(&r.ID, &r.InputPath, &r.OutputDir, &r.PPTXPath,
			&r.DPI, &r.Pages, &state, &r.Error, &started, &finished); err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		r.State = types.JobState(state)
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		records = append(records, r)
	}
	return records, rows.Err()
}
