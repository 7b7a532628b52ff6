package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded analysis of a source file.
type Run struct {
	ID        string
	File      string
	Errors    int
	Warnings  int
	Unused    int
	CreatedAt time.Time
}

// Store keeps the analysis run log in a local sqlite database, so students
// re-running an exercise can see whether the error count is going down.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	file       TEXT NOT NULL,
	errors     INTEGER NOT NULL,
	warnings   INTEGER NOT NULL,
	unused     INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_file_idx ON runs (file, created_at);
`

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one run and returns it with its generated id.
func (s *Store) Record(file string, errors, warnings, unused int) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		File:      file,
		Errors:    errors,
		Warnings:  warnings,
		Unused:    unused,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, file, errors, warnings, unused, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.File, run.Errors, run.Warnings, run.Unused, run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("history: record run: %w", err)
	}
	return run, nil
}

// Recent returns the latest runs for a file, newest first. An empty file
// selects across all files.
func (s *Store) Recent(file string, limit int) ([]*Run, error) {
	query := `SELECT id, file, errors, warnings, unused, created_at FROM runs`
	args := []interface{}{}
	if file != "" {
		query += ` WHERE file = ?`
		args = append(args, file)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(&run.ID, &run.File, &run.Errors, &run.Warnings, &run.Unused, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
