// Package storage provides SQLite-based persistence for high scores and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished game.
type Run struct {
	ID        string // UUID; generated by SaveRun when empty
	Key       string // High score key the run was played under
	Score     int
	Frames    int
	CreatedAt time.Time
}

// RunStats aggregates the run history of one key.
type RunStats struct {
	Key         string
	Runs        int
	Best        int
	AvgScore    float64
	TotalFrames int64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			key TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_key ON runs(key, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(key, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the stored high score for key.
// Returns 0 if the key has never been written.
func (s *Store) HighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore stores score under key, replacing any previous value.
func (s *Store) SetHighScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		key, score, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearHighScore removes the high score for key.
func (s *Store) ClearHighScore(key string) error {
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		"INSERT INTO runs (id, key, score, frames, created_at) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.Key, run.Score, run.Frames, run.CreatedAt.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns returns the latest runs for key, newest first.
func (s *Store) RecentRuns(key string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT id, key, score, frames, created_at
		 FROM runs
		 WHERE key = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		key, limit,
	)
}

// TopRuns returns the best runs for key, highest score first.
func (s *Store) TopRuns(key string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT id, key, score, frames, created_at
		 FROM runs
		 WHERE key = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		key, limit,
	)
}

func (s *Store) queryRuns(query, key string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(query, key, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Key, &r.Score, &r.Frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes the run history for key.
func (s *Store) ClearRuns(key string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates the run history for key.
func (s *Store) Stats(key string) (*RunStats, error) {
	stats := &RunStats{Key: key}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(frames), 0), MAX(created_at)
		 FROM runs WHERE key = ?`,
		key,
	).Scan(&stats.Runs, &stats.Best, &stats.AvgScore, &stats.TotalFrames, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and the string forms SQLite returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
