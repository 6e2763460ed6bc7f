package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS rounds (
	run_id       TEXT    NOT NULL,
	round        INTEGER NOT NULL,
	best         REAL    NOT NULL,
	mean         REAL    NOT NULL,
	median       REAL    NOT NULL,
	std_dev      REAL    NOT NULL,
	min          REAL    NOT NULL,
	max          REAL    NOT NULL,
	improvements INTEGER NOT NULL,
	duration_ns  INTEGER NOT NULL,
	PRIMARY KEY (run_id, round)
);
CREATE TABLE IF NOT EXISTS bests (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT    NOT NULL,
	round      INTEGER NOT NULL,
	particle   INTEGER NOT NULL,
	likelihood REAL    NOT NULL,
	swarm      INTEGER NOT NULL,
	payload    BLOB    NOT NULL
);`

// SQLite is a Recorder backed by a single SQLite database file.
type SQLite struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "phylopso.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer; also keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

// OpenExisting opens the database at path without creating it. A missing
// file yields ErrNoDatabase.
func OpenExisting(path string) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("OpenExisting: %s: %w", path, ErrNoDatabase)
		}
		return nil, fmt.Errorf("OpenExisting: %w", err)
	}
	return OpenSQLite(path)
}

// RecordRound upserts s keyed by (run id, round).
func (s *SQLite) RecordRound(ctx context.Context, r RoundSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO rounds
		(run_id, round, best, mean, median, std_dev, min, max, improvements, duration_ns)
		VALUES (?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(run_id, round) DO UPDATE SET
			best=excluded.best, mean=excluded.mean, median=excluded.median,
			std_dev=excluded.std_dev, min=excluded.min, max=excluded.max,
			improvements=excluded.improvements, duration_ns=excluded.duration_ns`,
		r.RunID, r.Round, r.Best, r.Mean, r.Median, r.StdDev, r.Min, r.Max, r.Improvements, int64(r.Duration))
	if err != nil {
		return fmt.Errorf("insert round %d: %w", r.Round, err)
	}
	return nil
}

// RecordBest stores e with its tree snapshot as JSON.
func (s *SQLite) RecordBest(ctx context.Context, e BestEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode best: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO bests (run_id, round, particle, likelihood, swarm, payload)
		VALUES (?,?,?,?,?,?)`, e.RunID, e.Round, e.Particle, e.Likelihood, e.Swarm, payload)
	if err != nil {
		return fmt.Errorf("insert best: %w", err)
	}
	return nil
}

// Rounds returns the summaries of runID ordered by round.
func (s *SQLite) Rounds(ctx context.Context, runID string) ([]RoundSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, `SELECT run_id, round, best, mean, median, std_dev, min, max, improvements, duration_ns
		FROM rounds WHERE run_id = ? ORDER BY round`, runID)
	if err != nil {
		return nil, fmt.Errorf("select rounds: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RoundSummary
	for rows.Next() {
		var r RoundSummary
		var ns int64
		if err := rows.Scan(&r.RunID, &r.Round, &r.Best, &r.Mean, &r.Median, &r.StdDev, &r.Min, &r.Max, &r.Improvements, &ns); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.Duration = time.Duration(ns)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Bests returns the improvement events of runID in insertion order.
func (s *SQLite) Bests(ctx context.Context, runID string) ([]BestEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM bests WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("select bests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []BestEvent
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var e BestEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("decode best: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RunInfo describes one recorded run.
type RunInfo struct {
	RunID  string
	Rounds int
	Best   float64
}

// Runs lists the recorded runs by first insertion, with their round count
// and final swarm best.
func (s *SQLite) Runs(ctx context.Context) ([]RunInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, `SELECT run_id, COUNT(*), MAX(best)
		FROM rounds GROUP BY run_id ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.RunID, &r.Rounds, &r.Best); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// DB exposes the underlying sql.DB for ad hoc queries.
func (s *SQLite) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *SQLite) Path() string { return s.path }
