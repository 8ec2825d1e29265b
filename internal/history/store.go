// Package history records lint runs to a local SQLite database so document
// quality can be tracked across runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/stelint/stelint/internal/model"
)

// Schema for the lint_runs table, applied by Open.
const schema = `
CREATE TABLE IF NOT EXISTS lint_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	total INTEGER NOT NULL,
	forbidden INTEGER NOT NULL,
	unapproved INTEGER NOT NULL,
	too_long INTEGER NOT NULL,
	passive INTEGER NOT NULL,
	duration_us INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lint_runs_ts ON lint_runs(timestamp);
CREATE INDEX IF NOT EXISTS idx_lint_runs_source ON lint_runs(source);
`

// Run is one recorded lint invocation
type Run struct {
	ID         int64
	Source     string
	Total      int
	Forbidden  int
	Unapproved int
	TooLong    int
	Passive    int
	Duration   time.Duration
	Timestamp  time.Time
}

// Store persists lint runs to SQLite
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one lint run
func (s *Store) Record(report *model.Report, duration time.Duration) error {
	counts := report.CountByKind()

	_, err := s.db.Exec(
		`INSERT INTO lint_runs (source, total, forbidden, unapproved, too_long, passive, duration_us, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.Source,
		len(report.Issues),
		counts[model.KindForbiddenWord],
		counts[model.KindUnapprovedWord],
		counts[model.KindSentenceTooLong],
		counts[model.KindPassiveVoice],
		duration.Microseconds(),
		report.LintedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("record lint run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source, total, forbidden, unapproved, too_long, passive, duration_us, timestamp
		 FROM lint_runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query lint runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationUS, ts int64
		if err := rows.Scan(&r.ID, &r.Source, &r.Total, &r.Forbidden, &r.Unapproved,
			&r.TooLong, &r.Passive, &durationUS, &ts); err != nil {
			return nil, fmt.Errorf("scan lint run: %w", err)
		}
		r.Duration = time.Duration(durationUS) * time.Microsecond
		r.Timestamp = time.Unix(ts, 0)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lint runs: %w", err)
	}

	return runs, nil
}
