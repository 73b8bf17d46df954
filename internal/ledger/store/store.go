// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package store manages all SQLite persistence for the ledger.
//
// SQLite in WAL mode is the shared store every mutation engine transaction
// runs against: either every write (entry row, segment rows, label rows,
// audit row) commits, or none do.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages all SQLite operations with WAL mode for concurrent access.
type Store struct {
	db *sql.DB
	queries
}

// dbtx is the subset of *sql.DB and *sql.Tx the queries run against.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queries holds every typed query; it runs against either the database or an
// open transaction.
type queries struct {
	q dbtx
}

// Tx exposes the typed queries inside one transaction.
type Tx struct {
	queries
}

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db, queries: queries{q: db}}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for collaborators that read the
// reference tables (projects, labels) out of the same database.
func (s *Store) DB() *sql.DB { return s.db }

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// WithTx runs fn inside one transaction, retrying the whole transaction on
// transient SQLite contention. A non-nil error from fn rolls everything
// back and is returned unchanged, so domain errors pass through without
// retries.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	return retryOnContention(func() error {
		sqlTx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}

		if err := fn(&Tx{queries: queries{q: sqlTx}}); err != nil {
			_ = sqlTx.Rollback()
			return err
		}

		if err := sqlTx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		project_id          TEXT,
		issue_key           TEXT,
		issue_summary       TEXT,
		issue_connection_id TEXT,
		is_active           INTEGER NOT NULL DEFAULT 1,
		created_at          TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_user ON entries(user_id, is_active);
	CREATE INDEX IF NOT EXISTS idx_entries_user_desc ON entries(user_id, description);

	CREATE TABLE IF NOT EXISTS segments (
		id                      TEXT PRIMARY KEY,
		entry_id                TEXT NOT NULL REFERENCES entries(id),
		kind                    TEXT NOT NULL,
		started_at              TEXT,
		stopped_at              TEXT,
		duration_seconds        INTEGER,
		note                    TEXT NOT NULL DEFAULT '',
		link_kind               TEXT,
		link_target_entry_id    TEXT,
		link_target_description TEXT,
		created_at              TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_segments_entry ON segments(entry_id);
	CREATE INDEX IF NOT EXISTS idx_segments_started ON segments(started_at);

	CREATE TABLE IF NOT EXISTS entry_labels (
		entry_id TEXT NOT NULL REFERENCES entries(id),
		label_id TEXT NOT NULL,
		PRIMARY KEY (entry_id, label_id)
	);

	CREATE TABLE IF NOT EXISTS audit_events (
		id         TEXT PRIMARY KEY,
		entry_id   TEXT NOT NULL REFERENCES entries(id),
		actor_id   TEXT NOT NULL,
		action     TEXT NOT NULL,
		changes    TEXT NOT NULL DEFAULT '{}',
		metadata   TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_entry ON audit_events(entry_id, created_at);

	CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		color       TEXT NOT NULL DEFAULT '',
		client_name TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS labels (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ---------------------------------------------------------------------------
// Time encoding
// ---------------------------------------------------------------------------

// timeLayout is RFC 3339 with a fixed nine-digit fraction. Every time
// column stores UTC text in this layout so that lexicographic SQL
// comparison and ORDER BY match chronological order; RFC3339Nano trims
// trailing zeros and breaks ordering across mixed precision.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func fmtTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func fmtTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtTime(*t)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

func parseTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
