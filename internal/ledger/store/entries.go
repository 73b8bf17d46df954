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

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

const entryColumns = `id, user_id, description, project_id,
	issue_key, issue_summary, issue_connection_id, is_active, created_at`

// InsertEntry writes a new entry row.
func (q queries) InsertEntry(
	ctx context.Context,
	e *ledger.Entry,
) error {
	var issueKey, issueSummary, issueConn any
	if e.Issue != nil {
		issueKey, issueSummary, issueConn = e.Issue.Key, e.Issue.Summary, e.Issue.ConnectionID
	}

	_, err := q.q.ExecContext(ctx,
		`INSERT INTO entries (id, user_id, description, project_id,
		   issue_key, issue_summary, issue_connection_id, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Description, e.ProjectID,
		issueKey, issueSummary, issueConn, boolToInt(e.IsActive), fmtTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetEntry retrieves an entry by ID regardless of its active flag.
// Returns (nil, nil) when no such entry exists.
func (q queries) GetEntry(
	ctx context.Context,
	id string,
) (*ledger.Entry, error) {
	row := q.q.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// UpdateEntryMeta persists the entry's mutable metadata fields. Time and
// segment state live in the segments table and are untouched.
func (q queries) UpdateEntryMeta(
	ctx context.Context,
	e *ledger.Entry,
) error {
	var issueKey, issueSummary, issueConn any
	if e.Issue != nil {
		issueKey, issueSummary, issueConn = e.Issue.Key, e.Issue.Summary, e.Issue.ConnectionID
	}

	_, err := q.q.ExecContext(ctx,
		`UPDATE entries SET description = ?, project_id = ?,
		   issue_key = ?, issue_summary = ?, issue_connection_id = ?
		 WHERE id = ?`,
		e.Description, e.ProjectID, issueKey, issueSummary, issueConn, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// SetEntryActive flips the soft-delete flag.
func (q queries) SetEntryActive(
	ctx context.Context,
	id string,
	active bool,
) error {
	_, err := q.q.ExecContext(ctx,
		`UPDATE entries SET is_active = ? WHERE id = ?`, boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("set entry active: %w", err)
	}
	return nil
}

// ActiveDescriptions returns the descriptions of the user's active entries
// that exactly match base or carry a " (N)" style suffix on it. This is the
// sibling set the duplicate-naming algorithm scans.
func (q queries) ActiveDescriptions(
	ctx context.Context,
	userID string,
	base string,
) ([]string, error) {
	rows, err := q.q.QueryContext(ctx,
		`SELECT description FROM entries
		 WHERE user_id = ? AND is_active = 1
		   AND (description = ? OR description LIKE ? ESCAPE '\')`,
		userID, base, likeEscape(base)+" (%",
	)
	if err != nil {
		return nil, fmt.Errorf("list sibling descriptions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// EntriesByIDs batch-loads full entry rows.
func (q queries) EntriesByIDs(
	ctx context.Context,
	ids []string,
) ([]ledger.Entry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + entryColumns + ` FROM entries WHERE id IN (` + placeholders(len(ids)) + `)`
	rows, err := q.q.QueryContext(ctx, query, toAnySlice(ids)...)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	var out []ledger.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// CandidateEntryIDs finds entries of the user whose segments overlap the
// range, whose running segment started before range-end, or whose creation
// time falls in range when no timed segment exists.
func (q queries) CandidateEntryIDs(
	ctx context.Context,
	userID string,
	from time.Time,
	to time.Time,
	active bool,
) ([]string, error) {
	fromStr, toStr := fmtTime(from), fmtTime(to)
	rows, err := q.q.QueryContext(ctx,
		`SELECT DISTINCT e.id FROM entries e
		 LEFT JOIN segments s ON s.entry_id = e.id
		 WHERE e.user_id = ? AND e.is_active = ?
		   AND (
		     (s.started_at IS NOT NULL AND s.started_at <= ?
		       AND (s.stopped_at IS NULL OR s.stopped_at >= ?))
		     OR ((s.id IS NULL OR s.started_at IS NULL)
		       AND e.created_at >= ? AND e.created_at <= ?)
		   )`,
		userID, boolToInt(active), toStr, fromStr, fromStr, toStr,
	)
	if err != nil {
		return nil, fmt.Errorf("find candidate entries: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*ledger.Entry, error) {
	var (
		e          ledger.Entry
		projectID  sql.NullString
		issueKey   sql.NullString
		issueSumm  sql.NullString
		issueConn  sql.NullString
		active     int
		createdStr string
	)
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Description, &projectID,
		&issueKey, &issueSumm, &issueConn, &active, &createdStr,
	); err != nil {
		return nil, err
	}

	if projectID.Valid {
		e.ProjectID = &projectID.String
	}
	if issueKey.Valid {
		e.Issue = &ledger.IssueRef{
			Key:          issueKey.String,
			Summary:      issueSumm.String,
			ConnectionID: issueConn.String,
		}
	}
	e.IsActive = active != 0

	created, err := parseTime(createdStr)
	if err != nil {
		return nil, err
	}
	e.CreatedAt = created

	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// likeEscape escapes LIKE metacharacters in a literal prefix.
func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
