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
	"time"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

const segmentColumns = `id, entry_id, kind, started_at, stopped_at,
	duration_seconds, note, link_kind, link_target_entry_id,
	link_target_description, created_at`

// InsertSegment writes a new segment row.
func (q queries) InsertSegment(
	ctx context.Context,
	seg *ledger.Segment,
) error {
	var linkKind, linkTarget, linkDesc any
	if seg.Link != nil {
		linkKind, linkTarget, linkDesc = string(seg.Link.Kind), seg.Link.TargetEntryID, seg.Link.TargetDescription
	}

	var duration any
	if seg.DurationSeconds != nil {
		duration = *seg.DurationSeconds
	}

	_, err := q.q.ExecContext(ctx,
		`INSERT INTO segments (id, entry_id, kind, started_at, stopped_at,
		   duration_seconds, note, link_kind, link_target_entry_id,
		   link_target_description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seg.ID, seg.EntryID, string(seg.Kind),
		fmtTimePtr(seg.StartedAt), fmtTimePtr(seg.StoppedAt),
		duration, seg.Note, linkKind, linkTarget, linkDesc, fmtTime(seg.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert segment: %w", err)
	}
	return nil
}

// GetSegment retrieves a segment by ID. Returns (nil, nil) when missing.
func (q queries) GetSegment(
	ctx context.Context,
	id string,
) (*ledger.Segment, error) {
	row := q.q.QueryRowContext(ctx,
		`SELECT `+segmentColumns+` FROM segments WHERE id = ?`, id)

	seg, err := scanSegment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return seg, err
}

// ListSegments returns all segments of one entry, oldest first.
func (q queries) ListSegments(
	ctx context.Context,
	entryID string,
) ([]ledger.Segment, error) {
	rows, err := q.q.QueryContext(ctx,
		`SELECT `+segmentColumns+` FROM segments
		 WHERE entry_id = ? ORDER BY created_at, id`, entryID)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	defer rows.Close()

	return collectSegments(rows)
}

// SegmentsByEntryIDs batch-loads segments for many entries, keyed by entry.
func (q queries) SegmentsByEntryIDs(
	ctx context.Context,
	entryIDs []string,
) (map[string][]ledger.Segment, error) {
	out := make(map[string][]ledger.Segment, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + segmentColumns + ` FROM segments
	 WHERE entry_id IN (` + placeholders(len(entryIDs)) + `) ORDER BY created_at, id`
	rows, err := q.q.QueryContext(ctx, query, toAnySlice(entryIDs)...)
	if err != nil {
		return nil, fmt.Errorf("load segments: %w", err)
	}
	defer rows.Close()

	segs, err := collectSegments(rows)
	if err != nil {
		return nil, err
	}
	for _, seg := range segs {
		out[seg.EntryID] = append(out[seg.EntryID], seg)
	}
	return out, nil
}

// StopSegment freezes a running segment: sets its stop time and stores the
// computed duration.
func (q queries) StopSegment(
	ctx context.Context,
	id string,
	stoppedAt time.Time,
	durationSeconds int64,
) error {
	res, err := q.q.ExecContext(ctx,
		`UPDATE segments SET stopped_at = ?, duration_seconds = ?
		 WHERE id = ? AND stopped_at IS NULL`,
		fmtTime(stoppedAt), durationSeconds, id,
	)
	if err != nil {
		return fmt.Errorf("stop segment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("stop segment %s: not running", id)
	}
	return nil
}

// RunningSegmentForUser returns the user's running segment across all their
// entries, or (nil, nil) when no timer is live. At most one can exist.
func (q queries) RunningSegmentForUser(
	ctx context.Context,
	userID string,
) (*ledger.Segment, error) {
	row := q.q.QueryRowContext(ctx,
		`SELECT s.id, s.entry_id, s.kind, s.started_at, s.stopped_at,
		   s.duration_seconds, s.note, s.link_kind, s.link_target_entry_id,
		   s.link_target_description, s.created_at
		 FROM segments s
		 JOIN entries e ON e.id = s.entry_id
		 WHERE e.user_id = ? AND s.kind = ? AND s.stopped_at IS NULL
		 LIMIT 1`,
		userID, string(ledger.SegmentClocked),
	)

	seg, err := scanSegment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return seg, err
}

func collectSegments(rows *sql.Rows) ([]ledger.Segment, error) {
	var out []ledger.Segment
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *seg)
	}
	return out, rows.Err()
}

func scanSegment(row scanner) (*ledger.Segment, error) {
	var (
		seg        ledger.Segment
		kind       string
		startedStr sql.NullString
		stoppedStr sql.NullString
		duration   sql.NullInt64
		linkKind   sql.NullString
		linkTarget sql.NullString
		linkDesc   sql.NullString
		createdStr string
	)
	if err := row.Scan(
		&seg.ID, &seg.EntryID, &kind, &startedStr, &stoppedStr,
		&duration, &seg.Note, &linkKind, &linkTarget, &linkDesc, &createdStr,
	); err != nil {
		return nil, err
	}

	seg.Kind = ledger.SegmentKind(kind)

	var err error
	if seg.StartedAt, err = parseTimePtr(startedStr); err != nil {
		return nil, err
	}
	if seg.StoppedAt, err = parseTimePtr(stoppedStr); err != nil {
		return nil, err
	}
	if duration.Valid {
		seg.DurationSeconds = &duration.Int64
	}
	if linkKind.Valid {
		seg.Link = &ledger.Link{
			Kind:              ledger.LinkKind(linkKind.String),
			TargetEntryID:     linkTarget.String,
			TargetDescription: linkDesc.String,
		}
	}

	created, err := parseTime(createdStr)
	if err != nil {
		return nil, err
	}
	seg.CreatedAt = created

	return &seg, nil
}
