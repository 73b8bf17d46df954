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
	"fmt"
	"sort"
)

// LabelIDs returns the label ids attached to an entry, sorted.
func (q queries) LabelIDs(
	ctx context.Context,
	entryID string,
) ([]string, error) {
	rows, err := q.q.QueryContext(ctx,
		`SELECT label_id FROM entry_labels WHERE entry_id = ? ORDER BY label_id`,
		entryID)
	if err != nil {
		return nil, fmt.Errorf("list entry labels: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ReplaceLabels applies full-replace-on-update semantics to an entry's
// label set.
func (q queries) ReplaceLabels(
	ctx context.Context,
	entryID string,
	labelIDs []string,
) error {
	if _, err := q.q.ExecContext(ctx,
		`DELETE FROM entry_labels WHERE entry_id = ?`, entryID); err != nil {
		return fmt.Errorf("clear entry labels: %w", err)
	}

	for _, id := range labelIDs {
		if _, err := q.q.ExecContext(ctx,
			`INSERT OR IGNORE INTO entry_labels (entry_id, label_id) VALUES (?, ?)`,
			entryID, id); err != nil {
			return fmt.Errorf("attach label %s: %w", id, err)
		}
	}
	return nil
}

// LabelIDsByEntryIDs batch-loads label ids for many entries, keyed by entry.
func (q queries) LabelIDsByEntryIDs(
	ctx context.Context,
	entryIDs []string,
) (map[string][]string, error) {
	out := make(map[string][]string, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}

	query := `SELECT entry_id, label_id FROM entry_labels
	 WHERE entry_id IN (` + placeholders(len(entryIDs)) + `)`
	rows, err := q.q.QueryContext(ctx, query, toAnySlice(entryIDs)...)
	if err != nil {
		return nil, fmt.Errorf("load entry labels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, labelID string
		if err := rows.Scan(&entryID, &labelID); err != nil {
			return nil, err
		}
		out[entryID] = append(out[entryID], labelID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, ids := range out {
		sort.Strings(ids)
	}
	return out, nil
}
