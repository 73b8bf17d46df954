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
	"encoding/json"
	"fmt"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

// InsertAuditEvent appends an audit event. Rows are never updated or
// deleted; a failed insert must fail the surrounding transaction.
func (q queries) InsertAuditEvent(
	ctx context.Context,
	ev *ledger.AuditEvent,
) error {
	changes, err := json.Marshal(ev.Changes)
	if err != nil {
		return fmt.Errorf("marshal audit changes: %w", err)
	}
	metadata, err := json.Marshal(ev.Metadata)
	if err != nil {
		return fmt.Errorf("marshal audit metadata: %w", err)
	}

	_, err = q.q.ExecContext(ctx,
		`INSERT INTO audit_events (id, entry_id, actor_id, action, changes, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.EntryID, ev.ActorID, string(ev.Action),
		string(changes), string(metadata), fmtTime(ev.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// AuditEvents returns an entry's audit trail, newest first.
func (q queries) AuditEvents(
	ctx context.Context,
	entryID string,
) ([]ledger.AuditEvent, error) {
	rows, err := q.q.QueryContext(ctx,
		`SELECT id, entry_id, actor_id, action, changes, metadata, created_at
		 FROM audit_events WHERE entry_id = ?
		 ORDER BY created_at DESC, id DESC`, entryID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []ledger.AuditEvent
	for rows.Next() {
		var (
			ev          ledger.AuditEvent
			action      string
			changesStr  string
			metadataStr string
			createdStr  string
		)
		if err := rows.Scan(
			&ev.ID, &ev.EntryID, &ev.ActorID, &action,
			&changesStr, &metadataStr, &createdStr,
		); err != nil {
			return nil, err
		}

		ev.Action = ledger.AuditAction(action)
		if err := json.Unmarshal([]byte(changesStr), &ev.Changes); err != nil {
			return nil, fmt.Errorf("unmarshal audit changes: %w", err)
		}
		if err := json.Unmarshal([]byte(metadataStr), &ev.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal audit metadata: %w", err)
		}

		created, err := parseTime(createdStr)
		if err != nil {
			return nil, err
		}
		ev.CreatedAt = created

		out = append(out, ev)
	}
	return out, rows.Err()
}
