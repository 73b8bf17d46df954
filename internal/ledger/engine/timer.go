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

// timer.go is the timer coordinator: it owns the invariant that across all
// of a user's entries at most one segment is running at a time.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/timeledger-io/timeledger/internal/ledger"
	"github.com/timeledger-io/timeledger/internal/ledger/store"
)

// StartTimer begins a clocked segment on the entry. Any segment already
// running for the user is stopped first, in the same transaction, so a
// second running segment is never observable. The event is audited as
// timer_resumed when the entry already holds segments, timer_started
// otherwise.
func (e *Engine) StartTimer(
	ctx context.Context,
	entryID string,
	callerID string,
) (*ledger.EntryView, error) {
	now := e.now()

	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		entry, err := requireOwnedActive(ctx, tx, entryID, callerID)
		if err != nil {
			return err
		}

		if err := e.stopRunning(ctx, tx, entry.UserID, callerID, now, entryID); err != nil {
			return err
		}

		segs, err := tx.ListSegments(ctx, entryID)
		if err != nil {
			return err
		}

		seg := &ledger.Segment{
			ID:        uuid.NewString(),
			EntryID:   entryID,
			Kind:      ledger.SegmentClocked,
			StartedAt: &now,
			CreatedAt: now,
		}
		if err := tx.InsertSegment(ctx, seg); err != nil {
			return err
		}

		action := ledger.ActionTimerStarted
		if len(segs) > 0 {
			action = ledger.ActionTimerResumed
		}
		return tx.InsertAuditEvent(ctx, e.newAudit(entryID, callerID, action,
			nil, map[string]string{"segment_id": seg.ID}))
	})
	if err != nil {
		return nil, err
	}

	e.logger.Debug("timer started",
		slog.String("entry_id", entryID),
		slog.String("caller_id", callerID),
	)

	return e.assembleEntry(ctx, entryID)
}

// StopTimer stops the user's running segment, wherever it is, freezing its
// stop time and duration. Fails NotFound when no timer is live.
func (e *Engine) StopTimer(
	ctx context.Context,
	userID string,
	callerID string,
) (*ledger.EntryView, error) {
	now := e.now()

	var entryID string
	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		running, err := tx.RunningSegmentForUser(ctx, userID)
		if err != nil {
			return err
		}
		if running == nil {
			return fmt.Errorf("%w: no running segment", ledger.ErrNotFound)
		}
		entryID = running.EntryID

		elapsed := roundSeconds(now.Sub(*running.StartedAt))
		if err := tx.StopSegment(ctx, running.ID, now, elapsed); err != nil {
			return err
		}

		return tx.InsertAuditEvent(ctx, e.newAudit(entryID, callerID, ledger.ActionTimerStopped,
			nil, map[string]string{
				"segment_id":       running.ID,
				"duration_seconds": strconv.FormatInt(elapsed, 10),
			}))
	})
	if err != nil {
		return nil, err
	}

	return e.assembleEntry(ctx, entryID)
}

// stopRunning freezes the user's running segment, if any, and audits the
// stop on its owning entry. skipEntryID suppresses the audit event when the
// running segment already belongs to the entry being started, so one
// logical operation doesn't produce two events on the same entry.
func (e *Engine) stopRunning(
	ctx context.Context,
	tx *store.Tx,
	userID string,
	callerID string,
	now time.Time,
	skipEntryID string,
) error {
	running, err := tx.RunningSegmentForUser(ctx, userID)
	if err != nil {
		return err
	}
	if running == nil {
		return nil
	}

	elapsed := roundSeconds(now.Sub(*running.StartedAt))
	if err := tx.StopSegment(ctx, running.ID, now, elapsed); err != nil {
		return err
	}

	if running.EntryID == skipEntryID {
		return nil
	}
	return tx.InsertAuditEvent(ctx, e.newAudit(running.EntryID, callerID, ledger.ActionTimerStopped,
		nil, map[string]string{
			"segment_id":       running.ID,
			"duration_seconds": strconv.FormatInt(elapsed, 10),
		}))
}
