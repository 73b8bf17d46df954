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

// SplitEntry carves a trailing duration off an entry into a new entry,
// without referencing a specific segment. The new entry receives a single
// manual segment ending where the source's last completed segment ends; the
// source is debited by a negative adjustment carrying a Split link. A live
// timer must be stopped before splitting.
func (e *Engine) SplitEntry(
	ctx context.Context,
	params ledger.SplitEntryParams,
) (*ledger.EntryView, error) {
	if params.DurationSeconds <= 0 {
		return nil, fmt.Errorf("%w: split duration must be positive", ledger.ErrInvalidInput)
	}

	now := e.now()

	var newEntryID string
	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		entry, err := requireOwnedActive(ctx, tx, params.EntryID, params.CallerID)
		if err != nil {
			return err
		}

		segs, err := tx.ListSegments(ctx, entry.ID)
		if err != nil {
			return err
		}
		if len(segs) == 0 {
			return fmt.Errorf("%w: entry has no segments", ledger.ErrInvalidInput)
		}

		var total int64
		for i := range segs {
			if segs[i].Running() {
				return fmt.Errorf("%w: stop the running segment before splitting", ledger.ErrInvalidInput)
			}
			total += segs[i].Seconds(now)
		}
		if params.DurationSeconds >= total {
			return fmt.Errorf("%w: split duration must be less than the entry total", ledger.ErrInvalidInput)
		}

		endTime := segmentEnd(segs)
		if endTime.IsZero() {
			// Adjustment-only entry: synthesize an interval ending now.
			endTime = now
		}
		newStart := endTime.Add(-time.Duration(params.DurationSeconds) * time.Second)

		description := entry.Description
		if params.Description != nil {
			description = *params.Description
		}
		projectID := entry.ProjectID
		if params.ProjectID != nil {
			projectID = params.ProjectID
		}

		newEntry := &ledger.Entry{
			ID:          uuid.NewString(),
			UserID:      entry.UserID,
			Description: description,
			ProjectID:   projectID,
			Issue:       entry.Issue,
			IsActive:    true,
			CreatedAt:   now,
		}
		if err := tx.InsertEntry(ctx, newEntry); err != nil {
			return err
		}
		newEntryID = newEntry.ID

		labelIDs, err := tx.LabelIDs(ctx, entry.ID)
		if err != nil {
			return err
		}
		if len(labelIDs) > 0 {
			if err := tx.ReplaceLabels(ctx, newEntry.ID, labelIDs); err != nil {
				return err
			}
		}

		splitDuration := params.DurationSeconds
		carved := &ledger.Segment{
			ID:              uuid.NewString(),
			EntryID:         newEntry.ID,
			Kind:            ledger.SegmentManual,
			StartedAt:       &newStart,
			StoppedAt:       &endTime,
			DurationSeconds: &splitDuration,
			CreatedAt:       now,
		}
		if err := tx.InsertSegment(ctx, carved); err != nil {
			return err
		}

		debit := -splitDuration
		residue := &ledger.Segment{
			ID:              uuid.NewString(),
			EntryID:         entry.ID,
			Kind:            ledger.SegmentAdjustment,
			DurationSeconds: &debit,
			Note:            params.Note,
			Link: &ledger.Link{
				Kind:              ledger.LinkSplit,
				TargetEntryID:     newEntry.ID,
				TargetDescription: description,
			},
			CreatedAt: now,
		}
		if err := tx.InsertSegment(ctx, residue); err != nil {
			return err
		}

		sourceAudit := e.newAudit(entry.ID, params.CallerID, ledger.ActionEntrySplit, nil,
			map[string]string{
				"old_total_seconds":    strconv.FormatInt(total, 10),
				"new_total_seconds":    strconv.FormatInt(total-splitDuration, 10),
				"destination_entry_id": newEntry.ID,
			})
		if err := tx.InsertAuditEvent(ctx, sourceAudit); err != nil {
			return err
		}

		changes := map[string]ledger.FieldChange{
			"description":      {New: description},
			"duration_seconds": {New: splitDuration},
		}
		if projectID != nil {
			changes["project"] = ledger.FieldChange{New: e.projectName(ctx, *projectID)}
		}
		destAudit := e.newAudit(newEntry.ID, params.CallerID, ledger.ActionCreated, changes,
			map[string]string{"source_entry_id": entry.ID})
		return tx.InsertAuditEvent(ctx, destAudit)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Debug("entry split",
		slog.String("source_entry_id", params.EntryID),
		slog.String("destination_entry_id", newEntryID),
		slog.Int64("split_seconds", params.DurationSeconds),
	)

	return e.assembleEntry(ctx, newEntryID)
}
