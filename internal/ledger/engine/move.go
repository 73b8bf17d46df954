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

// movedNote is the note carried by the manual segment that represents a
// completed block on its destination entry.
const movedNote = "Moved from another entry"

// MoveBlock relocates one segment's time from its entry to a brand-new
// entry. The sum of stored totals across source and destination is exactly
// the source's total before the move: the source is debited by a negative
// adjustment carrying a Moved link, and the destination is credited with a
// segment of the same duration. A running segment keeps running on the
// destination.
func (e *Engine) MoveBlock(
	ctx context.Context,
	params ledger.MoveBlockParams,
) (*ledger.EntryView, error) {
	now := e.now()

	var newEntryID string
	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		entry, err := requireOwnedActive(ctx, tx, params.EntryID, params.CallerID)
		if err != nil {
			return err
		}

		seg, err := tx.GetSegment(ctx, params.SegmentID)
		if err != nil {
			return err
		}
		if seg == nil || seg.EntryID != entry.ID {
			return fmt.Errorf("%w: segment does not belong to entry", ledger.ErrInvalidInput)
		}
		if seg.Kind == ledger.SegmentAdjustment {
			return fmt.Errorf("%w: adjustments cannot be moved", ledger.ErrInvalidInput)
		}

		running := seg.Running()
		var blockDuration int64
		if running {
			blockDuration = roundSeconds(now.Sub(*seg.StartedAt))
			if err := tx.StopSegment(ctx, seg.ID, now, blockDuration); err != nil {
				return err
			}
		} else {
			if seg.DurationSeconds == nil || *seg.DurationSeconds <= 0 {
				return fmt.Errorf("%w: segment has no positive duration", ledger.ErrInvalidInput)
			}
			blockDuration = *seg.DurationSeconds
		}

		description := ""
		if params.Description != nil {
			description = *params.Description
		} else {
			description, err = nextDuplicateName(ctx, tx, entry.UserID, entry.Description)
			if err != nil {
				return err
			}
		}

		projectID := entry.ProjectID
		if params.ProjectID != nil {
			projectID = params.ProjectID
		}

		// Clone the source's creation time so the new entry buckets to
		// the same day when it has no timed segment of its own.
		newEntry := &ledger.Entry{
			ID:          uuid.NewString(),
			UserID:      entry.UserID,
			Description: description,
			ProjectID:   projectID,
			Issue:       entry.Issue,
			IsActive:    true,
			CreatedAt:   entry.CreatedAt,
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

		moved := &ledger.Segment{
			ID:        uuid.NewString(),
			EntryID:   newEntry.ID,
			StartedAt: seg.StartedAt,
			CreatedAt: now,
		}
		if running {
			// The timer conceptually continues on the new entry.
			moved.Kind = ledger.SegmentClocked
		} else {
			moved.Kind = ledger.SegmentManual
			moved.StoppedAt = seg.StoppedAt
			moved.DurationSeconds = &blockDuration
			moved.Note = movedNote
		}
		if err := tx.InsertSegment(ctx, moved); err != nil {
			return err
		}

		debit := -blockDuration
		residue := &ledger.Segment{
			ID:              uuid.NewString(),
			EntryID:         entry.ID,
			Kind:            ledger.SegmentAdjustment,
			DurationSeconds: &debit,
			Link: &ledger.Link{
				Kind:              ledger.LinkMoved,
				TargetEntryID:     newEntry.ID,
				TargetDescription: description,
			},
			CreatedAt: now,
		}
		if err := tx.InsertSegment(ctx, residue); err != nil {
			return err
		}

		sourceAudit := e.newAudit(entry.ID, params.CallerID, ledger.ActionBlockMoved, nil,
			map[string]string{
				"segment_id":           seg.ID,
				"moved_seconds":        strconv.FormatInt(blockDuration, 10),
				"destination_entry_id": newEntry.ID,
			})
		if err := tx.InsertAuditEvent(ctx, sourceAudit); err != nil {
			return err
		}

		changes := map[string]ledger.FieldChange{
			"description":      {New: description},
			"duration_seconds": {New: blockDuration},
		}
		if projectID != nil {
			changes["project"] = ledger.FieldChange{New: e.projectName(ctx, *projectID)}
		}
		destAudit := e.newAudit(newEntry.ID, params.CallerID, ledger.ActionCreated, changes,
			map[string]string{
				"source_entry_id": entry.ID,
				"running_move":    strconv.FormatBool(running),
			})
		return tx.InsertAuditEvent(ctx, destAudit)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Debug("block moved",
		slog.String("source_entry_id", params.EntryID),
		slog.String("destination_entry_id", newEntryID),
		slog.String("segment_id", params.SegmentID),
	)

	return e.assembleEntry(ctx, newEntryID)
}

// segmentEnd returns the stop time of the latest completed timed segment,
// or the zero time when none exists.
func segmentEnd(segs []ledger.Segment) time.Time {
	var end time.Time
	for i := range segs {
		if segs[i].StoppedAt != nil && segs[i].StoppedAt.After(end) {
			end = *segs[i].StoppedAt
		}
	}
	return end
}
