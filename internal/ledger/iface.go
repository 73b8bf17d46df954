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

package ledger

import (
	"context"
	"time"
)

// CreateEntryParams are the inputs to Service.CreateEntry.
type CreateEntryParams struct {
	// OwnerID is the entry owner.
	OwnerID string
	// ActorID is the real identity making the change; differs from
	// OwnerID under impersonation.
	ActorID string
	// Description may be empty.
	Description string
	// ProjectID is an optional project reference.
	ProjectID *string
	// Issue is an optional issue-tracker reference.
	Issue *IssueRef
	// LabelIDs are attached to the new entry.
	LabelIDs []string
	// StartedAt and StoppedAt bound the initial manual segment.
	StartedAt time.Time
	StoppedAt time.Time
	// Note is attached to the initial segment.
	Note string
	// Source tags where the change came from, e.g. "api".
	Source string
}

// MoveBlockParams are the inputs to Service.MoveBlock.
type MoveBlockParams struct {
	// EntryID is the source entry.
	EntryID string
	// CallerID must be the source entry's owner.
	CallerID string
	// SegmentID names the segment whose time moves to a new entry.
	SegmentID string
	// Description overrides the auto-derived name of the new entry.
	Description *string
	// ProjectID overrides the cloned project of the new entry.
	ProjectID *string
}

// SplitEntryParams are the inputs to Service.SplitEntry.
type SplitEntryParams struct {
	// EntryID is the source entry.
	EntryID string
	// CallerID must be the source entry's owner.
	CallerID string
	// DurationSeconds is the trailing duration carved off; must be
	// strictly less than the source entry's stored total.
	DurationSeconds int64
	// Description overrides the cloned description of the new entry.
	Description *string
	// ProjectID overrides the cloned project of the new entry.
	ProjectID *string
	// Note is a human-readable reason recorded on the residue
	// adjustment.
	Note string
}

// Service is the ledger's operation surface: the transactional mutation
// engine plus the read-side range assembly.
type Service interface {
	// CreateEntry inserts an entry with one manual segment spanning the
	// given interval, attaches labels, and audits the creation. One
	// atomic transaction.
	CreateEntry(ctx context.Context, params CreateEntryParams) (*EntryView, error)

	// UpdateEntry applies a sparse metadata patch to an active entry
	// owned by the caller. Segments and time fields are never touched
	// here. No audit event is written when nothing changed.
	UpdateEntry(ctx context.Context, entryID, callerID string, patch EntryPatch) (*EntryView, error)

	// DeleteEntry soft-deletes an active entry, stopping its running
	// segment first so deletion never leaves a dangling live timer.
	DeleteEntry(ctx context.Context, entryID, callerID string) error

	// RestoreEntry flips a soft-deleted entry back to active. Segment
	// state is not resurrected.
	RestoreEntry(ctx context.Context, entryID, callerID string) (*EntryView, error)

	// AddAdjustment records a signed duration correction. The duration
	// must be non-zero and the note non-empty.
	AddAdjustment(ctx context.Context, entryID, callerID string, durationSeconds int64, note string) (*EntryView, error)

	// MoveBlock relocates one segment's time from its entry to a brand
	// new entry, conserving the total across both. Returns the new
	// entry.
	MoveBlock(ctx context.Context, params MoveBlockParams) (*EntryView, error)

	// SplitEntry carves a trailing duration off an entry into a new
	// entry, conserving the total across both. Returns the new entry.
	SplitEntry(ctx context.Context, params SplitEntryParams) (*EntryView, error)

	// ListEntries assembles day-bucketed views of a user's entries whose
	// activity overlaps the inclusive calendar-day range.
	ListEntries(ctx context.Context, userID string, from, to time.Time, includeDeleted bool) ([]DayGroup, error)

	// GetAuditTrail returns an entry's audit events, newest first.
	GetAuditTrail(ctx context.Context, entryID, callerID string) ([]AuditEvent, error)

	// StartTimer begins a clocked segment on the entry, stopping any
	// segment already running for the user first so at most one segment
	// runs per user.
	StartTimer(ctx context.Context, entryID, callerID string) (*EntryView, error)

	// StopTimer stops the user's running segment, wherever it is, and
	// returns the owning entry.
	StopTimer(ctx context.Context, userID, callerID string) (*EntryView, error)
}
