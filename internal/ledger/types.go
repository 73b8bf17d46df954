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

// Package ledger defines the time-tracking ledger domain model: entries,
// segments, audit events, and the views assembled for readers.
package ledger

import "time"

// SegmentKind identifies how a segment's time was recorded.
type SegmentKind string

// Segment kinds.
const (
	// SegmentClocked is a live-clocked interval. While running its stop
	// time and duration are null; both are frozen when the timer stops.
	SegmentClocked SegmentKind = "clocked"
	// SegmentManual is a user-entered interval with explicit start and stop.
	SegmentManual SegmentKind = "manual"
	// SegmentAdjustment is a signed duration correction with no interval.
	SegmentAdjustment SegmentKind = "adjustment"
)

// LinkKind identifies the provenance of an adjustment segment created by a
// restructuring operation.
type LinkKind string

// Link kinds.
const (
	LinkMoved LinkKind = "moved"
	LinkSplit LinkKind = "split"
)

// Link is a weak, non-owning cross-reference from an adjustment segment to
// the entry that received the time it debits. It exists only so readers can
// reconstruct where time went; it is not a foreign key and the target entry
// does not know about it.
type Link struct {
	// Kind is the restructuring operation that created the adjustment.
	Kind LinkKind `json:"kind"`
	// TargetEntryID is the entry the time was credited to.
	TargetEntryID string `json:"target_entry_id"`
	// TargetDescription is the target entry's description at link time.
	TargetDescription string `json:"target_description"`
}

// IssueRef is opaque descriptive metadata from the issue-tracker integration.
type IssueRef struct {
	// Key is the issue key, e.g. "PROJ-123".
	Key string `json:"key"`
	// Summary is the issue summary at attach time.
	Summary string `json:"summary"`
	// ConnectionID identifies the external tracker connection.
	ConnectionID string `json:"connection_id"`
}

// Entry is the addressable unit a user edits: a container for segments.
type Entry struct {
	// ID is the unique identifier, generated at creation.
	ID string `json:"id"`
	// UserID is the owner; immutable after creation.
	UserID string `json:"user_id"`
	// Description is free text, may be empty.
	Description string `json:"description"`
	// ProjectID is an optional reference into the project lookup.
	ProjectID *string `json:"project_id,omitempty"`
	// Issue is an optional issue-tracker reference.
	Issue *IssueRef `json:"issue,omitempty"`
	// IsActive is false when the entry is soft-deleted. Entries are never
	// hard-deleted.
	IsActive bool `json:"is_active"`
	// CreatedAt is set once at creation and used as a fallback bucketing
	// key when the entry has no timed segment.
	CreatedAt time.Time `json:"created_at"`
}

// Segment is an atomic slice of time or a signed correction within an entry.
// A segment belongs to exactly one entry.
type Segment struct {
	// ID is the unique identifier.
	ID string `json:"id"`
	// EntryID is the owning entry.
	EntryID string `json:"entry_id"`
	// Kind is clocked, manual, or adjustment.
	Kind SegmentKind `json:"kind"`
	// StartedAt is present for clocked and manual segments.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// StoppedAt is present for manual segments and stopped clocked
	// segments; nil while a clocked segment is running.
	StoppedAt *time.Time `json:"stopped_at,omitempty"`
	// DurationSeconds is signed. Nil while a clocked segment is running;
	// frozen when it stops.
	DurationSeconds *int64 `json:"duration_seconds,omitempty"`
	// Note is free text. Adjustments created by restructuring operations
	// carry their provenance in Link, not here.
	Note string `json:"note"`
	// Link is set on adjustment segments minted by move-block and split.
	Link *Link `json:"link,omitempty"`
	// CreatedAt is when the segment row was written.
	CreatedAt time.Time `json:"created_at"`
}

// Running reports whether the segment is a live-clocked segment with no stop
// time yet.
func (s *Segment) Running() bool {
	return s.Kind == SegmentClocked && s.StoppedAt == nil
}

// Seconds returns the segment's contribution to its entry's total, with the
// running segment's live elapsed substituted for its nil duration.
func (s *Segment) Seconds(now time.Time) int64 {
	if s.Running() {
		if s.StartedAt == nil {
			return 0
		}
		return int64(now.Sub(*s.StartedAt).Round(time.Second) / time.Second)
	}
	if s.DurationSeconds == nil {
		return 0
	}
	return *s.DurationSeconds
}

// Label is a tag attachable to entries.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AuditAction is the kind of mutation an audit event records.
type AuditAction string

// Audit actions.
const (
	ActionCreated         AuditAction = "created"
	ActionUpdated         AuditAction = "updated"
	ActionDeleted         AuditAction = "deleted"
	ActionAdjustmentAdded AuditAction = "adjustment_added"
	ActionBlockMoved      AuditAction = "block_moved"
	ActionEntrySplit      AuditAction = "entry_split"
	ActionTimerStarted    AuditAction = "timer_started"
	ActionTimerStopped    AuditAction = "timer_stopped"
	ActionTimerResumed    AuditAction = "timer_resumed"
)

// FieldChange is a before/after pair for one changed field. Only fields that
// actually changed appear in an audit event.
type FieldChange struct {
	Old any `json:"old,omitempty"`
	New any `json:"new,omitempty"`
}

// AuditEvent is an immutable record of one mutation to an entry. Events are
// written in the same transaction as the mutation they describe and are
// never updated or deleted.
type AuditEvent struct {
	// ID is the unique identifier.
	ID string `json:"id"`
	// EntryID is the entry the mutation touched.
	EntryID string `json:"entry_id"`
	// ActorID is the real, non-impersonated identity that caused the
	// change.
	ActorID string `json:"actor_id"`
	// Action is the mutation kind.
	Action AuditAction `json:"action"`
	// Changes maps field name to before/after values.
	Changes map[string]FieldChange `json:"changes"`
	// Metadata is free-form context, e.g. the source of the call.
	Metadata map[string]string `json:"metadata,omitempty"`
	// CreatedAt is when the event was written.
	CreatedAt time.Time `json:"created_at"`
}

// Optional wraps a patch field so that absent and null are distinguishable:
// Set reports whether the caller supplied the field at all.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// EntryPatch is a sparse metadata patch: each field is applied only when
// present. Time and segments are never touched through a patch.
type EntryPatch struct {
	Description Optional[string]
	ProjectID   Optional[*string]
	Issue       Optional[*IssueRef]
	LabelIDs    Optional[[]string]
}

// ProjectInfo is the display enrichment resolved from the project lookup.
type ProjectInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Client string `json:"client"`
}

// SegmentView is a segment prepared for display, with live elapsed
// substituted for a running segment's nil duration.
type SegmentView struct {
	ID              string      `json:"id"`
	Kind            SegmentKind `json:"kind"`
	StartedAt       *time.Time  `json:"started_at,omitempty"`
	StoppedAt       *time.Time  `json:"stopped_at,omitempty"`
	DurationSeconds int64       `json:"duration_seconds"`
	Running         bool        `json:"running"`
	Note            string      `json:"note,omitempty"`
	Link            *Link       `json:"link,omitempty"`
}

// EntryView is the fully assembled read model for one entry.
type EntryView struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Description string       `json:"description"`
	Project     *ProjectInfo `json:"project,omitempty"`
	Issue       *IssueRef    `json:"issue,omitempty"`
	Labels      []Label      `json:"labels"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	// LastSegmentAt is the latest segment start, falling back to the
	// entry's creation time. It decides which calendar day the entry is
	// displayed under.
	LastSegmentAt time.Time     `json:"last_segment_at"`
	TotalSeconds  int64         `json:"total_seconds"`
	IsRunning     bool          `json:"is_running"`
	Segments      []SegmentView `json:"segments"`
}

// DayGroup is one calendar day of entries, newest day first in range reads.
type DayGroup struct {
	// Date is the calendar day in YYYY-MM-DD form.
	Date string `json:"date"`
	// TotalSeconds is the sum of the day's entry totals.
	TotalSeconds int64 `json:"total_seconds"`
	// Entries are ordered by LastSegmentAt descending.
	Entries []EntryView `json:"entries"`
}
