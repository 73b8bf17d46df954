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

// Package engine implements the transactional mutation engine of the
// ledger. Every mutating operation runs as one atomic transaction touching
// the entry, its segments, its labels, and the audit trail: either every
// write commits, or none do.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timeledger-io/timeledger/internal/ledger"
	"github.com/timeledger-io/timeledger/internal/ledger/store"
	"github.com/timeledger-io/timeledger/internal/refdata"
)

// ensure Engine implements the full operation surface at compile time.
var _ ledger.Service = (*Engine)(nil)

// Engine is the mutation engine plus the read-side range assembly.
type Engine struct {
	logger   *slog.Logger
	store    *store.Store
	projects refdata.ProjectResolver
	labels   refdata.LabelResolver
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow overrides the engine's clock. Used by tests.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates a new Engine.
func New(
	logger *slog.Logger,
	st *store.Store,
	projects refdata.ProjectResolver,
	labels refdata.LabelResolver,
	opts ...Option,
) *Engine {
	e := &Engine{
		logger:   logger,
		store:    st,
		projects: projects,
		labels:   labels,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CreateEntry inserts an entry with one manual segment spanning
// [StartedAt, StoppedAt], attaches labels, and audits the creation.
func (e *Engine) CreateEntry(
	ctx context.Context,
	params ledger.CreateEntryParams,
) (*ledger.EntryView, error) {
	if params.StoppedAt.Before(params.StartedAt) {
		return nil, fmt.Errorf("%w: stop precedes start", ledger.ErrInvalidInput)
	}

	now := e.now()
	duration := roundSeconds(params.StoppedAt.Sub(params.StartedAt))

	entry := &ledger.Entry{
		ID:          uuid.NewString(),
		UserID:      params.OwnerID,
		Description: params.Description,
		ProjectID:   params.ProjectID,
		Issue:       params.Issue,
		IsActive:    true,
		CreatedAt:   now,
	}

	started, stopped := params.StartedAt, params.StoppedAt
	seg := &ledger.Segment{
		ID:              uuid.NewString(),
		EntryID:         entry.ID,
		Kind:            ledger.SegmentManual,
		StartedAt:       &started,
		StoppedAt:       &stopped,
		DurationSeconds: &duration,
		Note:            params.Note,
		CreatedAt:       now,
	}

	changes := map[string]ledger.FieldChange{
		"description":      {New: params.Description},
		"started_at":       {New: started.UTC().Format(time.RFC3339)},
		"stopped_at":       {New: stopped.UTC().Format(time.RFC3339)},
		"duration_seconds": {New: duration},
	}
	if params.ProjectID != nil {
		changes["project"] = ledger.FieldChange{New: e.projectName(ctx, *params.ProjectID)}
	}

	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		if err := tx.InsertEntry(ctx, entry); err != nil {
			return err
		}
		if err := tx.InsertSegment(ctx, seg); err != nil {
			return err
		}
		if len(params.LabelIDs) > 0 {
			if err := tx.ReplaceLabels(ctx, entry.ID, params.LabelIDs); err != nil {
				return err
			}
		}
		return tx.InsertAuditEvent(ctx, e.newAudit(entry.ID, params.ActorID, ledger.ActionCreated, changes, sourceMetadata(params.Source)))
	})
	if err != nil {
		return nil, err
	}

	e.logger.Debug("entry created",
		slog.String("entry_id", entry.ID),
		slog.String("user_id", entry.UserID),
		slog.Int64("duration_seconds", duration),
	)

	return e.assembleEntry(ctx, entry.ID)
}

// UpdateEntry applies a sparse metadata patch to an active entry owned by
// the caller. Time fields and segments are never touched here; they are
// mutated through the disjoint adjust/move/split operations.
func (e *Engine) UpdateEntry(
	ctx context.Context,
	entryID string,
	callerID string,
	patch ledger.EntryPatch,
) (*ledger.EntryView, error) {
	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		entry, err := requireOwnedActive(ctx, tx, entryID, callerID)
		if err != nil {
			return err
		}

		changes := map[string]ledger.FieldChange{}

		if patch.Description.Set && patch.Description.Value != entry.Description {
			changes["description"] = ledger.FieldChange{
				Old: entry.Description,
				New: patch.Description.Value,
			}
			entry.Description = patch.Description.Value
		}

		if patch.ProjectID.Set && !strPtrEqual(patch.ProjectID.Value, entry.ProjectID) {
			changes["project"] = ledger.FieldChange{
				Old: e.projectNamePtr(ctx, entry.ProjectID),
				New: e.projectNamePtr(ctx, patch.ProjectID.Value),
			}
			entry.ProjectID = patch.ProjectID.Value
		}

		if patch.Issue.Set && !issueEqual(patch.Issue.Value, entry.Issue) {
			changes["issue"] = ledger.FieldChange{
				Old: issueKey(entry.Issue),
				New: issueKey(patch.Issue.Value),
			}
			entry.Issue = patch.Issue.Value
		}

		var newLabels []string
		replaceLabels := false
		if patch.LabelIDs.Set {
			// Snapshot the old set before replacing so the diff can
			// show old -> new.
			oldLabels, err := tx.LabelIDs(ctx, entryID)
			if err != nil {
				return err
			}
			newLabels = patch.LabelIDs.Value
			if !sameStringSet(oldLabels, newLabels) {
				changes["labels"] = ledger.FieldChange{Old: oldLabels, New: newLabels}
				replaceLabels = true
			}
		}

		// Nothing changed: no writes, no audit event.
		if len(changes) == 0 {
			return nil
		}

		if err := tx.UpdateEntryMeta(ctx, entry); err != nil {
			return err
		}
		if replaceLabels {
			if err := tx.ReplaceLabels(ctx, entryID, newLabels); err != nil {
				return err
			}
		}
		return tx.InsertAuditEvent(ctx, e.newAudit(entryID, callerID, ledger.ActionUpdated, changes, nil))
	})
	if err != nil {
		return nil, err
	}

	return e.assembleEntry(ctx, entryID)
}

// DeleteEntry soft-deletes an active entry. A running segment is stopped
// first, inside the same transaction, so deletion never leaves a dangling
// live timer.
func (e *Engine) DeleteEntry(
	ctx context.Context,
	entryID string,
	callerID string,
) error {
	now := e.now()

	return e.store.WithTx(ctx, func(tx *store.Tx) error {
		entry, err := requireOwnedActive(ctx, tx, entryID, callerID)
		if err != nil {
			return err
		}

		segs, err := tx.ListSegments(ctx, entryID)
		if err != nil {
			return err
		}
		for i := range segs {
			if segs[i].Running() {
				elapsed := roundSeconds(now.Sub(*segs[i].StartedAt))
				if err := tx.StopSegment(ctx, segs[i].ID, now, elapsed); err != nil {
					return err
				}
				break
			}
		}

		if err := tx.SetEntryActive(ctx, entryID, false); err != nil {
			return err
		}

		metadata := map[string]string{"description": entry.Description}
		if entry.ProjectID != nil {
			metadata["project"] = e.projectName(ctx, *entry.ProjectID)
		}
		changes := map[string]ledger.FieldChange{
			"is_active": {Old: true, New: false},
		}
		return tx.InsertAuditEvent(ctx, e.newAudit(entryID, callerID, ledger.ActionDeleted, changes, metadata))
	})
}

// RestoreEntry flips a soft-deleted entry back to active. Segment state is
// not resurrected.
func (e *Engine) RestoreEntry(
	ctx context.Context,
	entryID string,
	callerID string,
) (*ledger.EntryView, error) {
	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		entry, err := tx.GetEntry(ctx, entryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return ledger.ErrNotFound
		}
		if entry.UserID != callerID {
			return ledger.ErrForbidden
		}
		if entry.IsActive {
			return fmt.Errorf("%w: entry is not deleted", ledger.ErrInvalidInput)
		}

		if err := tx.SetEntryActive(ctx, entryID, true); err != nil {
			return err
		}

		changes := map[string]ledger.FieldChange{
			"is_active": {Old: false, New: true},
		}
		return tx.InsertAuditEvent(ctx, e.newAudit(entryID, callerID, ledger.ActionUpdated, changes, nil))
	})
	if err != nil {
		return nil, err
	}

	return e.assembleEntry(ctx, entryID)
}

// AddAdjustment records a signed duration correction. Every out-of-band
// time change requires a human-readable justification, so the note must be
// non-empty. The engine does not stop the running total going negative.
func (e *Engine) AddAdjustment(
	ctx context.Context,
	entryID string,
	callerID string,
	durationSeconds int64,
	note string,
) (*ledger.EntryView, error) {
	if durationSeconds == 0 {
		return nil, fmt.Errorf("%w: adjustment duration must be non-zero", ledger.ErrInvalidInput)
	}
	if strings.TrimSpace(note) == "" {
		return nil, fmt.Errorf("%w: adjustment note must not be empty", ledger.ErrInvalidInput)
	}

	now := e.now()

	err := e.store.WithTx(ctx, func(tx *store.Tx) error {
		if _, err := requireOwnedActive(ctx, tx, entryID, callerID); err != nil {
			return err
		}

		seg := &ledger.Segment{
			ID:              uuid.NewString(),
			EntryID:         entryID,
			Kind:            ledger.SegmentAdjustment,
			DurationSeconds: &durationSeconds,
			Note:            note,
			CreatedAt:       now,
		}
		if err := tx.InsertSegment(ctx, seg); err != nil {
			return err
		}

		changes := map[string]ledger.FieldChange{
			"duration_seconds": {New: durationSeconds},
			"note":             {New: note},
		}
		return tx.InsertAuditEvent(ctx, e.newAudit(entryID, callerID, ledger.ActionAdjustmentAdded, changes, nil))
	})
	if err != nil {
		return nil, err
	}

	return e.assembleEntry(ctx, entryID)
}

// GetAuditTrail returns an entry's audit events, newest first. The caller
// must own the entry; soft-deleted entries remain auditable.
func (e *Engine) GetAuditTrail(
	ctx context.Context,
	entryID string,
	callerID string,
) ([]ledger.AuditEvent, error) {
	entry, err := e.store.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ledger.ErrNotFound
	}
	if entry.UserID != callerID {
		return nil, ledger.ErrForbidden
	}

	return e.store.AuditEvents(ctx, entryID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// requireOwnedActive loads an entry and enforces the shared preconditions:
// it exists, is active, and is owned by the caller.
func requireOwnedActive(
	ctx context.Context,
	tx *store.Tx,
	entryID string,
	callerID string,
) (*ledger.Entry, error) {
	entry, err := tx.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil || !entry.IsActive {
		return nil, ledger.ErrNotFound
	}
	if entry.UserID != callerID {
		return nil, ledger.ErrForbidden
	}
	return entry, nil
}

func (e *Engine) newAudit(
	entryID string,
	actorID string,
	action ledger.AuditAction,
	changes map[string]ledger.FieldChange,
	metadata map[string]string,
) *ledger.AuditEvent {
	return &ledger.AuditEvent{
		ID:        uuid.NewString(),
		EntryID:   entryID,
		ActorID:   actorID,
		Action:    action,
		Changes:   changes,
		Metadata:  metadata,
		CreatedAt: e.now(),
	}
}

// projectName resolves a project id to its human name for audit-diff
// labeling, falling back to the raw id when the lookup has no answer.
func (e *Engine) projectName(ctx context.Context, id string) string {
	p, err := e.projects.ResolveProject(ctx, id)
	if err != nil || p == nil {
		return id
	}
	return p.Name
}

func (e *Engine) projectNamePtr(ctx context.Context, id *string) any {
	if id == nil {
		return nil
	}
	return e.projectName(ctx, *id)
}

func sourceMetadata(source string) map[string]string {
	if source == "" {
		return nil
	}
	return map[string]string{"source": source}
}

func roundSeconds(d time.Duration) int64 {
	return int64(d.Round(time.Second) / time.Second)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func issueEqual(a, b *ledger.IssueRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func issueKey(i *ledger.IssueRef) any {
	if i == nil {
		return nil
	}
	return i.Key
}

func sameStringSet(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for s := range setB {
		if _, ok := setA[s]; !ok {
			return false
		}
	}
	return true
}
