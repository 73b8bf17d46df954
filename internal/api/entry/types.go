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

// Package entry provides ledger entry API handlers.
package entry

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

// Context keys for identity injected by the server middleware.
const (
	// ContextKeyCallerID holds the authenticated caller identity.
	ContextKeyCallerID = "identity.caller"
	// ContextKeyOwnerID holds the ledger owner being acted on.
	ContextKeyOwnerID = "identity.owner"
)

// Entry handles entry API requests.
type Entry struct {
	// Service is the ledger operation surface.
	Service ledger.Service

	logger *slog.Logger
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	svc ledger.Service,
) *Entry {
	return &Entry{
		Service: svc,
		logger:  logger,
	}
}

// ErrorResponse is the error body shared by all entry endpoints.
type ErrorResponse struct {
	Error *string `json:"error,omitempty"`
}

// IssueRefRequest is an issue-tracker reference in request bodies.
type IssueRefRequest struct {
	Key          string `json:"key"           validate:"required"`
	Summary      string `json:"summary"`
	ConnectionID string `json:"connection_id"`
}

// CreateEntryRequest is the body of POST /ledger/entries.
type CreateEntryRequest struct {
	Description string           `json:"description"`
	ProjectID   *string          `json:"project_id"`
	Issue       *IssueRefRequest `json:"issue"`
	LabelIDs    []string         `json:"label_ids"`
	StartedAt   time.Time        `json:"started_at"          validate:"required"`
	StoppedAt   time.Time        `json:"stopped_at"          validate:"required"`
	Note        string           `json:"note"`
}

// UpdateEntryRequest is the body of PATCH /ledger/entries/:id. A field
// left out of the JSON is not applied at all; an explicit null clears
// the project or issue reference.
type UpdateEntryRequest struct {
	Description *string
	ProjectID   ledger.Optional[*string]
	Issue       ledger.Optional[*IssueRefRequest]
	LabelIDs    *[]string
}

// UnmarshalJSON tracks key presence by hand: encoding/json sets a pointer
// field to nil for both a missing key and an explicit null, which would
// collapse "leave alone" and "clear" into one case.
func (r *UpdateEntryRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description *string         `json:"description"`
		ProjectID   json.RawMessage `json:"project_id"`
		Issue       json.RawMessage `json:"issue"`
		LabelIDs    *[]string       `json:"label_ids"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Description = raw.Description
	r.LabelIDs = raw.LabelIDs

	if raw.ProjectID != nil {
		var v *string
		if err := json.Unmarshal(raw.ProjectID, &v); err != nil {
			return err
		}
		r.ProjectID = ledger.Some(v)
	}
	if raw.Issue != nil {
		var v *IssueRefRequest
		if err := json.Unmarshal(raw.Issue, &v); err != nil {
			return err
		}
		r.Issue = ledger.Some(v)
	}
	return nil
}

// AdjustmentRequest is the body of POST /ledger/entries/:id/adjustments.
type AdjustmentRequest struct {
	DurationSeconds int64  `json:"duration_seconds" validate:"required"`
	Note            string `json:"note"             validate:"required"`
}

// MoveBlockRequest is the body of POST /ledger/entries/:id/move.
type MoveBlockRequest struct {
	SegmentID   string  `json:"segment_id"  validate:"required"`
	Description *string `json:"description"`
	ProjectID   *string `json:"project_id"`
}

// SplitEntryRequest is the body of POST /ledger/entries/:id/split.
type SplitEntryRequest struct {
	DurationSeconds int64   `json:"duration_seconds" validate:"required,gt=0"`
	Description     *string `json:"description"`
	ProjectID       *string `json:"project_id"`
	Note            string  `json:"note"`
}

// ListEntriesResponse is the body of GET /ledger/entries.
type ListEntriesResponse struct {
	Days []ledger.DayGroup `json:"days"`
}

// AuditTrailResponse is the body of GET /ledger/entries/:id/audit.
type AuditTrailResponse struct {
	Events []ledger.AuditEvent `json:"events"`
}
