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

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

type EnginePublicTestSuite struct {
	EngineSuite
}

func (s *EnginePublicTestSuite) TestCreateEntry() {
	view := s.createEntry("Morning work", 3600)

	s.Equal(testUser, view.UserID)
	s.Equal("Morning work", view.Description)
	s.Equal(int64(3600), view.TotalSeconds)
	s.False(view.IsRunning)
	s.Require().Len(view.Segments, 1)
	s.Equal(ledger.SegmentManual, view.Segments[0].Kind)
	s.Equal(int64(3600), view.Segments[0].DurationSeconds)

	events, err := s.engine.GetAuditTrail(s.ctx, view.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(ledger.ActionCreated, events[0].Action)
	s.Equal(testUser, events[0].ActorID)
	s.Equal("Morning work", events[0].Changes["description"].New)
	s.Equal(map[string]string{"source": "test"}, events[0].Metadata)
}

func (s *EnginePublicTestSuite) TestCreateEntryStopPrecedesStart() {
	_, err := s.engine.CreateEntry(s.ctx, ledger.CreateEntryParams{
		OwnerID:   testUser,
		ActorID:   testUser,
		StartedAt: s.now,
		StoppedAt: s.now.Add(-time.Hour),
	})

	s.ErrorIs(err, ledger.ErrInvalidInput)
}

func (s *EnginePublicTestSuite) TestCreateEntryWithProjectAndLabels() {
	projectID := "proj-1"
	view, err := s.engine.CreateEntry(s.ctx, ledger.CreateEntryParams{
		OwnerID:     testUser,
		ActorID:     testUser,
		Description: "Tagged work",
		ProjectID:   &projectID,
		LabelIDs:    []string{"lbl-1", "lbl-2"},
		StartedAt:   s.now.Add(-time.Hour),
		StoppedAt:   s.now,
	})
	s.Require().NoError(err)

	s.Require().NotNil(view.Project)
	s.Equal("Project proj-1", view.Project.Name)
	s.Len(view.Labels, 2)
}

func (s *EnginePublicTestSuite) TestUpdateEntry() {
	view := s.createEntry("Draft", 3600)
	s.advance(time.Minute)

	updated, err := s.engine.UpdateEntry(s.ctx, view.ID, testUser, ledger.EntryPatch{
		Description: ledger.Some("Final"),
	})
	s.Require().NoError(err)
	s.Equal("Final", updated.Description)
	s.Equal(int64(3600), updated.TotalSeconds)

	events, err := s.engine.GetAuditTrail(s.ctx, view.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(ledger.ActionUpdated, events[0].Action)
	s.Equal("Draft", events[0].Changes["description"].Old)
	s.Equal("Final", events[0].Changes["description"].New)
}

func (s *EnginePublicTestSuite) TestUpdateEntryNoopWritesNoAudit() {
	view := s.createEntry("Same", 3600)
	s.advance(time.Minute)

	_, err := s.engine.UpdateEntry(s.ctx, view.ID, testUser, ledger.EntryPatch{
		Description: ledger.Some("Same"),
	})
	s.Require().NoError(err)

	events, err := s.engine.GetAuditTrail(s.ctx, view.ID, testUser)
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *EnginePublicTestSuite) TestUpdateEntryClearsProject() {
	projectID := "proj-1"
	view, err := s.engine.CreateEntry(s.ctx, ledger.CreateEntryParams{
		OwnerID:   testUser,
		ActorID:   testUser,
		ProjectID: &projectID,
		StartedAt: s.now.Add(-time.Hour),
		StoppedAt: s.now,
	})
	s.Require().NoError(err)
	s.advance(time.Minute)

	updated, err := s.engine.UpdateEntry(s.ctx, view.ID, testUser, ledger.EntryPatch{
		ProjectID: ledger.Some[*string](nil),
	})
	s.Require().NoError(err)
	s.Nil(updated.Project)
}

func (s *EnginePublicTestSuite) TestUpdateEntryNotOwner() {
	view := s.createEntry("Mine", 3600)

	_, err := s.engine.UpdateEntry(s.ctx, view.ID, "intruder", ledger.EntryPatch{
		Description: ledger.Some("Taken"),
	})

	s.ErrorIs(err, ledger.ErrForbidden)
}

func (s *EnginePublicTestSuite) TestUpdateEntryNotFound() {
	_, err := s.engine.UpdateEntry(s.ctx, "missing", testUser, ledger.EntryPatch{
		Description: ledger.Some("x"),
	})

	s.ErrorIs(err, ledger.ErrNotFound)
}

func (s *EnginePublicTestSuite) TestDeleteAndRestoreEntry() {
	view := s.createEntry("Doomed", 3600)
	s.advance(time.Minute)

	s.Require().NoError(s.engine.DeleteEntry(s.ctx, view.ID, testUser))

	// Deleted entries reject further mutation.
	_, err := s.engine.UpdateEntry(s.ctx, view.ID, testUser, ledger.EntryPatch{
		Description: ledger.Some("x"),
	})
	s.ErrorIs(err, ledger.ErrNotFound)

	s.advance(time.Minute)
	restored, err := s.engine.RestoreEntry(s.ctx, view.ID, testUser)
	s.Require().NoError(err)
	s.True(restored.IsActive)
	s.Equal(int64(3600), restored.TotalSeconds)

	events, err := s.engine.GetAuditTrail(s.ctx, view.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(ledger.ActionUpdated, events[0].Action)
	s.Equal(false, events[0].Changes["is_active"].Old)
	s.Equal(true, events[0].Changes["is_active"].New)
	s.Equal(ledger.ActionDeleted, events[1].Action)
	s.Equal("Doomed", events[1].Metadata["description"])
}

func (s *EnginePublicTestSuite) TestDeleteEntryStopsRunningSegment() {
	view := s.createEntry("Live", 3600)
	s.advance(time.Minute)

	_, err := s.engine.StartTimer(s.ctx, view.ID, testUser)
	s.Require().NoError(err)

	s.advance(30 * time.Minute)
	s.Require().NoError(s.engine.DeleteEntry(s.ctx, view.ID, testUser))

	s.advance(time.Minute)
	restored, err := s.engine.RestoreEntry(s.ctx, view.ID, testUser)
	s.Require().NoError(err)

	// The clocked segment was frozen at deletion time with 30 minutes.
	s.False(restored.IsRunning)
	s.Equal(int64(3600+1800), restored.TotalSeconds)
}

func (s *EnginePublicTestSuite) TestRestoreActiveEntryRejected() {
	view := s.createEntry("Alive", 3600)

	_, err := s.engine.RestoreEntry(s.ctx, view.ID, testUser)

	s.ErrorIs(err, ledger.ErrInvalidInput)
}

func (s *EnginePublicTestSuite) TestAddAdjustment() {
	view := s.createEntry("Overcounted", 3600)
	s.advance(time.Minute)

	adjusted, err := s.engine.AddAdjustment(s.ctx, view.ID, testUser, -1800, "double-billed lunch")
	s.Require().NoError(err)
	s.Equal(int64(1800), adjusted.TotalSeconds)
	s.Require().Len(adjusted.Segments, 2)
	s.Equal(ledger.SegmentAdjustment, adjusted.Segments[1].Kind)
	s.Equal(int64(-1800), adjusted.Segments[1].DurationSeconds)

	events, err := s.engine.GetAuditTrail(s.ctx, view.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(ledger.ActionAdjustmentAdded, events[0].Action)
	s.Equal(ledger.ActionCreated, events[1].Action)
}

func (s *EnginePublicTestSuite) TestAddAdjustmentValidation() {
	view := s.createEntry("Strict", 3600)

	tests := []struct {
		name     string
		duration int64
		note     string
	}{
		{name: "zero duration", duration: 0, note: "why"},
		{name: "empty note", duration: 600, note: ""},
		{name: "blank note", duration: 600, note: "   "},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.engine.AddAdjustment(s.ctx, view.ID, testUser, tt.duration, tt.note)
			s.ErrorIs(err, ledger.ErrInvalidInput)
		})
	}
}

func (s *EnginePublicTestSuite) TestAuditTrailSurvivesDeletion() {
	view := s.createEntry("History", 3600)
	s.advance(time.Minute)
	s.Require().NoError(s.engine.DeleteEntry(s.ctx, view.ID, testUser))

	events, err := s.engine.GetAuditTrail(s.ctx, view.ID, testUser)
	s.Require().NoError(err)
	s.Len(events, 2)
}

func (s *EnginePublicTestSuite) TestAuditTrailForbiddenForOthers() {
	view := s.createEntry("Private", 3600)

	_, err := s.engine.GetAuditTrail(s.ctx, view.ID, "intruder")

	s.ErrorIs(err, ledger.ErrForbidden)
}

func TestEnginePublicTestSuite(t *testing.T) {
	suite.Run(t, new(EnginePublicTestSuite))
}
