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

type SplitPublicTestSuite struct {
	EngineSuite
}

func (s *SplitPublicTestSuite) TestSplitEntry() {
	projectID := "proj-1"
	source, err := s.engine.CreateEntry(s.ctx, ledger.CreateEntryParams{
		OwnerID:     testUser,
		ActorID:     testUser,
		Description: "Long day",
		ProjectID:   &projectID,
		StartedAt:   s.now.Add(-2 * time.Hour),
		StoppedAt:   s.now,
	})
	s.Require().NoError(err)
	s.advance(time.Minute)

	dest, err := s.engine.SplitEntry(s.ctx, ledger.SplitEntryParams{
		EntryID:         source.ID,
		CallerID:        testUser,
		DurationSeconds: 1800,
		Note:            "second task started mid-block",
	})
	s.Require().NoError(err)

	// The new entry inherits description and project and carries the
	// trailing 30 minutes.
	s.Equal("Long day", dest.Description)
	s.Require().NotNil(dest.Project)
	s.Equal("proj-1", dest.Project.ID)
	s.Equal(int64(1800), dest.TotalSeconds)
	s.Require().Len(dest.Segments, 1)
	s.Equal(ledger.SegmentManual, dest.Segments[0].Kind)
	s.Equal(baseTime.Add(-30*time.Minute), dest.Segments[0].StartedAt.UTC())
	s.Equal(baseTime, dest.Segments[0].StoppedAt.UTC())

	sourceAfter := s.entryView(source.ID)
	s.Equal(int64(5400), sourceAfter.TotalSeconds)
	s.Require().Len(sourceAfter.Segments, 2)

	residue := sourceAfter.Segments[1]
	s.Equal(ledger.SegmentAdjustment, residue.Kind)
	s.Equal(int64(-1800), residue.DurationSeconds)
	s.Equal("second task started mid-block", residue.Note)
	s.Require().NotNil(residue.Link)
	s.Equal(ledger.LinkSplit, residue.Link.Kind)
	s.Equal(dest.ID, residue.Link.TargetEntryID)

	s.Equal(int64(7200), sourceAfter.TotalSeconds+dest.TotalSeconds)
}

func (s *SplitPublicTestSuite) TestSplitAudit() {
	source := s.createEntry("Audited", 7200)
	s.advance(time.Minute)

	dest, err := s.engine.SplitEntry(s.ctx, ledger.SplitEntryParams{
		EntryID:         source.ID,
		CallerID:        testUser,
		DurationSeconds: 1800,
	})
	s.Require().NoError(err)

	sourceEvents, err := s.engine.GetAuditTrail(s.ctx, source.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(sourceEvents, 2)
	s.Equal(ledger.ActionEntrySplit, sourceEvents[0].Action)
	s.Equal("7200", sourceEvents[0].Metadata["old_total_seconds"])
	s.Equal("5400", sourceEvents[0].Metadata["new_total_seconds"])
	s.Equal(dest.ID, sourceEvents[0].Metadata["destination_entry_id"])

	destEvents, err := s.engine.GetAuditTrail(s.ctx, dest.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(destEvents, 1)
	s.Equal(ledger.ActionCreated, destEvents[0].Action)
	s.Equal(source.ID, destEvents[0].Metadata["source_entry_id"])
}

func (s *SplitPublicTestSuite) TestSplitRejections() {
	source := s.createEntry("Guarded", 3600)

	tests := []struct {
		name     string
		duration int64
	}{
		{name: "zero duration", duration: 0},
		{name: "negative duration", duration: -600},
		{name: "duration equals total", duration: 3600},
		{name: "duration exceeds total", duration: 7200},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.engine.SplitEntry(s.ctx, ledger.SplitEntryParams{
				EntryID:         source.ID,
				CallerID:        testUser,
				DurationSeconds: tt.duration,
			})
			s.ErrorIs(err, ledger.ErrInvalidInput)
		})
	}
}

func (s *SplitPublicTestSuite) TestSplitRejectsRunningSegment() {
	source := s.createEntry("Live", 3600)
	s.advance(time.Minute)

	_, err := s.engine.StartTimer(s.ctx, source.ID, testUser)
	s.Require().NoError(err)

	_, err = s.engine.SplitEntry(s.ctx, ledger.SplitEntryParams{
		EntryID:         source.ID,
		CallerID:        testUser,
		DurationSeconds: 600,
	})
	s.ErrorIs(err, ledger.ErrInvalidInput)
}

func TestSplitPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SplitPublicTestSuite))
}
