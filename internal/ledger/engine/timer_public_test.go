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

type TimerPublicTestSuite struct {
	EngineSuite
}

func (s *TimerPublicTestSuite) TestStartAndStopTimer() {
	entry := s.createEntry("Tracked", 3600)
	s.advance(time.Minute)

	started, err := s.engine.StartTimer(s.ctx, entry.ID, testUser)
	s.Require().NoError(err)
	s.True(started.IsRunning)
	s.Require().Len(started.Segments, 2)
	s.Equal(ledger.SegmentClocked, started.Segments[1].Kind)
	s.True(started.Segments[1].Running)

	// Live elapsed is substituted into the running segment's duration.
	s.advance(15 * time.Minute)
	stopped, err := s.engine.StopTimer(s.ctx, testUser, testUser)
	s.Require().NoError(err)
	s.False(stopped.IsRunning)
	s.Equal(entry.ID, stopped.ID)
	s.Equal(int64(3600+900), stopped.TotalSeconds)
}

func (s *TimerPublicTestSuite) TestStartTimerStopsOtherRunningSegment() {
	first := s.createEntry("First", 3600)
	second := s.createEntry("Second", 600)
	s.advance(time.Minute)

	_, err := s.engine.StartTimer(s.ctx, first.ID, testUser)
	s.Require().NoError(err)

	s.advance(10 * time.Minute)
	started, err := s.engine.StartTimer(s.ctx, second.ID, testUser)
	s.Require().NoError(err)
	s.True(started.IsRunning)

	// At most one segment runs per user: the first entry's timer was
	// frozen with the elapsed 10 minutes.
	firstAfter := s.entryView(first.ID)
	s.False(firstAfter.IsRunning)
	s.Equal(int64(3600+600), firstAfter.TotalSeconds)

	// The freeze was audited on the first entry.
	events, err := s.engine.GetAuditTrail(s.ctx, first.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(ledger.ActionTimerStopped, events[0].Action)
}

func (s *TimerPublicTestSuite) TestRestartOnSameEntryAuditsOnce() {
	entry := s.createEntry("Restarted", 3600)
	s.advance(time.Minute)

	_, err := s.engine.StartTimer(s.ctx, entry.ID, testUser)
	s.Require().NoError(err)

	s.advance(5 * time.Minute)
	_, err = s.engine.StartTimer(s.ctx, entry.ID, testUser)
	s.Require().NoError(err)

	// Two resume events, no separate stop event for the implicit freeze
	// of the entry's own running segment.
	events, err := s.engine.GetAuditTrail(s.ctx, entry.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(ledger.ActionTimerResumed, events[0].Action)
	s.Equal(ledger.ActionTimerResumed, events[1].Action)
	s.Equal(ledger.ActionCreated, events[2].Action)
}

func (s *TimerPublicTestSuite) TestStopTimerWithoutRunningSegment() {
	_, err := s.engine.StopTimer(s.ctx, testUser, testUser)

	s.ErrorIs(err, ledger.ErrNotFound)
}

func (s *TimerPublicTestSuite) TestStartTimerOnDeletedEntry() {
	entry := s.createEntry("Gone", 3600)
	s.advance(time.Minute)
	s.Require().NoError(s.engine.DeleteEntry(s.ctx, entry.ID, testUser))

	_, err := s.engine.StartTimer(s.ctx, entry.ID, testUser)

	s.ErrorIs(err, ledger.ErrNotFound)
}

func (s *TimerPublicTestSuite) TestStopTimerAudit() {
	entry := s.createEntry("Audited", 3600)
	s.advance(time.Minute)

	_, err := s.engine.StartTimer(s.ctx, entry.ID, testUser)
	s.Require().NoError(err)

	s.advance(10 * time.Minute)
	_, err = s.engine.StopTimer(s.ctx, testUser, testUser)
	s.Require().NoError(err)

	events, err := s.engine.GetAuditTrail(s.ctx, entry.ID, testUser)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal(ledger.ActionTimerStopped, events[0].Action)
	s.Equal("600", events[0].Metadata["duration_seconds"])
}

func TestTimerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(TimerPublicTestSuite))
}
