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
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/timeledger-io/timeledger/internal/ledger"
	"github.com/timeledger-io/timeledger/internal/ledger/engine"
	"github.com/timeledger-io/timeledger/internal/ledger/store"
	refmocks "github.com/timeledger-io/timeledger/internal/refdata/mocks"
)

const testUser = "user-1"

// baseTime is the fixed clock every suite starts from.
var baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// EngineSuite wires an engine against a real SQLite store in a temp dir
// and gomock reference-data resolvers with passthrough defaults.
type EngineSuite struct {
	suite.Suite

	mockCtrl     *gomock.Controller
	mockProjects *refmocks.MockProjectResolver
	mockLabels   *refmocks.MockLabelResolver
	store        *store.Store
	engine       *engine.Engine
	ctx          context.Context
	now          time.Time
}

func (s *EngineSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProjects = refmocks.NewMockProjectResolver(s.mockCtrl)
	s.mockLabels = refmocks.NewMockLabelResolver(s.mockCtrl)

	var err error
	s.store, err = store.New(filepath.Join(s.T().TempDir(), "ledger.db"))
	s.Require().NoError(err)

	s.now = baseTime
	s.engine = engine.New(
		slog.Default(),
		s.store,
		s.mockProjects,
		s.mockLabels,
		engine.WithNow(func() time.Time { return s.now }),
	)
	s.ctx = context.Background()

	s.mockProjects.EXPECT().
		ResolveProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*ledger.ProjectInfo, error) {
			return &ledger.ProjectInfo{ID: id, Name: "Project " + id}, nil
		}).
		AnyTimes()

	s.mockLabels.EXPECT().
		ResolveLabels(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) ([]ledger.Label, error) {
			out := make([]ledger.Label, 0, len(ids))
			for _, id := range ids {
				out = append(out, ledger.Label{ID: id, Name: "Label " + id})
			}
			return out, nil
		}).
		AnyTimes()
}

func (s *EngineSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
	s.mockCtrl.Finish()
}

// advance moves the engine's clock forward so successive audit events get
// distinct timestamps.
func (s *EngineSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// entryView reads one entry back through the range assembly.
func (s *EngineSuite) entryView(id string) *ledger.EntryView {
	days, err := s.engine.ListEntries(
		s.ctx,
		testUser,
		baseTime.AddDate(0, 0, -2),
		baseTime.AddDate(0, 0, 2),
		false,
	)
	s.Require().NoError(err)

	for _, day := range days {
		for i := range day.Entries {
			if day.Entries[i].ID == id {
				return &day.Entries[i]
			}
		}
	}

	s.Require().FailNow("entry not found in range read", id)
	return nil
}

// createEntry inserts an entry with one manual segment of the given length
// ending at the current clock.
func (s *EngineSuite) createEntry(
	description string,
	seconds int64,
) *ledger.EntryView {
	stop := s.now
	start := stop.Add(-time.Duration(seconds) * time.Second)

	view, err := s.engine.CreateEntry(s.ctx, ledger.CreateEntryParams{
		OwnerID:     testUser,
		ActorID:     testUser,
		Description: description,
		StartedAt:   start,
		StoppedAt:   stop,
		Source:      "test",
	})
	s.Require().NoError(err)

	return view
}
