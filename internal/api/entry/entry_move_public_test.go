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

package entry_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

type EntryMovePublicTestSuite struct {
	HandlerSuite
}

func (s *EntryMovePublicTestSuite) TestPostEntryMove() {
	var got ledger.MoveBlockParams
	s.mockService.EXPECT().
		MoveBlock(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ledger.MoveBlockParams) (*ledger.EntryView, error) {
			got = params
			return sampleView("entry-2"), nil
		})

	c, rec := s.newContext(http.MethodPost, "/ledger/entries/entry-1/move",
		`{"segment_id": "seg-1", "description": "Other work"}`)
	c.SetParamNames("id")
	c.SetParamValues("entry-1")
	s.Require().NoError(s.handler.PostEntryMove(c))

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("entry-1", got.EntryID)
	s.Equal(testCaller, got.CallerID)
	s.Equal("seg-1", got.SegmentID)
	s.Require().NotNil(got.Description)
	s.Equal("Other work", *got.Description)
	s.Nil(got.ProjectID)

	view := s.decodeView(rec)
	s.Equal("entry-2", view.ID)
}

func (s *EntryMovePublicTestSuite) TestPostEntryMoveMissingSegment() {
	c, rec := s.newContext(http.MethodPost, "/ledger/entries/entry-1/move", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("entry-1")
	s.Require().NoError(s.handler.PostEntryMove(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeError(rec), "required")
}

func (s *EntryMovePublicTestSuite) TestPostEntryMoveRejected() {
	s.mockService.EXPECT().
		MoveBlock(gomock.Any(), gomock.Any()).
		Return(nil, ledger.ErrInvalidInput)

	c, rec := s.newContext(http.MethodPost, "/ledger/entries/entry-1/move",
		`{"segment_id": "seg-adjustment"}`)
	c.SetParamNames("id")
	c.SetParamValues("entry-1")
	s.Require().NoError(s.handler.PostEntryMove(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestEntryMovePublicTestSuite(t *testing.T) {
	suite.Run(t, new(EntryMovePublicTestSuite))
}
