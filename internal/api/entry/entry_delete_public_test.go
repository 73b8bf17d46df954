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
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

type EntryDeletePublicTestSuite struct {
	HandlerSuite
}

func (s *EntryDeletePublicTestSuite) TestDeleteEntry() {
	s.mockService.EXPECT().
		DeleteEntry(gomock.Any(), "entry-1", testCaller).
		Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/ledger/entries/entry-1", "")
	c.SetParamNames("id")
	c.SetParamValues("entry-1")
	s.Require().NoError(s.handler.DeleteEntry(c))

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *EntryDeletePublicTestSuite) TestDeleteEntryNotFound() {
	s.mockService.EXPECT().
		DeleteEntry(gomock.Any(), "missing", testCaller).
		Return(ledger.ErrNotFound)

	c, rec := s.newContext(http.MethodDelete, "/ledger/entries/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	s.Require().NoError(s.handler.DeleteEntry(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *EntryDeletePublicTestSuite) TestDeleteEntryForbidden() {
	s.mockService.EXPECT().
		DeleteEntry(gomock.Any(), "entry-1", testCaller).
		Return(ledger.ErrForbidden)

	c, rec := s.newContext(http.MethodDelete, "/ledger/entries/entry-1", "")
	c.SetParamNames("id")
	c.SetParamValues("entry-1")
	s.Require().NoError(s.handler.DeleteEntry(c))

	s.Equal(http.StatusForbidden, rec.Code)
}

func TestEntryDeletePublicTestSuite(t *testing.T) {
	suite.Run(t, new(EntryDeletePublicTestSuite))
}
