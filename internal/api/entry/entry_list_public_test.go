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
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	apientry "github.com/timeledger-io/timeledger/internal/api/entry"
	"github.com/timeledger-io/timeledger/internal/ledger"
)

type EntryListPublicTestSuite struct {
	HandlerSuite
}

func (s *EntryListPublicTestSuite) TestGetEntries() {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	days := []ledger.DayGroup{
		{Date: "2026-03-14", TotalSeconds: 3600, Entries: []ledger.EntryView{*sampleView("entry-1")}},
	}

	s.mockService.EXPECT().
		ListEntries(gomock.Any(), testOwner, from, to, false).
		Return(days, nil)

	c, rec := s.newContext(http.MethodGet,
		"/ledger/entries?from=2026-03-10&to=2026-03-14", "")
	s.Require().NoError(s.handler.GetEntries(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp apientry.ListEntriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Days, 1)
	s.Equal("2026-03-14", resp.Days[0].Date)
	s.Equal(int64(3600), resp.Days[0].TotalSeconds)
}

func (s *EntryListPublicTestSuite) TestGetEntriesIncludeDeleted() {
	s.mockService.EXPECT().
		ListEntries(gomock.Any(), testOwner, gomock.Any(), gomock.Any(), true).
		Return(nil, nil)

	c, rec := s.newContext(http.MethodGet,
		"/ledger/entries?from=2026-03-10&to=2026-03-14&include_deleted=true", "")
	s.Require().NoError(s.handler.GetEntries(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *EntryListPublicTestSuite) TestGetEntriesBadRange() {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing from", target: "/ledger/entries?to=2026-03-14"},
		{name: "missing to", target: "/ledger/entries?from=2026-03-10"},
		{name: "malformed from", target: "/ledger/entries?from=yesterday&to=2026-03-14"},
		{name: "to precedes from", target: "/ledger/entries?from=2026-03-14&to=2026-03-10"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.newContext(http.MethodGet, tt.target, "")
			s.Require().NoError(s.handler.GetEntries(c))
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEntryListPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EntryListPublicTestSuite))
}
