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
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apientry "github.com/timeledger-io/timeledger/internal/api/entry"
	"github.com/timeledger-io/timeledger/internal/ledger"
	ledgermocks "github.com/timeledger-io/timeledger/internal/ledger/mocks"
)

const (
	testCaller = "caller-1"
	testOwner  = "owner-1"
)

// HandlerSuite wires a mocked ledger service behind the entry handlers.
type HandlerSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	mockService *ledgermocks.MockService
	handler     *apientry.Entry
	echo        *echo.Echo
}

func (s *HandlerSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = ledgermocks.NewMockService(s.mockCtrl)
	s.handler = apientry.New(slog.Default(), s.mockService)
	s.echo = echo.New()
}

func (s *HandlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// newContext builds an echo context carrying the identity the server
// middleware would have injected.
func (s *HandlerSuite) newContext(
	method string,
	target string,
	body string,
) (echo.Context, *httptest.ResponseRecorder) {
	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(apientry.ContextKeyCallerID, testCaller)
	c.Set(apientry.ContextKeyOwnerID, testOwner)
	return c, rec
}

// decodeError extracts the error message from an error response body.
func (s *HandlerSuite) decodeError(rec *httptest.ResponseRecorder) string {
	var resp apientry.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotNil(resp.Error)
	return *resp.Error
}

// decodeView unmarshals an entry view response body.
func (s *HandlerSuite) decodeView(rec *httptest.ResponseRecorder) ledger.EntryView {
	var view ledger.EntryView
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

// sampleView is a minimal assembled view for handler responses.
func sampleView(id string) *ledger.EntryView {
	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return &ledger.EntryView{
		ID:            id,
		UserID:        testOwner,
		Description:   "Design review",
		IsActive:      true,
		CreatedAt:     created,
		LastSegmentAt: created,
		TotalSeconds:  3600,
	}
}
