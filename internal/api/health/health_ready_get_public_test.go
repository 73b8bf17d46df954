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

package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/timeledger-io/timeledger/internal/api/health"
)

type HealthReadyGetPublicTestSuite struct {
	suite.Suite

	echo *echo.Echo
}

func (s *HealthReadyGetPublicTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *HealthReadyGetPublicTestSuite) getReady(checker health.Checker) (*httptest.ResponseRecorder, health.ReadyResponse) {
	handler := health.New(slog.Default(), checker, time.Now(), "0.1.0")

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(handler.GetHealthReady(c))

	var resp health.ReadyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func (s *HealthReadyGetPublicTestSuite) TestGetHealthReady() {
	checker := &health.DatabaseChecker{
		DBCheck: func(_ context.Context) error { return nil },
	}

	rec, resp := s.getReady(checker)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ready", resp.Status)
	s.Nil(resp.Error)
}

func (s *HealthReadyGetPublicTestSuite) TestGetHealthReadyDatabaseDown() {
	checker := &health.DatabaseChecker{
		DBCheck: func(_ context.Context) error {
			return errors.New("database is closed")
		},
	}

	rec, resp := s.getReady(checker)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("not_ready", resp.Status)
	s.Require().NotNil(resp.Error)
	s.Contains(*resp.Error, "database is closed")
}

func (s *HealthReadyGetPublicTestSuite) TestDatabaseCheckerNoChecks() {
	checker := &health.DatabaseChecker{}

	s.NoError(checker.CheckHealth(context.Background()))
}

func TestHealthReadyGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(HealthReadyGetPublicTestSuite))
}
