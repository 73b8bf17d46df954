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

package entry

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

// callerID returns the caller identity injected by the server middleware.
func callerID(c echo.Context) string {
	v, _ := c.Get(ContextKeyCallerID).(string)
	return v
}

// ownerID returns the owner identity injected by the server middleware.
func ownerID(c echo.Context) string {
	v, _ := c.Get(ContextKeyOwnerID).(string)
	return v
}

// badRequest writes a 400 with the given message.
func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: &msg})
}

// domainError maps ledger errors onto HTTP responses.
func domainError(c echo.Context, err error) error {
	errMsg := err.Error()

	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: &errMsg})
	case errors.Is(err, ledger.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: &errMsg})
	case errors.Is(err, ledger.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: &errMsg})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: &errMsg})
	}
}
