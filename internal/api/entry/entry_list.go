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
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// GetEntries assembles day-bucketed entry views for a date range. The
// from and to query parameters are YYYY-MM-DD calendar days, inclusive.
func (h *Entry) GetEntries(
	c echo.Context,
) error {
	from, err := time.Parse(time.DateOnly, c.QueryParam("from"))
	if err != nil {
		return badRequest(c, "invalid or missing from parameter, want YYYY-MM-DD")
	}

	to, err := time.Parse(time.DateOnly, c.QueryParam("to"))
	if err != nil {
		return badRequest(c, "invalid or missing to parameter, want YYYY-MM-DD")
	}

	if to.Before(from) {
		return badRequest(c, "to must not precede from")
	}

	includeDeleted := c.QueryParam("include_deleted") == "true"

	days, err := h.Service.ListEntries(
		c.Request().Context(),
		ownerID(c),
		from,
		to,
		includeDeleted,
	)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, ListEntriesResponse{Days: days})
}
