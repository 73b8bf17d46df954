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

	"github.com/labstack/echo/v4"

	"github.com/timeledger-io/timeledger/internal/ledger"
	"github.com/timeledger-io/timeledger/internal/validation"
)

// PostEntryMove relocates one segment's time from the entry to a brand
// new entry, conserving the total across both.
func (h *Entry) PostEntryMove(
	c echo.Context,
) error {
	var req MoveBlockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if errMsg, ok := validation.Struct(&req); !ok {
		return badRequest(c, errMsg)
	}

	view, err := h.Service.MoveBlock(c.Request().Context(), ledger.MoveBlockParams{
		EntryID:     c.Param("id"),
		CallerID:    callerID(c),
		SegmentID:   req.SegmentID,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, view)
}
