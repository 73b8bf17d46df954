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
)

// PatchEntry applies a sparse metadata patch to an entry. Fields absent
// from the body are left untouched.
func (h *Entry) PatchEntry(
	c echo.Context,
) error {
	var req UpdateEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := ledger.EntryPatch{}
	if req.Description != nil {
		patch.Description = ledger.Some(*req.Description)
	}
	if req.ProjectID.Set {
		patch.ProjectID = ledger.Some(req.ProjectID.Value)
	}
	if req.Issue.Set {
		patch.Issue = ledger.Some(toIssueRef(req.Issue.Value))
	}
	if req.LabelIDs != nil {
		patch.LabelIDs = ledger.Some(*req.LabelIDs)
	}

	view, err := h.Service.UpdateEntry(
		c.Request().Context(),
		c.Param("id"),
		callerID(c),
		patch,
	)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}
