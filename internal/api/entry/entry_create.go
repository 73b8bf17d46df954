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

// PostEntry creates a new entry with one manual segment.
func (h *Entry) PostEntry(
	c echo.Context,
) error {
	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if errMsg, ok := validation.Struct(&req); !ok {
		return badRequest(c, errMsg)
	}

	params := ledger.CreateEntryParams{
		OwnerID:     ownerID(c),
		ActorID:     callerID(c),
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Issue:       toIssueRef(req.Issue),
		LabelIDs:    req.LabelIDs,
		StartedAt:   req.StartedAt,
		StoppedAt:   req.StoppedAt,
		Note:        req.Note,
		Source:      "api",
	}

	view, err := h.Service.CreateEntry(c.Request().Context(), params)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, view)
}

// toIssueRef converts a request issue reference to the domain type.
func toIssueRef(r *IssueRefRequest) *ledger.IssueRef {
	if r == nil {
		return nil
	}

	return &ledger.IssueRef{
		Key:          r.Key,
		Summary:      r.Summary,
		ConnectionID: r.ConnectionID,
	}
}
