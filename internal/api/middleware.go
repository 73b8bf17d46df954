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

package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeledger-io/timeledger/internal/api/entry"
)

// Identity headers. Auth is terminated upstream; by the time a request
// reaches this server the caller header is trusted.
const (
	// HeaderCallerID carries the authenticated caller identity.
	HeaderCallerID = "X-Caller-ID"
	// HeaderOwnerID optionally names the ledger owner being acted on.
	// Absent, the caller acts on their own ledger.
	HeaderOwnerID = "X-Owner-ID"
)

// identityMiddleware extracts caller and owner identity from request
// headers and injects them into the request context. Requests without a
// caller are rejected.
func identityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID := c.Request().Header.Get(HeaderCallerID)
			if callerID == "" {
				errMsg := "missing " + HeaderCallerID + " header"
				return c.JSON(http.StatusUnauthorized, entry.ErrorResponse{
					Error: &errMsg,
				})
			}

			ownerID := c.Request().Header.Get(HeaderOwnerID)
			if ownerID == "" {
				ownerID = callerID
			}

			c.Set(entry.ContextKeyCallerID, callerID)
			c.Set(entry.ContextKeyOwnerID, ownerID)

			return next(c)
		}
	}
}
