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
	"github.com/labstack/echo/v4"

	"github.com/timeledger-io/timeledger/internal/api/entry"
	"github.com/timeledger-io/timeledger/internal/ledger"
)

// GetEntryHandler returns entry handler for registration.
func (s *Server) GetEntryHandler(
	svc ledger.Service,
) []func(e *echo.Echo) {
	entryHandler := entry.New(s.logger, svc)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			g := e.Group("/ledger", identityMiddleware())

			g.POST("/entries", entryHandler.PostEntry)
			g.GET("/entries", entryHandler.GetEntries)
			g.PATCH("/entries/:id", entryHandler.PatchEntry)
			g.DELETE("/entries/:id", entryHandler.DeleteEntry)
			g.POST("/entries/:id/restore", entryHandler.PostEntryRestore)
			g.POST("/entries/:id/adjustments", entryHandler.PostEntryAdjustment)
			g.POST("/entries/:id/move", entryHandler.PostEntryMove)
			g.POST("/entries/:id/split", entryHandler.PostEntrySplit)
			g.GET("/entries/:id/audit", entryHandler.GetEntryAudit)
			g.POST("/entries/:id/timer/start", entryHandler.PostEntryTimerStart)
			g.POST("/entries/:id/timer/resume", entryHandler.PostEntryTimerStart)
			g.POST("/timer/stop", entryHandler.PostTimerStop)
		},
	}
}
