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

package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/timeledger-io/timeledger/internal/api"
	"github.com/timeledger-io/timeledger/internal/api/health"
	"github.com/timeledger-io/timeledger/internal/cli"
	"github.com/timeledger-io/timeledger/internal/ledger"
	"github.com/timeledger-io/timeledger/internal/ledger/engine"
	"github.com/timeledger-io/timeledger/internal/ledger/store"
	"github.com/timeledger-io/timeledger/internal/refdata"
	"github.com/timeledger-io/timeledger/internal/telemetry"
)

// version is the build version string, set at link time.
var version = "0.1.0"

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetEntryHandler returns entry handler for registration.
	GetEntryHandler(svc ledger.Service) []func(e *echo.Echo)
	// GetHealthHandler returns health handler for registration.
	GetHealthHandler(
		checker health.Checker,
		startTime time.Time,
		version string,
	) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers ...func(e *echo.Echo))
}

// serverStartCmd represents the serverStart command.
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the ledger API server.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			"timeledger",
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracer", err)
		}

		metricsHandler, metricsPath, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize meter", err)
		}

		st, err := store.New(appConfig.Database.Path)
		if err != nil {
			cli.LogFatal(logger, "failed to open ledger database", err,
				"path", appConfig.Database.Path)
		}

		ref := refdata.NewSQLite(st.DB())
		svc := engine.New(logger, st, ref, ref)

		checker := &health.DatabaseChecker{
			DBCheck: st.Ping,
		}

		var sm ServerManager = api.New(appConfig, logger)
		registerAPIHandlers(sm, svc, checker, metricsHandler, metricsPath)

		sm.Start()
		cli.RunServer(ctx, sm,
			func() {
				if err := st.Close(); err != nil {
					logger.Error("failed to close ledger database",
						slog.String("error", err.Error()))
				}
			},
			func() {
				shutdownCtx, cancel := context.WithTimeout(
					context.Background(), 5*time.Second)
				defer cancel()

				if err := shutdownMeter(shutdownCtx); err != nil {
					logger.Error("failed to shut down meter",
						slog.String("error", err.Error()))
				}
				if err := shutdownTracer(shutdownCtx); err != nil {
					logger.Error("failed to shut down tracer",
						slog.String("error", err.Error()))
				}
			},
		)
	},
}

// registerAPIHandlers wires every handler group into the server.
func registerAPIHandlers(
	sm ServerManager,
	svc ledger.Service,
	checker health.Checker,
	metricsHandler http.Handler,
	metricsPath string,
) {
	startTime := time.Now()

	handlers := make([]func(e *echo.Echo), 0, 4)
	handlers = append(handlers, sm.GetEntryHandler(svc)...)
	handlers = append(handlers, sm.GetHealthHandler(checker, startTime, version)...)
	handlers = append(handlers, sm.GetMetricsHandler(metricsHandler, metricsPath)...)

	sm.RegisterHandlers(handlers...)
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
}
