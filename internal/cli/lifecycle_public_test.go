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

package cli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/timeledger-io/timeledger/internal/cli"
)

type fakeServer struct {
	stopped bool
}

func (f *fakeServer) Start() {}

func (f *fakeServer) Stop(_ context.Context) {
	f.stopped = true
}

type RunServerPublicTestSuite struct {
	suite.Suite
}

func (s *RunServerPublicTestSuite) TestRunServerStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	server := &fakeServer{}
	cleanups := []string{}

	cancel()
	cli.RunServer(ctx, server,
		func() { cleanups = append(cleanups, "first") },
		func() { cleanups = append(cleanups, "second") },
	)

	s.True(server.stopped)
	s.Equal([]string{"first", "second"}, cleanups)
}

func (s *RunServerPublicTestSuite) TestRunServerNoCleanups() {
	ctx, cancel := context.WithCancel(context.Background())
	server := &fakeServer{}

	cancel()
	cli.RunServer(ctx, server)

	s.True(server.stopped)
}

func TestRunServerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RunServerPublicTestSuite))
}
