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

// Package refdata resolves project and label reference data for display
// enrichment and audit-diff labeling. Pure reads; no invariants owned here.
package refdata

import (
	"context"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

// ProjectResolver resolves a project id into its display info.
type ProjectResolver interface {
	// ResolveProject returns (nil, nil) for an unknown id.
	ResolveProject(ctx context.Context, id string) (*ledger.ProjectInfo, error)
}

// LabelResolver resolves label ids into display info. Unknown ids are
// silently dropped from the result.
type LabelResolver interface {
	ResolveLabels(ctx context.Context, ids []string) ([]ledger.Label, error)
}
