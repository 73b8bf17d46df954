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

package refdata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

// ensure SQLite implements both resolvers at compile time.
var (
	_ ProjectResolver = (*SQLite)(nil)
	_ LabelResolver   = (*SQLite)(nil)
)

// SQLite resolves reference data from the projects and labels tables of the
// ledger database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed resolver over an open database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// ResolveProject looks up one project. Returns (nil, nil) for an unknown id.
func (r *SQLite) ResolveProject(
	ctx context.Context,
	id string,
) (*ledger.ProjectInfo, error) {
	var p ledger.ProjectInfo
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, color, client_name FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Color, &p.Client)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve project: %w", err)
	}
	return &p, nil
}

// ResolveLabels looks up labels by id, dropping unknown ids.
func (r *SQLite) ResolveLabels(
	ctx context.Context,
	ids []string,
) ([]ledger.Label, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `SELECT id, name, color FROM labels WHERE id IN (` +
		strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ") + `) ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolve labels: %w", err)
	}
	defer rows.Close()

	var out []ledger.Label
	for rows.Next() {
		var l ledger.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Color); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
