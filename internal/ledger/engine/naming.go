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

package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/timeledger-io/timeledger/internal/ledger/store"
)

// dupSuffixRe matches a trailing " (N)" duplicate suffix.
var dupSuffixRe = regexp.MustCompile(` \((\d+)\)$`)

// stripDupSuffix removes a trailing " (N)" suffix so repeated moves don't
// nest suffixes.
func stripDupSuffix(description string) string {
	return dupSuffixRe.ReplaceAllString(description, "")
}

// nextDuplicateName finds the next unused "(N)" suffix among the user's
// active entries sharing the same base. An entry named exactly base counts
// as baseline; siblings named "base (k)" are scanned for the maximum k.
// Only the sibling set is scanned, not the user's entire history.
func nextDuplicateName(
	ctx context.Context,
	tx *store.Tx,
	userID string,
	description string,
) (string, error) {
	base := stripDupSuffix(description)

	siblings, err := tx.ActiveDescriptions(ctx, userID, base)
	if err != nil {
		return "", err
	}

	max := 0
	prefix := base + " ("
	for _, sib := range siblings {
		if sib == base {
			continue
		}
		rest, ok := strings.CutPrefix(sib, prefix)
		if !ok {
			continue
		}
		numStr, ok := strings.CutSuffix(rest, ")")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(numStr)
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s (%d)", base, max+1), nil
}
