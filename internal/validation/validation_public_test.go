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

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timeledger-io/timeledger/internal/validation"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"gt=0,lte=10"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       sample
		wantOK      bool
		errContains []string
	}{
		{
			name:   "valid",
			input:  sample{Name: "x", Count: 5},
			wantOK: true,
		},
		{
			name:        "missing name",
			input:       sample{Count: 5},
			wantOK:      false,
			errContains: []string{"Name", "required"},
		},
		{
			name:        "multiple failures joined",
			input:       sample{Count: 99},
			wantOK:      false,
			errContains: []string{"Name", "Count", "; "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg, ok := validation.Struct(&tt.input)
			assert.Equal(t, tt.wantOK, ok)
			for _, want := range tt.errContains {
				assert.Contains(t, errMsg, want)
			}
		})
	}
}

func TestInstanceIsShared(t *testing.T) {
	assert.Same(t, validation.Instance(), validation.Instance())
}
