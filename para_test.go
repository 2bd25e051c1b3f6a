// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var splitTests = []struct {
	in   string
	want []string
}{
	{"", []string{""}},
	{"hello world", []string{"hello world"}},
	{"A - B", []string{"A - B"}},
	{"A-B-C", []string{"A-B-C"}},
	{"A - B - C", []string{"A", "- B", "- C"}},
	{"A - B - C - D", []string{"A", "- B", "- C", "- D"}},
	{"A\t-\tB\t-\tC", []string{"A", "- B", "- C"}},
	{"A\u00a0-\u00a0B\u00a0-\u00a0C", []string{"A", "- B", "- C"}},
	{"A  -  B -   C  ", []string{"A", "- B", "- C  "}},
	{"A - - B", []string{"A", "- ", "- B"}},
	{"é - ü - ß", []string{"é", "- ü", "- ß"}},
}

func TestSplitHyphenList(t *testing.T) {
	t.Parallel()

	for _, tt := range splitTests {
		assert.Equal(t, tt.want, SplitHyphenList(tt.in), "SplitHyphenList(%q)", tt.in)
	}
}

func TestTextBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"a\nb", "a<br/>b"},
		{"\na", "<br/>a"},
		{"\n\na", "<br/><br/>a"},
		{"a\n\n\nb", "a<br/><br/><br/>b"},
		{"# h\n\nb", "<h1>h</h1><br/>b"},
		{"x - y - z\nw", "x<ul><li>y</li><li>z</li></ul><br/>w"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(tt.in, Style{}), "Render(%q)", tt.in)
	}
}
