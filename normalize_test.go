// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var normalizeTests = []struct {
	in   string
	hard bool
	want string
}{
	{in: "", want: "\n"},
	{in: "```\ncode line\n```", want: "```\ncode line\n```"},
	{in: "a\n```\nx\n```\nb", want: "a\n```\nx\n```\nb\n"},
	{in: "intro **Title:** detail", want: "intro \n\n**Title:**\ndetail\n"},
	{in: "First item 1. Second item 2. Third item", want: "First item\n1. Second item\n2. Third item\n"},
	{in: "ok. Next steps: 1. test", want: "ok.\n\nNext steps:\n1. test\n"},
	{in: "Colors - red - green", want: "Colors\n- red\n- green\n"},
	{in: "A - B", want: "A - B\n"},
	{in: "line one\nline two", hard: true, want: "line one  \nline two  \n"},
	{in: "- item one\n- item two", hard: true, want: "- item one\n- item two\n"},
	{in: "# T\n> q\n1. x", hard: true, want: "# T\n> q\n1. x\n"},
	{in: "a\r\nb", want: "a\nb\n"},
	{in: "a\n\n\n\nb", want: "a\n\n\n\nb\n"},
}

func TestNormalizeForDisplay(t *testing.T) {
	t.Parallel()

	for _, tt := range normalizeTests {
		got := NormalizeForDisplay(tt.in, tt.hard)
		assert.Equal(t, tt.want, got, "NormalizeForDisplay(%q, %v)", tt.in, tt.hard)
		assert.NotContains(t, got, "\r")
	}
}

func TestNormalizeRenders(t *testing.T) {
	t.Parallel()

	md := NormalizeForDisplay("Steps: 1. build 2. test", false)
	assert.Equal(t, "\n\nSteps:\n1. build\n2. test\n", md)
	assert.Equal(t, "<br/><br/>Steps:<ol><li>build</li><li>test</li></ol>", Render(md, Style{}))
}
