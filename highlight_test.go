// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var codeStyle = Style{KeywordColor: "blue", StringColor: "green", CommentColor: "gray"}

var highlightTests = []struct {
	line  string
	style Style
	want  string
}{
	{"if x < 1", Style{}, "if x &lt; 1"},
	{"if x < 1", Style{CodeBlockBG: "#fff"}, "if x &lt; 1"},
	{"return nil", codeStyle, `<span style="color:blue">return</span> <span style="color:blue">nil</span>`},
	{"returned nils", codeStyle, "returned nils"},
	{"_private", codeStyle, "_private"},
	{"// note", codeStyle, `<span style="color:gray">// note</span>`},
	{"   # note", codeStyle, `<span style="color:gray">   # note</span>`},
	{"#!/bin/sh", codeStyle, "#!/bin/sh"},
	{"a#b", codeStyle, "a#b"},
	{"x = 1 # one", codeStyle, `x = 1 <span style="color:gray"># one</span>`},
	{`x = "a \" b"`, codeStyle, `x = <span style="color:green">&quot;a \&quot; b&quot;</span>`},
	{"'abc", codeStyle, `<span style="color:green">&#39;abc</span>`},
	{"'#' # c", codeStyle, `<span style="color:green">&#39;#&#39;</span> <span style="color:gray"># c</span>`},
	{"let s = 'x'", Style{KeywordColor: "blue"}, `<span style="color:blue">let</span> s = &#39;x&#39;`},
	{"<b>", codeStyle, "&lt;b&gt;"},
}

func TestHighlightLine(t *testing.T) {
	t.Parallel()

	for _, tt := range highlightTests {
		assert.Equal(t, tt.want, HighlightLine(tt.line, tt.style), "HighlightLine(%q)", tt.line)
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"func", "def", "fn", "None", "esac", "await"} {
		assert.True(t, keywords[w], w)
	}
	for _, w := range []string{"", "Func", "x", "main"} {
		assert.False(t, keywords[w], w)
	}
}
