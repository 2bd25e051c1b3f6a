// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strings"

// keywords is the set of words highlighted in code blocks,
// shared by every language. It is read-only after init.
var keywords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		export if then else elif fi for in do done while until case esac
		function return local source echo sudo cd mkdir rm
		var let const def class import from async await
		try catch except finally throw new this self switch break continue
		yield typeof instanceof raise with as pass lambda print not and or
		func defer go range select chan struct enum impl trait pub mod use
		fn mut loop match where type package interface
		true false null undefined None True False nil
	`) {
		keywords[w] = true
	}
}

// HighlightLine returns the HTML for one line of a code block,
// with comments, string literals, and keywords colored as set in style.
// With no highlight colors set, it returns the escaped line.
func HighlightLine(line string, style Style) string {
	p := printer{style: style}
	p.highlight(line)
	return p.buf.String()
}

func (p *printer) highlight(line string) {
	st := p.style
	if !st.highlights() {
		p.text(line)
		return
	}
	t := strings.TrimSpace(line)
	if strings.HasPrefix(t, "#") && !strings.HasPrefix(t, "#!") || strings.HasPrefix(t, "//") {
		p.colored(st.CommentColor, line)
		return
	}

	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '"' || c == '\'':
			j := stringEnd(line, i)
			p.colored(st.StringColor, line[i:j])
			i = j
		case c == '#' && i > 0 && isSpaceTab(line[i-1]):
			p.colored(st.CommentColor, line[i:])
			return
		case isIdentStart(c):
			j := i + 1
			for j < len(line) && isWordChar(line[j]) {
				j++
			}
			if w := line[i:j]; keywords[w] {
				p.colored(st.KeywordColor, w)
			} else {
				p.text(w)
			}
			i = j
		default:
			j := i + 1
			for j < len(line) && !startsToken(line[j]) {
				j++
			}
			p.text(line[i:j])
			i = j
		}
	}
}

// startsToken reports whether c may begin a highlighted token.
func startsToken(c byte) bool {
	return c == '"' || c == '\'' || c == '#' || isIdentStart(c)
}

// stringEnd returns the end of the quoted string starting at s[i],
// just past the closing quote, or len(s) if the string is unterminated.
// A backslash escapes the character after it.
func stringEnd(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1
		}
	}
	return len(s)
}
