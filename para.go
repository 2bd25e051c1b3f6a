// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"strings"
	"unicode"
)

// A Text is a [Block] holding one line of inline content.
// Text also holds the content of headings, list items, quote lines,
// and table cells.
type Text struct {
	Position
	Inline Inlines
}

func (*Text) Block() {}

func (b *Text) printHTML(p *printer) {
	b.Inline.printHTML(p)
}

// startText handles a line of regular text, which is any line
// no [starter] takes. Each text line after the first output line
// begins with a <br/>.
//
// A line holding a run-on list such as "Options - fast - cheap"
// is split: the first part is text, and the rest are handled as
// "- fast" and "- cheap" list items.
func startText(p *parser, s line) {
	p.closeBlocks()
	if p.last != lineNone {
		p.add(&Break{p.pos()})
	}
	p.last = lineText

	parts := []string{s.text}
	if s.split {
		parts = SplitHyphenList(s.text)
	}
	p.add(&Text{p.pos(), parseInline(trimRightSpaceTab(parts[0]))})
	for _, part := range parts[1:] {
		t := makeLine(part)
		t.split = false
		p.addLine(t)
	}
}

// SplitHyphenList splits a line holding a list run together with
// " - " separators, such as "Colors - red - green", into the text
// before the first separator and one "- item" line per item:
// "Colors", "- red", "- green". The spaces around each hyphen may be
// spaces, tabs, or no-break spaces. A line with fewer than two such
// separators is returned unchanged as the only element.
func SplitHyphenList(line string) []string {
	r := []rune(line)
	type sep struct{ start, end int }
	var seps []sep
	for i := 1; i+1 < len(r); i++ {
		if r[i] != '-' || !isSepSpace(r[i-1]) || !isSepSpace(r[i+1]) {
			continue
		}
		start := i - 1
		for start >= 0 && isSepSpace(r[start]) {
			start--
		}
		end := i + 1
		for end < len(r) && isSepSpace(r[end]) {
			end++
		}
		seps = append(seps, sep{start + 1, end})
		i = end - 1
	}
	if len(seps) < 2 {
		return []string{line}
	}

	out := make([]string, 0, len(seps)+1)
	last := 0
	for i, sp := range seps {
		var seg string
		if sp.start > last {
			seg = string(r[last:sp.start])
		}
		if i == 0 {
			out = append(out, strings.TrimRightFunc(seg, unicode.IsSpace))
		} else {
			out = append(out, "- "+strings.TrimSpace(seg))
		}
		last = sp.end
	}
	return append(out, "- "+strings.TrimLeftFunc(string(r[last:]), unicode.IsSpace))
}
