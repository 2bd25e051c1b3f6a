// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strconv"

// A Heading is a [Block] representing a heading line,
// # through #### followed by the heading text.
type Heading struct {
	Position

	// Level is the heading level: 1 through 4.
	// Other values are clamped to the valid range.
	Level int

	// Text is the text of the heading.
	Text *Text
}

func (*Heading) Block() {}

// level returns the effective level, clamping Level to the range [1, 4].
func (h *Heading) level() int {
	return max(1, min(4, h.Level))
}

func (b *Heading) printHTML(p *printer) {
	tag := "h" + strconv.Itoa(b.level())
	p.openTag(tag, decl("color", p.style.HeadingColor))
	b.Text.printHTML(p)
	p.html("</", tag, ">")
}

// startHeading is a [starter] for a [Heading].
func startHeading(p *parser, s line) bool {
	level, text, ok := trimHeading(s.trimmed)
	if !ok {
		return false
	}
	p.closeBlocks()
	p.add(&Heading{p.pos(), level, &Text{p.pos(), parseInline(text)}})
	p.last = lineBlock
	return true
}
