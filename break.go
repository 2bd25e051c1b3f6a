// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

// A ThematicBreak is a [Block] representing a horizontal rule,
// written as three or more -, *, or _ alone on a line.
type ThematicBreak struct {
	Position
}

func (*ThematicBreak) Block() {}

func (b *ThematicBreak) printHTML(p *printer) {
	p.html("<hr/>")
}

// startThematicBreak is a [starter] for a [ThematicBreak].
func startThematicBreak(p *parser, s line) bool {
	if !isThematicBreak(s.trimmed) {
		return false
	}
	p.closeBlocks()
	p.add(&ThematicBreak{p.pos()})
	p.last = lineBlock
	return true
}

// A Break is a [Block] representing a line break between
// lines of text, or the blank line after them.
type Break struct {
	Position
}

func (*Break) Block() {}

func (b *Break) printHTML(p *printer) {
	p.html("<br/>")
}
