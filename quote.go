// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

// A Quote is a [Block] representing a block quote: consecutive lines
// starting with >. Block quotes do not nest; each line holds inline
// text only.
type Quote struct {
	Position
	Lines []*Text
}

func (*Quote) Block() {}

// printHTML renders the quote as a two-cell table:
// a narrow bar in the border color, then the quoted text.
func (b *Quote) printHTML(p *printer) {
	p.html(`<table><tr><td width="3"`)
	if c := p.style.BlockquoteBorder; c != "" {
		p.html(` bgcolor="`)
		p.text(c)
		p.html(`"`)
	}
	p.html("></td>")
	p.openTag("td", decl("color", p.style.BlockquoteFG))
	for i, t := range b.Lines {
		if i > 0 {
			p.html("<br/>")
		}
		t.printHTML(p)
	}
	p.html("</td></tr></table>")
}

// startQuote is a [starter] for a [Quote].
func startQuote(p *parser, s line) bool {
	text, ok := trimQuote(s.trimmed)
	if !ok {
		return false
	}
	p.closeTable()
	p.closeLists()
	if p.quote == nil {
		p.quote = &Quote{Position: p.pos()}
		p.add(p.quote)
	}
	p.quote.Lines = append(p.quote.Lines, &Text{p.pos(), parseInline(text)})
	p.quote.EndLine = p.lineno
	p.last = lineBlock
	return true
}

func (p *parser) closeQuote() {
	p.quote = nil
}
