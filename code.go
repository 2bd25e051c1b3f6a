// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strings"

// A CodeBlock is a [Block] representing a fenced code block:
// the lines between two ``` lines.
type CodeBlock struct {
	Position
	Info string   // text after the opening ```, such as a language name
	Text []string // lines of code, as written
}

func (*CodeBlock) Block() {}

func (b *CodeBlock) printHTML(p *printer) {
	if bg := p.style.CodeBlockBG; bg != "" {
		p.openTag("pre", decl("background-color", bg), "padding:8px")
	} else {
		p.html("<pre>")
	}
	p.html("<tt>")
	for i, line := range b.Text {
		if i > 0 {
			p.html("\n")
		}
		p.highlight(line)
	}
	p.html("</tt></pre>")
}

// startFence is a [starter] for the ``` lines that open and close
// a [CodeBlock]. The info string is recorded but not rendered.
func startFence(p *parser, s line) bool {
	if !isFence(s.trimmed) {
		return false
	}
	if p.fence != nil {
		p.closeFence()
		return true
	}
	p.closeBlocks()
	p.fence = &CodeBlock{
		Position: p.pos(),
		Info:     strings.TrimSpace(s.trimmed[len("```"):]),
	}
	return true
}

// startCodeLine is a [starter] for the lines inside a fence.
func startCodeLine(p *parser, s line) bool {
	if p.fence == nil {
		return false
	}
	p.fence.Text = append(p.fence.Text, s.text)
	return true
}

func (p *parser) closeFence() {
	p.fence.EndLine = p.lineno
	p.add(p.fence)
	p.fence = nil
	p.last = lineBlock
}
