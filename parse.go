// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strings"

// A Block is a block-level element, one of
// [Document], [Text], [Break], [Heading], [ThematicBreak],
// [List], [Item], [Quote], [Table], and [CodeBlock].
type Block interface {
	Block()
	printHTML(*printer)
}

// A Position records the input lines a [Block] came from,
// counting from 1.
type Position struct {
	StartLine int
	EndLine   int
}

// lineType is the kind of the most recent input line,
// which decides whether a blank or text line needs a <br/> first.
type lineType int

const (
	lineNone  lineType = iota // nothing yet
	lineText                  // regular text
	lineBlank                 // blank line
	lineBlock                 // structural block: list item, quote, table, fence
)

// A parser is the state of a single call to [Parse].
// At most one of lists, quote, and table is open at a time.
type parser struct {
	doc    *Document
	lineno int
	last   lineType

	fence  *CodeBlock  // open fenced code block
	lists  []listLevel // open lists, outermost first
	quote  *Quote      // open block quote
	table  *Table      // open table
	header bool        // a table delimiter row has been seen
}

// A starter handles a line if it begins a block of its kind,
// reporting whether it did.
type starter func(p *parser, s line) bool

// starters lists the block kinds in the order they are tried.
// A line that no starter takes is regular text.
var starters = []starter{
	startFence,
	startCodeLine,
	startBlank,
	startThematicBreak,
	startHeading,
	startListItem,
	startQuote,
	startTableRow,
}

// Parse parses md into a [Document].
// Parse never fails: malformed markup is kept as text.
func Parse(md string) *Document {
	md = strings.ReplaceAll(md, "\x00", "\uFFFD")
	md = normalizeNewlines(md)
	p := &parser{doc: new(Document)}
	for _, text := range strings.Split(md, "\n") {
		p.lineno++
		p.addLine(makeLine(text))
	}
	p.finish()
	return p.doc
}

func (p *parser) addLine(s line) {
	for _, start := range starters {
		if start(p, s) {
			return
		}
	}
	startText(p, s)
}

// add appends b to the document.
func (p *parser) add(b Block) {
	p.doc.Blocks = append(p.doc.Blocks, b)
}

// pos returns the Position of the current line.
func (p *parser) pos() Position {
	return Position{p.lineno, p.lineno}
}

// closeBlocks closes any open list, quote, or table.
func (p *parser) closeBlocks() {
	p.closeLists()
	p.closeQuote()
	p.closeTable()
}

func (p *parser) finish() {
	if p.fence != nil {
		// An unclosed fence runs to the end of the input.
		p.closeFence()
	}
	p.closeBlocks()
}

// startBlank is a [starter] for a blank line.
// Blank lines end open blocks and render as <br/> after text
// or another blank line.
func startBlank(p *parser, s line) bool {
	if !s.isBlank() {
		return false
	}
	p.closeBlocks()
	if p.last == lineText || p.last == lineBlank {
		p.add(&Break{p.pos()})
	}
	p.last = lineBlank
	return true
}

// A Document is a [Block] holding a parsed message.
type Document struct {
	Blocks []Block
}

func (*Document) Block() {}

func (b *Document) printHTML(p *printer) {
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
}
