// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

// A List is a [Block] representing a bulleted or numbered list.
// Items holds the list's [*Item] entries in order, along with any
// nested [*List], which appears directly after the item it follows.
type List struct {
	Position
	Ordered bool // <ol> rather than <ul>
	Items   []Block
}

func (*List) Block() {}

func (b *List) printHTML(p *printer) {
	tag := "ul"
	if b.Ordered {
		tag = "ol"
	}
	p.html("<", tag, ">")
	for _, c := range b.Items {
		c.printHTML(p)
	}
	p.html("</", tag, ">")
}

// An Item is a [Block] representing a single list item.
type Item struct {
	Position
	Text *Text
}

func (*Item) Block() {}

func (b *Item) printHTML(p *printer) {
	p.html("<li>")
	b.Text.printHTML(p)
	p.html("</li>")
}

// A listLevel is an open list and the indentation of its items.
type listLevel struct {
	list   *List
	indent int
}

// startListItem is a [starter] for an [Item] of a [List].
func startListItem(p *parser, s line) bool {
	ordered := false
	text, ok := trimBullet(s.trimmed)
	if !ok {
		text, ok = trimOrdinal(s.trimmed)
		ordered = true
	}
	if !ok {
		return false
	}
	p.closeQuote()
	p.closeTable()
	list := p.listAt(s.indent(), ordered)
	list.Items = append(list.Items, &Item{p.pos(), &Text{p.pos(), parseInline(text)}})
	for _, l := range p.lists {
		l.list.EndLine = p.lineno
	}
	p.last = lineBlock
	return true
}

// listAt returns the list that takes an item of the given kind at
// the given indentation, opening a new list if needed.
// Lists indented more deeply than the item are closed.
func (p *parser) listAt(indent int, ordered bool) *List {
	for len(p.lists) > 0 && p.lists[len(p.lists)-1].indent > indent {
		p.lists = p.lists[:len(p.lists)-1]
	}
	if n := len(p.lists); n > 0 && p.lists[n-1].indent == indent {
		if top := p.lists[n-1].list; top.Ordered == ordered {
			return top
		}
		// Same depth, other kind: the new list replaces the old one.
		p.lists = p.lists[:n-1]
	}
	list := &List{Position: p.pos(), Ordered: ordered}
	if n := len(p.lists); n > 0 {
		parent := p.lists[n-1].list
		parent.Items = append(parent.Items, list)
	} else {
		p.add(list)
	}
	p.lists = append(p.lists, listLevel{list, indent})
	return list
}

func (p *parser) closeLists() {
	p.lists = p.lists[:0]
}
