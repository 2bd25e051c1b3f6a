// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strings"

// A Table is a [Block] representing a pipe table:
//
//	| Name | Value |
//	|------|-------|
//	| a    | 1     |
//
// The delimiter row is optional. When present, anywhere in the table,
// it marks the first row as the header.
type Table struct {
	Position
	Header bool      // first row is a header row
	Rows   [][]*Text // cells of each row
}

func (*Table) Block() {}

func (t *Table) printHTML(p *printer) {
	var border string
	if c := p.style.TableBorder; c != "" {
		border = "border:1px solid " + c
	}
	p.html("<table>")
	for i, row := range t.Rows {
		tag := "td"
		if i == 0 && t.Header {
			tag = "th"
		}
		p.html("<tr>")
		for _, cell := range row {
			if border != "" {
				p.openTag(tag, border, "padding:2px 6px")
			} else {
				p.openTag(tag)
			}
			cell.printHTML(p)
			p.html("</", tag, ">")
		}
		p.html("</tr>")
	}
	p.html("</table>")
}

// startTableRow is a [starter] for a row of a [Table].
func startTableRow(p *parser, s line) bool {
	t := s.trimmed
	if len(t) < 2 || t[0] != '|' || t[len(t)-1] != '|' {
		return false
	}
	if isTableDelim(t) {
		p.header = true
		if p.table != nil {
			p.table.Header = true
		}
		return true
	}
	if p.table == nil {
		p.closeLists()
		p.closeQuote()
		p.table = &Table{Position: p.pos(), Header: p.header}
		p.add(p.table)
	}
	p.table.Rows = append(p.table.Rows, tableCells(p, t))
	p.table.EndLine = p.lineno
	p.last = lineBlock
	return true
}

// isTableDelim reports whether the row t is a delimiter row
// such as |---|:--:|.
func isTableDelim(t string) bool {
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return strings.Contains(t, "-")
}

// tableCells splits the row t, which begins and ends with |,
// into its trimmed cells.
func tableCells(p *parser, t string) []*Text {
	cells := strings.Split(t[1:len(t)-1], "|")
	row := make([]*Text, len(cells))
	for i, c := range cells {
		row[i] = &Text{p.pos(), parseInline(strings.TrimSpace(c))}
	}
	return row
}

func (p *parser) closeTable() {
	p.table = nil
	p.header = false
}
