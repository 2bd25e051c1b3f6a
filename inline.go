// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strings"

// An Inline is an inline element, one of
// [Plain], [Code], [Strong], [Emph], [Del], [Link], and [BareURL].
type Inline interface {
	Inline()
	printHTML(*printer)
}

// An Inlines is an [Inline] that represents a concatenation of Inlines.
type Inlines []Inline

func (Inlines) Inline() {}

func (x Inlines) printHTML(p *printer) {
	for _, inl := range x {
		inl.printHTML(p)
	}
}

// A Plain is an [Inline] holding plain text.
type Plain struct {
	Text string
}

func (*Plain) Inline() {}

func (x *Plain) printHTML(p *printer) { p.text(x.Text) }

// A Code is an [Inline] holding a code span.
type Code struct {
	Text string
}

func (*Code) Inline() {}

func (x *Code) printHTML(p *printer) {
	s := p.style
	if s.CodeBG == "" && s.CodeFG == "" {
		p.html("<tt>")
		p.text(x.Text)
		p.html("</tt>")
		return
	}
	p.openTag("span", decl("background-color", s.CodeBG), decl("color", s.CodeFG))
	p.html("<tt>")
	p.text(x.Text)
	p.html("</tt></span>")
}

// A Strong is an [Inline] for bold text: **x** or __x__.
type Strong struct {
	Inner Inlines
}

func (*Strong) Inline() {}

func (x *Strong) printHTML(p *printer) {
	p.html("<b>")
	x.Inner.printHTML(p)
	p.html("</b>")
}

// An Emph is an [Inline] for italic text: *x* or _x_.
type Emph struct {
	Inner Inlines
}

func (*Emph) Inline() {}

func (x *Emph) printHTML(p *printer) {
	p.html("<i>")
	x.Inner.printHTML(p)
	p.html("</i>")
}

// A Del is an [Inline] for struck-through text: ~~x~~.
type Del struct {
	Inner Inlines
}

func (*Del) Inline() {}

func (x *Del) printHTML(p *printer) {
	p.html("<s>")
	x.Inner.printHTML(p)
	p.html("</s>")
}

// A span is a piece of inline source text after backslash escapes
// have been removed. If lit is non-nil, lit[i] reports whether
// text[i] came from an escape; such bytes are ordinary characters
// and never act as markup.
type span struct {
	text string
	lit  []bool
}

// unescape removes the backslash from each escape sequence in s.
// A backslash before a character that cannot be escaped is kept.
func unescape(s string) span {
	if !strings.Contains(s, `\`) {
		return span{text: s}
	}
	var b strings.Builder
	lit := make([]bool, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && isEscapable(s[i+1]) {
			i++
			b.WriteByte(s[i])
			lit = append(lit, true)
			continue
		}
		b.WriteByte(c)
		lit = append(lit, false)
	}
	return span{b.String(), lit}
}

func (s span) slice(i, j int) span {
	if s.lit == nil {
		return span{text: s.text[i:j]}
	}
	return span{s.text[i:j], s.lit[i:j]}
}

// literal reports whether any byte of s.text[i:j] came from an escape.
func (s span) literal(i, j int) bool {
	if s.lit == nil {
		return false
	}
	for k := i; k < j; k++ {
		if s.lit[k] {
			return true
		}
	}
	return false
}

// index returns the index of the first markup occurrence of sub in
// s.text[i:end], or -1.
func (s span) index(sub string, i, end int) int {
	for i+len(sub) <= end {
		j := strings.Index(s.text[i:end], sub)
		if j < 0 {
			return -1
		}
		j += i
		if !s.literal(j, j+len(sub)) {
			return j
		}
		i = j + 1
	}
	return -1
}

// parseInline parses the inline content of a single line.
func parseInline(text string) Inlines {
	s := unescape(text)
	var out Inlines
	for {
		open := s.index("`", 0, len(s.text))
		if open < 0 {
			break
		}
		end := s.index("`", open+1, len(s.text))
		out = appendFormat(out, s.slice(0, open), 0)
		if end < 0 {
			// An unclosed backtick is an ordinary character
			// starting the rest of the line.
			s = s.slice(open, len(s.text))
			break
		}
		out = append(out, &Code{s.text[open+1 : end]})
		s = s.slice(end+1, len(s.text))
	}
	return mergePlain(appendFormat(out, s, 0))
}

// appendPlain appends text to out as a [Plain].
// Adjacent Plains are merged by [mergePlain] once the line is parsed.
func appendPlain(out Inlines, text string) Inlines {
	if text == "" {
		return out
	}
	return append(out, &Plain{text})
}

// RenderInline returns the unstyled HTML for a single line of
// inline markup: code spans, emphasis, links, and bare URLs.
func RenderInline(line string) string {
	return ToHTML(&Text{Inline: parseInline(line)}, Style{})
}
