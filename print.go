// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"bytes"
	"strings"
)

// A printer accumulates HTML output along with the style it is
// rendered with.
type printer struct {
	buf   bytes.Buffer
	style Style
}

// html writes raw HTML markup.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes escaped text.
func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

// decl returns the CSS declaration name:value,
// or the empty string if value is empty.
func decl(name, value string) string {
	if value == "" {
		return ""
	}
	return name + ":" + value
}

// openTag writes <tag>, or <tag style="..."> listing the non-empty
// declarations in decls.
func (p *printer) openTag(tag string, decls ...string) {
	var list []string
	for _, d := range decls {
		if d != "" {
			list = append(list, d)
		}
	}
	if len(list) == 0 {
		p.html("<", tag, ">")
		return
	}
	p.html("<", tag, ` style="`)
	p.text(strings.Join(list, ";"))
	p.html(`">`)
}

// colored writes text inside a span of the given color.
// If color is empty, colored writes only the escaped text.
func (p *printer) colored(color, text string) {
	if color == "" {
		p.text(text)
		return
	}
	p.openTag("span", decl("color", color))
	p.text(text)
	p.html("</span>")
}

// ToHTML returns the HTML for b rendered with style.
func ToHTML(b Block, style Style) string {
	p := printer{style: style}
	b.printHTML(&p)
	return p.buf.String()
}

// Render parses md and returns its HTML rendering.
// It is shorthand for ToHTML(Parse(md), style).
func Render(md string, style Style) string {
	return ToHTML(Parse(md), style)
}
