// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Link is an [Inline] for a [label](url) link.
// The label is plain text.
type Link struct {
	URL   string
	Label string
}

func (*Link) Inline() {}

func (x *Link) printHTML(p *printer) {
	p.html(`<a href="`)
	p.text(x.URL)
	p.html(`">`)
	p.text(x.Label)
	p.html("</a>")
}

// A BareURL is an [Inline] for a bare http or https URL
// found in running text.
type BareURL struct {
	URL string
}

func (*BareURL) Inline() {}

func (x *BareURL) printHTML(p *printer) {
	p.html(`<a href="`)
	p.text(x.URL)
	p.html(`">`)
	p.text(x.URL)
	p.html("</a>")
}

// SanitizeURL cleans up a URL token taken from running text.
// It trims white space and surrounding angle brackets, then removes
// trailing emphasis markers (* and %2A) and trailing punctuation
// such as ) ] } . , ; : ! and ?. A trailing slash is kept, except
// after a bare http or https host. The result is empty if nothing
// is left.
//
// SanitizeURL is idempotent: SanitizeURL(SanitizeURL(s)) == SanitizeURL(s).
func SanitizeURL(raw string) string {
	u := raw
	for {
		v := sanitizeOnce(u)
		if v == u {
			return v
		}
		u = v
	}
}

func sanitizeOnce(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	if len(u) >= 2 && u[0] == '<' && u[len(u)-1] == '>' {
		u = u[1 : len(u)-1]
	}

	// Set aside one trailing slash so that markers before it are exposed.
	slash := strings.HasSuffix(u, "/")
	u = strings.TrimSuffix(u, "/")
	u = strings.TrimRight(u, "*")
	for len(u) >= 3 && strings.EqualFold(u[len(u)-3:], "%2a") {
		u = u[:len(u)-3]
	}
	u = strings.TrimRight(u, ")]}.,;:!?*")
	if slash && !isHostOnly(u) {
		u += "/"
	}
	return u
}

// isHostOnly reports whether u is an http or https URL with no path.
func isHostOnly(u string) bool {
	rest, ok := strings.CutPrefix(u, "https://")
	if !ok {
		rest, ok = strings.CutPrefix(u, "http://")
	}
	return ok && !strings.Contains(rest, "/")
}

// hasWebScheme reports whether s begins with http:// or https://.
func hasWebScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// safeScheme reports whether a link to u may be rendered.
// URLs without a scheme are relative and allowed.
func safeScheme(u string) bool {
	i := strings.IndexAny(u, ":/?#")
	if i < 0 || u[i] != ':' {
		return true
	}
	switch strings.ToLower(u[:i]) {
	case "http", "https", "mailto":
		return true
	}
	return false
}

// urlEnd returns the end of the URL that starts at s[i]: the index
// of the first white space character, or of any byte in stop.
func urlEnd(s string, i int, stop string) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) || r < utf8.RuneSelf && strings.IndexByte(stop, byte(r)) >= 0 {
			break
		}
		i += size
	}
	return i
}

// A finder remembers the next markup occurrence of a byte in a span,
// so that repeated searches from increasing offsets cost linear time.
type finder struct {
	c  byte
	at int // next occurrence, -1 for none, or less than any offset if unknown
}

func newFinder(c byte) finder {
	return finder{c: c, at: -2}
}

func (f *finder) next(s span, i int) int {
	if f.at == -1 || f.at >= i {
		return f.at
	}
	f.at = s.index(string(f.c), i, len(s.text))
	return f.at
}

// appendText appends the inlines for s, which has no emphasis or code:
// [label](url) links, bare URLs, and plain text.
func appendText(out Inlines, s span) Inlines {
	closeBracket, closeParen := newFinder(']'), newFinder(')')
	text := s.text
	start := 0
	for i := 0; i < len(text); {
		switch c := text[i]; {
		case c == '[' && !s.literal(i, i+1):
			cb := closeBracket.next(s, i+1)
			if cb < 0 || cb+1 >= len(text) || text[cb+1] != '(' || s.literal(cb+1, cb+2) {
				break
			}
			cp := closeParen.next(s, cb+2)
			if cp < 0 {
				break
			}
			out = appendPlain(out, text[start:i])
			if u := SanitizeURL(text[cb+2 : cp]); u != "" && safeScheme(u) {
				out = append(out, &Link{URL: u, Label: text[i+1 : cb]})
			} else {
				out = appendPlain(out, text[i:cp+1])
			}
			i, start = cp+1, cp+1
			continue

		case c == 'h' && hasWebScheme(text[i:]):
			j := urlEnd(text, i, "")
			out = appendPlain(out, text[start:i])
			if u := SanitizeURL(text[i:j]); u != "" {
				out = append(out, &BareURL{u})
			}
			i, start = j, j
			continue
		}
		i++
	}
	return appendPlain(out, text[start:])
}

// ExtractURLs returns the distinct http and https URLs in raw,
// in order of first appearance. Each URL runs to the next white space
// or < and is cleaned with [SanitizeURL]; URLs that clean to the empty
// string are dropped.
func ExtractURLs(raw string) []string {
	var urls []string
	seen := make(map[string]bool)
	for i := 0; i < len(raw); {
		j := strings.Index(raw[i:], "http")
		if j < 0 {
			break
		}
		i += j
		n := len("http://")
		if strings.HasPrefix(raw[i:], "https://") {
			n = len("https://")
		} else if !strings.HasPrefix(raw[i:], "http://") {
			i++
			continue
		}
		end := urlEnd(raw, i+n, "<")
		if end == i+n {
			i++
			continue
		}
		u := SanitizeURL(raw[i:end])
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
		i = end
	}
	return urls
}

// An AutoLinker rewrites bare URLs in Markdown text as <url> autolinks.
type AutoLinker struct {
	// SkipLinkTargets leaves alone a URL that immediately follows "](",
	// the target of a [label](url) link. Without it, the target is
	// rewritten like any other URL, so [a](https://x.com) becomes
	// [a](<https://x.com>.
	SkipLinkTargets bool
}

// AutoLink rewrites bare http and https URLs in md as <url>,
// using the zero [AutoLinker].
func AutoLink(md string) string {
	var l AutoLinker
	return l.Link(md)
}

// Link rewrites each bare http or https URL in md as <url>, where url
// is the text up to the next white space cleaned with [SanitizeURL].
// URLs inside ``` fences and `code` spans are left alone.
func (l *AutoLinker) Link(md string) string {
	var b strings.Builder
	inFence, inCode := false, false
	for i := 0; i < len(md); {
		switch {
		case !inCode && strings.HasPrefix(md[i:], "```"):
			inFence = !inFence
			b.WriteString("```")
			i += 3
			continue
		case !inFence && md[i] == '`':
			inCode = !inCode
			b.WriteByte('`')
			i++
			continue
		case !inFence && !inCode && hasWebScheme(md[i:]):
			j := urlEnd(md, i, "")
			if l.SkipLinkTargets && strings.HasSuffix(md[:i], "](") {
				b.WriteString(md[i:j])
			} else if u := SanitizeURL(md[i:j]); u != "" {
				b.WriteString("<" + u + ">")
			}
			i = j
			continue
		}
		b.WriteByte(md[i])
		i++
	}
	return b.String()
}
