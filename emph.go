// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strings"

// A delim is a kind of emphasis delimiter.
type delim struct {
	mark     string
	boundary bool // cannot open or close inside a word
	wrap     func(Inlines) Inline
}

// delims lists the delimiters in the order they are tried.
// When two kinds occur at the same position, the earlier one wins,
// so *** is taken before ** and *.
var delims = [...]delim{
	{"***", false, strongEmph},
	{"___", true, strongEmph},
	{"**", false, strong},
	{"__", true, strong},
	{"~~", false, del},
	{"*", false, emph},
	{"_", true, emph},
}

func strongEmph(x Inlines) Inline { return &Strong{Inlines{&Emph{x}}} }
func strong(x Inlines) Inline     { return &Strong{x} }
func emph(x Inlines) Inline       { return &Emph{x} }
func del(x Inlines) Inline        { return &Del{x} }

// usable reports whether d occurs as markup at s.text[i:].
// The text being formatted starts at lo; bytes before it do not count
// as neighbors for the word boundary test.
func (d *delim) usable(s span, i, lo int) bool {
	j := i + len(d.mark)
	if j > len(s.text) || s.text[i:j] != d.mark || s.literal(i, j) {
		return false
	}
	if !d.boundary {
		return true
	}
	return i <= lo || j >= len(s.text) || !isWordChar(s.text[i-1]) || !isWordChar(s.text[j])
}

// find returns the index of the first usable occurrence of d
// starting in s.text[i:end], or -1.
func (d *delim) find(s span, i, end, lo int) int {
	end = min(end+len(d.mark)-1, len(s.text))
	for {
		j := s.index(d.mark, i, end)
		if j < 0 || d.usable(s, j, lo) {
			return j
		}
		i = j + 1
	}
}

// A delimScanner finds delimiters in a span, remembering earlier
// results so that each kind scans the span a bounded number of times.
// For each kind k, positions from the cursor up to seen[k] hold no
// usable occurrence other than next[k] (-1 if unknown).
type delimScanner struct {
	s    span
	next [len(delims)]int
	seen [len(delims)]int
}

func newDelimScanner(s span) *delimScanner {
	sc := &delimScanner{s: s}
	for k := range sc.next {
		sc.next[k] = -1
	}
	return sc
}

// first returns the kind and position of the earliest usable
// delimiter in the text starting at pos, or -1, -1.
func (sc *delimScanner) first(pos int) (kind, at int) {
	kind, at = -1, len(sc.s.text)
	for k := range delims {
		d := &delims[k]
		if sc.next[k] < pos {
			sc.next[k] = -1
		}
		cand := -1
		switch {
		case d.usable(sc.s, pos, pos):
			// A delimiter at the start of the text has no left neighbor,
			// so it may be usable even if it was not before.
			cand = pos
		case sc.next[k] > pos:
			cand = sc.next[k]
		default:
			from := max(pos+1, sc.seen[k])
			if from >= at {
				continue
			}
			j := d.find(sc.s, from, at, pos)
			if j < 0 {
				sc.seen[k] = at
				continue
			}
			sc.next[k], sc.seen[k] = j, j+1
			cand = j
		}
		if cand < at {
			kind, at = k, cand
		}
	}
	if kind < 0 {
		return -1, -1
	}
	return kind, at
}

// closer returns the position of the delimiter of the given kind
// closing the one that ends at start, or -1.
func (sc *delimScanner) closer(kind, start int) int {
	j := delims[kind].find(sc.s, start, len(sc.s.text), 0)
	sc.next[kind] = -1
	if j < 0 {
		sc.seen[kind] = len(sc.s.text)
	} else {
		sc.seen[kind] = j + 1
	}
	return j
}

// maxFormatDepth is the deepest nesting of emphasis appendFormat builds.
// Text nested more deeply is left unformatted.
const maxFormatDepth = 32

// appendFormat appends the inlines for s, which contains no code spans.
// The earliest delimiter is paired with the next delimiter of the same
// kind; the text between them is formatted on its own at depth+1.
// A delimiter with no partner is ordinary text.
func appendFormat(out Inlines, s span, depth int) Inlines {
	if depth >= maxFormatDepth {
		return appendText(out, s)
	}
	sc := newDelimScanner(s)
	pos := 0
	for {
		kind, open := sc.first(pos)
		if kind < 0 {
			break
		}
		d := &delims[kind]
		start := open + len(d.mark)
		end := sc.closer(kind, start)
		if end < 0 {
			out = appendText(out, s.slice(pos, start))
			pos = start
			continue
		}
		out = appendText(out, s.slice(pos, open))
		out = append(out, d.wrap(mergePlain(appendFormat(nil, s.slice(start, end), depth+1))))
		pos = end + len(d.mark)
	}
	return appendText(out, s.slice(pos, len(s.text)))
}

// mergePlain merges adjacent Plain inlines in list.
func mergePlain(list Inlines) Inlines {
	out := list[:0]
	for i := 0; i < len(list); {
		x, ok := list[i].(*Plain)
		j := i + 1
		for ok && j < len(list) {
			if _, ok := list[j].(*Plain); !ok {
				break
			}
			j++
		}
		if !ok || j == i+1 {
			out = append(out, list[i])
			i++
			continue
		}
		var b strings.Builder
		b.WriteString(x.Text)
		for _, y := range list[i+1 : j] {
			b.WriteString(y.(*Plain).Text)
		}
		out = append(out, &Plain{b.String()})
		i = j
	}
	return out
}
