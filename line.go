// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import "strings"

// A line is a single input line, without its newline.
type line struct {
	text    string // line as written
	trimmed string // text without surrounding white space
	split   bool   // regular text may be split into a one-line list
}

func makeLine(text string) line {
	return line{text: text, trimmed: strings.TrimSpace(text), split: true}
}

func (s line) isBlank() bool {
	return s.trimmed == ""
}

// indent returns the width of the leading white space in s,
// counting a tab as four columns.
func (s line) indent() int {
	n := 0
	for i := 0; i < len(s.text); i++ {
		switch s.text[i] {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}

// trimBullet returns the body of an unordered list item: - or *
// followed by white space.
func trimBullet(t string) (string, bool) {
	if len(t) < 2 || t[0] != '-' && t[0] != '*' {
		return "", false
	}
	if _, ok := hasSpacePrefix(t[1:]); !ok {
		return "", false
	}
	return trimLeftSpace(t[1:]), true
}

// trimOrdinal returns the body of an ordered list item: digits,
// a period, and white space.
func trimOrdinal(t string) (string, bool) {
	i := 0
	for i < len(t) && isDigit(t[i]) {
		i++
	}
	if i == 0 || i >= len(t) || t[i] != '.' {
		return "", false
	}
	if _, ok := hasSpacePrefix(t[i+1:]); !ok {
		return "", false
	}
	return trimLeftSpace(t[i+1:]), true
}

// trimQuote returns the body of a block quote line: > and at most
// one white space character.
func trimQuote(t string) (string, bool) {
	if t == "" || t[0] != '>' {
		return "", false
	}
	t = t[1:]
	if n, ok := hasSpacePrefix(t); ok {
		t = t[n:]
	}
	return t, true
}

// trimHeading returns the level and text of a heading: one to four
// # followed by white space.
func trimHeading(t string) (int, string, bool) {
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	if n == 0 || n > 4 {
		return 0, "", false
	}
	if _, ok := hasSpacePrefix(t[n:]); !ok {
		return 0, "", false
	}
	return n, trimLeftSpace(t[n:]), true
}

// isThematicBreak reports whether t is three or more of the same
// -, *, or _ character and nothing else.
func isThematicBreak(t string) bool {
	if len(t) < 3 || t[0] != '-' && t[0] != '*' && t[0] != '_' {
		return false
	}
	for i := 1; i < len(t); i++ {
		if t[i] != t[0] {
			return false
		}
	}
	return true
}

// isFence reports whether t opens or closes a fenced code block.
func isFence(t string) bool {
	return strings.HasPrefix(t, "```")
}
