// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isWordChar reports whether c is an ASCII letter, digit, or underscore.
// Underscore-style delimiters only match at a boundary between a word
// character and something else.
func isWordChar(c byte) bool {
	return isLetterDigit(c) || c == '_'
}

// isIdentStart reports whether c can begin a highlighted identifier.
func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_'
}

// isEscapable reports whether a backslash before c escapes it.
func isEscapable(c byte) bool {
	return strings.IndexByte("`*[]()_~#->", c) >= 0
}

// isSpaceTab reports whether c is a space or tab.
func isSpaceTab(c byte) bool {
	return c == ' ' || c == '\t'
}

// isSepSpace reports whether r can surround the hyphen of a one-line list.
func isSepSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\u00a0'
}

// hasSpacePrefix reports whether s begins with a Unicode space,
// returning its width in bytes.
func hasSpacePrefix(s string) (int, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsSpace(r) {
		return 0, false
	}
	return size, true
}

// trimLeftSpace removes leading Unicode white space from s.
func trimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// trimRightSpaceTab removes trailing spaces and tabs from s.
func trimRightSpaceTab(s string) string {
	i := len(s)
	for i > 0 && isSpaceTab(s[i-1]) {
		i--
	}
	return s[:i]
}

// normalizeNewlines rewrites \r\n and lone \r as \n.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
