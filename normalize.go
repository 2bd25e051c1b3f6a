// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"regexp"
	"strings"
)

var (
	boldLabelRE   = regexp.MustCompile(`\*\*([^*\n]{1,120}):\*\*\s*`)
	labelRE       = regexp.MustCompile(`^\s*([A-Z][^:\n]{1,80}):\s*`)
	labelItemRE   = regexp.MustCompile(`^(\d{1,2}\.|-\s)`)
	numberedRE    = regexp.MustCompile(`([^\n])\s+(\d{1,2})\.\s+`)
	bulletRE      = regexp.MustCompile(`(^|\s)-\s+`)
	inlineDashRE  = regexp.MustCompile(`([^\n])\s+-\s+`)
	blankRunRE    = regexp.MustCompile(`\n{3,}`)
	listOrdinalRE = regexp.MustCompile(`^\d+\.\s`)
)

// NormalizeForDisplay rewrites dense Markdown, as often written by
// chat agents, into one block per line so that it renders well.
// Outside ``` fences it moves bold labels ("**Steps:**") and labels
// introducing a list ("Options: 1. ...") onto their own paragraphs,
// starts a new line before each inline numbered item ("1. a 2. b"),
// and splits run-on hyphen lists ("a - b - c") into items.
// Fenced code is left untouched.
//
// If forceHardBreaks is set, every line that is not a list item,
// quote, or heading gets a trailing two-space hard break.
//
// Every line outside a fence ends in a newline; in particular,
// NormalizeForDisplay("", false) is "\n".
func NormalizeForDisplay(md string, forceHardBreaks bool) string {
	lines := strings.Split(normalizeNewlines(md), "\n")
	var b strings.Builder
	inFence := false
	for i, s := range lines {
		if isFence(trimLeftSpace(s)) || inFence {
			if isFence(trimLeftSpace(s)) {
				inFence = !inFence
			}
			b.WriteString(s)
			if i < len(lines)-1 {
				b.WriteByte('\n')
			}
			continue
		}
		for _, e := range expandLine(s) {
			if e == "" {
				b.WriteByte('\n')
				continue
			}
			for _, l := range SplitHyphenList(e) {
				b.WriteString(l)
				if forceHardBreaks && !isListLike(l) {
					b.WriteString("  ")
				}
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

// expandLine breaks the structure packed into a single line
// onto separate lines.
func expandLine(s string) []string {
	s = boldLabelRE.ReplaceAllString(s, "\n\n**$1:**\n")
	s = breakBeforeLabels(s)
	s = numberedRE.ReplaceAllString(s, "$1\n$2. ")
	if len(bulletRE.FindAllStringIndex(s, -1)) >= 2 {
		s = inlineDashRE.ReplaceAllString(s, "$1\n- ")
	}
	s = blankRunRE.ReplaceAllString(s, "\n\n")
	return strings.Split(s, "\n")
}

// breakBeforeLabels starts a new paragraph at each capitalized label
// ending in a colon that opens a sentence and is directly followed by
// a list item, as in "Done. Next steps: 1. test".
func breakBeforeLabels(s string) string {
	var b strings.Builder
	last := 0
	for i := 0; i <= len(s); {
		n, label, end, ok := labelAt(s, i)
		if !ok {
			i++
			continue
		}
		b.WriteString(s[last:i])
		b.WriteString(s[i : i+n])
		b.WriteString("\n\n")
		b.WriteString(label)
		b.WriteString(":\n")
		last, i = end, end
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// labelAt reports whether a list label starts at s[i], either at the
// start of s or after the sentence-ending punctuation s[i].
// It returns the length of the punctuation, the label, and the end
// of the label including the white space after its colon.
func labelAt(s string, i int) (n int, label string, end int, ok bool) {
	try := func(n int) (string, int, bool) {
		rest := s[i+n:]
		m := labelRE.FindStringSubmatchIndex(rest)
		if m == nil || !labelItemRE.MatchString(rest[m[1]:]) {
			return "", 0, false
		}
		return rest[m[2]:m[3]], i + n + m[1], true
	}
	if i == 0 {
		if label, end, ok := try(0); ok {
			return 0, label, end, true
		}
	}
	if i < len(s) && strings.IndexByte(".!?", s[i]) >= 0 {
		if label, end, ok := try(1); ok {
			return 1, label, end, true
		}
	}
	return 0, "", 0, false
}

// isListLike reports whether line renders as a list item, quote,
// or heading, which take no hard break.
func isListLike(line string) bool {
	t := trimLeftSpace(line)
	return strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "* ") ||
		listOrdinalRE.MatchString(t) ||
		strings.HasPrefix(t, ">") || strings.HasPrefix(t, "#")
}
