// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdlite renders the small Markdown dialect used in chat
// messages as an HTML fragment for a rich-text label.
//
// The dialect is line oriented. Each input line is one of:
// a ``` fence line, a blank line, a horizontal rule (---),
// a heading (# through ####), a list item (-, *, or 1.),
// a quote line (>), a table row (| a | b |), or regular text.
// Lines of regular text are separated by <br/>, not joined into
// paragraphs. Inline markup covers `code`, **bold**, *italic*,
// ***both***, ~~strikethrough~~, [label](url) links, and bare
// http and https URLs. A backslash before one of `*[]()_~#-> makes
// that character literal.
//
// All text is HTML-escaped, and every link target is cleaned with
// [SanitizeURL]. The output uses a small fixed set of tags, described
// by [Policy]. Colors come from a [Style]; the zero Style produces
// unstyled markup.
//
// [Render] is the main entry point. [Parse] and [ToHTML] expose the
// syntax tree in between. [NormalizeForDisplay] and [AutoLink] are
// Markdown-to-Markdown rewrites meant to run before rendering, and
// [ExtractURLs] lists the links in a message.
//
// All functions are safe for concurrent use.
package mdlite
