// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// htmlEscaper escapes the characters that are special in HTML text
// and in double- or single-quoted attribute values.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML returns s with & < > " and ' replaced by HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var (
	styleAttr = regexp.MustCompile(`^[a-z-]+:[#A-Za-z0-9(),.% -]+(;[a-z-]+:[#A-Za-z0-9(),.% -]+)*$`)
	colorAttr = regexp.MustCompile(`^[#A-Za-z0-9(),.% -]+$`)
)

// Policy returns a bluemonday policy that admits exactly the
// markup produced by [ToHTML]: tags, attributes, and URL schemes.
// Hosts that pass rendered HTML through further processing can apply
// it for defense in depth. Rendered output is unchanged by the policy
// except for normalization of the markup itself.
//
// The returned policy is shared and must not be modified.
func Policy() *bluemonday.Policy {
	return policy()
}

var policy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"b", "i", "s", "tt", "pre", "br", "hr",
		"h1", "h2", "h3", "h4",
		"ul", "ol", "li",
		"table", "tr", "th", "td",
	)
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("style").Matching(styleAttr).OnElements("span", "pre", "h1", "h2", "h3", "h4", "th", "td")
	p.AllowAttrs("width").Matching(bluemonday.Integer).OnElements("td")
	p.AllowAttrs("bgcolor").Matching(colorAttr).OnElements("td")
	return p
})
