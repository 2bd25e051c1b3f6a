// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sanitizeTests = []struct {
	in   string
	want string
}{
	{"https://example.com/path).", "https://example.com/path"},
	{"<https://example.com/path**.)>", "https://example.com/path"},
	{"https://example.com/", "https://example.com"},
	{"http://example.com/", "http://example.com"},
	{"https://example.com/p/", "https://example.com/p/"},
	{"  https://x.com\t", "https://x.com"},
	{"<https://x.com>", "https://x.com"},
	{"https://x.com/a**", "https://x.com/a"},
	{"https://x.com/a%2A%2a", "https://x.com/a"},
	{"https://x.com/a*/", "https://x.com/a/"},
	{"https://x.com/?q=1!", "https://x.com/?q=1"},
	{"https://x.com/a]},;:", "https://x.com/a"},
	{"ftp://host/", "ftp://host/"},
	{"docs/", "docs/"},
	{"", ""},
	{"   ", ""},
	{"<>", ""},
	{".,;", ""},
	{"**", ""},
}

func TestSanitizeURL(t *testing.T) {
	t.Parallel()

	for _, tt := range sanitizeTests {
		got := SanitizeURL(tt.in)
		assert.Equal(t, tt.want, got, "SanitizeURL(%q)", tt.in)
		assert.Equal(t, got, SanitizeURL(got), "SanitizeURL(SanitizeURL(%q))", tt.in)
	}
}

func TestSanitizeURLIdempotent(t *testing.T) {
	t.Parallel()

	// Each round of cleanup can expose more; one call must reach the end.
	for _, in := range []string{
		"<https://x.com/a.>*",
		"https://x.com/a%2a.%2A",
		"<<https://x.com>>",
		"https://x.com/*/",
		" <https://x.com/ > ",
	} {
		once := SanitizeURL(in)
		assert.Equal(t, once, SanitizeURL(once), "SanitizeURL(%q)", in)
	}
}

func TestSafeScheme(t *testing.T) {
	t.Parallel()

	for _, u := range []string{"https://x.com", "HTTP://x.com", "mailto:a@b.c", "docs/a:b", "#top", "?q=a:b", "page"} {
		assert.True(t, safeScheme(u), "safeScheme(%q)", u)
	}
	for _, u := range []string{"javascript:alert(1)", "JavaScript:x", "data:text/html,x", "vbscript:x", "file:///etc"} {
		assert.False(t, safeScheme(u), "safeScheme(%q)", u)
	}
}

func TestExtractURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"https://a.com and https://b.com and https://a.com.", []string{"https://a.com", "https://b.com"}},
		{"see https://x.com/p<br>and http://y.org/", []string{"https://x.com/p", "http://y.org"}},
		{"(https://x.com/a), https://x.com/a!", []string{"https://x.com/a"}},
		{"no links here", nil},
		{"http:// https://", nil},
		{"httpx://a.com hxxp://b.com", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := ExtractURLs(tt.in)
		assert.Equal(t, tt.want, got, "ExtractURLs(%q)", tt.in)
		for _, u := range got {
			assert.Equal(t, u, SanitizeURL(u))
		}
	}
}

func TestAutoLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"see https://x.com.", "see <https://x.com>"},
		{"a http://x.com/p/ b", "a <http://x.com/p/> b"},
		{"https://x.com/", "<https://x.com>"},
		{"`https://x.com`", "`https://x.com`"},
		{"```\nhttps://x.com\n```\nhttps://y.com", "```\nhttps://x.com\n```\n<https://y.com>"},
		{"[click](https://example.com)", "[click](<https://example.com>"},
		{"no links", "no links"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AutoLink(tt.in), "AutoLink(%q)", tt.in)
	}
}

func TestParseBareURL(t *testing.T) {
	t.Parallel()

	x := parseInline("see https://x.com/. or [a](b)")
	assert.Equal(t, Inlines{
		&Plain{"see "},
		&BareURL{"https://x.com"},
		&Plain{" or "},
		&Link{URL: "b", Label: "a"},
	}, x)
}

func TestAutoLinkerSkipLinkTargets(t *testing.T) {
	t.Parallel()

	l := AutoLinker{SkipLinkTargets: true}
	assert.Equal(t, "[click](https://example.com)", l.Link("[click](https://example.com)"))
	assert.Equal(t, "[a](https://x.com) and <https://y.com>", l.Link("[a](https://x.com) and https://y.com."))
}

func TestRenderLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"[a](docs/page)", `<a href="docs/page">a</a>`},
		{"[a](<https://x.com>)", `<a href="https://x.com">a</a>`},
		{"[a](https://x.com/)", `<a href="https://x.com">a</a>`},
		{"[a](https://x.com/p/).", `<a href="https://x.com/p/">a</a>.`},
		{"[a](https://x.com/**)", `[a](<a href="https://x.com">https://x.com</a>)`},
		{"[a](data:text/html,x)", `[a](data:text/html,x)`},
		{"[a] (https://x.com)", `[a] (<a href="https://x.com">https://x.com</a>`},
		{"[a](https://x.com", `[a](<a href="https://x.com">https://x.com</a>`},
		{"text *** https://x.com.", `text *** <a href="https://x.com">https://x.com</a>`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderInline(tt.in), "RenderInline(%q)", tt.in)
	}
}
