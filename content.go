// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"encoding/json"
	"strings"
)

// A ContentBlock is one element of a structured chat message body.
// Only blocks of type "text" carry renderable text.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// TextFromContent returns the Markdown text of a chat message body.
// A string is returned as is. A list of content blocks, given as
// []ContentBlock, as decoded JSON ([]any or []map[string]any),
// or as raw JSON, yields the text of its "text" blocks joined by
// newlines. Anything else, including nil, yields "".
func TextFromContent(content any) string {
	switch c := content.(type) {
	case string:
		return c
	case []ContentBlock:
		var parts []string
		for _, b := range c {
			if b.Type == "text" && b.Text != "" {
				parts = append(parts, b.Text)
			}
		}
		return strings.Join(parts, "\n")
	case []map[string]any:
		var parts []string
		for _, m := range c {
			parts = appendBlockText(parts, m)
		}
		return strings.Join(parts, "\n")
	case []any:
		var parts []string
		for _, x := range c {
			switch b := x.(type) {
			case map[string]any:
				parts = appendBlockText(parts, b)
			case ContentBlock:
				if b.Type == "text" && b.Text != "" {
					parts = append(parts, b.Text)
				}
			}
		}
		return strings.Join(parts, "\n")
	case json.RawMessage:
		var v any
		if err := json.Unmarshal(c, &v); err != nil {
			return ""
		}
		return TextFromContent(v)
	}
	return ""
}

func appendBlockText(parts []string, m map[string]any) []string {
	if m["type"] != "text" {
		return parts
	}
	if s, ok := m["text"].(string); ok && s != "" {
		parts = append(parts, s)
	}
	return parts
}
