// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFromContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content any
		want    string
	}{
		{"string", "**hi**", "**hi**"},
		{"nil", nil, ""},
		{"number", 42, ""},
		{"blocks", []ContentBlock{{Type: "text", Text: "a"}, {Type: "image"}, {Type: "text", Text: "b"}}, "a\nb"},
		{"empty blocks", []ContentBlock{}, ""},
		{"maps", []map[string]any{{"type": "text", "text": "z"}, {"type": "tool_use", "text": "no"}}, "z"},
		{"any", []any{
			map[string]any{"type": "text", "text": "x"},
			map[string]any{"type": "text", "text": 7},
			ContentBlock{Type: "text", Text: "y"},
			"stray",
		}, "x\ny"},
		{"raw list", json.RawMessage(`[{"type":"text","text":"hi"},{"type":"image","source":{}},{"type":"text","text":"there"}]`), "hi\nthere"},
		{"raw string", json.RawMessage(`"plain"`), "plain"},
		{"raw invalid", json.RawMessage(`{bad`), ""},
		{"raw object", json.RawMessage(`{"type":"text","text":"x"}`), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextFromContent(tt.content))
		})
	}
}

func TestContentBlockJSON(t *testing.T) {
	t.Parallel()

	var blocks []ContentBlock
	assert.NoError(t, json.Unmarshal([]byte(`[{"type":"text","text":"a"},{"type":"image"}]`), &blocks))
	assert.Equal(t, "a", TextFromContent(blocks))
}
