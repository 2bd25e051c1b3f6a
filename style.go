// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Style holds the colors used when rendering.
// Each field is a CSS color value; an empty field leaves the
// corresponding markup unstyled. The zero Style renders plain HTML.
type Style struct {
	CodeBG           string `yaml:"code_bg" json:"code_bg,omitempty"`                       // inline code background
	CodeFG           string `yaml:"code_fg" json:"code_fg,omitempty"`                       // inline code text
	CodeBlockBG      string `yaml:"code_block_bg" json:"code_block_bg,omitempty"`           // fenced block background
	KeywordColor     string `yaml:"code_keyword_color" json:"code_keyword_color,omitempty"` // highlighted keywords
	StringColor      string `yaml:"code_string_color" json:"code_string_color,omitempty"`   // highlighted string literals
	CommentColor     string `yaml:"code_comment_color" json:"code_comment_color,omitempty"` // highlighted comments
	HeadingColor     string `yaml:"heading_color" json:"heading_color,omitempty"`
	BlockquoteBorder string `yaml:"blockquote_border" json:"blockquote_border,omitempty"` // quote bar
	BlockquoteFG     string `yaml:"blockquote_fg" json:"blockquote_fg,omitempty"`         // quote text
	TableBorder      string `yaml:"table_border" json:"table_border,omitempty"`
}

// ErrBadColor is reported by [ParseStyle] for a color value
// containing characters that cannot appear in a CSS color.
var ErrBadColor = errors.New("invalid color value")

// highlights reports whether s colors any part of a code block.
func (s Style) highlights() bool {
	return s.KeywordColor != "" || s.StringColor != "" || s.CommentColor != ""
}

type styleField struct {
	key   string
	value *string
}

func (s *Style) fields() []styleField {
	return []styleField{
		{"code_bg", &s.CodeBG},
		{"code_fg", &s.CodeFG},
		{"code_block_bg", &s.CodeBlockBG},
		{"code_keyword_color", &s.KeywordColor},
		{"code_string_color", &s.StringColor},
		{"code_comment_color", &s.CommentColor},
		{"heading_color", &s.HeadingColor},
		{"blockquote_border", &s.BlockquoteBorder},
		{"blockquote_fg", &s.BlockquoteFG},
		{"table_border", &s.TableBorder},
	}
}

// ParseStyle parses a YAML style document such as
//
//	code_bg: "#f0f0f0"
//	heading_color: navy
//
// Keys are the yaml tags of [Style]; unknown keys are an error.
// Values are trimmed and lower-cased.
func ParseStyle(data []byte) (Style, error) {
	var s Style
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.Strict()); err != nil {
		return Style{}, fmt.Errorf("parsing style: %w", err)
	}
	if err := s.clean(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// LoadStyle reads and parses the style file at path.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style: %w", err)
	}
	s, err := ParseStyle(data)
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// clean trims and lower-cases every value in s, rejecting values
// that are not plausible CSS colors.
func (s *Style) clean() error {
	lower := cases.Lower(language.Und)
	for _, f := range s.fields() {
		v := strings.TrimSpace(*f.value)
		if !isColor(v) {
			return fmt.Errorf("style %s %q: %w", f.key, v, ErrBadColor)
		}
		*f.value = lower.String(v)
	}
	return nil
}

// isColor reports whether v consists only of characters found in
// CSS color syntax: names, hex, and rgb()/hsl() forms.
// The empty string is allowed and means no color.
func isColor(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if !isLetterDigit(c) && strings.IndexByte("#(),.% -", c) < 0 {
			return false
		}
	}
	return true
}
