// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlite

import (
	"slices"
	"testing"
)

var tableDelimTests = []struct {
	row string
	ok  bool
}{
	{"|---|", true},
	{"|---|---|", true},
	{"|:--|--:|:-:|", true},
	{"| - |", true},
	{"|\t-\t|", true},
	{"|   |", false},
	{"||", false},
	{"|a-|", false},
	{"|-=-|", false},
}

func TestIsTableDelim(t *testing.T) {
	for _, tt := range tableDelimTests {
		if ok := isTableDelim(tt.row); ok != tt.ok {
			t.Errorf("isTableDelim(%#q) = %v, want %v", tt.row, ok, tt.ok)
		}
	}
}

var tableCellTests = []struct {
	row   string
	cells []string
}{
	{"||", []string{""}},
	{"| |", []string{""}},
	{"|x|", []string{"x"}},
	{"| a | b |", []string{"a", "b"}},
	{"|          | Foo      | Bar      |", []string{"", "Foo", "Bar"}},
	{"|a|b|c|", []string{"a", "b", "c"}},
	{"| **x** | `y|` |", []string{"<b>x</b>", "`y", "`"}},
	{`| a \| b |`, []string{`a \`, "b"}},
	{"| <i> | & |", []string{"&lt;i&gt;", "&amp;"}},
}

func TestTableCells(t *testing.T) {
	p := &parser{doc: new(Document), lineno: 1}
	for _, tt := range tableCellTests {
		var cells []string
		for _, c := range tableCells(p, tt.row) {
			cells = append(cells, ToHTML(c, Style{}))
		}
		if !slices.Equal(cells, tt.cells) {
			t.Errorf("tableCells(%#q) = %q, want %q", tt.row, cells, tt.cells)
		}
	}
}

func TestTableStyle(t *testing.T) {
	doc := Parse("| H |\n|---|\n| v |")
	want := `<table><tr><th style="border:1px solid red;padding:2px 6px">H</th></tr>` +
		`<tr><td style="border:1px solid red;padding:2px 6px">v</td></tr></table>`
	if out := ToHTML(doc, Style{TableBorder: "red"}); out != want {
		t.Errorf("ToHTML:\nhave %q\nwant %q", out, want)
	}
}
