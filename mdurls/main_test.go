// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMdurls(t *testing.T) {
	cmd := newCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("https://a.com and https://b.com and https://a.com."))
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "https://a.com\nhttps://b.com\n", out.String())
}

func TestMdurlsFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(a, []byte("see https://x.com/p"), 0o666))
	b := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(b, []byte("and https://x.com/p). or http://y.org/"), 0o666))

	cmd := newCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{a, b})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "https://x.com/p\nhttp://y.org\n", out.String())
}
