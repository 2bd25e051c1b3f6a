// Copyright 2026 The mdlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdurls lists the links in chat messages.
//
// Usage:
//
//	mdurls [file...]
//
// Mdurls reads the named files, or else standard input, and prints each
// distinct http or https URL they contain, one per line, in order of first
// appearance. URLs are cleaned with mdlite.SanitizeURL.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clawchat/mdlite"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "mdurls [file...]",
		Short:        "List the URLs in chat messages",
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	var text []byte
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		text = data
	}
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		text = append(text, data...)
		text = append(text, '\n')
	}
	for _, u := range mdlite.ExtractURLs(string(text)) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), u); err != nil {
			return err
		}
	}
	return nil
}
