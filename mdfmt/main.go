// Copyright 2021 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdfmt reformats chat Markdown for display.
//
// Usage:
//
//	mdfmt [-w] [--hard-breaks] [--autolink] [--debug] [file...]
//
// Mdfmt reads the named files, or else standard input, and prints them
// rewritten by mdlite.NormalizeForDisplay to standard output.
//
// The -w flag specifies to rewrite the files in place.
// The --hard-breaks flag ends text lines with a Markdown hard break.
// The --autolink flag also rewrites bare URLs as <url> autolinks,
// leaving the targets of [label](url) links alone.
package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clawchat/mdlite"
)

type options struct {
	write      bool
	hardBreaks bool
	autolink   bool
	debug      bool
}

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "mdfmt [file...]",
		Short:        "Reformat chat Markdown for display",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.write, "write", "w", false, "write result to (source) file instead of stdout")
	f.BoolVar(&opts.hardBreaks, "hard-breaks", false, "end text lines with a hard break")
	f.BoolVar(&opts.autolink, "autolink", false, "rewrite bare URLs as <url>")
	f.BoolVar(&opts.debug, "debug", false, "log debug output to standard error")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), format(string(data), opts))
		return err
	}

	var failed error
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			slog.Error("read failed", "file", file, "error", err)
			failed = err
			continue
		}
		out := format(string(data), opts)
		if !opts.write {
			if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			continue
		}
		if out == string(data) {
			slog.Debug("unchanged", "file", file)
			continue
		}
		if err := os.WriteFile(file, []byte(out), 0666); err != nil {
			slog.Error("write failed", "file", file, "error", err)
			failed = err
			continue
		}
		slog.Debug("rewrote", "file", file, "bytes", len(out))
	}
	return failed
}

// format returns md normalized for display.
// NormalizeForDisplay ends every line with a newline, so the file's
// own final newline is set aside to keep it from doubling.
func format(md string, opts *options) string {
	final := strings.HasSuffix(md, "\n")
	md = mdlite.NormalizeForDisplay(strings.TrimSuffix(md, "\n"), opts.hardBreaks)
	if final && !strings.HasSuffix(md, "\n") {
		md += "\n"
	}
	if opts.autolink {
		l := mdlite.AutoLinker{SkipLinkTargets: true}
		md = l.Link(md)
	}
	return md
}
