// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts chat Markdown to HTML.
//
// Usage:
//
//	md2html [--style file] [--normalize] [--hard-breaks] [--strict] [--debug] [file...]
//
// Md2html reads the named files, or else standard input, as chat messages
// and then prints the corresponding HTML fragments to standard output.
//
// The --style flag names a YAML file of colors (see mdlite.ParseStyle).
// The --normalize flag runs mdlite.NormalizeForDisplay before rendering,
// adding hard breaks if --hard-breaks is also given.
// The --strict flag passes the output through mdlite.Policy.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clawchat/mdlite"
)

type options struct {
	style      string
	normalize  bool
	hardBreaks bool
	strict     bool
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
		Use:          "md2html [file...]",
		Short:        "Convert chat Markdown to HTML",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.style, "style", "", "read colors from YAML `file`")
	f.BoolVar(&opts.normalize, "normalize", false, "normalize dense Markdown before rendering")
	f.BoolVar(&opts.hardBreaks, "hard-breaks", false, "with --normalize, add hard breaks to text lines")
	f.BoolVar(&opts.strict, "strict", false, "sanitize output with the HTML policy")
	f.BoolVar(&opts.debug, "debug", false, "log debug output to standard error")
	return cmd
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	var style mdlite.Style
	if opts.style != "" {
		var err error
		style, err = mdlite.LoadStyle(opts.style)
		if err != nil {
			return err
		}
		slog.Debug("loaded style", "file", opts.style)
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return convert(out, cmd.InOrStdin(), "<stdin>", style, opts)
	}
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		err = convert(out, f, arg, style, opts)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func convert(w io.Writer, r io.Reader, name string, style mdlite.Style, opts *options) error {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	html := toHTML(string(data), style, opts)
	if _, err := io.WriteString(w, html+"\n"); err != nil {
		return err
	}
	slog.Debug("rendered", "file", name, "in", len(data), "out", len(html), "elapsed", time.Since(start))
	return nil
}

// toHTML converts chat Markdown to HTML.
func toHTML(md string, style mdlite.Style, opts *options) string {
	if opts.normalize {
		md = mdlite.NormalizeForDisplay(md, opts.hardBreaks)
	}
	html := mdlite.Render(md, style)
	if opts.strict {
		html = mdlite.Policy().Sanitize(html)
	}
	return html
}
