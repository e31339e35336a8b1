// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Parserbench turns HTTP parser benchmark output into a Markdown
// report.
//
// Usage:
//
//	parserbench [flags] [file ...]
//
// Each input is either the console output of one or more Catch2
// benchmark binaries, or a JSONL file with one run per line as
// written by catch2json. By default the format of each file is chosen
// by its extension: ".jsonl" and ".json" files are runs, everything
// else is console output. The -format flag overrides this for every
// input.
//
// Console output is read from a single file, or from standard input if
// no file (or "-") is given. It is an error for such a file to be
// missing. Run files may be given in any number; missing ones are
// skipped with a warning.
//
// The report groups results by category and scenario. For each
// scenario it shows a table of every parser and variant, fastest
// first, and a text bar chart relative to the slowest. The -png flag
// additionally writes each bar chart as a PNG image to the given
// directory.
//
// Categories and their scenarios are described by a YAML taxonomy.
// The built-in one can be replaced with -taxonomy.
//
// Lines that cannot be parsed are reported as warnings and otherwise
// ignored. Results without a positive, finite mean are left out of
// the report, and their number is reported as a warning. If no valid
// results remain, parserbench writes a short report saying so and
// still succeeds.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/hwire/parserbench/benchfmt"
	"github.com/hwire/parserbench/benchproc"
	"github.com/hwire/parserbench/benchseries"
	"github.com/hwire/parserbench/benchstat"
	"github.com/hwire/parserbench/internal/sysinfo"
	"github.com/hwire/parserbench/report"
)

// systemInfo describes the host in the report. It is replaced during
// testing.
var systemInfo = sysinfo.Collect

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

func usage(w io.Writer, flags *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(w, "usage: parserbench [flags] [file ...]\n")
		fmt.Fprintf(w, "flags:\n")
		flags.PrintDefaults()
	}
}

// run runs parserbench with command line args and returns the exit
// status.
func run(stdout, stderr io.Writer, args []string) int {
	logger := log.New(stderr, "parserbench: ", 0)

	flags := flag.NewFlagSet("parserbench", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = usage(stderr, flags)
	flagFormat := flags.String("format", "auto", "input `format`: text, jsonl, or auto to choose by file extension")
	flagTaxonomy := flags.String("taxonomy", "", "read the category taxonomy from YAML `file`")
	flagOut := flags.String("o", "", "write the report to `file` instead of standard output")
	flagPNG := flags.String("png", "", "also write a PNG bar chart of each scenario to `dir`")
	flagBarWidth := flags.Int("bar-width", benchstat.DefaultBarWidth, "width of the slowest bar in text charts")
	flagSort := flags.String("sort", "mean", "sort rows by `order`: [-]mean, [-]name")
	flagBuildFlags := flags.String("build-flags", "", "compiler `flags` to list under system information")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	usageError := func(format string, a ...any) int {
		fmt.Fprintf(stderr, "parserbench: "+format+"\n", a...)
		flags.Usage()
		return 2
	}
	format, err := benchfmt.ParseFormat(*flagFormat)
	if err != nil {
		return usageError("%s", err)
	}
	order, err := benchstat.ParseSort(*flagSort)
	if err != nil {
		return usageError("%s", err)
	}
	if *flagBarWidth <= 0 {
		return usageError("bar width must be positive")
	}

	// Any run input selects multi-file mode. Otherwise there is
	// a single console input.
	paths := flags.Args()
	multi := false
	for _, path := range paths {
		if benchfmt.FormatOf(path, format) == benchfmt.FormatRun {
			multi = true
		}
	}
	if !multi && len(paths) > 1 {
		return usageError("console input takes at most one file")
	}

	tax := benchproc.DefaultTaxonomy()
	if *flagTaxonomy != "" {
		tax, err = benchproc.LoadTaxonomy(*flagTaxonomy)
		if err != nil {
			logger.Print(err)
			return 1
		}
	}

	files := benchfmt.Files{
		Paths:        paths,
		Format:       format,
		AllowStdin:   true,
		AllowMissing: multi,
		Warn: func(err error) {
			var pathErr *fs.PathError
			if errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr) {
				logger.Printf("warning: file not found: %s", pathErr.Path)
				return
			}
			logger.Printf("warning: %v", err)
		},
	}
	var groups benchproc.Groups
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *benchfmt.Result:
			tax.Classify(rec)
			groups.Add(rec)
		case *benchfmt.SyntaxError:
			// Non-fatal result parse error.
			logger.Printf("warning: %v", rec)
		}
	}
	if err := files.Err(); err != nil {
		logger.Print(err)
		return 1
	}
	if n := files.Orphans(); n > 0 {
		logger.Printf("warning: %d summary line(s) before the first benchmark run were ignored", n)
	}
	if n := groups.Excluded(); n > 0 {
		logger.Printf("warning: %d result(s) excluded: non-positive or non-finite mean", n)
	}

	var info sysinfo.Info
	if groups.Len() > 0 {
		info = systemInfo(context.Background())
		if *flagBuildFlags != "" {
			info = append(info, sysinfo.Pair{Key: "Build Flags", Value: *flagBuildFlags})
		}
	}
	opts := &report.Options{
		BarWidth: *flagBarWidth,
		Sort:     order,
	}
	if *flagPNG != "" {
		dir := *flagPNG
		opts.Chart = func(category string, t *benchstat.Table) error {
			_, err := benchseries.WriteFile(dir, category+"_"+t.Title, t)
			return err
		}
	}

	var buf bytes.Buffer
	if err := report.Generate(&buf, &groups, tax, info, opts); err != nil {
		logger.Print(err)
		return 1
	}
	if *flagOut != "" {
		if err := os.WriteFile(*flagOut, buf.Bytes(), 0666); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	}
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}
