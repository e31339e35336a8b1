// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report assembles the Markdown benchmark report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hwire/parserbench/benchfmt"
	"github.com/hwire/parserbench/benchproc"
	"github.com/hwire/parserbench/benchstat"
	"github.com/hwire/parserbench/internal/sysinfo"
	"github.com/hwire/parserbench/internal/texttab"
)

// Title is the top-level heading of every report.
const Title = "HTTP Parser Benchmark Results"

// Options control report generation.
type Options struct {
	// BarWidth is the length of the slowest bar in each chart.
	// If 0, benchstat.DefaultBarWidth is used.
	BarWidth int

	// Sort, if non-nil, orders the rows of each table. The
	// default is fastest first.
	Sort benchstat.SortFunc

	// Generator names the tool in the report footer.
	// If empty, "parserbench" is used.
	Generator string

	// Chart, if non-nil, is called with the table of every
	// scenario in report order, for instance to draw it as an
	// image. An error stops the report.
	Chart func(category string, t *benchstat.Table) error
}

// Generate writes the report of groups to w.
//
// Categories appear in taxonomy order followed by categories the
// taxonomy does not know, in the order they were first seen. The same
// holds for the scenarios within each category. info describes the
// host and may be nil.
//
// If groups holds no results, Generate writes the same document as
// NoResults.
func Generate(w io.Writer, groups *benchproc.Groups, tax *benchproc.Taxonomy, info sysinfo.Info, opts *Options) error {
	if groups.Len() == 0 {
		return NoResults(w)
	}
	if opts == nil {
		opts = new(Options)
	}
	generator := opts.Generator
	if generator == "" {
		generator = "parserbench"
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s\n\n", Title)

	if len(info) > 0 {
		buf.WriteString("## System Information\n\n")
		var tab texttab.Table
		tab.Row().Cell("Item").Cell("Value")
		for _, p := range info {
			tab.Row().Cell(p.Key).Cell(p.Value)
		}
		if err := tab.Format(&buf); err != nil {
			return err
		}
		buf.WriteString("\n---\n\n")
	}

	cats := groups.Categories()
	tax.SortCategories(cats)
	for _, cat := range cats {
		if err := writeCategory(&buf, groups, tax, cat, opts); err != nil {
			return err
		}
		buf.WriteString("---\n\n")
	}

	if n := groups.Excluded(); n > 0 {
		fmt.Fprintf(&buf, "_%d result(s) excluded: non-positive or non-finite mean_\n\n", n)
	}
	fmt.Fprintf(&buf, "_Generated by %s_\n", generator)

	_, err := io.WriteString(w, buf.String())
	return err
}

func writeCategory(buf *strings.Builder, groups *benchproc.Groups, tax *benchproc.Taxonomy, cat string, opts *Options) error {
	scenarios := groups.Scenarios(cat)
	tax.SortScenarios(cat, scenarios)

	var quote []string
	if c, ok := tax.Category(cat); ok {
		if c.Description != "" {
			quote = append(quote, c.Description)
		}
		if c.Control != "" {
			quote = append(quote, "**Control:** "+c.Control)
		}
	}
	quote = append(quote, optionNotes(groups, tax, cat, scenarios)...)

	fmt.Fprintf(buf, "## %s\n\n", tax.DisplayName(cat))
	if len(quote) > 0 {
		for _, line := range quote {
			fmt.Fprintf(buf, "> %s\n", line)
		}
		buf.WriteString("\n")
	}

	for _, scn := range scenarios {
		// NewTable sorts in place; leave the groups alone.
		results := append([]*benchfmt.Result(nil), groups.Results(cat, scn)...)
		title := scn
		if label := results[0].ScenarioLabel; label != "" {
			title = label
		}
		t := benchstat.NewTable(title, results)
		if opts.Sort != nil {
			benchstat.SortTable(t, opts.Sort)
		}

		if err := benchstat.FormatMarkdown(buf, t); err != nil {
			return err
		}
		buf.WriteString("\n**Comparison** (lower is better):\n```\n")
		if err := benchstat.FormatBarChart(buf, t, opts.BarWidth); err != nil {
			return err
		}
		buf.WriteString("```\n\n")

		if opts.Chart != nil {
			if err := opts.Chart(cat, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// optionNotes returns the taxonomy notes for the option tags used by
// the results of category cat, in order of first use.
func optionNotes(groups *benchproc.Groups, tax *benchproc.Taxonomy, cat string, scenarios []string) []string {
	var notes []string
	seen := make(map[string]bool)
	for _, scn := range scenarios {
		for _, r := range groups.Results(cat, scn) {
			for _, tag := range r.Options {
				note, ok := tax.Notes[tag]
				if !ok || seen[tag] {
					continue
				}
				seen[tag] = true
				notes = append(notes, note)
			}
		}
	}
	return notes
}

// NoResults writes the report for an input without any results.
func NoResults(w io.Writer) error {
	_, err := fmt.Fprintf(w, "# %s\n\n_No benchmark results found_\n", Title)
	return err
}
