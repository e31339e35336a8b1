// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hwire/parserbench/benchunit"
	"github.com/hwire/parserbench/internal/texttab"
)

// FormatMarkdown writes t as a Markdown section: a heading, the data
// size if known, and a table with one row per result.
func FormatMarkdown(w io.Writer, t *Table) error {
	var buf strings.Builder
	fmt.Fprintf(&buf, "### %s\n\n", t.Title)
	if t.DataSize > 0 {
		fmt.Fprintf(&buf, "Data Size: %s\n\n", benchunit.FormatByteSize(t.DataSize))
	}

	var tab texttab.Table
	tab.Row().
		Cell("Parser").
		Cell("Variant").
		Cell("Mean", texttab.Right).
		Cell("Std Dev", texttab.Right).
		Cell("95% CI").
		Cell("Req/sec", texttab.Right).
		Cell("MB/sec", texttab.Right)
	for _, row := range t.Rows {
		rate := "-"
		if t.DataSize > 0 {
			rate = fmt.Sprintf("%.2f", row.DataRateMBps)
		}
		tab.Row().
			Cell(row.Parser).
			Cell(row.VariantDisplay).
			Cell(benchunit.FormatDuration(row.MeanNs)).
			Cell(benchunit.FormatDuration(row.StdDevNs)).
			Cell(benchunit.FormatDuration(row.LowMeanNs) + " - " + benchunit.FormatDuration(row.HighMeanNs)).
			Cell(benchunit.FormatRate(row.ReqPerSec)).
			Cell(rate)
	}
	if err := tab.Format(&buf); err != nil {
		return err
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// DefaultBarWidth is the length of the bar of the slowest result.
const DefaultBarWidth = 30

// minLabelWidth is the narrowest the label column of a bar chart gets.
const minLabelWidth = 16

// FormatBarChart writes t as a text bar chart, one line per row. Bar
// lengths are proportional to mean time, with the slowest result's
// bar maxWidth runes long. If maxWidth <= 0, DefaultBarWidth is used.
func FormatBarChart(w io.Writer, t *Table, maxWidth int) error {
	if maxWidth <= 0 {
		maxWidth = DefaultBarWidth
	}
	labelWidth := minLabelWidth
	for _, row := range t.Rows {
		labelWidth = max(labelWidth, utf8.RuneCountInString(row.Label()))
	}

	var buf strings.Builder
	for _, row := range t.Rows {
		label := row.Label()
		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(label))
		bar := strings.Repeat("█", barLength(row.MeanNs, t.SlowestNs, maxWidth))
		fmt.Fprintf(&buf, "%s%s %s %s %s\n", label, pad, bar, benchunit.FormatDurationShort(row.MeanNs), row.Annotation())
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func barLength(mean, slowest float64, maxWidth int) int {
	if slowest <= 0 {
		return 0
	}
	return int(math.Round(mean / slowest * float64(maxWidth)))
}
