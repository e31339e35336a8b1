// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat ranks the results of one benchmark scenario and
// renders them as a Markdown table and a text bar chart.
package benchstat

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/hwire/parserbench/benchfmt"
)

// A Table is the ranked comparison of the results of one scenario.
type Table struct {
	// Title is the scenario label.
	Title string

	// DataSize is the input size of the scenario in bytes, or 0 if
	// unknown. It is taken from the fastest result.
	DataSize int

	// BaselineNs is the mean of the fastest result and SlowestNs
	// the mean of the slowest.
	BaselineNs, SlowestNs float64

	Rows []*Row
}

// A Row is one result together with the metrics derived from it.
type Row struct {
	*benchfmt.Result

	// ReqPerSec is the number of requests parsed per second.
	ReqPerSec float64

	// DataRateMBps is the parse throughput in MB/s, or 0 if the
	// data size is unknown.
	DataRateMBps float64

	// SlowerPct is how much slower this result is than the
	// baseline, in percent.
	SlowerPct float64

	// Baseline is set for the fastest result.
	Baseline bool
}

// NewTable ranks results from fastest to slowest and derives the
// throughput and relative metrics of each.
//
// NewTable sorts results in place by mean, keeping the input order of
// results with equal means. Results that are not valid sort last and
// get no row.
func NewTable(title string, results []*benchfmt.Result) *Table {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		return a.Valid() && (!b.Valid() || a.MeanNs < b.MeanNs)
	})
	n := 0
	for n < len(results) && results[n].Valid() {
		n++
	}
	results = results[:n]

	t := &Table{Title: title}
	if len(results) == 0 {
		return t
	}

	means := make([]float64, len(results))
	for i, r := range results {
		means[i] = r.MeanNs
	}
	t.BaselineNs = results[0].MeanNs
	_, t.SlowestNs = stats.Bounds(means)
	t.DataSize = results[0].DataSize

	for i, r := range results {
		row := &Row{
			Result:    r,
			ReqPerSec: 1e9 / r.MeanNs,
			SlowerPct: (r.MeanNs - t.BaselineNs) / t.BaselineNs * 100,
			Baseline:  i == 0,
		}
		if t.DataSize > 0 {
			row.DataRateMBps = float64(t.DataSize) * row.ReqPerSec / 1e6
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Label returns the name of the row's parser and variant.
func (r *Row) Label() string {
	return r.Parser + " " + r.VariantDisplay
}

// Annotation returns the row's position relative to the baseline:
// "(baseline)" or, for instance, "(50.0% slower)".
func (r *Row) Annotation() string {
	if r.Baseline {
		return "(baseline)"
	}
	return fmt.Sprintf("(%.1f%% slower)", r.SlowerPct)
}
