// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads HTTP-parser benchmark output and normalizes
// it into a single result model.
//
// Two input formats are supported. The console format is the
// line-oriented text a Catch2 benchmark binary prints to its
// terminal, optionally interleaved with DATA_SIZE declarations; it is
// read by Reader. The run format is one JSON object per line, one
// line per benchmark binary run, as produced from the Catch2 XML
// reporter by DecodeCatch2 and Writer; it is read by RunReader.
//
// Both readers are structured as streaming operations modeled on
// bufio.Scanner and produce the same Records: a *Result for each
// measurement and a *SyntaxError for each malformed line. Syntax
// errors are never fatal. Files reads a sequence of inputs of either
// format.
package benchfmt

import "math"

// A Result is a single normalized benchmark measurement: one parser
// variant timed on one scenario.
//
// All timings are in nanoseconds. They are taken as given from the
// benchmark harness; in particular LowMeanNs <= MeanNs <= HighMeanNs
// is expected but not checked.
type Result struct {
	// Category identifies the benchmark family (e.g., "hdr" or
	// "Header Count"). Readers of the console format leave this
	// empty; it is filled in by classification.
	Category string

	// Scenario is the grouping key of this result within its
	// category, such as "hdr_28" or "8 Headers, 433 B".
	Scenario string

	// ScenarioLabel is the human-readable description of Scenario.
	ScenarioLabel string

	// Parser is the parser implementation that was measured.
	Parser string

	// Variant is the raw variant token from the run identifier,
	// such as "sse42", and VariantDisplay its display form,
	// possibly followed by option tags, such as "SSE4.2 (LC)".
	Variant        string
	VariantDisplay string

	// Options are the option tags of a run-format benchmark name,
	// such as "LC" in "8 Headers, 433 B, LC". It is nil if there are
	// none.
	Options []string

	// Samples and Iters are the sample and iteration counts
	// reported by the harness. They are zero when the input
	// format does not carry them.
	Samples, Iters int

	MeanNs     float64
	LowMeanNs  float64
	HighMeanNs float64
	StdDevNs   float64

	// DataSize is the size in bytes of the input the scenario
	// parses, or 0 if unknown.
	DataSize int

	// fileName and line record where this Record was read from.
	fileName string
	line     int
}

// Pos returns the file name and line number of a Result that was read
// by a Reader or RunReader. For Results that were not read from a
// file, it returns "", 0.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Valid reports whether r can take part in ranking: it names a parser
// and has a finite, positive mean.
func (r *Result) Valid() bool {
	return r.Parser != "" && r.MeanNs > 0 && !math.IsInf(r.MeanNs, 0) && !math.IsNaN(r.MeanNs)
}

// Clone makes a copy of Result that shares no state with r.
func (r *Result) Clone() *Result {
	r2 := *r
	if r.Options != nil {
		r2.Options = append([]string(nil), r.Options...)
	}
	return &r2
}
