// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// A Run is the structured record of one benchmark binary run. The run
// format stores one Run per line as JSON.
type Run struct {
	// RunName is the benchmark binary name, such as
	// "bench_hwire_sse42". See DecomposeRunID.
	RunName   string     `json:"runName"`
	TestCases []TestCase `json:"testCases"`
}

// A TestCase groups the benchmarks of one scenario family. Its Name
// is "<Category>" or "<Category>, <ScenarioLabel>".
type TestCase struct {
	Name       string      `json:"name"`
	Benchmarks []Benchmark `json:"benchmarks"`
}

// A Benchmark is one timed benchmark within a TestCase. Its Name is a
// comma-separated list holding a size token such as "433 B", optionally
// preceded by scenario label parts and followed by option tags:
// "433 B", "433 B, LC", or "8 Headers, 433 B, LC".
type Benchmark struct {
	Name       string  `json:"name"`
	MeanNs     float64 `json:"meanNs"`
	LowMeanNs  float64 `json:"lowMeanNs"`
	HighMeanNs float64 `json:"highMeanNs"`
	StdDevNs   float64 `json:"stdDevNs"`
}

// A RunReader reads the run format: one JSON-encoded Run per line.
// Each Run expands into one Result per Benchmark.
//
// Its API matches Reader. Lines that are not valid JSON, or that
// lack a runName or testCases, produce a *SyntaxError.
type RunReader struct {
	s   *bufio.Scanner
	err error

	q    []Record
	qPos int

	fileName string
	line     int
}

// NewRunReader constructs a reader to parse the run format from r.
// fileName is used in error messages; it is purely diagnostic.
func NewRunReader(r io.Reader, fileName string) *RunReader {
	reader := new(RunReader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *RunReader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLineLen)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.qPos = 0
	r.q = r.q[:0]
	r.fileName = fileName
	r.line = 0
}

// Scan advances the reader to the next record and reports whether
// one was read. See Reader.Scan.
func (r *RunReader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.qPos+1 < len(r.q) {
		r.qPos++
		return true
	}
	r.qPos = 0
	r.q = r.q[:0]

	for len(r.q) == 0 && r.s.Scan() {
		r.line++
		line := bytes.TrimSpace(r.s.Bytes())
		if len(line) == 0 {
			continue
		}
		run, err := DecodeRun(line)
		if err != nil {
			r.q = append(r.q, r.newSyntaxError(err.Error()))
			continue
		}
		for _, res := range run.results() {
			res.fileName, res.line = r.fileName, r.line
			r.q = append(r.q, res)
		}
	}
	if len(r.q) > 0 {
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Result returns the record that was just read by Scan. This is either
// a *Result or a *SyntaxError.
func (r *RunReader) Result() Record {
	if r.qPos >= len(r.q) {
		return noResult
	}
	return r.q[r.qPos]
}

// Err returns the first non-EOF I/O error that was encountered by the
// RunReader.
func (r *RunReader) Err() error {
	return r.err
}

func (r *RunReader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// DecodeRun decodes a single line of the run format.
func DecodeRun(data []byte) (*Run, error) {
	run := new(Run)
	if err := json.Unmarshal(data, run); err != nil {
		return nil, fmt.Errorf("parsing run: %w", err)
	}
	if run.RunName == "" {
		return nil, fmt.Errorf("run missing runName")
	}
	if run.TestCases == nil {
		return nil, fmt.Errorf("run %s missing testCases", run.RunName)
	}
	return run, nil
}

var sizeRe = regexp.MustCompile(`^(\d+)\s*B$`)

// results expands run into one Result per benchmark.
func (run *Run) results() []*Result {
	id := DecomposeRunID(run.RunName)
	display := VariantDisplayName(id.Variant)

	var out []*Result
	for _, tc := range run.TestCases {
		category, label, _ := strings.Cut(tc.Name, ", ")
		if category == "" {
			category = "Unknown"
		}
		for _, bm := range tc.Benchmarks {
			scnLabel, sizeTok, size, opts := splitBenchmarkName(label, bm.Name)

			variantDisplay := display
			var options []string
			if len(opts) > 0 {
				options = opts
				variantDisplay = fmt.Sprintf("%s (%s)", display, strings.Join(opts, ", "))
			}
			scenario := sizeTok
			if scnLabel != "" {
				scenario = scnLabel + ", " + sizeTok
			}

			out = append(out, &Result{
				Category:       category,
				Scenario:       scenario,
				ScenarioLabel:  scenario,
				Parser:         id.Parser,
				Variant:        id.Variant,
				VariantDisplay: variantDisplay,
				Options:        options,
				MeanNs:         bm.MeanNs,
				LowMeanNs:      bm.LowMeanNs,
				HighMeanNs:     bm.HighMeanNs,
				StdDevNs:       bm.StdDevNs,
				DataSize:       size,
			})
		}
	}
	return out
}

// splitBenchmarkName splits a benchmark name into its size token and
// option tags. Name parts before the size token extend label. If no
// part is a size token, the first part stands in for it with size 0.
//
// The size token is the first part that looks like a size, not
// necessarily the first part. The bench binaries name benchmarks
// "8 Headers, 433 B, LC", so "LC, 433 B" yields label "LC", size 433
// and no options rather than size 0 with option "433 B".
func splitBenchmarkName(label, name string) (newLabel, sizeTok string, size int, opts []string) {
	parts := strings.Split(name, ", ")
	k := 0
	for i, p := range parts {
		if m := sizeRe.FindStringSubmatch(p); m != nil {
			k = i
			size, _ = strconv.Atoi(m[1])
			break
		}
	}
	newLabel = label
	for _, p := range parts[:k] {
		if newLabel == "" {
			newLabel = p
		} else {
			newLabel += ", " + p
		}
	}
	return newLabel, parts[k], size, parts[k+1:]
}
