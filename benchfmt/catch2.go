// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// The subset of the Catch2 XML reporter output that DecodeCatch2 reads.
type catch2Run struct {
	XMLName   xml.Name         `xml:"Catch2TestRun"`
	Name      string           `xml:"name,attr"`
	TestCases []catch2TestCase `xml:"TestCase"`
}

type catch2TestCase struct {
	Name       string            `xml:"name,attr"`
	Benchmarks []catch2Benchmark `xml:"BenchmarkResults"`
}

type catch2Benchmark struct {
	Name   string         `xml:"name,attr"`
	Mean   catch2Estimate `xml:"mean"`
	StdDev catch2Estimate `xml:"standardDeviation"`
}

type catch2Estimate struct {
	Value      string `xml:"value,attr"`
	LowerBound string `xml:"lowerBound,attr"`
	UpperBound string `xml:"upperBound,attr"`
}

// ErrNoCatch2Run is returned by DecodeCatch2 when its input has no
// Catch2TestRun root element.
var ErrNoCatch2Run = errors.New("no Catch2TestRun element")

// DecodeCatch2 reads the output of a Catch2 binary run with
// "--reporter xml" and returns it as a Run.
//
// Timings are taken from each BenchmarkResults element's mean and
// standardDeviation children. Missing or malformed numbers read as 0.
func DecodeCatch2(r io.Reader) (*Run, error) {
	var doc catch2Run
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCatch2Run
		}
		var unexpected xml.UnmarshalError
		if errors.As(err, &unexpected) {
			return nil, fmt.Errorf("%w: %v", ErrNoCatch2Run, err)
		}
		return nil, fmt.Errorf("decoding Catch2 XML: %w", err)
	}

	run := &Run{RunName: doc.Name, TestCases: []TestCase{}}
	for _, tc := range doc.TestCases {
		out := TestCase{Name: tc.Name, Benchmarks: []Benchmark{}}
		for _, bm := range tc.Benchmarks {
			out.Benchmarks = append(out.Benchmarks, Benchmark{
				Name:       bm.Name,
				MeanNs:     attrFloat(bm.Mean.Value),
				LowMeanNs:  attrFloat(bm.Mean.LowerBound),
				HighMeanNs: attrFloat(bm.Mean.UpperBound),
				StdDevNs:   attrFloat(bm.StdDev.Value),
			})
		}
		run.TestCases = append(run.TestCases, out)
	}
	return run, nil
}

func attrFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
