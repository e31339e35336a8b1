// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/hwire/parserbench/benchfmt"
)

func TestConvert(t *testing.T) {
	const in = `<?xml version="1.0" encoding="UTF-8"?>
<Catch2TestRun name="bench_pico_avx2">
  <TestCase name="Header Count, 8 Headers">
    <BenchmarkResults name="433 B" samples="100" iterations="50">
      <mean value="120" lowerBound="110" upperBound="130"/>
      <standardDeviation value="4" lowerBound="3" upperBound="5"/>
    </BenchmarkResults>
  </TestCase>
</Catch2TestRun>
`
	const want = `{"runName":"bench_pico_avx2","testCases":[{"name":"Header Count, 8 Headers","benchmarks":[{"name":"433 B","meanNs":120,"lowMeanNs":110,"highMeanNs":130,"stdDevNs":4}]}]}` + "\n"

	var got strings.Builder
	if err := convert(&got, strings.NewReader(in)); err != nil {
		t.Fatal(err)
	}
	if got.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", got.String(), want)
	}

	// The output is readable as a run.
	if _, err := benchfmt.DecodeRun([]byte(got.String())); err != nil {
		t.Errorf("output does not decode: %v", err)
	}
}

func TestConvertErrors(t *testing.T) {
	check := func(in string, wantNoRun bool, wantMsg string) {
		t.Helper()
		var got strings.Builder
		err := convert(&got, strings.NewReader(in))
		if err == nil {
			t.Errorf("%q: want error, got output %q", in, got.String())
			return
		}
		if errors.Is(err, benchfmt.ErrNoCatch2Run) != wantNoRun {
			t.Errorf("%q: error %v, ErrNoCatch2Run = %v", in, err, !wantNoRun)
		}
		if !strings.Contains(err.Error(), wantMsg) {
			t.Errorf("%q: error %q does not contain %q", in, err, wantMsg)
		}
		if got.Len() != 0 {
			t.Errorf("%q: partial output %q", in, got.String())
		}
	}
	check("", true, "no Catch2TestRun element")
	check("<Report/>", true, "no Catch2TestRun element")
	check(`<Catch2TestRun><TestCase name="x"/></Catch2TestRun>`, false, "missing runName")
}
