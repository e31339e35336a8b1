// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Catch2json converts the XML report of a Catch2 benchmark binary to
// one line of the run format read by parserbench.
//
// Usage:
//
//	bench_hwire_sse42 --reporter xml | catch2json >> results.jsonl
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hwire/parserbench/benchfmt"
)

func main() {
	log.SetPrefix("catch2json: ")
	log.SetFlags(0)
	if len(os.Args) > 1 {
		fmt.Fprintf(os.Stderr, "usage: catch2json < report.xml\n")
		os.Exit(2)
	}
	if err := convert(os.Stdout, os.Stdin); err != nil {
		log.Fatal(err)
	}
}

func convert(w io.Writer, r io.Reader) error {
	run, err := benchfmt.DecodeCatch2(r)
	if err != nil {
		return err
	}
	return benchfmt.NewWriter(w).Write(run)
}
