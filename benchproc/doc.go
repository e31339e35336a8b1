// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc classifies and groups benchmark results.
//
// The typical steps for processing a stream of benchmark results are:
//
// 1. Read a stream of benchfmt.Results from one or more input sources.
// Command-line tools will often do this using benchfmt.Files.
//
// 2. Classify each benchfmt.Result with a Taxonomy. This assigns it a
// category key and, for console-format results, a scenario label.
// The built-in taxonomy is returned by DefaultTaxonomy; a replacement
// can be read from YAML by LoadTaxonomy.
//
// 3. Add each classified benchfmt.Result to a Groups. Groups keeps
// results by category and scenario and sets aside results that cannot
// be ranked.
//
// 4. Once all input is read, walk the Groups in report order, using
// Taxonomy.SortCategories and Taxonomy.SortScenarios, and hand each
// scenario's results to benchstat.
package benchproc
