// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"sort"
	"strings"
)

// A SortFunc abstracts the sorting interface to compare two rows of a Table
type SortFunc func(*Table, int, int) bool

// ByMean sorts tables by mean time, fastest first. This is the order
// of a new Table.
func ByMean(t *Table, i, j int) bool {
	return t.Rows[i].MeanNs < t.Rows[j].MeanNs
}

// ByName sorts tables by parser and then variant display name.
func ByName(t *Table, i, j int) bool {
	a, b := t.Rows[i], t.Rows[j]
	if a.Parser != b.Parser {
		return a.Parser < b.Parser
	}
	return a.VariantDisplay < b.VariantDisplay
}

// SortReverse returns a SortFunc that is the reverse of the input SortFunc
func SortReverse(sortFunc SortFunc) SortFunc {
	return func(t *Table, i, j int) bool { return sortFunc(t, j, i) }
}

// SortTable sorts a Table t (in place) by the given SortFunc. Rows
// that compare equal keep their order. The baseline is not changed.
func SortTable(t *Table, sortFunc SortFunc) {
	sort.SliceStable(t.Rows, func(i, j int) bool { return sortFunc(t, i, j) })
}

// ParseSort parses a row order as given on the command line: "mean"
// or "name", optionally prefixed with "-" to reverse it.
func ParseSort(s string) (SortFunc, error) {
	name, reverse := strings.CutPrefix(s, "-")
	var f SortFunc
	switch name {
	case "mean":
		f = ByMean
	case "name":
		f = ByName
	default:
		return nil, fmt.Errorf("unknown sort order %q", s)
	}
	if reverse {
		f = SortReverse(f)
	}
	return f, nil
}
