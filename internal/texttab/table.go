// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out Markdown pipe tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of Markdown tables.
//
// The first row is the header row. Each column is as wide as its
// widest cell, counted in runes, so the source text lines up in a
// monospace font as well as rendering as a table.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows  [][]string
	align []align
}

type align int

const (
	alignLeft align = iota
	alignRight
)

// A CellOption configures the column of a cell.
type CellOption func(t *Table, col int)

var (
	// Left left-aligns the column. This is the default.
	Left CellOption = func(t *Table, col int) { t.align[col] = alignLeft }
	// Right right-aligns the column.
	Right CellOption = func(t *Table, col int) { t.align[col] = alignRight }
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// rule returns the delimiter row cell for a column of width w.
func (a align) rule(w int) string {
	if a == alignRight {
		return strings.Repeat("-", w+1) + ":"
	}
	return strings.Repeat("-", w+2)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row. Options apply to
// the whole column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	row := &t.rows[len(t.rows)-1]
	col := len(*row)
	*row = append(*row, value)
	for len(t.align) <= col {
		t.align = append(t.align, alignLeft)
	}
	for _, o := range opts {
		o(t, col)
	}
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	if len(t.rows) == 0 {
		return nil
	}

	// Compute column widths.
	ws := make([]int, len(t.align))
	for _, row := range t.rows {
		for col, cell := range row {
			ws[col] = max(ws[col], utf8.RuneCountInString(escape(cell)))
		}
	}

	var buf strings.Builder
	line := func(row []string) {
		buf.WriteString("|")
		for col, width := range ws {
			var cell string
			if col < len(row) {
				cell = escape(row[col])
			}
			fmt.Fprintf(&buf, " %s |", t.align[col].pad(cell, width))
		}
		buf.WriteString("\n")
	}

	line(t.rows[0])
	buf.WriteString("|")
	for col, width := range ws {
		buf.WriteString(t.align[col].rule(width))
		buf.WriteString("|")
	}
	buf.WriteString("\n")
	for _, row := range t.rows[1:] {
		line(row)
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// escape protects pipes in cell text from ending the cell.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
