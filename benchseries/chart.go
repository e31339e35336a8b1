// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries draws benchmark comparison tables as PNG bar
// charts.
package benchseries

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/hwire/parserbench/benchstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	dpi        = 96
	barWidth   = 18  // points
	rowHeight  = 0.9 // centimeters per row
	chartWidth = 16  // centimeters
)

var (
	baselineColor = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	barColor      = color.RGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0xff}
)

// WritePNG draws t as a horizontal bar chart of mean times, fastest
// at the top, and writes it to w as a PNG image.
func WritePNG(w io.Writer, t *benchstat.Table) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("%s: no results to chart", t.Title)
	}

	// Bars are drawn bottom up, so the slowest goes first.
	n := len(t.Rows)
	means := make(plotter.Values, n)
	labels := make([]string, n)
	for i, row := range t.Rows {
		means[n-1-i] = row.MeanNs
		labels[n-1-i] = fmt.Sprintf("%s %s", row.Label(), row.Annotation())
	}

	pl := plot.New()
	pl.Title.Text = t.Title
	pl.X.Label.Text = "mean time (ns), lower is better"
	pl.X.Min = 0
	_, hi := stats.Bounds(means)
	pl.X.Max = hi * 1.1

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	pl.Add(grid)

	// One bar chart per color, so the baseline stands out.
	for _, baseline := range []bool{false, true} {
		vals := make(plotter.Values, n)
		for i, row := range t.Rows {
			if row.Baseline == baseline {
				vals[n-1-i] = row.MeanNs
			}
		}
		bars, err := plotter.NewBarChart(vals, vg.Points(barWidth))
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.LineStyle.Width = 0
		bars.Color = barColor
		if baseline {
			bars.Color = baselineColor
		}
		pl.Add(bars)
	}
	pl.NominalY(labels...)

	height := rowHeight*float64(n) + 3
	can := vgimg.NewWith(
		vgimg.UseWH(chartWidth*vg.Centimeter, vg.Length(height)*vg.Centimeter),
		vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	pl.Draw(draw.New(can))
	_, err := vgimg.PngCanvas{Canvas: can}.WriteTo(w)
	return err
}

// WriteFile writes the chart of t to dir/<name>.png, creating dir if
// needed, and returns the file's path. name is made safe for use as a
// file name.
func WriteFile(dir, name string, t *benchstat.Table) (string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(name)+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WritePNG(f, t); err != nil {
		f.Close()
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, f.Close()
}

// FileName reduces s to a lower-case file name of letters, digits,
// and single dashes.
func FileName(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == '_':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "chart"
	}
	return b.String()
}
