// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"math"
	"reflect"
	"testing"

	"github.com/hwire/parserbench/benchfmt"
	"pgregory.net/rapid"
)

func TestGroups(t *testing.T) {
	var g Groups
	if g.Len() != 0 || g.Excluded() != 0 || len(g.Categories()) != 0 {
		t.Fatalf("zero Groups is not empty")
	}

	add := func(cat, scenario, parser string, mean float64) {
		g.Add(&benchfmt.Result{Category: cat, Scenario: scenario, Parser: parser, MeanNs: mean})
	}
	add("val", "val_short", "hwire", 10)
	add("hdr", "hdr_8", "hwire", 20)
	add("hdr", "hdr_15", "pico", 30)
	add("hdr", "hdr_8", "pico", 40)
	add("hdr", "hdr_8", "pico", 40) // Duplicates are kept.
	add("hdr", "hdr_28", "hwire", 0)
	add("hdr", "hdr_28", "hwire", math.NaN())
	add("hdr", "hdr_28", "", 10)

	if g.Len() != 5 {
		t.Errorf("Len() = %d, want 5", g.Len())
	}
	if g.Excluded() != 3 || len(g.ExcludedResults()) != 3 {
		t.Errorf("Excluded() = %d, want 3", g.Excluded())
	}
	if got, want := g.Categories(), []string{"val", "hdr"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	if got, want := g.Scenarios("hdr"), []string{"hdr_8", "hdr_15"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Scenarios(hdr) = %v, want %v", got, want)
	}
	if got := g.Scenarios("case"); got != nil {
		t.Errorf("Scenarios(case) = %v, want nil", got)
	}
	var means []float64
	for _, r := range g.Results("hdr", "hdr_8") {
		means = append(means, r.MeanNs)
	}
	if want := []float64{20, 40, 40}; !reflect.DeepEqual(means, want) {
		t.Errorf("Results(hdr, hdr_8) means = %v, want %v", means, want)
	}
	if got := g.Results("hdr", "hdr_99"); got != nil {
		t.Errorf("Results(hdr, hdr_99) = %v, want nil", got)
	}
}

func TestGroupsCopies(t *testing.T) {
	var g Groups
	r := &benchfmt.Result{Category: "hdr", Scenario: "hdr_8", Parser: "hwire", MeanNs: 10}
	g.Add(r)
	r.MeanNs = 99
	if got := g.Results("hdr", "hdr_8")[0].MeanNs; got != 10 {
		t.Errorf("grouped result changed to %v after Add", got)
	}

	// Reordering returned keys does not affect the Groups.
	g.Add(&benchfmt.Result{Category: "val", Scenario: "val_long", Parser: "hwire", MeanNs: 10})
	cats := g.Categories()
	cats[0], cats[1] = cats[1], cats[0]
	if got := g.Categories(); got[0] != "hdr" {
		t.Errorf("Categories() = %v after reordering a copy", got)
	}
}

// TestGroupsConservation checks that every Result added is either
// grouped exactly once or counted as excluded.
func TestGroupsConservation(t *testing.T) {
	genResult := rapid.Custom(func(t *rapid.T) *benchfmt.Result {
		return &benchfmt.Result{
			Category: rapid.SampledFrom([]string{"hdr", "val", "other"}).Draw(t, "category"),
			Scenario: rapid.SampledFrom([]string{"a", "b", "c", "d"}).Draw(t, "scenario"),
			Parser:   rapid.SampledFrom([]string{"", "hwire", "pico"}).Draw(t, "parser"),
			MeanNs: rapid.OneOf(
				rapid.Float64Range(-10, 1e6),
				rapid.SampledFrom([]float64{0, math.NaN(), math.Inf(1), math.Inf(-1)}),
			).Draw(t, "mean"),
		}
	})
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOf(genResult).Draw(t, "results")

		var g Groups
		wantValid := 0
		for _, r := range in {
			g.Add(r)
			if r.Valid() {
				wantValid++
			}
		}

		if g.Len()+g.Excluded() != len(in) {
			t.Fatalf("Len() %d + Excluded() %d != %d inputs", g.Len(), g.Excluded(), len(in))
		}
		if g.Len() != wantValid {
			t.Fatalf("Len() = %d, want %d", g.Len(), wantValid)
		}
		n := 0
		for _, cat := range g.Categories() {
			for _, scn := range g.Scenarios(cat) {
				rs := g.Results(cat, scn)
				if len(rs) == 0 {
					t.Fatalf("scenario %s/%s has no results", cat, scn)
				}
				for _, r := range rs {
					if !r.Valid() || r.Category != cat || r.Scenario != scn {
						t.Fatalf("misgrouped result %+v under %s/%s", r, cat, scn)
					}
				}
				n += len(rs)
			}
		}
		if n != g.Len() {
			t.Fatalf("walked %d results, Len() = %d", n, g.Len())
		}
		for _, r := range g.ExcludedResults() {
			if r.Valid() {
				t.Fatalf("valid result %+v excluded", r)
			}
		}
	})
}
