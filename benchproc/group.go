// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import "github.com/hwire/parserbench/benchfmt"

// Groups collects Results by category and then by scenario.
//
// Categories and scenarios are kept in the order they were first
// seen. Results that cannot be ranked (see benchfmt.Result.Valid) are
// not grouped but set aside, so every Result added is either grouped
// or excluded.
//
// The zero value is an empty Groups.
type Groups struct {
	cats  []string
	byCat map[string]*categoryGroup

	n        int
	excluded []*benchfmt.Result
}

type categoryGroup struct {
	scenarios []string
	results   map[string][]*benchfmt.Result
}

// Add adds a copy of r to g.
func (g *Groups) Add(r *benchfmt.Result) {
	r = r.Clone()
	if !r.Valid() {
		g.excluded = append(g.excluded, r)
		return
	}
	if g.byCat == nil {
		g.byCat = make(map[string]*categoryGroup)
	}
	cg, ok := g.byCat[r.Category]
	if !ok {
		cg = &categoryGroup{results: make(map[string][]*benchfmt.Result)}
		g.byCat[r.Category] = cg
		g.cats = append(g.cats, r.Category)
	}
	if _, ok := cg.results[r.Scenario]; !ok {
		cg.scenarios = append(cg.scenarios, r.Scenario)
	}
	cg.results[r.Scenario] = append(cg.results[r.Scenario], r)
	g.n++
}

// Len returns the number of grouped Results.
func (g *Groups) Len() int {
	return g.n
}

// Excluded returns the number of Results that were not grouped.
func (g *Groups) Excluded() int {
	return len(g.excluded)
}

// ExcludedResults returns the Results that were not grouped, in the
// order they were added.
func (g *Groups) ExcludedResults() []*benchfmt.Result {
	return g.excluded
}

// Categories returns the category keys in first-seen order.
// The caller may reorder the returned slice.
func (g *Groups) Categories() []string {
	return append([]string(nil), g.cats...)
}

// Scenarios returns the scenarios of category cat in first-seen order.
// The caller may reorder the returned slice.
func (g *Groups) Scenarios(cat string) []string {
	cg, ok := g.byCat[cat]
	if !ok {
		return nil
	}
	return append([]string(nil), cg.scenarios...)
}

// Results returns the Results of one scenario in the order they were
// added.
func (g *Groups) Results(cat, scenario string) []*benchfmt.Result {
	cg, ok := g.byCat[cat]
	if !ok {
		return nil
	}
	return cg.results[scenario]
}
