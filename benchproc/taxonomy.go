// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hwire/parserbench/benchfmt"
	"sigs.k8s.io/yaml"
)

// OtherCategory is the key of the category that collects scenarios no
// taxonomy category claims.
const OtherCategory = "other"

// A Taxonomy is the static description of the benchmark categories
// and scenarios a report knows about.
type Taxonomy struct {
	// Categories lists the known categories in report order.
	Categories []Category `json:"categories"`

	// Variants maps variant tokens to display names. These override
	// benchfmt.VariantDisplayName.
	Variants map[string]string `json:"variants,omitempty"`

	// Notes maps benchmark option tags, such as "LC", to a note the
	// report shows in every category where a result carries the tag.
	Notes map[string]string `json:"notes,omitempty"`
}

// A Category is a family of related scenarios.
type Category struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Control     string `json:"control,omitempty"`

	// Prefix, if non-empty, claims every scenario id that starts
	// with it.
	Prefix string `json:"prefix,omitempty"`

	// Aliases are further names that identify this category in
	// run-format test case names, in addition to Name and Key.
	Aliases []string `json:"aliases,omitempty"`

	// Scenarios lists the known scenarios in report order.
	Scenarios []Scenario `json:"scenarios,omitempty"`
}

// A Scenario is one benchmark configuration within a Category.
type Scenario struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

//go:embed taxonomy.yaml
var defaultTaxonomy []byte

// DefaultTaxonomy returns the built-in taxonomy.
func DefaultTaxonomy() *Taxonomy {
	t, err := ParseTaxonomy(defaultTaxonomy)
	if err != nil {
		panic("parsing built-in taxonomy: " + err.Error())
	}
	return t
}

// LoadTaxonomy reads a taxonomy from a YAML file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseTaxonomy(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTaxonomy parses a taxonomy from YAML. Category keys must be
// present and unique, as must scenario keys within a category.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	t := new(Taxonomy)
	if err := yaml.UnmarshalStrict(data, t); err != nil {
		return nil, err
	}
	cats := make(map[string]bool)
	for i, c := range t.Categories {
		if c.Key == "" {
			return nil, fmt.Errorf("category %d has no key", i)
		}
		if cats[c.Key] {
			return nil, fmt.Errorf("duplicate category %q", c.Key)
		}
		cats[c.Key] = true
		scns := make(map[string]bool)
		for _, s := range c.Scenarios {
			if s.Key == "" {
				return nil, fmt.Errorf("category %q: scenario has no key", c.Key)
			}
			if scns[s.Key] {
				return nil, fmt.Errorf("category %q: duplicate scenario %q", c.Key, s.Key)
			}
			scns[s.Key] = true
		}
	}
	return t, nil
}

// Category returns the category with the given key.
func (t *Taxonomy) Category(key string) (*Category, bool) {
	for i := range t.Categories {
		if t.Categories[i].Key == key {
			return &t.Categories[i], true
		}
	}
	return nil, false
}

// claims reports whether c owns the scenario id.
func (c *Category) claims(id string) bool {
	if c.Prefix != "" && strings.HasPrefix(id, c.Prefix) {
		return true
	}
	_, ok := c.scenario(id)
	return ok
}

func (c *Category) scenario(id string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Key == id {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// CategoryKeyFor returns the key of the first category that claims
// scenario id, or OtherCategory.
func (t *Taxonomy) CategoryKeyFor(id string) string {
	for i := range t.Categories {
		if t.Categories[i].claims(id) {
			return t.Categories[i].Key
		}
	}
	return OtherCategory
}

// ScenarioLabelFor returns the label of scenario id in the category
// that claims it, or id itself.
func (t *Taxonomy) ScenarioLabelFor(id string) string {
	for i := range t.Categories {
		c := &t.Categories[i]
		if !c.claims(id) {
			continue
		}
		if s, ok := c.scenario(id); ok && s.Label != "" {
			return s.Label
		}
		break
	}
	return id
}

// Resolve maps a category key, name, or alias to its key. Unknown
// names are returned unchanged.
func (t *Taxonomy) Resolve(name string) string {
	for _, c := range t.Categories {
		if name == c.Key || name == c.Name {
			return c.Key
		}
		for _, a := range c.Aliases {
			if name == a {
				return c.Key
			}
		}
	}
	return name
}

// DisplayName returns the heading of category key: its name, or the
// key itself for categories the taxonomy does not know.
func (t *Taxonomy) DisplayName(key string) string {
	if c, ok := t.Category(key); ok && c.Name != "" {
		return c.Name
	}
	if key == OtherCategory {
		return "Other"
	}
	return key
}

// Classify fills in r's category from the taxonomy.
//
// Results of the console format carry no category. Their category
// and scenario label are derived from the scenario id. Results of the
// run format name their category, which is mapped to its key.
// In both cases the variant display name honors t.Variants.
func (t *Taxonomy) Classify(r *benchfmt.Result) {
	if r.Category == "" {
		r.Category = t.CategoryKeyFor(r.Scenario)
		r.ScenarioLabel = t.ScenarioLabelFor(r.Scenario)
	} else {
		r.Category = t.Resolve(r.Category)
	}
	if name, ok := t.Variants[r.Variant]; ok {
		base := benchfmt.VariantDisplayName(r.Variant)
		r.VariantDisplay = name + strings.TrimPrefix(r.VariantDisplay, base)
	}
}

// SortCategories sorts category keys into report order: taxonomy
// categories in taxonomy order, then the rest in their existing order.
func (t *Taxonomy) SortCategories(keys []string) {
	rank := make(map[string]int)
	for i, c := range t.Categories {
		rank[c.Key] = i
	}
	sortByRank(keys, rank)
}

// SortScenarios sorts the scenario ids of category key into report
// order: known scenarios in taxonomy order, then the rest in their
// existing order.
func (t *Taxonomy) SortScenarios(key string, ids []string) {
	rank := make(map[string]int)
	if c, ok := t.Category(key); ok {
		for i, s := range c.Scenarios {
			rank[s.Key] = i
		}
	}
	sortByRank(ids, rank)
}

func sortByRank(keys []string, rank map[string]int) {
	sort.SliceStable(keys, func(i, j int) bool {
		ri, iok := rank[keys[i]]
		rj, jok := rank[keys[j]]
		if iok && jok {
			return ri < rj
		}
		return iok && !jok
	})
}
