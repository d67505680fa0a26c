// Package taxonomy holds the static two-level category hierarchy used for
// navigation. It is bundled configuration, not derived from the brand table.
package taxonomy

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultYAML []byte

// Group is a parent category and its ordered leaf categories.
type Group struct {
	Name          string   `yaml:"name"`
	Emoji         string   `yaml:"emoji"`
	Icon          string   `yaml:"icon"`
	SubCategories []string `yaml:"sub_categories"`
}

type Taxonomy struct {
	Groups []Group `yaml:"groups"`
}

// Selection is the outcome of resolving a requested category string.
// Parent is set for both parent and leaf matches; Leaf only for leaf matches.
type Selection struct {
	Parent        string
	Leaf          string
	SubCategories []string
}

func (s Selection) IsZero() bool { return s.Parent == "" && s.Leaf == "" }

// Parse decodes and validates a taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}
	parents := map[string]bool{}
	leaves := map[string]string{}
	for _, g := range t.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("taxonomy group with empty name")
		}
		if parents[g.Name] {
			return nil, fmt.Errorf("duplicate taxonomy group %q", g.Name)
		}
		parents[g.Name] = true
		if len(g.SubCategories) == 0 {
			return nil, fmt.Errorf("taxonomy group %q has no sub-categories", g.Name)
		}
		for _, leaf := range g.SubCategories {
			if prev, ok := leaves[leaf]; ok {
				return nil, fmt.Errorf("sub-category %q listed under both %q and %q", leaf, prev, g.Name)
			}
			leaves[leaf] = g.Name
		}
	}
	return &t, nil
}

// Default returns the taxonomy bundled with the binary.
func Default() *Taxonomy {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Group looks up a parent by exact name.
func (t *Taxonomy) Group(name string) (Group, bool) {
	for _, g := range t.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// ParentOf returns the parent that lists leaf, if any.
func (t *Taxonomy) ParentOf(leaf string) (string, bool) {
	for _, g := range t.Groups {
		for _, sc := range g.SubCategories {
			if sc == leaf {
				return g.Name, true
			}
		}
	}
	return "", false
}

func (t *Taxonomy) SubCategories(parent string) []string {
	g, ok := t.Group(parent)
	if !ok {
		return nil
	}
	return append([]string(nil), g.SubCategories...)
}

func (t *Taxonomy) AllSubCategories() []string {
	var out []string
	for _, g := range t.Groups {
		out = append(out, g.SubCategories...)
	}
	return out
}

// Resolve maps a requested category to a selection. Parent names are checked
// before leaves; anything else yields the zero Selection (no restriction).
func (t *Taxonomy) Resolve(category string) Selection {
	if category == "" {
		return Selection{}
	}
	if g, ok := t.Group(category); ok {
		return Selection{Parent: g.Name, SubCategories: append([]string(nil), g.SubCategories...)}
	}
	if parent, ok := t.ParentOf(category); ok {
		return Selection{Parent: parent, Leaf: category}
	}
	return Selection{}
}

// Counts tallies brand categories per leaf and per parent.
type Counts struct {
	Leaf   map[string]int
	Parent map[string]int
}

func (t *Taxonomy) Count(categories []string) Counts {
	c := Counts{Leaf: map[string]int{}, Parent: map[string]int{}}
	for _, cat := range categories {
		c.Leaf[cat]++
		if parent, ok := t.ParentOf(cat); ok {
			c.Parent[parent]++
		}
	}
	return c
}
