package catalog

import (
	"slices"
	"strings"

	"betterbrand/internal/domain"
	"betterbrand/internal/ports"
	"betterbrand/internal/taxonomy"
)

// Query is the catalog filter shared by the in-memory composer and the store.
type Query = ports.BrandQuery

// QueryFor builds a query from raw URL parameters, resolving category against
// the taxonomy. An unrecognised category applies no restriction.
func QueryFor(tax *taxonomy.Taxonomy, search, category string) (Query, taxonomy.Selection) {
	q := Query{Search: strings.TrimSpace(search)}
	sel := tax.Resolve(strings.TrimSpace(category))
	switch {
	case sel.Leaf != "":
		q.Category = sel.Leaf
	case sel.Parent != "":
		q.SubCategories = sel.SubCategories
	}
	return q, sel
}

// Search lowercases both sides, as ILIKE does in the store.
type matcher struct {
	q    Query
	term string
}

func newMatcher(q Query) *matcher {
	m := &matcher{q: q}
	if q.Search != "" {
		m.term = strings.ToLower(q.Search)
	}
	return m
}

func (m *matcher) contains(field string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), m.term)
}

func (m *matcher) match(b domain.Brand) bool {
	if m.term != "" {
		if !m.contains(b.Name) && !m.contains(b.Category) && !m.contains(b.SubCategory) && !m.contains(b.ProofType) {
			return false
		}
	}
	if m.q.Category != "" && b.Category != m.q.Category {
		return false
	}
	if len(m.q.SubCategories) > 0 && !slices.Contains(m.q.SubCategories, b.Category) {
		return false
	}
	return true
}

// Matches reports whether a brand satisfies every filter in q.
func Matches(b domain.Brand, q Query) bool {
	return newMatcher(q).match(b)
}

// Filter returns the brands matching q, ordered by trust score descending.
// Ties keep their input order.
func Filter(brands []domain.Brand, q Query) []domain.Brand {
	m := newMatcher(q)
	out := make([]domain.Brand, 0, len(brands))
	for _, b := range brands {
		if m.match(b) {
			out = append(out, b)
		}
	}
	SortByTrust(out)
	return out
}

// SortByTrust orders brands by trust score descending, stable.
func SortByTrust(brands []domain.Brand) {
	slices.SortStableFunc(brands, func(a, b domain.Brand) int {
		return b.TrustScore - a.TrustScore
	})
}

// Similar returns up to limit brands sharing b's category, excluding b.
func Similar(all []domain.Brand, b domain.Brand, limit int) []domain.Brand {
	var out []domain.Brand
	for _, other := range all {
		if len(out) == limit {
			break
		}
		if other.Category == b.Category && other.ID != b.ID {
			out = append(out, other)
		}
	}
	return out
}
