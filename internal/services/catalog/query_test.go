package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"betterbrand/internal/domain"
	"betterbrand/internal/taxonomy"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func brand(id, name, category string, score int) domain.Brand {
	return domain.Brand{ID: id, Name: name, Slug: id, Category: category, TrustScore: score}
}

func slugs(brands []domain.Brand) []string {
	out := make([]string, len(brands))
	for i, b := range brands {
		out[i] = b.Slug
	}
	return out
}

func sampleCatalog() []domain.Brand {
	return []domain.Brand{
		brand("purity-coffee", "Purity Coffee", "Coffee", 95),
		brand("crunchi", "Crunchi", "Beauty", 95),
		brand("one-degree", "One Degree Organic Foods", "Pantry", 90),
		brand("cerebelly", "Cerebelly", "Baby Food", 98),
		brand("thorne", "Thorne", "Supplements", 93),
		brand("epic", "Epic Water Filters", "Water Filters", 95),
		brand("garden-co", "Garden Co", "Garden", 70),
	}
}

func TestFilter_ParentCategoryScenario(t *testing.T) {
	brands := []domain.Brand{
		brand("a", "Coffee Brand", "Coffee", 80),
		brand("b", "Beauty Brand", "Beauty", 90),
		brand("c", "Pantry Brand", "Pantry", 85),
	}
	q, sel := QueryFor(taxonomy.Default(), "", "Food")
	assert.Equal(t, "Food", sel.Parent)

	got := Filter(brands, q)
	if diff := cmp.Diff([]string{"c", "a"}, slugs(got)); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_ParentExcludesOtherParents(t *testing.T) {
	q, _ := QueryFor(taxonomy.Default(), "", "Food")
	got := Filter(sampleCatalog(), q)
	for _, b := range got {
		assert.Contains(t, []string{"Baby Food", "Coffee", "Pantry"}, b.Category)
	}
	assert.ElementsMatch(t, []string{"purity-coffee", "one-degree", "cerebelly"}, slugs(got))
}

func TestFilter_LeafIsExact(t *testing.T) {
	q, sel := QueryFor(taxonomy.Default(), "", "Coffee")
	assert.Equal(t, taxonomy.Selection{Parent: "Food", Leaf: "Coffee"}, sel)
	assert.Equal(t, "Coffee", q.Category)
	assert.Empty(t, q.SubCategories)

	got := Filter(sampleCatalog(), q)
	assert.Equal(t, []string{"purity-coffee"}, slugs(got))
}

func TestFilter_Conjunctive(t *testing.T) {
	// "beauty" matches Crunchi only through its category, which the Food
	// restriction excludes.
	q, _ := QueryFor(taxonomy.Default(), "beauty", "Food")
	assert.Empty(t, Filter(sampleCatalog(), q))

	q, _ = QueryFor(taxonomy.Default(), "organic", "Food")
	assert.Equal(t, []string{"one-degree"}, slugs(Filter(sampleCatalog(), q)))
}

func TestFilter_SearchFields(t *testing.T) {
	brands := []domain.Brand{
		{ID: "1", Slug: "by-name", Name: "Lifeboost", Category: "Coffee", TrustScore: 50},
		{ID: "2", Slug: "by-sub", Name: "Naturepedic", Category: "Mattresses", SubCategory: "Organic Mattress", TrustScore: 60},
		{ID: "3", Slug: "by-proof", Name: "Thorne", Category: "Supplements", ProofType: "NSF Certified for Sport", TrustScore: 70},
		{ID: "4", Slug: "none", Name: "Caraway", Category: "Cookware", TrustScore: 80},
	}
	tests := []struct {
		search string
		want   []string
	}{
		{"LIFEBOOST", []string{"by-name"}},
		{"organic mattress", []string{"by-sub"}},
		{"nsf", []string{"by-proof"}},
		{"coffee", []string{"by-name"}},
		{"  ", []string{"none", "by-proof", "by-sub", "by-name"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		q, _ := QueryFor(taxonomy.Default(), tt.search, "")
		assert.Equal(t, tt.want, slugs(Filter(brands, q)), "search %q", tt.search)
	}
}

func TestFilter_UnknownCategoryIsUnrestricted(t *testing.T) {
	q, sel := QueryFor(taxonomy.Default(), "", "Garden")
	assert.True(t, sel.IsZero())
	assert.Len(t, Filter(sampleCatalog(), q), len(sampleCatalog()))
}

func TestFilter_OrderedByTrustDescending(t *testing.T) {
	got := Filter(sampleCatalog(), Query{})
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].TrustScore, got[i].TrustScore)
	}
	// Ties keep input order.
	assert.Equal(t, []string{"cerebelly", "purity-coffee", "crunchi", "epic", "thorne", "one-degree", "garden-co"}, slugs(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleCatalog()
	_ = Filter(in, Query{})
	assert.Equal(t, "purity-coffee", in[0].Slug)
}

func TestMatches(t *testing.T) {
	b := brand("x", "Puori", "Supplements", 95)
	assert.True(t, Matches(b, Query{Search: "puo"}))
	assert.True(t, Matches(b, Query{SubCategories: []string{"Supplements", "Protein Powder"}}))
	assert.False(t, Matches(b, Query{Category: "Protein Powder"}))
}

func TestMatches_LowercaseLikeStore(t *testing.T) {
	b := brand("x", "Straße Naturals", "Coffee", 80)
	assert.True(t, Matches(b, Query{Search: "STRAßE"}))
	assert.True(t, Matches(b, Query{Search: "straße nat"}))
	// Full case folding would turn ß into ss; ILIKE does not.
	assert.False(t, Matches(b, Query{Search: "strasse"}))
}

func TestSimilar(t *testing.T) {
	all := []domain.Brand{
		brand("a", "A", "Coffee", 99),
		brand("b", "B", "Coffee", 90),
		brand("c", "C", "Beauty", 85),
		brand("d", "D", "Coffee", 80),
		brand("e", "E", "Coffee", 70),
	}
	got := Similar(all, all[1], 3)
	assert.Equal(t, []string{"a", "d", "e"}, slugs(got))
	assert.Empty(t, Similar(all, all[2], 3))
}
