package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()
	require.Len(t, tax.Groups, 4)
	assert.Equal(t, []string{"Baby Food", "Coffee", "Pantry"}, tax.SubCategories("Food"))
	assert.Nil(t, tax.SubCategories("Garden"))
	assert.Contains(t, tax.AllSubCategories(), "Cookware")

	g, ok := tax.Group("Living")
	require.True(t, ok)
	assert.Equal(t, "Armchair", g.Icon)
}

func TestResolve(t *testing.T) {
	tax := Default()

	parent := tax.Resolve("Food")
	assert.Equal(t, Selection{Parent: "Food", SubCategories: []string{"Baby Food", "Coffee", "Pantry"}}, parent)

	leaf := tax.Resolve("Coffee")
	assert.Equal(t, Selection{Parent: "Food", Leaf: "Coffee"}, leaf)

	// Supplements is both a parent and a leaf; the parent wins.
	both := tax.Resolve("Supplements")
	assert.Equal(t, "Supplements", both.Parent)
	assert.Empty(t, both.Leaf)
	assert.Equal(t, []string{"Supplements", "Protein Powder"}, both.SubCategories)

	assert.True(t, tax.Resolve("Garden").IsZero())
	assert.True(t, tax.Resolve("").IsZero())
	assert.True(t, tax.Resolve("coffee").IsZero(), "resolution is exact")
}

func TestResolveDoesNotAlias(t *testing.T) {
	tax := Default()
	sel := tax.Resolve("Food")
	sel.SubCategories[0] = "mutated"
	assert.Equal(t, "Baby Food", tax.SubCategories("Food")[0])
}

func TestParseValidation(t *testing.T) {
	_, err := Parse([]byte("groups:\n  - name: A\n    sub_categories: [X]\n  - name: B\n    sub_categories: [X]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"X"`)

	_, err = Parse([]byte("groups:\n  - name: A\n    sub_categories: []\n"))
	require.Error(t, err)

	_, err = Parse([]byte("groups:\n  - name: ''\n    sub_categories: [X]\n"))
	require.Error(t, err)

	_, err = Parse([]byte("groups: [}"))
	require.Error(t, err)
}

func TestCount(t *testing.T) {
	c := Default().Count([]string{"Coffee", "Coffee", "Pantry", "Beauty", "Garden"})
	assert.Equal(t, 2, c.Leaf["Coffee"])
	assert.Equal(t, 1, c.Leaf["Garden"])
	assert.Equal(t, 3, c.Parent["Food"])
	assert.Equal(t, 1, c.Parent["Beauty"])
	assert.Zero(t, c.Parent["Living"])
}
