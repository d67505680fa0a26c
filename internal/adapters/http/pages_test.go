package httpadapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) doc(t *testing.T, target string) (*goquery.Document, int) {
	t.Helper()
	rec := h.get(t, target)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc, rec.Code
}

func cardSlugs(doc *goquery.Document, selector string) []string {
	var slugs []string
	doc.Find(selector + " .brand-card").Each(func(_ int, s *goquery.Selection) {
		slugs = append(slugs, s.AttrOr("data-slug", ""))
	})
	return slugs
}

func TestHomePage(t *testing.T) {
	h := newHarness(t, false)
	doc, code := h.doc(t, "/")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, []string{"naturepedic", "purity-coffee", "crunchi", "one-degree"}, cardSlugs(doc, ".top-brands"))
	assert.Contains(t, doc.Find(".hero").Text(), "5 brands")
	assert.Equal(t, 0, doc.Find(".notice").Length())

	var groups []string
	doc.Find(".category-group h3 a").Each(func(_ int, s *goquery.Selection) {
		groups = append(groups, s.AttrOr("href", ""))
	})
	assert.Contains(t, groups, "/brands?category=Food")
}

func TestBrandsPageParentCategory(t *testing.T) {
	h := newHarness(t, false)
	doc, code := h.doc(t, "/brands?category=Food")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "Food", doc.Find("h1").Text())
	assert.Equal(t, []string{"purity-coffee", "one-degree", "lifeboost"}, cardSlugs(doc, ".results"))
	assert.Equal(t, "Showing 3 of 5 brands", doc.Find(".result-count").Text())
	assert.Contains(t, doc.Find(".groups a.active").Text(), "Food")
	assert.Equal(t, 3, doc.Find(".leaves a").Length(), "leaf chips for the selected parent")
	assert.Equal(t, "Food", doc.Find("input[name=category]").AttrOr("value", ""))
}

func TestBrandsPageLeafCategory(t *testing.T) {
	h := newHarness(t, false)
	doc, _ := h.doc(t, "/brands?category=Coffee")

	assert.Equal(t, []string{"purity-coffee", "lifeboost"}, cardSlugs(doc, ".results"))
	crumbs := doc.Find(".crumbs").Text()
	assert.Contains(t, crumbs, "Food")
	assert.Contains(t, crumbs, "Coffee")
	assert.Contains(t, doc.Find(".leaves a.active").Text(), "Coffee")
}

func TestBrandsPageSearchIsConjunctive(t *testing.T) {
	h := newHarness(t, false)
	doc, code := h.doc(t, "/brands?search=beauty&category=Pantry")
	require.Equal(t, http.StatusOK, code)

	assert.Empty(t, cardSlugs(doc, ".results"))
	assert.Contains(t, doc.Find(".empty h2").Text(), "No brands found")
	assert.Equal(t, "/brands", doc.Find(".empty a").AttrOr("href", ""))
	assert.Equal(t, "beauty", doc.Find("input[name=search]").AttrOr("value", ""))
}

func TestBrandsPageUnknownCategoryIsUnrestricted(t *testing.T) {
	h := newHarness(t, false)
	doc, _ := h.doc(t, "/brands?category=Toys")
	assert.Len(t, cardSlugs(doc, ".results"), 5)
	assert.Equal(t, "All Brands", doc.Find("h1").Text())
}

func TestBrandsPageSoftFail(t *testing.T) {
	h := newHarness(t, false)
	h.store.err = errors.New("db down")
	doc, code := h.doc(t, "/brands")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, doc.Find(".notice").Length())
	assert.Equal(t, 1, doc.Find(".empty").Length())
}

func TestBrandPage(t *testing.T) {
	h := newHarness(t, false)

	doc, code := h.doc(t, "/brands/purity-coffee")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Purity Coffee", doc.Find(".brand-header h1").Text())
	assert.Contains(t, doc.Find(".brand-header .tier").Text(), "Data Verified")
	assert.Equal(t, "https://puritycoffee.com/lab", doc.Find("a.lab-reports").AttrOr("href", ""))
	assert.Equal(t, 1, doc.Find(".products tbody tr").Length())
	assert.Equal(t, []string{"lifeboost"}, cardSlugs(doc, ".similar"))
	assert.Equal(t, "puritycoffee.com", doc.Find(".brand-header .logo").AttrOr("data-logo-domain", ""))

	doc, _ = h.doc(t, "/brands/naturepedic")
	var certs []string
	doc.Find(".certifications strong").Each(func(_ int, s *goquery.Selection) {
		certs = append(certs, s.Text())
	})
	assert.Equal(t, []string{"GOTS Certified", "MADE SAFE"}, certs)
	assert.Equal(t, 0, doc.Find(".similar").Length())

	doc, _ = h.doc(t, "/brands/lifeboost")
	assert.Contains(t, doc.Find(".brand-header .tier").Text(), "Label Check")
	assert.Equal(t, "L", doc.Find(".brand-header .logo").Text())
}

func TestBrandPageNotFound(t *testing.T) {
	h := newHarness(t, false)
	doc, code := h.doc(t, "/brands/does-not-exist")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, doc.Find("h1").Text(), "Page not found")

	h.store.err = errors.New("db down")
	doc, code = h.doc(t, "/brands/purity-coffee")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, 1, doc.Find(".notice").Length())
}

func TestProductPage(t *testing.T) {
	h := newHarness(t, false)
	doc, code := h.doc(t, "/products/purity-whole-bean")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Whole Bean", doc.Find("h1").Text())
	assert.Contains(t, doc.Find(".crumbs").Text(), "Purity Coffee")
	assert.Contains(t, doc.Find(".test-results").Text(), "Mycotoxins")
	assert.Contains(t, doc.Find(".test-results").Text(), "May 1, 2024")
	assert.Contains(t, doc.Find(".ingredients").Text(), "Arabica coffee")

	_, code = h.doc(t, "/products/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStaticPages(t *testing.T) {
	h := newHarness(t, false)
	doc, code := h.doc(t, "/about")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, doc.Find("dl.tiers dt").Length())

	_, code = h.doc(t, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBoundary(t *testing.T) {
	h := newHarness(t, false)
	doc, code := h.doc(t, "/boom")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "/boom", doc.Find("a.retry").AttrOr("href", ""))
	assert.Equal(t, 0, doc.Find("pre.detail").Length(), "no detail outside development")
	assert.Equal(t, 1, h.logs.FilterMessage("panic serving request").Len())

	dev := newHarness(t, true)
	doc, _ = dev.doc(t, "/boom")
	assert.Contains(t, doc.Find("pre.detail").Text(), "template exploded")
}

func TestBrandsURL(t *testing.T) {
	assert.Equal(t, "/brands", brandsURL("", ""))
	assert.Equal(t, "/brands?category=Baby+Food", brandsURL("", "Baby Food"))
	assert.Equal(t, "/brands?category=Food&search=a%26b", brandsURL("a&b", "Food"))
}

func TestRenderUnknownTemplate(t *testing.T) {
	rd, err := newRenderer()
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	assert.Error(t, rd.render(rec, http.StatusOK, "missing.html", nil))
	assert.Equal(t, 0, rec.Body.Len())
}
