package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"betterbrand/internal/domain"
	"betterbrand/internal/ports"
	"betterbrand/internal/taxonomy"
)

type fakeStore struct {
	brands   []domain.Brand
	products map[string][]domain.Product
	stats    domain.Stats
	err      error
	lastQ    ports.BrandQuery
}

func (f *fakeStore) ListBrands(context.Context) ([]domain.Brand, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]domain.Brand(nil), f.brands...)
	SortByTrust(out)
	return out, nil
}

func (f *fakeStore) SearchBrands(_ context.Context, q ports.BrandQuery) ([]domain.Brand, error) {
	f.lastQ = q
	if f.err != nil {
		return nil, f.err
	}
	return Filter(f.brands, q), nil
}

func (f *fakeStore) TopBrands(ctx context.Context, limit int) ([]domain.Brand, error) {
	all, err := f.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeStore) BrandBySlug(_ context.Context, slug string) (domain.Brand, error) {
	if f.err != nil {
		return domain.Brand{}, f.err
	}
	for _, b := range f.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return domain.Brand{}, ports.ErrNotFound
}

func (f *fakeStore) ProductsByBrand(_ context.Context, brandID string) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[brandID], nil
}

func (f *fakeStore) ProductBySlug(_ context.Context, slug string) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	for _, ps := range f.products {
		for _, p := range ps {
			if p.Slug == slug {
				return p, nil
			}
		}
	}
	return domain.Product{}, ports.ErrNotFound
}

func (f *fakeStore) Stats(context.Context) (domain.Stats, error) {
	if f.err != nil {
		return domain.Stats{}, f.err
	}
	return f.stats, nil
}

func newTestService(store *fakeStore) (*Service, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(store, taxonomy.Default(), zap.New(core)), logs
}

func TestService_Reads(t *testing.T) {
	store := &fakeStore{
		brands: sampleCatalog(),
		products: map[string][]domain.Product{
			"cerebelly": {{ID: "p1", BrandID: "cerebelly", Slug: "pouch", Name: "Pouch"}},
		},
		stats: domain.Stats{BrandCount: 7},
	}
	svc, logs := newTestService(store)
	ctx := context.Background()

	all, err := svc.AllBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	top, err := svc.TopBrands(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"cerebelly", "purity-coffee"}, slugs(top))

	none, err := svc.TopBrands(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	b, err := svc.BrandBySlug(ctx, "thorne")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "Thorne", b.Name)

	missing, err := svc.BrandBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	products, err := svc.ProductsForBrand(ctx, "thorne")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	p, err := svc.ProductBySlug(ctx, "pouch")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "p1", p.ID)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, st.BrandCount)
	assert.NotNil(t, st.Categories)

	assert.Zero(t, logs.Len())
}

func TestService_SoftFail(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc, logs := newTestService(store)
	ctx := context.Background()

	all, err := svc.AllBrands(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	found, err := svc.Search(ctx, Query{Search: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, found)

	top, err := svc.TopBrands(ctx, 4)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, top)

	b, err := svc.BrandBySlug(ctx, "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, b)

	products, err := svc.ProductsForBrand(ctx, "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, products)

	p, err := svc.ProductBySlug(ctx, "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, p)

	st, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, domain.Stats{Categories: []string{}}, st)

	// Raw store errors are logged, not returned.
	assert.NotContains(t, err.Error(), "connection refused")
	entries := logs.FilterMessage("catalog read failed").All()
	require.Len(t, entries, 7)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
	assert.Equal(t, "list_brands", entries[0].ContextMap()["op"])
}

func TestService_Search(t *testing.T) {
	store := &fakeStore{brands: sampleCatalog()}
	svc, _ := newTestService(store)

	q, _ := QueryFor(svc.Taxonomy(), "", "Living")
	got, err := svc.Search(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []string{"epic"}, slugs(got))
	assert.Equal(t, []string{"Water Filters", "Mattresses", "Cookware"}, store.lastQ.SubCategories)
}

func TestService_Browse(t *testing.T) {
	svc, _ := newTestService(&fakeStore{brands: sampleCatalog()})

	res, err := svc.Browse(context.Background(), "", "Food")
	require.NoError(t, err)
	assert.Equal(t, "Food", res.Selection.Parent)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, []string{"cerebelly", "purity-coffee", "one-degree"}, slugs(res.Brands))
	assert.Equal(t, 3, res.Counts.Parent["Food"])
	assert.Equal(t, 1, res.Counts.Leaf["Garden"])
}

func TestService_BrowseSoftFail(t *testing.T) {
	svc, _ := newTestService(&fakeStore{err: errors.New("timeout")})

	res, err := svc.Browse(context.Background(), "coffee", "Coffee")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, res.Brands)
	assert.Equal(t, "Coffee", res.Query.Category)
	assert.Equal(t, "coffee", res.Query.Search)
}
