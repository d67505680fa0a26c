package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"betterbrand/internal/domain"
	"betterbrand/internal/metrics"
	"betterbrand/internal/ports"
	"betterbrand/internal/taxonomy"
)

// ErrUnavailable signals that the store failed and a soft default was returned.
// The underlying error is logged, never returned.
var ErrUnavailable = errors.New("catalog temporarily unavailable")

// Service is the data-access boundary over the catalog store. Every method
// returns a usable default alongside any error.
type Service struct {
	store   ports.CatalogStore
	tax     *taxonomy.Taxonomy
	log     *zap.Logger
	metrics *metrics.Metrics
}

func New(store ports.CatalogStore, tax *taxonomy.Taxonomy, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, tax: tax, log: log.Named("catalog")}
}

// WithMetrics counts soft-failed reads.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

func (s *Service) Taxonomy() *taxonomy.Taxonomy { return s.tax }

func (s *Service) fail(op string, err error, fields ...zap.Field) error {
	s.log.Error("catalog read failed", append([]zap.Field{zap.String("op", op), zap.Error(err)}, fields...)...)
	s.metrics.CatalogReadFailed(op)
	return ErrUnavailable
}

func (s *Service) AllBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.store.ListBrands(ctx)
	if err != nil {
		return []domain.Brand{}, s.fail("list_brands", err)
	}
	return nonNil(brands), nil
}

// Search runs q against the store, which builds the predicate server-side.
func (s *Service) Search(ctx context.Context, q Query) ([]domain.Brand, error) {
	brands, err := s.store.SearchBrands(ctx, q)
	if err != nil {
		return []domain.Brand{}, s.fail("search_brands", err, zap.String("search", q.Search), zap.String("category", q.Category))
	}
	return nonNil(brands), nil
}

func (s *Service) TopBrands(ctx context.Context, limit int) ([]domain.Brand, error) {
	if limit <= 0 {
		return []domain.Brand{}, nil
	}
	brands, err := s.store.TopBrands(ctx, limit)
	if err != nil {
		return []domain.Brand{}, s.fail("top_brands", err, zap.Int("limit", limit))
	}
	return nonNil(brands), nil
}

// BrandBySlug returns nil, nil when the slug does not exist.
func (s *Service) BrandBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	b, err := s.store.BrandBySlug(ctx, slug)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail("brand_by_slug", err, zap.String("slug", slug))
	}
	return &b, nil
}

func (s *Service) ProductsForBrand(ctx context.Context, brandID string) ([]domain.Product, error) {
	products, err := s.store.ProductsByBrand(ctx, brandID)
	if err != nil {
		return []domain.Product{}, s.fail("products_by_brand", err, zap.String("brand_id", brandID))
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// ProductBySlug returns nil, nil when the slug does not exist.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := s.store.ProductBySlug(ctx, slug)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail("product_by_slug", err, zap.String("slug", slug))
	}
	return &p, nil
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return domain.Stats{Categories: []string{}}, s.fail("stats", err)
	}
	if st.Categories == nil {
		st.Categories = []string{}
	}
	return st, nil
}

// Browse is the catalog page model.
type Browse struct {
	Query     Query
	Selection taxonomy.Selection
	Brands    []domain.Brand
	Total     int // brands before filtering
	Counts    taxonomy.Counts
}

// Browse loads the whole catalog once and composes the filter in memory, so
// category counts reflect the unfiltered catalog.
func (s *Service) Browse(ctx context.Context, search, category string) (Browse, error) {
	q, sel := QueryFor(s.tax, search, category)
	all, err := s.AllBrands(ctx)
	cats := make([]string, len(all))
	for i, b := range all {
		cats[i] = b.Category
	}
	return Browse{
		Query:     q,
		Selection: sel,
		Brands:    Filter(all, q),
		Total:     len(all),
		Counts:    s.tax.Count(cats),
	}, err
}

func nonNil(brands []domain.Brand) []domain.Brand {
	if brands == nil {
		return []domain.Brand{}
	}
	return brands
}
