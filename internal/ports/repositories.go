package ports

import (
	"context"
	"errors"

	"betterbrand/internal/domain"
)

// ErrNotFound is returned by repositories when a slug or id does not resolve.
var ErrNotFound = errors.New("not found")

// BrandQuery is a store-side catalog filter. Empty fields do not restrict.
type BrandQuery struct {
	Search        string
	Category      string
	SubCategories []string
}

func (q BrandQuery) IsEmpty() bool {
	return q.Search == "" && q.Category == "" && len(q.SubCategories) == 0
}

// BrandRepository reads the brand catalog. All listings are ordered by
// trust_score descending.
type BrandRepository interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	SearchBrands(ctx context.Context, q BrandQuery) ([]domain.Brand, error)
	TopBrands(ctx context.Context, limit int) ([]domain.Brand, error)
	BrandBySlug(ctx context.Context, slug string) (domain.Brand, error)
}

// ProductRepository reads products with their test results.
type ProductRepository interface {
	ProductsByBrand(ctx context.Context, brandID string) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug string) (domain.Product, error)
}

// StatsRepository provides aggregate catalog counts.
type StatsRepository interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

// CatalogStore is everything the catalog service reads from.
type CatalogStore interface {
	BrandRepository
	ProductRepository
	StatsRepository
}

// BrandWriter upserts brands by slug. Used only by out-of-band seeding.
type BrandWriter interface {
	UpsertBrand(ctx context.Context, b domain.Brand) (id string, err error)
}
