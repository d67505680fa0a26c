package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"betterbrand/internal/domain"
	"betterbrand/internal/ports"
)

const productColumns = `
	id::text, COALESCE(brand_id::text, ''), name, slug,
	COALESCE(category, ''), COALESCE(image_url, ''), COALESCE(created_at, now())`

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.BrandID, &p.Name, &p.Slug, &p.Category, &p.ImageURL, &p.CreatedAt)
	return p, err
}

// ProductsByBrand returns a brand's products with their test results attached.
func (db *DB) ProductsByBrand(ctx context.Context, brandID string) ([]domain.Product, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE brand_id = $1 ORDER BY name`, brandID)
	if err != nil {
		return nil, fmt.Errorf("products by brand: %w", err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("products by brand: %w", err)
	}
	if len(products) == 0 {
		return products, nil
	}

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	results, err := db.testResults(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].TestResults = results[products[i].ID]
	}
	return products, nil
}

// ProductBySlug returns a product with its brand, test results and ingredients.
func (db *DB) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	p, err := scanProduct(db.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ports.ErrNotFound
	}
	if err != nil {
		return p, fmt.Errorf("product by slug: %w", err)
	}

	if p.BrandID != "" {
		b, err := db.brandByID(ctx, p.BrandID)
		switch {
		case err == nil:
			p.Brand = &b
		case !errors.Is(err, ports.ErrNotFound):
			return p, fmt.Errorf("product brand: %w", err)
		}
	}

	results, err := db.testResults(ctx, []string{p.ID})
	if err != nil {
		return p, err
	}
	p.TestResults = results[p.ID]

	if p.Ingredients, err = db.ingredients(ctx, p.ID); err != nil {
		return p, err
	}
	return p, nil
}

func (db *DB) testResults(ctx context.Context, productIDs []string) (map[string][]domain.TestResult, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id::text, product_id::text, test_type, status,
			COALESCE(result_value, ''), COALESCE(pdf_url, ''), COALESCE(lab_name, ''),
			tested_at, COALESCE(created_at, now())
		FROM test_results
		WHERE product_id::text = ANY($1::text[])
		ORDER BY tested_at DESC NULLS LAST, test_type
	`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("test results: %w", err)
	}
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TestResult, error) {
		var r domain.TestResult
		err := row.Scan(&r.ID, &r.ProductID, &r.TestType, &r.Status,
			&r.ResultValue, &r.PDFURL, &r.LabName, &r.TestedAt, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("test results: %w", err)
	}
	out := make(map[string][]domain.TestResult, len(productIDs))
	for _, r := range results {
		out[r.ProductID] = append(out[r.ProductID], r)
	}
	return out, nil
}

func (db *DB) ingredients(ctx context.Context, productID string) ([]domain.Ingredient, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT i.id::text, i.name, i.safety_level, COALESCE(i.description, ''), COALESCE(i.sources, '{}')
		FROM ingredients i
		JOIN product_ingredients pi ON pi.ingredient_id = i.id
		WHERE pi.product_id = $1
		ORDER BY i.name
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("ingredients: %w", err)
	}
	ingredients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ingredient, error) {
		var in domain.Ingredient
		err := row.Scan(&in.ID, &in.Name, &in.SafetyLevel, &in.Description, &in.Sources)
		return in, err
	})
	if err != nil {
		return nil, fmt.Errorf("ingredients: %w", err)
	}
	return ingredients, nil
}

// Stats issues the aggregate counts as one batch.
func (db *DB) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	batch := &pgx.Batch{}
	batch.Queue(`SELECT count(*) FROM brands`)
	batch.Queue(`SELECT count(*) FROM products`)
	batch.Queue(`SELECT count(*) FROM test_results`)
	batch.Queue(`SELECT DISTINCT category FROM brands ORDER BY category`)

	br := db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for _, dst := range []*int{&st.BrandCount, &st.ProductCount, &st.TestResultCount} {
		if err := br.QueryRow().Scan(dst); err != nil {
			return domain.Stats{}, fmt.Errorf("stats counts: %w", err)
		}
	}
	rows, err := br.Query()
	if err != nil {
		return domain.Stats{}, fmt.Errorf("stats categories: %w", err)
	}
	if st.Categories, err = pgx.CollectRows(rows, pgx.RowTo[string]); err != nil {
		return domain.Stats{}, fmt.Errorf("stats categories: %w", err)
	}
	return st, nil
}
