package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"betterbrand/internal/domain"
	"betterbrand/internal/ports"
)

var (
	_ ports.CatalogStore = (*DB)(nil)
	_ ports.BrandWriter  = (*DB)(nil)
)

const brandColumns = `
	id::text, name, slug, category,
	COALESCE(sub_category, ''), COALESCE(tagline, ''),
	COALESCE(proof_type, ''), COALESCE(proof_url, ''), COALESCE(proof_description, ''),
	COALESCE(trust_score, 0), COALESCE(affiliate_link, ''), COALESCE(logo_url, ''),
	COALESCE(evidence, '{}'),
	COALESCE(created_at, now()), COALESCE(updated_at, now())`

const brandOrder = ` ORDER BY trust_score DESC NULLS LAST, name`

func scanBrand(row pgx.Row) (domain.Brand, error) {
	var b domain.Brand
	var evidence []string
	err := row.Scan(
		&b.ID, &b.Name, &b.Slug, &b.Category,
		&b.SubCategory, &b.Tagline,
		&b.ProofType, &b.ProofURL, &b.ProofDescription,
		&b.TrustScore, &b.AffiliateLink, &b.LogoURL,
		&evidence,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return b, err
	}
	if b.Evidence, err = domain.ParseEvidenceNames(evidence); err != nil {
		return b, fmt.Errorf("brand %s: %w", b.Slug, err)
	}
	return b, nil
}

func collectBrands(rows pgx.Rows) ([]domain.Brand, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Brand, error) {
		return scanBrand(row)
	})
}

// ListBrands returns the whole catalog.
func (db *DB) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+brandColumns+` FROM brands`+brandOrder)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return collectBrands(rows)
}

// SearchBrands evaluates a catalog query as a SQL predicate.
func (db *DB) SearchBrands(ctx context.Context, q ports.BrandQuery) ([]domain.Brand, error) {
	sql, args := brandSearchSQL(q)
	rows, err := db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search brands: %w", err)
	}
	return collectBrands(rows)
}

func (db *DB) TopBrands(ctx context.Context, limit int) ([]domain.Brand, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+brandColumns+` FROM brands`+brandOrder+` LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top brands: %w", err)
	}
	return collectBrands(rows)
}

func (db *DB) BrandBySlug(ctx context.Context, slug string) (domain.Brand, error) {
	b, err := scanBrand(db.Pool.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return b, ports.ErrNotFound
	}
	return b, err
}

func (db *DB) brandByID(ctx context.Context, id string) (domain.Brand, error) {
	b, err := scanBrand(db.Pool.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return b, ports.ErrNotFound
	}
	return b, err
}

// brandSearchSQL builds the listing statement for q. Search is an OR over the
// text columns; category filters are ANDed on.
func brandSearchSQL(q ports.BrandQuery) (string, []any) {
	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		p := arg("%" + escapeLike(s) + "%")
		where = append(where, fmt.Sprintf(
			"(name ILIKE %[1]s OR category ILIKE %[1]s OR sub_category ILIKE %[1]s OR proof_type ILIKE %[1]s)", p))
	}
	if q.Category != "" {
		where = append(where, "category = "+arg(q.Category))
	}
	if len(q.SubCategories) > 0 {
		where = append(where, "category = ANY("+arg(q.SubCategories)+")")
	}
	sql := `SELECT ` + brandColumns + ` FROM brands`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	return sql + brandOrder, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// UpsertBrand inserts or updates a brand keyed by slug and returns its id.
func (db *DB) UpsertBrand(ctx context.Context, b domain.Brand) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO brands (
			id, name, slug, category, sub_category, tagline,
			proof_type, proof_url, proof_description,
			trust_score, affiliate_link, logo_url, evidence
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			sub_category = EXCLUDED.sub_category,
			tagline = EXCLUDED.tagline,
			proof_type = EXCLUDED.proof_type,
			proof_url = EXCLUDED.proof_url,
			proof_description = EXCLUDED.proof_description,
			trust_score = EXCLUDED.trust_score,
			affiliate_link = EXCLUDED.affiliate_link,
			logo_url = EXCLUDED.logo_url,
			evidence = EXCLUDED.evidence,
			updated_at = now()
		RETURNING id::text
	`,
		b.ID, b.Name, b.Slug, b.Category, nullIfEmpty(b.SubCategory), nullIfEmpty(b.Tagline),
		nullIfEmpty(b.ProofType), nullIfEmpty(b.ProofURL), nullIfEmpty(b.ProofDescription),
		domain.ClampTrustScore(b.TrustScore), nullIfEmpty(b.AffiliateLink), nullIfEmpty(b.LogoURL),
		b.Evidence.Names(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert brand %s: %w", b.Slug, err)
	}
	return id, nil
}
