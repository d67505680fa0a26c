// Package seed loads the bundled brand catalog used to populate a fresh
// database. Seeding is the only write path for brands.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"betterbrand/internal/domain"
	"betterbrand/internal/ports"
)

//go:embed brands.yaml
var defaultCatalog []byte

type brandEntry struct {
	Name             string   `yaml:"name"`
	Slug             string   `yaml:"slug"`
	Category         string   `yaml:"category"`
	SubCategory      string   `yaml:"sub_category"`
	Tagline          string   `yaml:"tagline"`
	TrustScore       int      `yaml:"trust_score"`
	ProofType        string   `yaml:"proof_type"`
	ProofURL         string   `yaml:"proof_url"`
	ProofDescription string   `yaml:"proof_description"`
	AffiliateLink    string   `yaml:"affiliate_link"`
	LogoURL          string   `yaml:"logo_url"`
	Evidence         []string `yaml:"evidence"`
}

type catalogFile struct {
	Brands []brandEntry `yaml:"brands"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Default returns the bundled seed catalog.
func Default() ([]domain.Brand, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Load decodes a seed catalog. Trust scores are clamped and the evidence set
// is derived from proof_type, plus any evidence listed explicitly.
func Load(r io.Reader) ([]domain.Brand, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}

	seen := map[string]bool{}
	brands := make([]domain.Brand, 0, len(f.Brands))
	for i, e := range f.Brands {
		if e.Name == "" || e.Category == "" {
			return nil, fmt.Errorf("seed brand %d: name and category are required", i)
		}
		if !slugPattern.MatchString(e.Slug) {
			return nil, fmt.Errorf("seed brand %q: slug %q is not URL-safe", e.Name, e.Slug)
		}
		if seen[e.Slug] {
			return nil, fmt.Errorf("seed brand %q: duplicate slug %q", e.Name, e.Slug)
		}
		seen[e.Slug] = true

		listed, err := domain.ParseEvidenceNames(e.Evidence)
		if err != nil {
			return nil, fmt.Errorf("seed brand %q: %w", e.Slug, err)
		}
		evidence := domain.ParseEvidence(e.ProofType) | listed
		brands = append(brands, domain.Brand{
			Name:             e.Name,
			Slug:             e.Slug,
			Category:         e.Category,
			SubCategory:      e.SubCategory,
			Tagline:          e.Tagline,
			TrustScore:       domain.ClampTrustScore(e.TrustScore),
			ProofType:        e.ProofType,
			ProofURL:         e.ProofURL,
			ProofDescription: e.ProofDescription,
			AffiliateLink:    e.AffiliateLink,
			LogoURL:          e.LogoURL,
			Evidence:         evidence,
		})
	}
	return brands, nil
}

// Apply upserts every brand. New rows get a fresh id; existing slugs keep theirs.
func Apply(ctx context.Context, w ports.BrandWriter, brands []domain.Brand, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	for i, b := range brands {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		id, err := w.UpsertBrand(ctx, b)
		if err != nil {
			return i, err
		}
		log.Debug("brand seeded",
			zap.String("slug", b.Slug),
			zap.String("id", id),
			zap.Stringer("tier", domain.ClassifyTier(b)))
	}
	return len(brands), nil
}
