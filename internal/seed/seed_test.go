package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betterbrand/internal/domain"
	"betterbrand/internal/taxonomy"
)

func TestDefaultCatalog(t *testing.T) {
	brands, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, brands)

	tax := taxonomy.Default()
	bySlug := map[string]domain.Brand{}
	for _, b := range brands {
		assert.GreaterOrEqual(t, b.TrustScore, 0, b.Slug)
		assert.LessOrEqual(t, b.TrustScore, 100, b.Slug)
		_, ok := tax.ParentOf(b.Category)
		assert.True(t, ok, "category %q of %s is not in the taxonomy", b.Category, b.Slug)
		bySlug[b.Slug] = b
	}

	assert.Equal(t, domain.TierDataVerified, domain.ClassifyTier(bySlug["cerebelly"]))
	assert.Equal(t, domain.TierCertified, domain.ClassifyTier(bySlug["naturepedic"]))
	assert.Equal(t, domain.TierLabelCheck, domain.ClassifyTier(bySlug["primally-pure"]))
	assert.Equal(t, domain.TierLabelCheck, domain.ClassifyTier(bySlug["360-cookware"]))
	assert.Equal(t, domain.TierLabelCheck, domain.ClassifyTier(bySlug["happsy"]))
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad slug", "brands:\n  - {name: A, slug: 'Not Safe', category: Coffee}\n", "URL-safe"},
		{"duplicate slug", "brands:\n  - {name: A, slug: a, category: Coffee}\n  - {name: B, slug: a, category: Coffee}\n", "duplicate"},
		{"missing category", "brands:\n  - {name: A, slug: a}\n", "required"},
		{"unknown evidence", "brands:\n  - {name: A, slug: a, category: Coffee, evidence: [avoid]}\n", "unknown evidence"},
		{"unknown field", "brands:\n  - {name: A, slug: a, category: Coffee, colour: red}\n", "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadClampsAndDerives(t *testing.T) {
	brands, err := Load(strings.NewReader("brands:\n  - {name: A, slug: a, category: Coffee, trust_score: 140, proof_type: USDA Organic}\n"))
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, 100, brands[0].TrustScore)
	assert.True(t, brands[0].Evidence.Has(domain.EvidenceCertification))
}

func TestLoadListedEvidenceAdds(t *testing.T) {
	brands, err := Load(strings.NewReader("brands:\n  - {name: A, slug: a, category: Coffee, proof_type: Batch-Level CoA, evidence: [certification]}\n"))
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.True(t, brands[0].Evidence.Has(domain.EvidenceLabReports))
	assert.True(t, brands[0].Evidence.Has(domain.EvidenceCertification))
	assert.Equal(t, domain.TierDataVerified, domain.ClassifyTier(brands[0]))
}

type recordingWriter struct {
	got  []domain.Brand
	fail string
}

func (w *recordingWriter) UpsertBrand(_ context.Context, b domain.Brand) (string, error) {
	if b.Slug == w.fail {
		return "", errors.New("boom")
	}
	w.got = append(w.got, b)
	return b.ID, nil
}

func TestApply(t *testing.T) {
	brands := []domain.Brand{{Slug: "a"}, {Slug: "b", ID: "fixed"}}
	w := &recordingWriter{}
	n, err := Apply(context.Background(), w, brands, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NotEmpty(t, w.got[0].ID)
	assert.Equal(t, "fixed", w.got[1].ID)
	assert.Empty(t, brands[0].ID, "input is not mutated")

	w = &recordingWriter{fail: "b"}
	n, err = Apply(context.Background(), w, brands, nil)
	require.Error(t, err)
	assert.Equal(t, 1, n)
}
