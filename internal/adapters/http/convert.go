package httpadapter

import (
	api "betterbrand/internal/api"
	"betterbrand/internal/domain"
	"betterbrand/internal/taxonomy"
)

func toAPITier(t domain.Tier) api.TierInfo {
	info := t.Info()
	return api.TierInfo{
		Tier:        int(info.Tier),
		Label:       info.Label,
		Description: info.Description,
		Icon:        info.Icon,
	}
}

func toAPIBrand(b domain.Brand) api.Brand {
	names := (domain.ParseEvidence(b.ProofType) | b.Evidence).Names()
	kinds := make([]api.BrandEvidence, len(names))
	for i, n := range names {
		kinds[i] = api.BrandEvidence(n)
	}
	return api.Brand{
		Id:               b.ID,
		Name:             b.Name,
		Slug:             b.Slug,
		Category:         b.Category,
		SubCategory:      optional(b.SubCategory),
		Tagline:          b.DisplayTagline(),
		ProofType:        optional(b.ProofType),
		ProofUrl:         optional(b.ProofURL),
		ProofDescription: optional(b.ProofDescription),
		TrustScore:       b.TrustScore,
		AffiliateLink:    optional(b.AffiliateLink),
		LogoUrl:          optional(b.LogoURL),
		Evidence:         kinds,
		Tier:             toAPITier(domain.ClassifyTier(b)),
	}
}

func toAPIBrands(brands []domain.Brand) []api.Brand {
	out := make([]api.Brand, len(brands))
	for i, b := range brands {
		out[i] = toAPIBrand(b)
	}
	return out
}

func toAPIProducts(products []domain.Product) []api.Product {
	out := make([]api.Product, len(products))
	for i, p := range products {
		results := make([]api.TestResult, len(p.TestResults))
		for j, r := range p.TestResults {
			results[j] = api.TestResult{
				Id:          r.ID,
				TestType:    r.TestType,
				Status:      r.Status,
				ResultValue: optional(r.ResultValue),
				PdfUrl:      optional(r.PDFURL),
				LabName:     optional(r.LabName),
				TestedAt:    r.TestedAt,
			}
		}
		out[i] = api.Product{
			Id:          p.ID,
			Name:        p.Name,
			Slug:        p.Slug,
			Category:    optional(p.Category),
			ImageUrl:    optional(p.ImageURL),
			TestResults: results,
		}
	}
	return out
}

func toAPIGroups(groups []taxonomy.Group, counts taxonomy.Counts) []api.CategoryGroup {
	out := make([]api.CategoryGroup, len(groups))
	for i, g := range groups {
		subs := make([]api.CategoryCount, len(g.SubCategories))
		for j, sc := range g.SubCategories {
			subs[j] = api.CategoryCount{Name: sc, Count: counts.Leaf[sc]}
		}
		out[i] = api.CategoryGroup{
			Name:          g.Name,
			Emoji:         g.Emoji,
			Icon:          g.Icon,
			Count:         counts.Parent[g.Name],
			SubCategories: subs,
		}
	}
	return out
}
