package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Tier is the ordinal transparency rating derived from a brand's evidence.
// It is computed on demand and never stored.
type Tier int

const (
	TierLabelCheck   Tier = 1
	TierCertified    Tier = 2
	TierDataVerified Tier = 3
)

// TierInfo is the presentation metadata for a tier.
type TierInfo struct {
	Tier        Tier
	Label       string
	Description string
	Icon        string
}

var tierInfo = map[Tier]TierInfo{
	TierLabelCheck: {
		Tier:        TierLabelCheck,
		Label:       "Label Check",
		Description: "Ingredients vetted for harmful chemicals",
		Icon:        "🔍",
	},
	TierCertified: {
		Tier:        TierCertified,
		Label:       "Certified",
		Description: "Independently certified (USDA, GOTS, NSF, EWG, etc.)",
		Icon:        "🏆",
	},
	TierDataVerified: {
		Tier:        TierDataVerified,
		Label:       "Data Verified",
		Description: "Publishes raw lab results (CoAs)",
		Icon:        "🔬",
	},
}

// Info returns presentation metadata. Unknown values fall back to tier 1.
func (t Tier) Info() TierInfo {
	if info, ok := tierInfo[t]; ok {
		return info
	}
	return tierInfo[TierLabelCheck]
}

func (t Tier) String() string { return t.Info().Label }

// EvidenceKind is one enumerated kind of disclosure a brand can offer.
type EvidenceKind uint8

const (
	EvidenceLabReports EvidenceKind = 1 << iota
	EvidenceCertification
)

var evidenceNames = []struct {
	kind EvidenceKind
	name string
}{
	{EvidenceLabReports, "lab_reports"},
	{EvidenceCertification, "certification"},
}

// Evidence is the set of evidence kinds attached to a brand at data-entry time.
type Evidence uint8

func NewEvidence(kinds ...EvidenceKind) Evidence {
	var e Evidence
	for _, k := range kinds {
		e |= Evidence(k)
	}
	return e
}

func (e Evidence) Has(k EvidenceKind) bool { return e&Evidence(k) != 0 }

func (e Evidence) IsEmpty() bool { return e == 0 }

// Tier maps an evidence set to its tier. Lab reports dominate certifications.
func (e Evidence) Tier() Tier {
	switch {
	case e.Has(EvidenceLabReports):
		return TierDataVerified
	case e.Has(EvidenceCertification):
		return TierCertified
	default:
		return TierLabelCheck
	}
}

// Names returns the stored representation, in a fixed order.
func (e Evidence) Names() []string {
	out := []string{}
	for _, n := range evidenceNames {
		if e.Has(n.kind) {
			out = append(out, n.name)
		}
	}
	return out
}

// ParseEvidenceNames is the inverse of Names.
func ParseEvidenceNames(names []string) (Evidence, error) {
	var e Evidence
	for _, raw := range names {
		found := false
		for _, n := range evidenceNames {
			if strings.EqualFold(strings.TrimSpace(raw), n.name) {
				e |= Evidence(n.kind)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown evidence kind %q", raw)
		}
	}
	return e, nil
}

// Keywords are matched as case-folded substrings of proof_type.
var (
	labReportKeywords = foldAll(
		"CoA", "Certificate of Analysis", "Lab Results", "Performance Data Sheet",
		"Track Your Lot", "In-House Lab", "IFOS", "Public Lab", "Batch-Level",
		"Lookup Tool", "QR Code", "ISO 17025", "AB 899",
	)
	certificationKeywords = foldAll(
		"Certified", "USDA", "Organic", "GOTS", "NSF", "EWG", "MADE SAFE",
		"Greenguard", "Glyphosate Residue Free", "Purity Award", "Clean Label",
		"COSMOS", "B Corp", "GOLS",
	)
)

func foldAll(words ...string) []string {
	fold := cases.Fold()
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fold.String(w)
	}
	return out
}

func containsAny(folded string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(folded, k) {
			return true
		}
	}
	return false
}

// ParseEvidence derives an evidence set from a free-text proof type.
func ParseEvidence(proofType string) Evidence {
	if proofType == "" {
		return 0
	}
	folded := cases.Fold().String(proofType)
	var e Evidence
	if containsAny(folded, labReportKeywords) {
		e |= Evidence(EvidenceLabReports)
	}
	if containsAny(folded, certificationKeywords) {
		e |= Evidence(EvidenceCertification)
	}
	return e
}

// ClassifyTier assigns a brand its transparency tier from the evidence in
// proof_type plus any stored evidence. Stored evidence can only raise the
// tier. trust_score is not consulted.
func ClassifyTier(b Brand) Tier {
	return (ParseEvidence(b.ProofType) | b.Evidence).Tier()
}
