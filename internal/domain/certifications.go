package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Certification is a named certification shown on a brand page.
type Certification struct {
	Name        string
	Description string
}

var knownCertifications = []struct {
	key  string
	cert Certification
}{
	{"gots", Certification{"GOTS Certified", "Global Organic Textile Standard. Ensures organic status from harvesting through manufacturing."}},
	{"usda", Certification{"USDA Organic", "United States Department of Agriculture certification for organic farming and processing."}},
	{"organic", Certification{"Certified Organic", "Products made without synthetic pesticides, fertilizers, or GMOs."}},
	{"ewg", Certification{"EWG Verified", "Environmental Working Group verification for health and safety standards."}},
	{"made safe", Certification{"MADE SAFE", "Certified free from known harmful substances and chemicals."}},
	{"nsf", Certification{"NSF Certified", "National Sanitation Foundation certification for public health protection."}},
	{"greenguard", Certification{"GREENGUARD Gold", "Certified for low chemical emissions, safe for sensitive environments."}},
	{"glyphosate", Certification{"Glyphosate Residue Free", "Tested and certified free from glyphosate pesticide residue."}},
	{"purity award", Certification{"Purity Award", "Industry recognition for exceptional product purity and quality."}},
	{"clean label", Certification{"Clean Label Project", "Third-party tested for contaminants and label accuracy."}},
	{"ifos", Certification{"IFOS 5-Star", "International Fish Oil Standards. Highest purity and potency rating."}},
}

// ExtractCertifications lists the known certifications named in a proof type.
// An unrecognised, non-empty proof type is returned as a single generic entry.
func ExtractCertifications(proofType string) []Certification {
	if strings.TrimSpace(proofType) == "" {
		return nil
	}
	folded := cases.Fold().String(proofType)
	var found []Certification
	for _, kc := range knownCertifications {
		if strings.Contains(folded, kc.key) {
			found = append(found, kc.cert)
		}
	}
	if len(found) == 0 {
		found = append(found, Certification{Name: proofType, Description: "Third-party certification or verification."})
	}
	return found
}
