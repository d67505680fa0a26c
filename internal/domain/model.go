package domain

import (
	"hash/fnv"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Core catalog models. API types are generated from OpenAPI and sit in
// internal/api; handlers map between the two.

// Brand is a company or product line rated by the directory. Optional text
// fields use the empty string for "absent".
type Brand struct {
	ID               string
	Name             string
	Slug             string
	Category         string
	SubCategory      string
	Tagline          string
	ProofType        string
	ProofURL         string
	ProofDescription string
	TrustScore       int
	AffiliateLink    string
	LogoURL          string
	Evidence         Evidence
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Product struct {
	ID          string
	BrandID     string
	Name        string
	Slug        string
	Category    string
	ImageURL    string
	CreatedAt   time.Time
	Brand       *Brand
	TestResults []TestResult
	Ingredients []Ingredient
}

type TestResult struct {
	ID          string
	ProductID   string
	TestType    string // PFAS|HeavyMetals|Glyphosate|Pesticides|Microplastics|Mycotoxins|VOCs|Leaching
	Status      string // Pass|Fail|NonDetect|Pending
	ResultValue string
	PDFURL      string
	LabName     string
	TestedAt    *time.Time
	CreatedAt   time.Time
}

type Ingredient struct {
	ID          string
	Name        string
	SafetyLevel string // Safe|Caution|Avoid
	Description string
	Sources     []string
}

// Stats aggregates catalog counts for the home page and /api/stats.
type Stats struct {
	BrandCount      int
	ProductCount    int
	TestResultCount int
	Categories      []string
}

// ClampTrustScore keeps a score inside [0,100].
func ClampTrustScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

var categoryTaglines = map[string]string{
	"Beauty":         "Transparent ingredient disclosure",
	"Baby Food":      "Heavy metal tested formula",
	"Coffee":         "Mold & mycotoxin screened",
	"Pantry":         "Pesticide residue tested",
	"Supplements":    "Third-party COA verified",
	"Protein Powder": "Third-party COA verified",
	"Water Filters":  "Contaminant removal certified",
	"Mattresses":     "Low-VOC emission certified",
	"Cookware":       "Non-toxic coating verified",
}

// DisplayTagline returns the stored tagline, a category default, or a generic line.
func (b Brand) DisplayTagline() string {
	if b.Tagline != "" {
		return b.Tagline
	}
	if t, ok := categoryTaglines[b.Category]; ok {
		return t
	}
	return "Transparency verified"
}

// LogoDomain is the host of the brand's outbound link, used for logo lookups.
func (b Brand) LogoDomain() string {
	if b.AffiliateLink == "" {
		return ""
	}
	u, err := url.Parse(b.AffiliateLink)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// Initial is the placeholder glyph shown when no logo is available.
func (b Brand) Initial() string {
	for _, r := range b.Name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	if r, _ := utf8.DecodeRuneInString(b.Name); r != utf8.RuneError {
		return string(r)
	}
	return "?"
}

var placeholderPalette = []string{
	"#059669", "#2563eb", "#7c3aed", "#db2777", "#ea580c", "#0891b2", "#4d7c0f", "#475569",
}

// PlaceholderColor picks a stable colour for the placeholder initial.
func (b Brand) PlaceholderColor() string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(b.Name))
	return placeholderPalette[int(h.Sum32()%uint32(len(placeholderPalette)))]
}
