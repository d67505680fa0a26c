package httpadapter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"betterbrand/internal/domain"
	"betterbrand/internal/services/catalog"
	"betterbrand/internal/taxonomy"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = []string{
	"home.html",
	"brands.html",
	"brand.html",
	"product.html",
	"about.html",
	"notfound.html",
	"unavailable.html",
}

var templateFuncs = template.FuncMap{
	"tier": func(b domain.Brand) domain.TierInfo {
		return domain.ClassifyTier(b).Info()
	},
	"brandsURL": brandsURL,
	"logoQuery": func(host string) string {
		return "/api/logo?" + url.Values{"domain": {host}}.Encode()
	},
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"year": func() int { return time.Now().Year() },
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	rd := &renderer{pages: make(map[string]*template.Template, len(pageTemplates))}
	for _, name := range pageTemplates {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		rd.pages[name] = t
	}
	return rd, nil
}

// render executes into a buffer so a template error never leaves a half-written page.
func (rd *renderer) render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// brandsURL builds a catalog link; empty values are left out of the query string.
func brandsURL(search, category string) string {
	v := url.Values{}
	if search != "" {
		v.Set("search", search)
	}
	if category != "" {
		v.Set("category", category)
	}
	if len(v) == 0 {
		return "/brands"
	}
	return "/brands?" + v.Encode()
}

// chrome is the data every page's layout reads.
type chrome struct {
	Title       string
	Nav         string
	Degraded    bool
	Description string
}

type crumb struct {
	Label string
	URL   string
}

type groupView struct {
	taxonomy.Group
	Count    int
	Active   bool
	Children []leafView
}

type leafView struct {
	Name   string
	Count  int
	Active bool
	URL    string
}

func groupViews(tax *taxonomy.Taxonomy, counts taxonomy.Counts, search string, sel taxonomy.Selection) []groupView {
	out := make([]groupView, len(tax.Groups))
	for i, g := range tax.Groups {
		gv := groupView{Group: g, Count: counts.Parent[g.Name], Active: sel.Parent == g.Name}
		for _, leaf := range g.SubCategories {
			gv.Children = append(gv.Children, leafView{
				Name:   leaf,
				Count:  counts.Leaf[leaf],
				Active: sel.Leaf == leaf,
				URL:    brandsURL(search, leaf),
			})
		}
		out[i] = gv
	}
	return out
}

type homePage struct {
	chrome
	Top    []domain.Brand
	Stats  domain.Stats
	Groups []groupView
	Tiers  []domain.TierInfo
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	top, topErr := s.catalog.TopBrands(ctx, 4)
	stats, statsErr := s.catalog.Stats(ctx)
	view, browseErr := s.catalog.Browse(ctx, "", "")

	data := homePage{
		chrome: chrome{
			Title:    "Better Brand Directory",
			Nav:      "home",
			Degraded: topErr != nil || statsErr != nil || browseErr != nil,
		},
		Top:    top,
		Stats:  stats,
		Groups: groupViews(s.catalog.Taxonomy(), view.Counts, "", taxonomy.Selection{}),
		Tiers: []domain.TierInfo{
			domain.TierDataVerified.Info(),
			domain.TierCertified.Info(),
			domain.TierLabelCheck.Info(),
		},
	}
	s.page(w, r, http.StatusOK, "home.html", data)
}

type brandsPage struct {
	chrome
	catalog.Browse
	Heading     string
	Crumbs      []crumb
	Groups      []groupView
	ActiveGroup *groupView
	ClearURL    string
}

func (s *Server) brands(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	view, err := s.catalog.Browse(r.Context(), search, category)

	data := brandsPage{
		chrome:   chrome{Title: "All Brands", Nav: "brands", Degraded: err != nil},
		Browse:   view,
		Heading:  "All Brands",
		Crumbs:   []crumb{{"Home", "/"}, {"Brands", "/brands"}},
		Groups:   groupViews(s.catalog.Taxonomy(), view.Counts, view.Query.Search, view.Selection),
		ClearURL: "/brands",
	}
	sel := view.Selection
	if sel.Parent != "" {
		data.Heading = sel.Parent
		data.Crumbs = append(data.Crumbs, crumb{sel.Parent, brandsURL(view.Query.Search, sel.Parent)})
		for i := range data.Groups {
			if data.Groups[i].Name == sel.Parent {
				data.ActiveGroup = &data.Groups[i]
			}
		}
	}
	if sel.Leaf != "" {
		data.Heading = sel.Leaf
		data.Crumbs = append(data.Crumbs, crumb{sel.Leaf, ""})
	}
	if data.Heading != "All Brands" {
		data.Title = data.Heading + " Brands"
	}
	s.page(w, r, http.StatusOK, "brands.html", data)
}

type brandPage struct {
	chrome
	Brand          domain.Brand
	Tier           domain.TierInfo
	Certifications []domain.Certification
	Products       []domain.Product
	Similar        []domain.Brand
	Crumbs         []crumb
}

func (s *Server) brand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	b, err := s.catalog.BrandBySlug(ctx, chi.URLParam(r, "slug"))
	if b == nil {
		// A failed read surfaces as not-found; the service has logged it.
		s.notFoundDegraded(w, r, err != nil)
		return
	}

	tier := domain.ClassifyTier(*b)
	products, productsErr := s.catalog.ProductsForBrand(ctx, b.ID)
	related, relatedErr := s.catalog.Search(ctx, catalog.Query{Category: b.Category})

	data := brandPage{
		chrome: chrome{
			Title:       b.Name,
			Nav:         "brands",
			Degraded:    productsErr != nil || relatedErr != nil,
			Description: b.DisplayTagline(),
		},
		Brand:    *b,
		Tier:     tier.Info(),
		Products: products,
		Similar:  catalog.Similar(related, *b, 3),
		Crumbs: []crumb{
			{"Home", "/"},
			{"Brands", "/brands"},
			{b.Category, brandsURL("", b.Category)},
			{b.Name, ""},
		},
	}
	if tier == domain.TierCertified {
		data.Certifications = domain.ExtractCertifications(b.ProofType)
	}
	s.page(w, r, http.StatusOK, "brand.html", data)
}

type productPage struct {
	chrome
	Product domain.Product
	Crumbs  []crumb
}

func (s *Server) product(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.ProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if p == nil {
		s.notFoundDegraded(w, r, err != nil)
		return
	}
	crumbs := []crumb{{"Home", "/"}, {"Brands", "/brands"}}
	if p.Brand != nil {
		crumbs = append(crumbs, crumb{p.Brand.Name, "/brands/" + url.PathEscape(p.Brand.Slug)})
	}
	crumbs = append(crumbs, crumb{p.Name, ""})
	s.page(w, r, http.StatusOK, "product.html", productPage{
		chrome:  chrome{Title: p.Name, Nav: "brands"},
		Product: *p,
		Crumbs:  crumbs,
	})
}

type aboutPage struct {
	chrome
	Tiers []domain.TierInfo
}

func (s *Server) about(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "about.html", aboutPage{
		chrome: chrome{Title: "About", Nav: "about"},
		Tiers: []domain.TierInfo{
			domain.TierDataVerified.Info(),
			domain.TierCertified.Info(),
			domain.TierLabelCheck.Info(),
		},
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.notFoundDegraded(w, r, false)
}

func (s *Server) notFoundDegraded(w http.ResponseWriter, r *http.Request, degraded bool) {
	s.page(w, r, http.StatusNotFound, "notfound.html", chrome{Title: "Page Not Found", Degraded: degraded})
}

type unavailablePage struct {
	chrome
	RetryURL string
	Detail   string
}

// unavailable renders the friendly error page. It is the last resort, so a
// failure to render it falls back to plain text.
func (s *Server) unavailable(w http.ResponseWriter, r *http.Request, cause error) {
	data := unavailablePage{
		chrome:   chrome{Title: "Temporarily Unavailable"},
		RetryURL: r.URL.RequestURI(),
	}
	if s.dev && cause != nil {
		data.Detail = cause.Error()
	}
	if err := s.pages.render(w, http.StatusInternalServerError, "unavailable.html", data); err != nil {
		s.log.Error("render unavailable page", zap.Error(err))
		http.Error(w, "This page is temporarily unavailable. Please try again.", http.StatusInternalServerError)
	}
}

func (s *Server) page(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := s.pages.render(w, status, name, data); err != nil {
		s.log.Error("render page", zap.String("template", name), zap.Error(err))
		s.unavailable(w, r, err)
	}
}
