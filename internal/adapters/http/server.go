package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	api "betterbrand/internal/api"
	"betterbrand/internal/domain"
	"betterbrand/internal/metrics"
	"betterbrand/internal/ports"
	"betterbrand/internal/services/catalog"
	logosvc "betterbrand/internal/services/logos"
)

// Server implements the generated StrictServerInterface and the HTML pages.
type Server struct {
	catalog *catalog.Service
	logos   ports.LogoProvider
	pages   *renderer
	log     *zap.Logger
	metrics *metrics.Metrics
	dev     bool
}

type Options struct {
	Development bool
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(cat *catalog.Service, logos ports.LogoProvider, opts Options) (*Server, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		catalog: cat,
		logos:   logos,
		pages:   pages,
		log:     log.Named("http"),
		metrics: opts.Metrics,
		dev:     opts.Development,
	}, nil
}

// Routes returns a chi.Router mounting the generated API handlers and the pages.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.observe, s.boundary)

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.jsonError(http.StatusBadRequest),
		ResponseErrorHandlerFunc: s.jsonError(http.StatusInternalServerError),
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.jsonError(http.StatusBadRequest),
	})

	r.Get("/", s.home)
	r.Get("/brands", s.brands)
	r.Get("/brands/{slug}", s.brand)
	r.Get("/products/{slug}", s.product)
	r.Get("/about", s.about)
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	}
	r.NotFound(s.notFound)
	return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) ListBrands(ctx context.Context, req api.ListBrandsRequestObject) (api.ListBrandsResponseObject, error) {
	q, _ := catalog.QueryFor(s.catalog.Taxonomy(), deref(req.Params.Search), deref(req.Params.Category))

	var (
		brands []domain.Brand
		err    error
	)
	if q.IsEmpty() {
		brands, err = s.catalog.AllBrands(ctx)
	} else {
		brands, err = s.catalog.Search(ctx, q)
	}
	if err != nil {
		return api.ListBrands500JSONResponse{Error: "Failed to fetch brands", Brands: []api.Brand{}}, nil
	}
	return api.ListBrands200JSONResponse{Brands: toAPIBrands(brands)}, nil
}

func (s *Server) GetBrand(ctx context.Context, req api.GetBrandRequestObject) (api.GetBrandResponseObject, error) {
	b, err := s.catalog.BrandBySlug(ctx, req.Slug)
	if err != nil {
		return api.GetBrand500JSONResponse{Error: "Failed to fetch brand"}, nil
	}
	if b == nil {
		return api.GetBrand404JSONResponse{Error: "Brand not found"}, nil
	}
	products, err := s.catalog.ProductsForBrand(ctx, b.ID)
	if err != nil {
		return api.GetBrand500JSONResponse{Error: "Failed to fetch brand"}, nil
	}
	return api.GetBrand200JSONResponse{Brand: toAPIBrand(*b), Products: toAPIProducts(products)}, nil
}

func (s *Server) GetLogo(ctx context.Context, req api.GetLogoRequestObject) (api.GetLogoResponseObject, error) {
	host := strings.TrimSpace(deref(req.Params.Domain))
	if host == "" {
		return api.GetLogo400JSONResponse{Error: "Domain parameter is required"}, nil
	}

	logo, err := s.logos.Lookup(ctx, host)
	switch {
	case errors.Is(err, logosvc.ErrInvalidDomain):
		return api.GetLogo400JSONResponse{Error: "Domain parameter is required"}, nil
	case errors.Is(err, logosvc.ErrNotConfigured):
		return api.GetLogo500JSONResponse{Error: "API not configured"}, nil
	case errors.Is(err, logosvc.ErrNotFound):
		return api.GetLogo404JSONResponse{Error: "Brand not found"}, nil
	case err != nil:
		s.log.Warn("logo lookup failed", zap.String("domain", host), zap.Error(err))
		return api.GetLogo500JSONResponse{Error: "Failed to fetch logo"}, nil
	}
	return api.GetLogo200JSONResponse{
		LogoUrl: optional(logo.URL),
		Name:    optional(logo.Name),
		Domain:  logo.Domain,
	}, nil
}

func (s *Server) GetStats(ctx context.Context, _ api.GetStatsRequestObject) (api.GetStatsResponseObject, error) {
	st, err := s.catalog.Stats(ctx)
	if err != nil {
		return api.GetStats500JSONResponse{Error: "Failed to fetch stats"}, nil
	}
	return api.GetStats200JSONResponse{
		BrandCount:      st.BrandCount,
		ProductCount:    st.ProductCount,
		TestResultCount: st.TestResultCount,
		Categories:      st.Categories,
	}, nil
}

func (s *Server) ListCategories(ctx context.Context, _ api.ListCategoriesRequestObject) (api.ListCategoriesResponseObject, error) {
	view, err := s.catalog.Browse(ctx, "", "")
	if err != nil {
		return api.ListCategories500JSONResponse{Error: "Failed to fetch categories"}, nil
	}
	return api.ListCategories200JSONResponse{Groups: toAPIGroups(s.catalog.Taxonomy().Groups, view.Counts)}, nil
}

func (s *Server) jsonError(status int) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if status >= http.StatusInternalServerError {
			s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
