// Package logos resolves brand logos through the Brandfetch API, keeping the
// API key server-side and caching upstream answers.
package logos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"betterbrand/internal/metrics"
	"betterbrand/internal/ports"
)

var (
	ErrInvalidDomain = errors.New("domain parameter is required")
	ErrNotConfigured = errors.New("logo API not configured")
	ErrNotFound      = ports.ErrLogoNotFound
	ErrUpstream      = errors.New("logo API error")
)

type Config struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:  "https://api.brandfetch.io/v2",
		Timeout:  10 * time.Second,
		CacheTTL: 24 * time.Hour,
	}
}

// Client implements ports.LogoProvider.
type Client struct {
	config     Config
	httpClient *http.Client
	cache      *cache.Cache
	log        *zap.Logger
	metrics    *metrics.Metrics
}

var _ ports.LogoProvider = (*Client)(nil)

type cachedLookup struct {
	logo     ports.Logo
	notFound bool
}

func NewClient(config Config, log *zap.Logger, m *metrics.Metrics) *Client {
	def := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = def.BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = def.Timeout
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = def.CacheTTL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		cache:      cache.New(config.CacheTTL, config.CacheTTL*2),
		log:        log.Named("logos"),
		metrics:    m,
	}
	c.log.Info("logo client initialized",
		zap.String("base_url", config.BaseURL),
		zap.Duration("cache_ttl", config.CacheTTL),
		zap.Bool("api_key_configured", config.APIKey != ""))
	return c
}

// NormalizeDomain strips scheme, path, port and a leading "www.". Subdomains are
// kept. Hosts without a known public suffix, or that are a bare suffix, are
// rejected.
func NormalizeDomain(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrInvalidDomain
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == "" {
		return "", ErrInvalidDomain
	}
	if suffix, icann := publicsuffix.PublicSuffix(host); !icann && !strings.Contains(suffix, ".") {
		return "", fmt.Errorf("%w: unknown public suffix %q", ErrInvalidDomain, suffix)
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}
	return host, nil
}

// Lookup resolves the best logo for a domain. A brand that exists upstream
// but has no usable image yields a Logo with an empty URL and no error.
func (c *Client) Lookup(ctx context.Context, rawDomain string) (ports.Logo, error) {
	domain, err := NormalizeDomain(rawDomain)
	if err != nil {
		return ports.Logo{}, err
	}
	if c.config.APIKey == "" {
		c.log.Error("BRANDFETCH_API_KEY not configured")
		c.metrics.LogoLookup("error")
		return ports.Logo{}, ErrNotConfigured
	}

	if cached, found := c.cache.Get(domain); found {
		if entry, ok := cached.(cachedLookup); ok {
			c.metrics.LogoLookup("hit")
			if entry.notFound {
				return ports.Logo{Domain: domain}, ErrNotFound
			}
			return entry.logo, nil
		}
	}
	c.metrics.LogoLookup("miss")

	reqCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	logo, err := c.fetch(reqCtx, domain)
	switch {
	case errors.Is(err, ErrNotFound):
		c.cache.Set(domain, cachedLookup{notFound: true}, cache.DefaultExpiration)
		c.metrics.LogoLookup("not_found")
		return ports.Logo{Domain: domain}, ErrNotFound
	case err != nil:
		c.log.Warn("logo lookup failed", zap.String("domain", domain), zap.Error(err))
		c.metrics.LogoLookup("error")
		return ports.Logo{Domain: domain}, err
	}
	c.cache.Set(domain, cachedLookup{logo: logo}, cache.DefaultExpiration)
	c.log.Debug("logo cached", zap.String("domain", domain), zap.Bool("has_logo", logo.URL != ""))
	return logo, nil
}

func (c *Client) fetch(ctx context.Context, domain string) (ports.Logo, error) {
	endpoint := fmt.Sprintf("%s/brands/%s", c.config.BaseURL, url.PathEscape(domain))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.Logo{}, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Logo{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.Logo{}, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return ports.Logo{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body brandResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Logo{}, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return ports.Logo{URL: SelectLogo(body.Logos), Name: body.Name, Domain: domain}, nil
}

type brandResponse struct {
	Name   string      `json:"name"`
	Domain string      `json:"domain"`
	Logos  []brandLogo `json:"logos"`
}

type brandLogo struct {
	Type    string       `json:"type"`
	Theme   string       `json:"theme"`
	Formats []logoFormat `json:"formats"`
}

type logoFormat struct {
	Src    string `json:"src"`
	Format string `json:"format"`
}

var (
	typePreference   = []string{"icon", "symbol", "logo"}
	formatPreference = []string{"png", "svg"}
)

// SelectLogo picks an image: icon before symbol before logo, then png before
// svg before whatever format comes first.
func SelectLogo(logos []brandLogo) string {
	var preferred *brandLogo
	for _, t := range typePreference {
		for i := range logos {
			if logos[i].Type == t {
				preferred = &logos[i]
				break
			}
		}
		if preferred != nil {
			break
		}
	}
	if preferred == nil || len(preferred.Formats) == 0 {
		return ""
	}
	for _, f := range formatPreference {
		for _, lf := range preferred.Formats {
			if lf.Format == f && lf.Src != "" {
				return lf.Src
			}
		}
	}
	return preferred.Formats[0].Src
}
