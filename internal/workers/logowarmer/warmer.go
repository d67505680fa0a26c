// Package logowarmer resolves every brand's logo once at startup so the first
// page views read from a warm cache.
package logowarmer

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"betterbrand/internal/domain"
	"betterbrand/internal/ports"
)

// BrandSource lists the brands whose logos should be resolved.
type BrandSource interface {
	AllBrands(ctx context.Context) ([]domain.Brand, error)
}

// Result counts lookup outcomes across all domains.
type Result struct {
	Domains int
	Found   int
	Missing int
	Failed  int
}

// Domains returns the distinct logo domains of brands without a stored logo.
func Domains(brands []domain.Brand) []string {
	seen := map[string]bool{}
	var out []string
	for _, b := range brands {
		if b.LogoURL != "" {
			continue
		}
		d := b.LogoDomain()
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Run looks up each domain with up to concurrency workers and blocks until
// all lookups finish or ctx is done. Failures are counted, not retried.
func Run(ctx context.Context, src BrandSource, logos ports.LogoProvider, concurrency int, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency < 1 {
		return Result{}, nil
	}
	brands, err := src.AllBrands(ctx)
	if err != nil {
		return Result{}, err
	}
	domains := Domains(brands)
	res := Result{Domains: len(domains)}
	start := time.Now()

	jobsCh := make(chan string)
	outcomes := make(chan error, len(domains))

	// dispatcher
	go func() {
		defer close(jobsCh)
		for _, d := range domains {
			select {
			case <-ctx.Done():
				return
			case jobsCh <- d:
			}
		}
	}()

	// workers
	done := make(chan struct{})
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			defer func() { done <- struct{}{} }()
			for d := range jobsCh {
				logo, err := logos.Lookup(ctx, d)
				if err != nil {
					log.Debug("logo warm failed", zap.Int("worker", idx), zap.String("domain", d), zap.Error(err))
				} else if logo.URL == "" {
					err = errNoImage
				}
				outcomes <- err
			}
		}(i)
	}
	for i := 0; i < concurrency; i++ {
		<-done
	}
	close(outcomes)

	for err := range outcomes {
		switch {
		case err == nil:
			res.Found++
		case errors.Is(err, errNoImage), errors.Is(err, ports.ErrLogoNotFound):
			res.Missing++
		default:
			res.Failed++
		}
	}
	log.Info("logo cache warmed",
		zap.Int("domains", res.Domains),
		zap.Int("found", res.Found),
		zap.Int("missing", res.Missing),
		zap.Int("failed", res.Failed),
		zap.Duration("elapsed", time.Since(start)))
	return res, ctx.Err()
}

var errNoImage = errors.New("brand has no logo image")
