package ports

import (
	"context"
	"errors"
)

// ErrLogoNotFound is returned by a LogoProvider when the domain is unknown upstream.
var ErrLogoNotFound = errors.New("brand not found")

// Logo is a resolved brand logo.
type Logo struct {
	URL    string // empty when the brand exists but publishes no usable image
	Name   string
	Domain string
}

// LogoProvider resolves a brand logo for a domain.
type LogoProvider interface {
	Lookup(ctx context.Context, domain string) (Logo, error)
}
