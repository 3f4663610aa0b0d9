// Package csrftest runs a Django-compatible double-submit CSRF backend for
// exercising clients in tests and examples.
package csrftest

import "net/http"

type Config struct {
	// Cookie
	CookieName     string
	CookiePath     string
	CookieSameSite http.SameSite

	// Token transport
	HeaderName string // e.g.: "X-CSRFToken"

	// Entropy
	TokenBytes int
}

type Backend struct {
	cfg Config
}

func New(cfg Config) *Backend {
	// Django defaults
	if cfg.CookieName == "" {
		cfg.CookieName = "csrftoken"
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-CSRFToken"
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/"
	}
	if cfg.TokenBytes <= 0 {
		cfg.TokenBytes = 32
	}
	if cfg.CookieSameSite == 0 {
		cfg.CookieSameSite = http.SameSiteLaxMode
	}
	return &Backend{cfg: cfg}
}

// CookieName returns the name of the token cookie.
func (b *Backend) CookieName() string { return b.cfg.CookieName }

// HeaderName returns the header the token is expected in.
func (b *Backend) HeaderName() string { return b.cfg.HeaderName }
