package csrfclient

import (
	"net/http"

	"github.com/rs/zerolog"
)

const (
	// DefaultCookieName is the cookie Django-style backends store the token in.
	DefaultCookieName = "csrftoken"
	// DefaultHeaderName is the header those backends compare the cookie against.
	DefaultHeaderName = "X-CSRFToken"
)

type Config struct {
	// Token transport
	CookieName string // e.g.: "csrftoken"
	HeaderName string // e.g.: "X-CSRFToken"

	// Methods exempt from the header. Exact, case-sensitive match.
	SafeMethods []string

	// Where the cookie string comes from. If nil, InitCSRFInterceptor falls
	// back to the client's Jar.
	Source CookieSource

	// Extra security
	TrustedOrigin string // if empty, every unsafe request gets the header

	Logger *zerolog.Logger
}

type Interceptor struct {
	cfg         Config
	safe        map[string]bool
	trustedHost string
	log         zerolog.Logger
}

// New returns an Interceptor for cfg with defaults filled in.
//
// Params:
// - cfg: interceptor configuration; zero values are replaced by defaults.
//
// Returns:
// - a ready to use *Interceptor. It is safe for concurrent use.
func New(cfg Config) *Interceptor {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultHeaderName
	}
	if len(cfg.SafeMethods) == 0 {
		cfg.SafeMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
			http.MethodTrace,
		}
	}

	safe := make(map[string]bool, len(cfg.SafeMethods))
	for _, m := range cfg.SafeMethods {
		safe[m] = true
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Interceptor{
		cfg:         cfg,
		safe:        safe,
		trustedHost: originHost(cfg.TrustedOrigin),
		log:         log.With().Str("component", "csrfclient").Logger(),
	}
}

// Config returns a copy of the effective configuration.
func (i *Interceptor) Config() Config {
	cfg := i.cfg
	cfg.SafeMethods = append([]string(nil), i.cfg.SafeMethods...)
	return cfg
}
