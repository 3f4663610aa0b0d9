package csrfclient

import (
	"errors"
	"net/http"
)

var (
	// ErrNilClient is returned by InitCSRFInterceptor for a nil client.
	ErrNilClient = errors.New("csrfclient: nil http client")
	// ErrNoCookieSource is returned when neither Config.Source nor client.Jar is set.
	ErrNoCookieSource = errors.New("csrfclient: no cookie source and client has no jar")
)

// Apply is the pre-send hook. It sets the anti-forgery header on req when the
// method is not safe and a token is available, and does nothing otherwise.
// It never fails: a missing cookie just leaves the header unset.
//
// Params:
// - req: outgoing request; its Header is modified in place.
func (i *Interceptor) Apply(req *http.Request) {
	if i.isSafe(req.Method) {
		return
	}

	host := ""
	if req.URL != nil {
		host = req.URL.Host
	}
	log := i.log.With().Str("method", req.Method).Str("host", host).Logger()

	ctx := req.Context()
	if skipFromContext(ctx) {
		log.Debug().Msg("csrf header suppressed by context")
		return
	}
	if req.Header.Get(i.cfg.HeaderName) != "" {
		log.Debug().Msg("csrf header already set")
		return
	}
	if i.trustedHost != "" && !sameHost(req.URL, i.trustedHost) {
		log.Debug().Str("trusted", i.trustedHost).Msg("csrf header not sent to untrusted host")
		return
	}

	tok, ok := tokenFromContext(ctx)
	if ok && !validToken(tok) {
		log.Debug().Msg("context token is not a valid header value, ignored")
		ok = false
	}
	if !ok {
		tok, ok = i.cookieToken(req)
	}
	if !ok {
		log.Debug().Str("cookie", i.cfg.CookieName).Msg("csrf cookie absent, header omitted")
		return
	}

	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set(i.cfg.HeaderName, tok)
	log.Debug().Str("header", i.cfg.HeaderName).Msg("csrf header attached")
}

// Token returns the current token for req from the configured cookie source.
func (i *Interceptor) Token(req *http.Request) (string, bool) {
	return i.cookieToken(req)
}

func (i *Interceptor) cookieToken(req *http.Request) (string, bool) {
	if i.cfg.Source == nil {
		return "", false
	}
	raw, err := i.cfg.Source.CookieString(req)
	if err != nil {
		i.log.Warn().Err(err).Msg("reading cookie source failed")
		return "", false
	}
	return ReadCookie(raw, i.cfg.CookieName)
}

// Transport runs an Interceptor before every request it forwards to Base.
type Transport struct {
	// Base is the underlying RoundTripper. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	interceptor *Interceptor
}

// Wrap returns a *Transport that applies i before delegating to base.
func (i *Interceptor) Wrap(base http.RoundTripper) *Transport {
	return &Transport{Base: base, interceptor: i}
}

// Interceptor returns the hook installed on t.
func (t *Transport) Interceptor() *Interceptor {
	return t.interceptor
}

// RoundTrip implements http.RoundTripper. The caller's request is never
// modified; the header goes on a clone.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.interceptor != nil && !t.interceptor.isSafe(req.Method) {
		req = req.Clone(req.Context())
		t.interceptor.Apply(req)
	}
	return t.base().RoundTrip(req)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// InitCSRFInterceptor installs the anti-forgery hook on client. Call it once,
// after the client and its cookie store exist and before the application
// issues requests.
//
// When cfg.Source is nil the client's Jar is used. Calling it again on the same
// client replaces the previous interceptor instead of stacking another one.
//
// Params:
// - client: the HTTP client whose Transport gets wrapped.
// - cfg: interceptor configuration.
//
// Returns:
// - the installed *Interceptor, or ErrNilClient / ErrNoCookieSource.
func InitCSRFInterceptor(client *http.Client, cfg Config) (*Interceptor, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if cfg.Source == nil {
		if client.Jar == nil {
			return nil, ErrNoCookieSource
		}
		cfg.Source = JarSource{Jar: client.Jar}
	}

	i := New(cfg)
	base := client.Transport
	if t, ok := base.(*Transport); ok {
		base = t.Base
	}
	client.Transport = i.Wrap(base)
	return i, nil
}
