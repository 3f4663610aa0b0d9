package csrfclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/steipete/sweetcookie"
)

// CookieSource yields the raw cookie string visible to an outgoing request.
// Implementations must be safe for concurrent use.
type CookieSource interface {
	CookieString(req *http.Request) (string, error)
}

// StaticCookies is a fixed cookie string, e.g. a document.cookie snapshot.
type StaticCookies string

func (s StaticCookies) CookieString(*http.Request) (string, error) {
	return string(s), nil
}

// CookieStringFunc adapts a function returning the current cookie string.
type CookieStringFunc func() string

func (f CookieStringFunc) CookieString(*http.Request) (string, error) {
	return f(), nil
}

// JarSource reads the cookies a jar would send to the request URL.
type JarSource struct {
	Jar http.CookieJar
}

var errNoJar = errors.New("csrfclient: jar source has no jar")

func (s JarSource) CookieString(req *http.Request) (string, error) {
	if s.Jar == nil {
		return "", errNoJar
	}
	if req.URL == nil {
		return "", nil
	}
	return joinCookies(s.Jar.Cookies(req.URL)), nil
}

func joinCookies(cookies []*http.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

// BrowserSource reads cookies straight from local browser profiles.
//
// It is meant for CLI helpers and dev scripts: every call opens the browser
// cookie store, and may trigger a keychain/keyring prompt.
type BrowserSource struct {
	// Names restricts the lookup. Empty means DefaultCookieName.
	Names []string
	// Browsers is a priority list. Empty means sweetcookie.DefaultBrowsers().
	Browsers []sweetcookie.Browser
	// Profiles overrides the profile used per browser.
	Profiles map[sweetcookie.Browser]string
	Timeout  time.Duration

	get func(ctx context.Context, opts sweetcookie.Options) (sweetcookie.Result, error)
}

func (s BrowserSource) CookieString(req *http.Request) (string, error) {
	if req.URL == nil {
		return "", nil
	}
	names := s.Names
	if len(names) == 0 {
		names = []string{DefaultCookieName}
	}
	get := s.get
	if get == nil {
		get = sweetcookie.Get
	}

	u := *req.URL
	u.RawQuery, u.Fragment = "", ""
	res, err := get(req.Context(), sweetcookie.Options{
		URL:      u.String(),
		Names:    names,
		Browsers: s.Browsers,
		Profiles: s.Profiles,
		Mode:     sweetcookie.ModeFirst,
		Timeout:  s.Timeout,
	})
	if err != nil {
		return "", fmt.Errorf("csrfclient: read browser cookies: %w", err)
	}

	parts := make([]string, 0, len(res.Cookies))
	for _, c := range res.Cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; "), nil
}
