package csrftest

import (
	"crypto/subtle"
	"net/http"
)

// Methods exempt from the check, as Django defines them
var safeMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// Protect wraps next with the double-submit check.
//
// Behavior:
//   - every request: make sure the token cookie exists, issuing one if needed.
//   - unsafe methods: the header must equal the cookie, compared in constant
//     time, or the request is rejected with 403 before next runs.
func (b *Backend) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieToken, issued, err := b.ensureCookieToken(w, r)
		if err != nil {
			http.Error(w, "failed to set CSRF cookie", http.StatusInternalServerError)
			return
		}

		// inject the token into the request context for downstream handlers
		r = r.WithContext(contextWithToken(r.Context(), cookieToken))

		if safeMethods[r.Method] {
			next.ServeHTTP(w, r)
			return
		}

		// a freshly issued cookie was never seen by the client
		if issued {
			http.Error(w, "CSRF cookie not set", http.StatusForbidden)
			return
		}

		clientToken := r.Header.Get(b.cfg.HeaderName)
		if clientToken == "" {
			http.Error(w, "missing CSRF token", http.StatusForbidden)
			return
		}
		if subtle.ConstantTimeCompare([]byte(clientToken), []byte(cookieToken)) != 1 {
			http.Error(w, "bad CSRF token", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ensureCookieToken returns the token cookie value, setting a new cookie when
// the request has none. issued reports whether a new token was generated.
func (b *Backend) ensureCookieToken(w http.ResponseWriter, r *http.Request) (tok string, issued bool, err error) {
	if c, err := r.Cookie(b.cfg.CookieName); err == nil && len(c.Value) >= 16 {
		return c.Value, false, nil
	}

	tok, err = newToken(b.cfg.TokenBytes)
	if err != nil {
		return "", false, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     b.cfg.CookieName,
		Value:    tok,
		Path:     b.cfg.CookiePath,
		SameSite: b.cfg.CookieSameSite,
		HttpOnly: false, // the client must be able to read it
	})
	return tok, true, nil
}

// TokenHandler writes the token Protect settled on as text/plain. Mount it
// behind Protect.
func (b *Backend) TokenHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok, ok := TokenFromContext(r.Context()); ok {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(tok))
			return
		}
		http.Error(w, "no token", http.StatusInternalServerError)
	})
}
