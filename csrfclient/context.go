package csrfclient

import "context"

type ctxKey string

const (
	tokenKey ctxKey = "csrf_token_ctx"
	skipKey  ctxKey = "csrf_skip_ctx"
)

// WithToken returns a derived context that forces tok as the header value for
// requests carrying it, whatever the cookie source holds.
//
// Params:
// - ctx: base context to attach the token to.
// - tok: CSRF token string to send.
//
// Returns:
// - a new context containing the token.
func WithToken(ctx context.Context, tok string) context.Context {
	return context.WithValue(ctx, tokenKey, tok)
}

// WithoutToken returns a derived context whose requests never get the header.
func WithoutToken(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipKey, true)
}

func tokenFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(tokenKey)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func skipFromContext(ctx context.Context) bool {
	skip, _ := ctx.Value(skipKey).(bool)
	return skip
}
