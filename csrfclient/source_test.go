package csrfclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/steipete/sweetcookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAndFuncSources(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://app.test/", nil)

	s, err := StaticCookies("a=1").CookieString(req)
	require.NoError(t, err)
	assert.Equal(t, "a=1", s)

	current := "csrftoken=one"
	f := CookieStringFunc(func() string { return current })
	i := New(Config{Source: f})

	tok, ok := i.Token(req)
	assert.True(t, ok)
	assert.Equal(t, "one", tok)

	// the snapshot is taken at call time
	current = "csrftoken=two"
	tok, _ = i.Token(req)
	assert.Equal(t, "two", tok)
}

func TestJarSource(t *testing.T) {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	u, _ := url.Parse("http://app.test/api/")
	jar.SetCookies(u, []*http.Cookie{
		{Name: "sessionid", Value: "s"},
		{Name: "csrftoken", Value: "t%2B1", Path: "/api"},
	})

	src := JarSource{Jar: jar}

	in := httptest.NewRequest(http.MethodPost, "http://app.test/api/items", nil)
	raw, err := src.CookieString(in)
	require.NoError(t, err)
	tok, ok := ReadCookie(raw, "csrftoken")
	assert.True(t, ok)
	assert.Equal(t, "t+1", tok)

	out := httptest.NewRequest(http.MethodPost, "http://other.test/api/items", nil)
	raw, err = src.CookieString(out)
	require.NoError(t, err)
	assert.Empty(t, raw)

	_, err = JarSource{}.CookieString(in)
	assert.Error(t, err)
}

func TestBrowserSource(t *testing.T) {
	var got sweetcookie.Options
	src := BrowserSource{
		Browsers: []sweetcookie.Browser{sweetcookie.BrowserFirefox},
		get: func(ctx context.Context, opts sweetcookie.Options) (sweetcookie.Result, error) {
			got = opts
			return sweetcookie.Result{Cookies: []sweetcookie.Cookie{
				{Name: "csrftoken", Value: "browser"},
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "https://app.test/form?x=1#frag", nil)
	raw, err := src.CookieString(req)
	require.NoError(t, err)
	assert.Equal(t, "csrftoken=browser", raw)

	assert.Equal(t, "https://app.test/form", got.URL)
	assert.Equal(t, []string{"csrftoken"}, got.Names)
	assert.Equal(t, []sweetcookie.Browser{sweetcookie.BrowserFirefox}, got.Browsers)
	assert.Equal(t, sweetcookie.ModeFirst, got.Mode)
}

func TestBrowserSourceError(t *testing.T) {
	boom := errors.New("keychain locked")
	src := BrowserSource{get: func(context.Context, sweetcookie.Options) (sweetcookie.Result, error) {
		return sweetcookie.Result{}, boom
	}}
	req := httptest.NewRequest(http.MethodPost, "https://app.test/", nil)

	_, err := src.CookieString(req)
	assert.ErrorIs(t, err, boom)

	// the interceptor treats it as an absent cookie
	i := New(Config{Source: src})
	i.Apply(req)
	assert.Empty(t, req.Header.Values("X-CSRFToken"))
}
