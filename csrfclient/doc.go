// Package csrfclient attaches anti-forgery tokens to outgoing net/http client
// requests, for servers that use the double-submit cookie pattern the way
// Django does (cookie "csrftoken", header "X-CSRFToken").
//
// How it works
//   - Safe methods (GET, HEAD, OPTIONS, TRACE) are sent untouched.
//   - Any other method gets the header set to the decoded value of the token
//     cookie, read from a CookieSource at send time. When the cookie is absent
//     the header is omitted and the request goes out anyway; rejecting it is
//     the server's job.
//
// # Cookie sources
//
//   - JarSource: the cookies an http.CookieJar holds for the request URL. This is
//     the default when the client has a Jar.
//   - StaticCookies / CookieStringFunc: a raw "a=1; b=2" string.
//   - BrowserSource: cookies read from local browser profiles.
//
// Typical usage
//
//	jar, _ := cookiejar.New(nil)
//	client := &http.Client{Jar: jar}
//	if _, err := csrfclient.InitCSRFInterceptor(client, csrfclient.Config{
//	    TrustedOrigin: "https://app.example.com",
//	}); err != nil {
//	    return err
//	}
//	// a GET to the app sets the csrftoken cookie in the jar,
//	// later POST/PUT/PATCH/DELETE calls carry X-CSRFToken.
//
// Per request, WithToken forces a token and WithoutToken suppresses the header.
package csrfclient
