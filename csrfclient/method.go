package csrfclient

import "net/http"

// Methods that do not require CSRF protection
var safeMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// IsSafeMethod reports whether method is exempt from anti-forgery protection.
// The match is exact and case-sensitive, so "get" is not safe.
func IsSafeMethod(method string) bool {
	return safeMethods[method]
}

// isSafe checks against the configured set. An empty method is GET, as it is
// for http.Client.
func (i *Interceptor) isSafe(method string) bool {
	if method == "" {
		method = http.MethodGet
	}
	return i.safe[method]
}
