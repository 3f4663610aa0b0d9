package csrfclient

import (
	"net/url"
	"strings"
)

// originHost extracts host[:port] from an origin such as "https://app.example.com".
// A bare host is accepted as is. Default ports are dropped.
func originHost(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return ""
	}
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		return canonicalHost(u.Scheme, u.Host)
	}
	return strings.ToLower(strings.TrimSuffix(origin, "/"))
}

// canonicalHost lowercases host and strips the scheme's default port.
func canonicalHost(scheme, host string) string {
	host = strings.ToLower(host)
	switch strings.ToLower(scheme) {
	case "https":
		return strings.TrimSuffix(host, ":443")
	case "http":
		return strings.TrimSuffix(host, ":80")
	}
	return host
}

// Verifica se o destino da requisição é o host confiável.
func sameHost(u *url.URL, trustedHost string) bool {
	if u == nil {
		return false
	}
	// Compara apenas host (pode incluir porta, a padrão é ignorada).
	return strings.EqualFold(canonicalHost(u.Scheme, u.Host), trustedHost)
}
