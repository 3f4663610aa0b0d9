package csrftest

import (
	"crypto/rand"
	"encoding/base64"
)

// Gera token aleatório url-safe
func newToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
