package csrfclient

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCookie(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		cookie string
		want   string
		found  bool
	}{
		{"empty string", "", "csrftoken", "", false},
		{"middle entry", "foo=bar; csrftoken=abc123; baz=qux", "csrftoken", "abc123", true},
		{"prefix collision", "csrftoken=abc123", "token", "", false},
		{"longer name", "csrftoken_old=1; csrftoken=2", "csrftoken", "2", true},
		{"first match wins", "a=1; a=2", "a", "1", true},
		{"no spaces", "a=1;b=2", "b", "2", true},
		{"surrounding whitespace", "  a=1 ;\tb=2  ", "b", "2", true},
		{"percent decoded", "t=a%20b%2Fc", "t", "a b/c", true},
		{"plus kept", "t=a+b", "t", "a+b", true},
		{"empty value", "t=", "t", "", true},
		{"malformed skipped", "t=%zz; t=ok", "t", "ok", true},
		{"malformed only", "t=%zz", "t", "", false},
		{"newline skipped", "t=a%0Ab; t=ok", "t", "ok", true},
		{"header injection", "t=abc%0D%0AX-Evil:%201", "t", "", false},
		{"control byte", "t=a%00b", "t", "", false},
		{"tab kept", "t=a%09b", "t", "a\tb", true},
		{"invalid utf8", "t=%FF", "t", "", false},
		{"invalid utf8 skipped", "t=%C3; t=%C3%A9", "t", "é", true},
		{"entry without equals", "csrftoken; x=1", "csrftoken", "", false},
		{"empty name", "=v", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReadCookie(tt.raw, tt.cookie)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCookieRoundTrip(t *testing.T) {
	for _, v := range []string{"abc123", "with space", "semi;colon", "ünïcødé", "a=b", "%", "100% sure", "+plus+"} {
		raw := "other=1; csrftoken=" + url.PathEscape(v)
		got, ok := ReadCookie(raw, "csrftoken")
		assert.True(t, ok, v)
		assert.Equal(t, v, got)
	}
}
