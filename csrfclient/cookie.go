package csrfclient

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
)

// ReadCookie returns the decoded value of the first entry of raw named name.
//
// raw has the document.cookie / Cookie header shape: "a=1; b=2". Entries are
// trimmed and matched on the literal prefix name+"=", so a name never matches
// a longer name it is a prefix of. Values are percent-decoded; an entry whose
// value does not decode, is not valid UTF-8 or could not be sent as a header
// value (CR, LF, other control bytes) is skipped like any other malformed entry.
//
// Params:
// - raw: the cookie string snapshot.
// - name: the cookie name to look for.
//
// Returns:
// - the decoded value and true, or "" and false when nothing matches.
func ReadCookie(raw, name string) (string, bool) {
	if raw == "" || name == "" {
		return "", false
	}
	prefix := name + "="
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if !strings.HasPrefix(entry, prefix) {
			continue
		}
		v, err := url.PathUnescape(entry[len(prefix):])
		if err != nil || !validToken(v) {
			continue
		}
		return v, true
	}
	return "", false
}

func validToken(v string) bool {
	return utf8.ValidString(v) && httpguts.ValidHeaderFieldValue(v)
}
