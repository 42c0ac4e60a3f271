package client

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UserAgent is sent on every request; the platform rejects bare Go clients.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

var (
	csrfPattern    = regexp.MustCompile(`csrftoken=([^;]+)`)
	sessionPattern = regexp.MustCompile(`LEETCODE_SESSION=([^;]+)`)
)

// ExtractCSRFToken returns the csrftoken value of a raw cookie string, or ""
// when the cookie carries none.
func ExtractCSRFToken(cookie string) string {
	m := csrfPattern.FindStringSubmatch(cookie)
	if m == nil {
		return ""
	}
	return m[1]
}

// SessionUsername reads the username claim of the LEETCODE_SESSION JWT
// inside a raw cookie. The token is not verified: it is only used to guess
// a default for commands that need a username.
func SessionUsername(cookie string) (string, bool) {
	m := sessionPattern.FindStringSubmatch(cookie)
	if m == nil {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(m[1]), claims); err != nil {
		return "", false
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// session holds the authentication material derived from the config cookie.
type session struct {
	cookie string
	csrf   string
}

func newSession(cookie string) session {
	cookie = strings.TrimSpace(cookie)
	return session{cookie: cookie, csrf: ExtractCSRFToken(cookie)}
}

func (s session) present() bool {
	return s.cookie != ""
}

func (s session) apply(h http.Header) {
	h.Set("Cookie", s.cookie)
	if s.csrf != "" {
		h.Set("x-csrftoken", s.csrf)
	}
}
