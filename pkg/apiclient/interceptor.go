package apiclient

import (
	"net/http"
	"strings"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/session"
)

// Navigator is how the HTTP layer forces a screen change; the UI shell
// provides the implementation.
type Navigator interface {
	Current() string
	To(path string)
}

// authTransport attaches the bearer token to outgoing calls and applies the
// global 401 policy to responses.
type authTransport struct {
	next    http.RoundTripper
	session *session.Session
	nav     Navigator
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.session.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// A failed login surfaces inline in the form instead of redirecting.
	if resp.StatusCode == http.StatusUnauthorized && !strings.HasSuffix(req.URL.Path, "/auth/login") {
		_ = t.session.Clear()
		if t.nav != nil {
			if cur := t.nav.Current(); cur != "/login" && cur != "/register" {
				t.nav.To("/login")
			}
		}
	}
	return resp, nil
}
