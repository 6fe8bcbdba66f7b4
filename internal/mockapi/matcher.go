package mockapi

import (
	"net/url"
	"strings"
)

// argMode says how the transport turns a request body into generator
// arguments: nothing, (email, password), or the whole decoded body.
type argMode int

const (
	argNone argMode = iota
	argCredentials
	argBody
)

type route struct {
	gen  Generator
	mode argMode
}

// Router resolves a canonical "METHOD:/path" key against the static route
// table. Resolution is pure: the same (method, url) pair always yields the
// same route or no match, and no match is not an error.
type Router struct {
	base   string
	routes map[string]route
}

// NewRouter builds the table over the API's generators. base is the API base
// prefix stripped before matching (a path like "/api", or a full URL whose
// path component is used).
func NewRouter(base string, api *API) *Router {
	if u, err := url.Parse(base); err == nil && u.Path != "" {
		base = u.Path
	}
	base = strings.TrimSuffix(base, "/")

	return &Router{
		base: base,
		routes: map[string]route{
			"POST:/auth/login":           {api.Login, argCredentials},
			"POST:/auth/register":        {api.Register, argBody},
			"GET:/auth/me":               {api.Me, argNone},
			"POST:/auth/forgot-password": {api.ForgotPassword, argBody},
			"POST:/auth/logout":          {api.Logout, argNone},
			"GET:/dashboard":             {api.Dashboard, argNone},
			"GET:/services":              {api.Services, argNone},
			"GET:/pricing":               {api.Pricing, argNone},
			"POST:/contact":              {api.Contact, argBody},
		},
	}
}

// Key canonicalizes a method and URL into the lookup form "METHOD:/path",
// with the base prefix and any query string stripped. rawURL may be a bare
// path or fully qualified.
func (r *Router) Key(method, rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	} else if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		path = rawURL[:i]
	}

	if r.base != "" && strings.HasPrefix(path, r.base) {
		path = path[len(r.base):]
	}
	if path == "" {
		path = "/"
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	return strings.ToUpper(method) + ":" + path
}

// Match resolves to a generator, or reports no match so the caller can fall
// back to the real transport.
func (r *Router) Match(method, rawURL string) (route, bool) {
	rt, ok := r.routes[r.Key(method, rawURL)]
	return rt, ok
}
