// Package router maps navigation paths to pages and guards the ones that
// need a signed-in user.
//
// The table is fixed when the Router is built. Each Resolve is a single
// decision with no memory of earlier navigations: a route flagged
// RequiresAuth is redirected to /login unless AuthState says the user is
// logged in; everything else, unknown paths included, is allowed.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/storefront/internal/common"
)

var (
	ErrDuplicateRoute = errors.New("duplicate route name")
	ErrUnknownRoute   = errors.New("unknown route")
)

// AuthState answers the one question the guard asks.
type AuthState interface {
	IsLoggedIn() bool
}

// Route is a static navigation entry. Path uses ":name" for parameters,
// e.g. "/products/:id".
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// Decision is the outcome of one navigation. Route is nil when the path
// matches nothing. A non-empty Redirect means the navigation was refused.
// Query carries the target's query string, which plays no part in matching.
type Decision struct {
	Path     string
	Route    *Route
	Params   map[string]string
	Query    url.Values
	Redirect string
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

type Router struct {
	auth   AuthState
	mux    *mux.Router
	routes map[string]*Route
	order  []string
}

var paramPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// toTemplate turns "/products/:id" into the mux form "/products/{id}".
func toTemplate(p string) string {
	return paramPattern.ReplaceAllString(p, "{$1}")
}

// New builds a Router over routes. Route names must be unique.
func New(auth AuthState, routes ...Route) (*Router, error) {
	r := &Router{
		auth:   auth,
		mux:    mux.NewRouter(),
		routes: make(map[string]*Route, len(routes)),
	}
	for _, rt := range routes {
		if _, ok := r.routes[rt.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, rt.Name)
		}
		m := r.mux.Path(toTemplate(rt.Path)).Name(rt.Name)
		if err := m.GetError(); err != nil {
			return nil, fmt.Errorf("route %s (%s): %w", rt.Name, rt.Path, err)
		}
		route := rt
		r.routes[rt.Name] = &route
		r.order = append(r.order, rt.Name)
	}
	return r, nil
}

// Resolve decides whether navigation to target may proceed. The query
// string and a trailing slash are ignored for matching.
func (r *Router) Resolve(target string) Decision {
	p, q := normalize(target)
	d := Decision{Path: p, Query: q}

	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: p}}
	var match mux.RouteMatch
	if !r.mux.Match(req, &match) || match.Route == nil {
		return d
	}

	route := r.routes[match.Route.GetName()]
	d.Route = route
	d.Params = match.Vars

	if route.RequiresAuth && !r.loggedIn() {
		d.Redirect = common.LoginPath
	}
	return d
}

func (r *Router) loggedIn() bool {
	return r.auth != nil && r.auth.IsLoggedIn()
}

// URL builds the path of the named route, filling parameters from pairs
// ("id", "42", ...).
func (r *Router) URL(name string, pairs ...string) (string, error) {
	m := r.mux.Get(name)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	u, err := m.URLPath(pairs...)
	if err != nil {
		return "", fmt.Errorf("build %s: %w", name, err)
	}
	return u.Path, nil
}

// Routes returns the table in declaration order.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.routes[name])
	}
	return out
}

func normalize(target string) (string, url.Values) {
	p := strings.TrimSpace(target)
	q := url.Values{}
	if u, err := url.Parse(p); err == nil {
		p = u.Path
		q = u.Query()
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p), q
}
