package router

import (
	"context"
	"net/url"
	"strings"
)

type View string

const (
	ViewList     View = "list"
	ViewDetail   View = "detail"
	ViewCreate   View = "create"
	ViewEdit     View = "edit"
	ViewLogin    View = "login"
	ViewRegister View = "register"
)

const (
	HomePath  = "/"
	LoginPath = "/login"
)

type access int

const (
	// reachable only with a session; otherwise redirected to the login view
	accessProtected access = iota
	// reachable only without a session; otherwise redirected home
	accessPublic
)

// AuthState is the slice of the auth service the guard reads. It is consulted
// fresh on every navigation, so a login or logout takes effect on the next
// route resolution.
type AuthState interface {
	IsAuthenticated(ctx context.Context) bool
}

// Match is a resolved navigation target.
type Match struct {
	View   View
	Params map[string]string
	Query  url.Values
}

type route struct {
	pattern string
	view    View
	access  access
}

type Router struct {
	auth AuthState
	// literal routes are listed before parameterized ones so /books/new wins
	// over /books/{id}
	routes []route
}

func New(auth AuthState) *Router {
	return &Router{
		auth: auth,
		routes: []route{
			{"/login", ViewLogin, accessPublic},
			{"/register", ViewRegister, accessPublic},
			{"/", ViewList, accessProtected},
			{"/books", ViewList, accessProtected},
			{"/books/new", ViewCreate, accessProtected},
			{"/books/{id}", ViewDetail, accessProtected},
			{"/books/{id}/edit", ViewEdit, accessProtected},
		},
	}
}

// Resolve decides reachability for one navigation. It returns either a match
// or the path the caller must navigate to instead. Unmatched paths land on
// home when authenticated, else on the login view.
func (r *Router) Resolve(ctx context.Context, target string) (Match, string) {
	path, query := splitTarget(target)
	authed := r.auth.IsAuthenticated(ctx)

	for _, rt := range r.routes {
		params, ok := matchPattern(rt.pattern, path)
		if !ok {
			continue
		}

		switch rt.access {
		case accessProtected:
			if !authed {
				return Match{}, LoginPath
			}
		case accessPublic:
			if authed {
				return Match{}, HomePath
			}
		}

		return Match{View: rt.view, Params: params, Query: query}, ""
	}

	if authed {
		return Match{}, HomePath
	}
	return Match{}, LoginPath
}

func splitTarget(target string) (string, url.Values) {
	u, err := url.Parse(target)
	if err != nil {
		return target, url.Values{}
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	return path, u.Query()
}

// matchPattern compares a route pattern against a path segment by segment;
// {name} segments capture into params.
func matchPattern(pattern, path string) (map[string]string, bool) {
	if pattern == path {
		return nil, true
	}

	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternSegs) != len(pathSegs) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if pathSegs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[strings.Trim(seg, "{}")] = pathSegs[i]
			continue
		}
		if seg != pathSegs[i] {
			return nil, false
		}
	}

	return params, true
}
