// Package router maps navigation paths to the application's top-level views.
package router

import (
	"fmt"
	"strings"
)

// ViewName identifies a top-level view.
type ViewName string

// Top-level views.
const (
	ViewHome     ViewName = "home"
	ViewCatalog  ViewName = "catalog"
	ViewDetail   ViewName = "detail"
	ViewInfo     ViewName = "info"
	ViewNotFound ViewName = "notfound"
)

// ParamID is the route parameter holding a Pokémon id.
const ParamID = "id"

// Well-known paths.
const (
	PathHome    = "/"
	PathInfo    = "/info"
	PathCatalog = "/pokedex"
)

// DetailPath returns the detail path for id.
func DetailPath(id int) string {
	return fmt.Sprintf("%s/%d", PathCatalog, id)
}

// Route binds a path pattern to a view.
type Route struct {
	// Pattern is a slash-separated path. Segments written as {name} capture
	// a parameter. The single pattern "*" is the catch-all.
	Pattern string

	// View is the view rendered for matching paths.
	View ViewName

	// Protected routes are only rendered for a signed-in session.
	Protected bool
}

// DefaultRoutes returns the application route table.
func DefaultRoutes() []Route {
	return []Route{
		{Pattern: PathHome, View: ViewHome},
		{Pattern: PathInfo, View: ViewInfo},
		{Pattern: PathCatalog, View: ViewCatalog, Protected: true},
		{Pattern: PathCatalog + "/{" + ParamID + "}", View: ViewDetail, Protected: true},
		{Pattern: CatchAll, View: ViewNotFound},
	}
}

// Match is the result of resolving a path.
type Match struct {
	// Route is the matched route.
	Route Route

	// Params holds captured parameters. Never nil.
	Params map[string]string

	// Path is the normalized path that was resolved.
	Path string

	// Reason describes how the route matched.
	Reason MatchReason
}

// Param returns a captured parameter.
func (m Match) Param(name string) (string, bool) {
	v, ok := m.Params[name]
	return v, ok
}

// MatchReason describes how a path was matched to a route.
type MatchReason int

const (
	// MatchReasonExact means every segment of the pattern was literal.
	MatchReasonExact MatchReason = iota

	// MatchReasonParam means at least one segment was captured.
	MatchReasonParam

	// MatchReasonFallback means no pattern matched and the catch-all was used.
	MatchReasonFallback
)

// String returns the string representation of a MatchReason.
func (r MatchReason) String() string {
	switch r {
	case MatchReasonExact:
		return "exact"
	case MatchReasonParam:
		return "param"
	case MatchReasonFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Router resolves paths against a fixed route table. It is immutable after
// construction and safe for concurrent use.
type Router struct {
	routes   []Route
	compiled []*CompiledPattern
	fallback Route
}

// New compiles routes. The table is validated first; a table without a
// catch-all falls back to ViewNotFound.
//
// Example:
//
//	r, err := router.New(router.DefaultRoutes())
//	m := r.Resolve("/pokedex/25")
func New(routes []Route) (*Router, error) {
	result := ValidateRoutes(routes)
	if result.HasErrors() {
		return nil, fmt.Errorf("invalid route table: %w", result.Errors[0])
	}

	r := &Router{
		routes:   append([]Route(nil), routes...),
		fallback: Route{Pattern: CatchAll, View: ViewNotFound},
	}
	for _, route := range routes {
		if route.Pattern == CatchAll {
			r.fallback = route
			continue
		}
		compiled, err := CompilePattern(route.Pattern)
		if err != nil {
			return nil, err
		}
		compiled.Route = route
		r.compiled = append(r.compiled, compiled)
	}
	return r, nil
}

// MustDefault returns a Router over DefaultRoutes.
func MustDefault() *Router {
	r, err := New(DefaultRoutes())
	if err != nil {
		panic(err)
	}
	return r
}

// Routes returns a copy of the route table.
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

// Resolve maps path to exactly one route. Routes are tried in table order;
// unmatched paths resolve to the catch-all.
func (r *Router) Resolve(path string) Match {
	norm := Normalize(path)
	segments := splitPath(norm)

	for _, c := range r.compiled {
		params, ok := c.Match(segments)
		if !ok {
			continue
		}
		reason := MatchReasonExact
		if len(params) > 0 {
			reason = MatchReasonParam
		}
		return Match{Route: c.Route, Params: params, Path: norm, Reason: reason}
	}

	return Match{Route: r.fallback, Params: map[string]string{}, Path: norm, Reason: MatchReasonFallback}
}

// Normalize returns path with a leading slash and without trailing
// slashes. The empty path becomes "/". A query or fragment is dropped.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// IsActive reports whether a navigation entry for itemPath is active at
// currentPath. Exact entries require equality; others also match any
// sub-path on a segment boundary.
func IsActive(itemPath, currentPath string, exact bool) bool {
	itemPath = Normalize(itemPath)
	currentPath = Normalize(currentPath)
	if currentPath == itemPath {
		return true
	}
	if exact || itemPath == PathHome {
		return false
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

func splitPath(norm string) []string {
	trimmed := strings.Trim(norm, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
