package mockapi

import (
	"net/http"
	"regexp"
)

// handlerFunc handles one matched route. params holds the pattern's
// capture groups in order: the org name, or the owner and repo names.
type handlerFunc func(w http.ResponseWriter, r *http.Request, params []string)

// route is one entry in the dispatch table.
type route struct {
	method    string
	pattern   *regexp.Regexp
	protected bool
	handler   handlerFunc
}

// routeTable builds the ordered dispatch table for srv. Matching is
// top-to-bottom and the first hit wins, so the literal releases path must
// stay above the parameterized repos patterns.
func routeTable(srv *Server) []route {
	return []route{
		{http.MethodGet, regexp.MustCompile(`^/repos/actions/runner/releases/latest$`), false, srv.handleLatestRelease},
		{http.MethodPost, regexp.MustCompile(`^/orgs/([^/]+)/actions/runners/registration-token$`), true, srv.handleRegistrationToken},
		{http.MethodPost, regexp.MustCompile(`^/repos/([^/]+)/([^/]+)/actions/runners/registration-token$`), true, srv.handleRegistrationToken},
		{http.MethodGet, regexp.MustCompile(`^/orgs/([^/]+)/actions/runners$`), true, srv.handleListRunners},
		{http.MethodGet, regexp.MustCompile(`^/repos/([^/]+)/([^/]+)/actions/runners$`), true, srv.handleListRunners},
		{http.MethodGet, regexp.MustCompile(`^/health$`), false, srv.handleHealth},
		{http.MethodPost, regexp.MustCompile(`^/reset$`), false, srv.handleReset},
	}
}

// match returns the first route matching method and path, plus the
// pattern's capture groups. Returns nil if nothing matches.
func match(routes []route, method, path string) (*route, []string) {
	for i := range routes {
		rt := &routes[i]
		if rt.method != method {
			continue
		}
		if m := rt.pattern.FindStringSubmatch(path); m != nil {
			return rt, m[1:]
		}
	}
	return nil, nil
}
