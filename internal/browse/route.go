package browse

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/justchokingaround/morty/internal/api"
)

// BasePath is the path prefix of every list route
const BasePath = "/information"

// StartPath is the first page without filters
const StartPath = BasePath + "/1"

// Route is the (page, filter) pair encoded in a navigation path
type Route struct {
	Page   int
	Filter api.Filter
}

// ParseRoute projects a navigation path onto a Route.
// A missing, non-numeric or non-positive page becomes 1.
func ParseRoute(path string) Route {
	route, _ := parseRoute(path)
	return route
}

// parseRoute also reports whether path can be kept as is. A page that is not
// usable, a malformed query pair or a repeated filter parameter make it false,
// since the path would then show filters that are not applied.
func parseRoute(path string) (Route, bool) {
	u, err := url.Parse(path)
	if err != nil {
		return Route{Page: 1}, false
	}

	q, qerr := url.ParseQuery(u.RawQuery)
	route := Route{Page: 1, Filter: filterFromQuery(q)}
	clean := qerr == nil && !repeatsFilter(q)

	raw := strings.Trim(strings.TrimPrefix(u.Path, BasePath), "/")
	if raw == "" {
		raw = q.Get("page")
	}
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		raw = raw[:i]
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return route, false
	}
	route.Page = page
	return route, clean
}

func repeatsFilter(q url.Values) bool {
	for _, key := range []string{ParamName, ParamStatus, ParamSpecies, ParamGender} {
		if len(q[key]) > 1 {
			return true
		}
	}
	return false
}

// Path renders the canonical path of r
func (r Route) Path() string {
	page := r.Page
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("%s/%d%s", BasePath, page, BuildQuery(r.Filter))
}

// WithPage returns r moved to page
func (r Route) WithPage(page int) Route {
	r.Page = page
	return r
}

// Request converts r to a gateway request
func (r Route) Request() api.Request {
	return api.Request{Page: r.Page, Filter: r.Filter}
}
