package browse

import (
	"net/url"

	"github.com/justchokingaround/morty/internal/api"
)

// Recognized filter query parameters
const (
	ParamName    = "name"
	ParamStatus  = "status"
	ParamSpecies = "species"
	ParamGender  = "gender"
)

// DeriveFilters reads the filter set from the query of path.
// Unknown parameters and empty values are ignored.
func DeriveFilters(path string) api.Filter {
	u, err := url.Parse(path)
	if err != nil {
		return api.Filter{}
	}
	return filterFromQuery(u.Query())
}

func filterFromQuery(q url.Values) api.Filter {
	return api.Filter{
		Name:    q.Get(ParamName),
		Status:  q.Get(ParamStatus),
		Species: q.Get(ParamSpecies),
		Gender:  q.Get(ParamGender),
	}
}

// BuildQuery serializes f into a canonical query string including the leading "?".
// The empty filter set yields "".
func BuildQuery(f api.Filter) string {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set(ParamName, f.Name)
	set(ParamStatus, f.Status)
	set(ParamSpecies, f.Species)
	set(ParamGender, f.Gender)

	if len(q) == 0 {
		return ""
	}
	// Encode sorts by key
	return "?" + q.Encode()
}
