package api

// Status values reported by the API for a character
const (
	StatusAlive   = "Alive"
	StatusDead    = "Dead"
	StatusUnknown = "unknown"
)

// Gender values reported by the API for a character
const (
	GenderFemale     = "Female"
	GenderMale       = "Male"
	GenderGenderless = "Genderless"
	GenderUnknown    = "unknown"
)

// Statuses lists the status filter values in display order
var Statuses = []string{StatusAlive, StatusDead, StatusUnknown}

// Genders lists the gender filter values in display order
var Genders = []string{GenderFemale, GenderMale, GenderGenderless, GenderUnknown}

// Species lists well known species offered as filter suggestions.
// The API accepts any species string.
var Species = []string{"Human", "Alien", "Humanoid", "Robot", "Animal", "Mythological Creature", "Poopybutthole", "Cronenberg", "Disease"}

// Filter is the set of character filters. An empty field means the filter is unset.
type Filter struct {
	Name    string `json:"name,omitempty"`
	Status  string `json:"status,omitempty"`
	Species string `json:"species,omitempty"`
	Gender  string `json:"gender,omitempty"`
}

// IsEmpty reports whether no filter is set
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Request asks for one page of characters
type Request struct {
	Page   int
	Filter Filter
}

// Place is a named location reference
type Place struct {
	Name string `json:"name"`
}

// Character is one character record as listed by the API
type Character struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Species  string `json:"species"`
	Type     string `json:"type"`
	Gender   string `json:"gender"`
	Origin   Place  `json:"origin"`
	Location Place  `json:"location"`
	Image    string `json:"image"`
}

// Episode is an episode reference attached to a character detail
type Episode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Code is the season/episode code, e.g. S01E01
	Code string `json:"episode"`
}

// CharacterDetail is a character plus the fields only needed by the detail view
type CharacterDetail struct {
	Character
	Episodes []Episode `json:"episode"`
	Created  string    `json:"created"`
}

// PaginationInfo describes where a page sits in the full result set
type PaginationInfo struct {
	TotalCount int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// CharacterPage is a successful list response
type CharacterPage struct {
	Page       int
	Items      []Character
	Pagination *PaginationInfo
}

// IsEmpty reports whether the page holds no characters
func (p *CharacterPage) IsEmpty() bool {
	return p == nil || len(p.Items) == 0
}

// wire types

type pageInfo struct {
	Count *int `json:"count"`
	Pages *int `json:"pages"`
	Next  *int `json:"next"`
	Prev  *int `json:"prev"`
}

type charactersData struct {
	Characters *struct {
		Info    pageInfo    `json:"info"`
		Results []Character `json:"results"`
	} `json:"characters"`
}

type characterData struct {
	Character *CharacterDetail `json:"character"`
}

// toPage converts the wire response for the requested page.
// HasNext and HasPrev are derived from the page number and page count only,
// the same way the pagination bar derives them.
func (d charactersData) toPage(page int) *CharacterPage {
	result := &CharacterPage{Page: page, Items: []Character{}}
	if d.Characters == nil {
		result.Pagination = &PaginationInfo{}
		return result
	}

	info := d.Characters.Info
	count, pages := deref(info.Count), deref(info.Pages)
	result.Items = append(result.Items, d.Characters.Results...)
	result.Pagination = &PaginationInfo{
		TotalCount: count,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1 && pages > 0,
	}
	return result
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
