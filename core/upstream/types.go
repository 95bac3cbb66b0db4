package upstream

import "fmt"

// ListPage is one page of the upstream list endpoint.
type ListPage struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []ListEntry `json:"results"`
}

// ListEntry is one row of a list page. The record id is only known once the
// detail behind URL has been fetched.
type ListEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NamedRef is a {name, url} reference as used throughout the upstream API.
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeSlot is one category membership reference of a detail record.
type TypeSlot struct {
	Slot int       `json:"slot"`
	Type *NamedRef `json:"type"`
}

// Detail is the raw detail record. Pointer fields distinguish a missing value
// from a zero value.
type Detail struct {
	ID                     *int       `json:"id"`
	Name                   *string    `json:"name"`
	BaseExperience         *int       `json:"base_experience"`
	Height                 *int       `json:"height"`
	Order                  *int       `json:"order"`
	Weight                 *int       `json:"weight"`
	LocationAreaEncounters *string    `json:"location_area_encounters"`
	Types                  []TypeSlot `json:"types"`
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
}
