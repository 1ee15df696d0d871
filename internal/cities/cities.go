// Package cities serves the static city reference list the search form's
// autocomplete runs on, with the coordinates each search is centered at.
package cities

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed cities.json
var citiesJSON []byte

// City is one selectable search center
type City struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

var all []City

func init() {
	if err := json.Unmarshal(citiesJSON, &all); err != nil {
		panic("cities: bad embedded data: " + err.Error())
	}
}

// All returns every known city in display order
func All() []City {
	out := make([]City, len(all))
	copy(out, all)
	return out
}

// Find returns the city matching name case-insensitively, if any
func Find(name string) (City, bool) {
	for _, c := range all {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}
