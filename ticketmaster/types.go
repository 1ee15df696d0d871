package ticketmaster

import "strconv"

// Discovery API response shapes, trimmed to the fields this application
// reads. Unknown fields are ignored by encoding/json; absent fields decode
// to zero values, so nested access never fails.

// SearchResponse is the events.json search envelope
type SearchResponse struct {
	Embedded struct {
		Events []Event `json:"events"`
	} `json:"_embedded"`
	Page Page `json:"page"`
}

// Page describes upstream pagination metadata
type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Event is a single upstream event, as returned both inside a search
// response and by the single-event endpoint
type Event struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Info            string           `json:"info"`
	PleaseNote      string           `json:"pleaseNote"`
	Images          []Image          `json:"images"`
	Dates           Dates            `json:"dates"`
	Classifications []Classification `json:"classifications"`
	PriceRanges     []PriceRange     `json:"priceRanges"`
	Promoter        Promoter         `json:"promoter"`
	Embedded        struct {
		Venues []Venue `json:"venues"`
	} `json:"_embedded"`
}

type Image struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Dates struct {
	Start struct {
		DateTime  string `json:"dateTime"`
		LocalDate string `json:"localDate"`
	} `json:"start"`
}

type Classification struct {
	Primary bool `json:"primary"`
	Segment struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"segment"`
}

type PriceRange struct {
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

type Promoter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Venue struct {
	Name string `json:"name"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	Country struct {
		Name        string `json:"name"`
		CountryCode string `json:"countryCode"`
	} `json:"country"`
	Address struct {
		Line1 string `json:"line1"`
		Line2 string `json:"line2"`
	} `json:"address"`
	Location struct {
		Latitude  Coord `json:"latitude"`
		Longitude Coord `json:"longitude"`
	} `json:"location"`
}

// Coord is a venue coordinate. The upstream contract is unstable here: some
// payloads carry coordinates as JSON numbers, others as numeric strings.
// Coord accepts both and decodes anything unparseable to 0.
type Coord float64

func (c *Coord) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*c = 0
		return nil
	}
	*c = Coord(f)
	return nil
}
