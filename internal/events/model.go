// Package events holds the application's event model, the mapping from
// upstream Ticketmaster documents into that model, and the service that
// coordinates cache lookups with upstream fetches.
package events

import "fmt"

// SearchCriteria is the normalized search input. Radius is in miles; the
// city is used only for cache keying and display, never sent upstream.
type SearchCriteria struct {
	City       string   `json:"city"`
	Radius     int      `json:"radius"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	EventTypes []string `json:"eventTypes"`
	StartDate  string   `json:"startDate,omitempty"` // YYYY-MM-DD, inclusive
	EndDate    string   `json:"endDate,omitempty"`   // YYYY-MM-DD, inclusive
}

// Event is the list-view shape served to the frontend
type Event struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	ImageURL        string      `json:"imageUrl"`
	Date            string      `json:"date"` // ISO-8601, empty when unknown
	VenueName       string      `json:"venueName"`
	City            string      `json:"city"`
	Country         string      `json:"country"`
	Category        string      `json:"category"`
	TicketmasterURL string      `json:"ticketmasterUrl"`
	PriceRange      *PriceRange `json:"priceRange,omitempty"`
}

// EventDetail is the single-event shape, everything in Event plus the
// fields only the detail endpoint exposes
type EventDetail struct {
	Event
	Description  string  `json:"description,omitempty"`
	VenueAddress string  `json:"venueAddress"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Promoter     string  `json:"promoter,omitempty"`
}

// PriceRange is absent (nil) when the upstream carries no pricing, never a
// zero-valued object
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// ValidationError reports invalid search input. It is surfaced to the
// caller before any upstream call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
