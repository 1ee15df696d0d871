package events

import "eventscout/ticketmaster"

// Mapping from upstream documents into the application model. These
// functions are total: every optional upstream field degrades to an empty
// string or absent value, never an error. Transport and decode failures are
// the service's concern, not the mapper's.

// FromSearchResponse maps a search response into the list-view model,
// preserving upstream order. A nil response or absent embedded collection
// maps to an empty slice.
func FromSearchResponse(resp *ticketmaster.SearchResponse) []Event {
	if resp == nil || len(resp.Embedded.Events) == 0 {
		return []Event{}
	}

	events := make([]Event, 0, len(resp.Embedded.Events))
	for _, e := range resp.Embedded.Events {
		events = append(events, fromEvent(e))
	}
	return events
}

// FromEventDetail maps a single upstream event into the detail model.
// Returns nil for nil input.
func FromEventDetail(e *ticketmaster.Event) *EventDetail {
	if e == nil {
		return nil
	}

	detail := &EventDetail{
		Event:       fromEvent(*e),
		Description: firstNonEmpty(e.Info, e.PleaseNote),
		Promoter:    e.Promoter.Name,
	}

	if len(e.Embedded.Venues) > 0 {
		venue := e.Embedded.Venues[0]
		detail.VenueAddress = venue.Address.Line1
		detail.Latitude = float64(venue.Location.Latitude)
		detail.Longitude = float64(venue.Location.Longitude)
	}

	return detail
}

func fromEvent(e ticketmaster.Event) Event {
	ev := Event{
		ID:              e.ID,
		Name:            e.Name,
		Date:            e.Dates.Start.DateTime,
		TicketmasterURL: e.URL,
		PriceRange:      fromPriceRanges(e.PriceRanges),
	}

	if len(e.Images) > 0 {
		ev.ImageURL = e.Images[0].URL
	}
	if len(e.Classifications) > 0 {
		ev.Category = e.Classifications[0].Segment.Name
	}
	if len(e.Embedded.Venues) > 0 {
		venue := e.Embedded.Venues[0]
		ev.VenueName = venue.Name
		ev.City = venue.City.Name
		ev.Country = venue.Country.Name
	}

	return ev
}

func fromPriceRanges(ranges []ticketmaster.PriceRange) *PriceRange {
	if len(ranges) == 0 {
		return nil
	}

	pr := &PriceRange{
		Min:      ranges[0].Min,
		Max:      ranges[0].Max,
		Currency: ranges[0].Currency,
	}
	if pr.Currency == "" {
		pr.Currency = "USD"
	}
	return pr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
