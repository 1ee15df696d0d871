package events

import (
	"encoding/json"
	"testing"

	"eventscout/ticketmaster"
)

func decodeSearchResponse(t *testing.T, raw string) *ticketmaster.SearchResponse {
	t.Helper()
	var resp ticketmaster.SearchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &resp
}

func decodeEvent(t *testing.T, raw string) *ticketmaster.Event {
	t.Helper()
	var ev ticketmaster.Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &ev
}

func TestFromSearchResponseNil(t *testing.T) {
	got := FromSearchResponse(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("FromSearchResponse(nil) = %v, want empty slice", got)
	}
}

func TestFromSearchResponseEmptyEmbedded(t *testing.T) {
	resp := decodeSearchResponse(t, `{"page":{"totalElements":0}}`)
	if got := FromSearchResponse(resp); len(got) != 0 {
		t.Errorf("expected empty slice for absent _embedded, got %v", got)
	}
}

func TestFromSearchResponseFullyPopulated(t *testing.T) {
	resp := decodeSearchResponse(t, `{
		"_embedded": {"events": [{
			"id": "e1",
			"name": "Summer Concert",
			"url": "https://tm.example/e1",
			"images": [{"url": "https://img.example/a.jpg"}, {"url": "https://img.example/b.jpg"}],
			"dates": {"start": {"dateTime": "2025-07-04T19:30:00Z"}},
			"classifications": [{"segment": {"name": "Music"}}],
			"priceRanges": [{"min": 25.5, "max": 99, "currency": "EUR"}],
			"_embedded": {"venues": [{
				"name": "Grand Hall",
				"city": {"name": "Berlin"},
				"country": {"name": "Germany"}
			}]}
		}]}
	}`)

	got := FromSearchResponse(resp)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}

	ev := got[0]
	want := Event{
		ID:              "e1",
		Name:            "Summer Concert",
		ImageURL:        "https://img.example/a.jpg",
		Date:            "2025-07-04T19:30:00Z",
		VenueName:       "Grand Hall",
		City:            "Berlin",
		Country:         "Germany",
		Category:        "Music",
		TicketmasterURL: "https://tm.example/e1",
	}
	if ev.PriceRange == nil {
		t.Fatal("expected price range")
	}
	if ev.PriceRange.Min != 25.5 || ev.PriceRange.Max != 99 || ev.PriceRange.Currency != "EUR" {
		t.Errorf("price range = %+v", *ev.PriceRange)
	}
	ev.PriceRange = nil
	if ev != want {
		t.Errorf("mapped event = %+v, want %+v", ev, want)
	}
}

func TestFromSearchResponseMissingVenues(t *testing.T) {
	resp := decodeSearchResponse(t, `{"_embedded":{"events":[{"id":"e1","name":"Show"}]}}`)

	got := FromSearchResponse(resp)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	ev := got[0]
	if ev.VenueName != "" || ev.City != "" || ev.Country != "" {
		t.Errorf("venue fields should default empty: %+v", ev)
	}
}

func TestFromSearchResponseEmptyPriceRanges(t *testing.T) {
	resp := decodeSearchResponse(t, `{"_embedded":{"events":[{"id":"e1","priceRanges":[]}]}}`)

	got := FromSearchResponse(resp)
	if got[0].PriceRange != nil {
		t.Errorf("expected absent price range, got %+v", *got[0].PriceRange)
	}
}

func TestFromSearchResponseCurrencyDefault(t *testing.T) {
	resp := decodeSearchResponse(t, `{"_embedded":{"events":[{"priceRanges":[{"min":10,"max":20}]}]}}`)

	pr := FromSearchResponse(resp)[0].PriceRange
	if pr == nil || pr.Currency != "USD" {
		t.Errorf("expected USD default currency, got %+v", pr)
	}
}

func TestFromSearchResponsePreservesOrder(t *testing.T) {
	resp := decodeSearchResponse(t, `{"_embedded":{"events":[{"id":"a"},{"id":"b"},{"id":"c"}]}}`)

	got := FromSearchResponse(resp)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("order not preserved: %v", ids)
	}
}

func TestFromEventDetailNil(t *testing.T) {
	if got := FromEventDetail(nil); got != nil {
		t.Errorf("FromEventDetail(nil) = %+v, want nil", got)
	}
}

func TestFromEventDetailDescriptionFallback(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		note     string
		expected string
	}{
		{"info wins", "the info text", "the note", "the info text"},
		{"note fallback", "", "the note", "the note"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := FromEventDetail(&ticketmaster.Event{Info: tt.info, PleaseNote: tt.note})
			if detail.Description != tt.expected {
				t.Errorf("description = %q, want %q", detail.Description, tt.expected)
			}
		})
	}
}

func TestFromEventDetailVenueFields(t *testing.T) {
	ev := decodeEvent(t, `{
		"id": "e1",
		"promoter": {"name": "Live Nation"},
		"_embedded": {"venues": [{
			"name": "Grand Hall",
			"address": {"line1": "1 Main St"},
			"location": {"latitude": "52.5200", "longitude": 13.4050}
		}]}
	}`)

	detail := FromEventDetail(ev)
	if detail.VenueAddress != "1 Main St" {
		t.Errorf("venueAddress = %q", detail.VenueAddress)
	}
	if detail.Latitude != 52.52 || detail.Longitude != 13.405 {
		t.Errorf("coordinates = %v, %v", detail.Latitude, detail.Longitude)
	}
	if detail.Promoter != "Live Nation" {
		t.Errorf("promoter = %q", detail.Promoter)
	}
}

func TestFromEventDetailUnparseableCoordinates(t *testing.T) {
	ev := decodeEvent(t, `{"_embedded":{"venues":[{"location":{"latitude":"n/a","longitude":""}}]}}`)

	detail := FromEventDetail(ev)
	if detail.Latitude != 0 || detail.Longitude != 0 {
		t.Errorf("expected 0,0 for unparseable coordinates, got %v,%v", detail.Latitude, detail.Longitude)
	}
}

func TestFromEventDetailNoVenue(t *testing.T) {
	detail := FromEventDetail(&ticketmaster.Event{ID: "e1"})
	if detail.VenueAddress != "" || detail.Latitude != 0 || detail.Longitude != 0 {
		t.Errorf("venue fields should default: %+v", detail)
	}
}
