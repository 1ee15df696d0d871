package cache

import (
	"fmt"
	"slices"
	"strings"
)

// Sentinels keep "no filter" and "no bound" distinguishable from empty
// strings in the derived key.
const (
	allEventTypes = "all"
	anyDate       = "any"
)

// SearchKey derives a deterministic cache key from search criteria.
// Logically equal criteria always produce the same key: the city is
// lower-cased and the event types are sorted before joining, so input
// ordering and city casing do not matter. The date segment is only present
// when at least one bound is set; the unset side renders as "any" so a
// half-open range can never collide with a closed one.
func SearchKey(city string, radius int, eventTypes []string, startDate, endDate string) string {
	types := allEventTypes
	if len(eventTypes) > 0 {
		sorted := slices.Clone(eventTypes)
		slices.Sort(sorted)
		types = strings.Join(sorted, "-")
	}

	key := fmt.Sprintf("events_%s_%d_%s", strings.ToLower(city), radius, types)

	if startDate != "" || endDate != "" {
		start, end := startDate, endDate
		if start == "" {
			start = anyDate
		}
		if end == "" {
			end = anyDate
		}
		key += "_" + start + "_" + end
	}

	return key
}

// DetailKey derives the cache key for a single-event lookup. The "event_"
// prefix namespaces detail entries away from "events_" search keys.
func DetailKey(eventID string) string {
	return "event_" + eventID
}
