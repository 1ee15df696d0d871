// Package cache provides a process-wide TTL-based key/value store for
// upstream API responses, plus deterministic cache key derivation for
// event searches and detail lookups.
package cache

import (
	"encoding/json"
	"time"
)

// Entry represents a cached entry with its expiry metadata
type Entry struct {
	StoredAt time.Time       `json:"stored_at"`
	TTL      time.Duration   `json:"ttl"`
	Body     json.RawMessage `json:"body"`
}

// Expired reports whether the entry's TTL has elapsed at the given time.
// A non-positive TTL means the entry never expires.
func (e Entry) Expired(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.StoredAt) > e.TTL
}

// Reader defines the interface for reading cache entries
type Reader interface {
	// Read retrieves the payload stored under key.
	// Returns the payload and true if found and not expired, false otherwise.
	Read(key string) (json.RawMessage, bool)
}

// Writer defines the interface for writing cache entries
type Writer interface {
	// Write stores a payload under key, unconditionally overwriting any
	// existing entry and restarting its TTL.
	Write(key string, body json.RawMessage, ttl time.Duration)
}

// Store combines both cache operations
type Store interface {
	Reader
	Writer
}
