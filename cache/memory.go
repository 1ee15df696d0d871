package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore implements Store with an in-process map. Expiry is lazy: an
// expired entry is invisible to readers from the moment its TTL elapses and
// is physically removed the next time it is read or overwritten.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry

	now func() time.Time // overridable for tests
}

// NewMemoryStore creates an empty store. One instance is created at process
// start and shared by all requests for the process lifetime.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Read implements Reader
func (ms *MemoryStore) Read(key string) (json.RawMessage, bool) {
	ms.mu.RLock()
	entry, ok := ms.entries[key]
	ms.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if entry.Expired(ms.now()) {
		ms.mu.Lock()
		// Re-check under the write lock; a concurrent Write may have
		// replaced the entry with a fresh one.
		if cur, ok := ms.entries[key]; ok && cur.Expired(ms.now()) {
			delete(ms.entries, key)
		}
		ms.mu.Unlock()
		return nil, false
	}

	// Hand out a copy so callers can never mutate the stored payload.
	body := make(json.RawMessage, len(entry.Body))
	copy(body, entry.Body)
	return body, true
}

// Write implements Writer
func (ms *MemoryStore) Write(key string, body json.RawMessage, ttl time.Duration) {
	stored := make(json.RawMessage, len(body))
	copy(stored, body)

	ms.mu.Lock()
	ms.entries[key] = Entry{
		StoredAt: ms.now(),
		TTL:      ttl,
		Body:     stored,
	}
	ms.mu.Unlock()
}

// Len returns the number of physical entries, expired or not.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.entries)
}
