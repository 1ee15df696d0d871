package cache

import (
	"encoding/json"
	"time"
)

// Get reads and decodes the value stored under key. Returns the zero value
// and false when the key is absent, expired, or the stored payload cannot
// be decoded as T.
func Get[T any](r Reader, key string) (T, bool) {
	var v T
	body, ok := r.Read(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, false
	}
	return v, true
}

// Set encodes v and stores it under key with the given TTL. Values that
// cannot be marshalled are silently dropped; everything cached here is a
// plain value type, so that path is unreachable in practice.
func Set[T any](w Writer, key string, v T, ttl time.Duration) {
	body, err := json.Marshal(v)
	if err != nil {
		return
	}
	w.Write(key, body, ttl)
}
