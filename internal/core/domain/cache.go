// Package domain contains the immutable value types of the chart engine.
package domain

import "time"

// CacheKey identifies one memoizable provider computation. Keys must
// incorporate every input that affects the output: the moment at full
// precision, the body identity, and a fingerprint of the location and
// calculation options. Derivation lives in the cache adapter as a pure
// function.
type CacheKey string

// CacheEntry is one memoized position with its creation time. Entries are
// immutable once stored and safe to share across calculations; a store
// treats entries older than its configured maximum age as absent.
type CacheEntry struct {
	Position  Position
	CreatedAt time.Time
}

// Expired reports whether the entry is older than maxAge at the given
// instant. A zero maxAge means entries never expire.
func (e CacheEntry) Expired(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(e.CreatedAt) > maxAge
}
