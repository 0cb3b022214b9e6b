package ports

import "go.stellium.dev/stellium/internal/core/domain"

// CalculationCache defines the interface for memoizing position
// computations. Implementations must be safe for concurrent use; on
// concurrent writes to the same key, last write wins and every winner is
// equally valid because entries are deterministic functions of their key.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CalculationCache interface {
	// Get retrieves an entry. A stored entry older than the store's
	// configured maximum age is treated as absent.
	Get(key domain.CacheKey) (domain.CacheEntry, bool)

	// Put stores an entry. Storage failures are absorbed by the
	// implementation; a cache can lose writes, never corrupt reads.
	Put(key domain.CacheKey, entry domain.CacheEntry)

	// Invalidate removes an entry if present.
	Invalidate(key domain.CacheKey)

	// Close releases any underlying resources.
	Close() error
}
