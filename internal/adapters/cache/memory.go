package cache

import (
	"sync"
	"time"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
)

var _ ports.CalculationCache = (*Memory)(nil)

// Memory is an in-process calculation cache backed by a map. It is safe
// for concurrent use; concurrent writes to one key are last-write-wins,
// which is harmless because entries are deterministic functions of their
// key.
type Memory struct {
	mu      sync.RWMutex
	entries map[domain.CacheKey]domain.CacheEntry
	maxAge  time.Duration
	now     func() time.Time
}

// NewMemory creates an in-memory store. Entries older than maxAge are
// treated as absent; zero means entries never expire.
func NewMemory(maxAge time.Duration) *Memory {
	return &Memory{
		entries: make(map[domain.CacheKey]domain.CacheEntry),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Get implements ports.CalculationCache.
func (m *Memory) Get(key domain.CacheKey) (domain.CacheEntry, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || entry.Expired(m.now(), m.maxAge) {
		return domain.CacheEntry{}, false
	}
	return entry, true
}

// Put implements ports.CalculationCache.
func (m *Memory) Put(key domain.CacheKey, entry domain.CacheEntry) {
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
}

// Invalidate implements ports.CalculationCache.
func (m *Memory) Invalidate(key domain.CacheKey) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// Close implements ports.CalculationCache. It is a no-op for the memory
// store.
func (m *Memory) Close() error {
	return nil
}
