package cache_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stellium.dev/stellium/internal/adapters/cache"
	"go.stellium.dev/stellium/internal/core/domain"
)

type discardLogger struct{}

func (discardLogger) Info(string) {}
func (discardLogger) Warn(string) {}
func (discardLogger) Error(error) {}

func newSQLiteStore(t *testing.T, maxAge time.Duration) *cache.SQLite {
	t.Helper()
	store, err := cache.NewSQLite(filepath.Join(t.TempDir(), "cache", "positions.db"), maxAge, discardLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLite_PutGet(t *testing.T) {
	store := newSQLiteStore(t, 0)

	key := domain.CacheKey("sun:abc:def")
	entry := domain.CacheEntry{
		Position: domain.Position{
			Body:           domain.Sun,
			Longitude:      280.5,
			Latitude:       0.0001,
			Distance:       0.983,
			SpeedLongitude: 1.019,
		},
		CreatedAt: time.Now().UTC(),
	}

	_, ok := store.Get(key)
	require.False(t, ok)

	store.Put(key, entry)

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, entry.Position, got.Position)
}

func TestSQLite_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "positions.db")
	key := domain.CacheKey("venus:1:2")
	pos := domain.Position{Body: domain.Venus, Longitude: 33.3}

	store, err := cache.NewSQLite(dbPath, 0, discardLogger{})
	require.NoError(t, err)
	store.Put(key, domain.CacheEntry{Position: pos, CreatedAt: time.Now()})
	require.NoError(t, store.Close())

	// A fresh handle on the same file sees the entry.
	reopened, err := cache.NewSQLite(dbPath, 0, discardLogger{})
	require.NoError(t, err)
	defer reopened.Close() //nolint:errcheck // test cleanup

	got, ok := reopened.Get(key)
	require.True(t, ok)
	assert.Equal(t, pos, got.Position)
}

func TestSQLite_Overwrite(t *testing.T) {
	store := newSQLiteStore(t, 0)
	key := domain.CacheKey("mars:1:2")

	store.Put(key, domain.CacheEntry{Position: domain.Position{Body: domain.Mars, Longitude: 10}, CreatedAt: time.Now()})
	store.Put(key, domain.CacheEntry{Position: domain.Position{Body: domain.Mars, Longitude: 20}, CreatedAt: time.Now()})

	got, ok := store.Get(key)
	require.True(t, ok)
	assert.InDelta(t, 20, got.Position.Longitude, 1e-12)
}

func TestSQLite_Invalidate(t *testing.T) {
	store := newSQLiteStore(t, 0)
	key := domain.CacheKey("moon:1:2")

	store.Put(key, domain.CacheEntry{Position: domain.Position{Body: domain.Moon}, CreatedAt: time.Now()})
	store.Invalidate(key)

	_, ok := store.Get(key)
	assert.False(t, ok)
}

func TestSQLite_Expiry(t *testing.T) {
	store := newSQLiteStore(t, time.Hour)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return now })

	key := domain.CacheKey("jupiter:1:2")
	store.Put(key, domain.CacheEntry{
		Position:  domain.Position{Body: domain.Jupiter, Longitude: 55},
		CreatedAt: now,
	})

	_, ok := store.Get(key)
	assert.True(t, ok)

	now = now.Add(61 * time.Minute)
	_, ok = store.Get(key)
	assert.False(t, ok, "expired entry must be treated as absent")
}

func TestNewSQLite_CreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "nested", "positions.db")

	store, err := cache.NewSQLite(dbPath, 0, discardLogger{})
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
