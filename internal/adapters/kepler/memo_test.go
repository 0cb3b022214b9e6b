package kepler_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stellium.dev/stellium/internal/adapters/cache"
	"go.stellium.dev/stellium/internal/adapters/kepler"
	"go.stellium.dev/stellium/internal/core/domain"
)

// countingProvider wraps the real provider and counts calls, so tests can
// observe memoization and coalescing.
type countingProvider struct {
	inner *kepler.Provider
	calls atomic.Int64
	stall chan struct{}
}

func (c *countingProvider) Positions(ctx context.Context, moment domain.Moment, loc domain.Location, bodies []domain.Body, opts domain.CalcOptions) (domain.PositionSet, error) {
	c.calls.Add(1)
	if c.stall != nil {
		<-c.stall
	}
	return c.inner.Positions(ctx, moment, loc, bodies, opts)
}

func TestMemoized_SecondCallHitsCache(t *testing.T) {
	counting := &countingProvider{inner: kepler.NewProvider()}
	memo := kepler.NewMemoized(counting, cache.NewMemory(0))

	moment := domain.NewMoment(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))
	bodies := []domain.Body{domain.Sun, domain.Moon}

	first, err := memo.Positions(context.Background(), moment, anywhere, bodies, domain.CalcOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counting.calls.Load(), "one underlying call per body")

	second, err := memo.Positions(context.Background(), moment, anywhere, bodies, domain.CalcOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counting.calls.Load(), "second request must be served from cache")
	assert.Equal(t, first, second)
}

func TestMemoized_DistinctMomentsMiss(t *testing.T) {
	counting := &countingProvider{inner: kepler.NewProvider()}
	memo := kepler.NewMemoized(counting, cache.NewMemory(0))

	moment := domain.NewMoment(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))
	bodies := []domain.Body{domain.Sun}

	_, err := memo.Positions(context.Background(), moment, anywhere, bodies, domain.CalcOptions{})
	require.NoError(t, err)
	_, err = memo.Positions(context.Background(), moment.AddDays(1), anywhere, bodies, domain.CalcOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), counting.calls.Load())
}

func TestMemoized_OmissionsPassThrough(t *testing.T) {
	counting := &countingProvider{inner: kepler.NewProvider()}
	memo := kepler.NewMemoized(counting, cache.NewMemory(0))

	moment := domain.NewMoment(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))

	set, err := memo.Positions(context.Background(), moment, anywhere, []domain.Body{domain.Chiron}, domain.CalcOptions{})
	require.NoError(t, err)
	require.Len(t, set.Omissions, 1)
	assert.Equal(t, domain.Chiron, set.Omissions[0].Body)

	// Omissions are not cached; the underlying provider answers each time.
	_, err = memo.Positions(context.Background(), moment, anywhere, []domain.Body{domain.Chiron}, domain.CalcOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counting.calls.Load())
}

func TestMemoized_CoalescesConcurrentMisses(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		counting := &countingProvider{inner: kepler.NewProvider(), stall: make(chan struct{})}
		memo := kepler.NewMemoized(counting, cache.NewMemory(0))

		moment := domain.NewMoment(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))
		bodies := []domain.Body{domain.Sun}

		const callers = 8
		var wg sync.WaitGroup
		results := make([]domain.PositionSet, callers)

		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				set, err := memo.Positions(context.Background(), moment, anywhere, bodies, domain.CalcOptions{})
				assert.NoError(t, err)
				results[i] = set
			}(i)
		}

		// Wait until every caller is parked on the same in-flight key,
		// then release the single underlying computation.
		synctest.Wait()
		close(counting.stall)
		wg.Wait()

		assert.Equal(t, int64(1), counting.calls.Load(), "concurrent misses for one key must coalesce")
		for i := 1; i < callers; i++ {
			assert.Equal(t, results[0], results[i])
		}
	})
}

func TestMemoized_EntriesCarryCreationTime(t *testing.T) {
	store := cache.NewMemory(0)
	memo := kepler.NewMemoized(kepler.NewProvider(), store)

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	memo.SetNow(func() time.Time { return created })

	moment := domain.NewMoment(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))
	_, err := memo.Positions(context.Background(), moment, anywhere, []domain.Body{domain.Sun}, domain.CalcOptions{})
	require.NoError(t, err)

	entry, ok := store.Get(cache.Key(moment, anywhere, domain.Sun, domain.CalcOptions{}))
	require.True(t, ok)
	assert.Equal(t, created, entry.CreatedAt)
}
