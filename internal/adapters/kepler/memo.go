package kepler

import (
	"context"
	"sort"
	"time"

	"go.stellium.dev/stellium/internal/adapters/cache"
	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.PositionProvider = (*Memoized)(nil)

// Memoized wraps a position provider with a calculation cache. Concurrent
// misses for the same key are coalesced so the underlying computation runs
// at most once; the store itself stays simple last-write-wins.
type Memoized struct {
	inner ports.PositionProvider
	store ports.CalculationCache
	group singleflight.Group
	now   func() time.Time
}

// memoResult is what one coalesced computation yields: either a position
// or a per-body omission.
type memoResult struct {
	pos     domain.Position
	omitted bool
	reason  string
}

// NewMemoized creates a memoizing provider on top of inner.
func NewMemoized(inner ports.PositionProvider, store ports.CalculationCache) *Memoized {
	return &Memoized{inner: inner, store: store, now: time.Now}
}

// Positions implements ports.PositionProvider. Each body is looked up and
// cached individually, so a batch with one new body only computes that
// body. Omissions pass through uncached.
func (m *Memoized) Positions(ctx context.Context, moment domain.Moment, loc domain.Location, bodies []domain.Body, opts domain.CalcOptions) (domain.PositionSet, error) {
	var set domain.PositionSet
	for _, b := range bodies {
		if err := ctx.Err(); err != nil {
			return domain.PositionSet{}, err
		}

		key := cache.Key(moment, loc, b, opts)
		if entry, ok := m.store.Get(key); ok {
			set.Positions = append(set.Positions, entry.Position)
			continue
		}

		res, err := m.compute(ctx, key, moment, loc, b, opts)
		if err != nil {
			return domain.PositionSet{}, err
		}
		if res.omitted {
			set.Omissions = append(set.Omissions, domain.Omission{Body: b, Reason: res.reason})
			continue
		}
		set.Positions = append(set.Positions, res.pos)
	}

	sort.Slice(set.Positions, func(i, j int) bool {
		return set.Positions[i].Body.Rank() < set.Positions[j].Body.Rank()
	})
	return set, nil
}

// compute runs the underlying provider for a single body, coalescing
// concurrent callers on the cache key. The winning call stores the entry
// before any waiter observes the result.
func (m *Memoized) compute(ctx context.Context, key domain.CacheKey, moment domain.Moment, loc domain.Location, b domain.Body, opts domain.CalcOptions) (memoResult, error) {
	v, err, _ := m.group.Do(string(key), func() (any, error) {
		sub, err := m.inner.Positions(ctx, moment, loc, []domain.Body{b}, opts)
		if err != nil {
			return memoResult{}, err
		}
		if pos, ok := sub.ByBody(b); ok {
			m.store.Put(key, domain.CacheEntry{Position: pos, CreatedAt: m.now()})
			return memoResult{pos: pos}, nil
		}
		for _, om := range sub.Omissions {
			if om.Body == b {
				return memoResult{omitted: true, reason: om.Reason}, nil
			}
		}
		return memoResult{}, zerr.With(domain.ErrBodyUnavailable, "body", b.String())
	})
	if err != nil {
		return memoResult{}, err
	}
	return v.(memoResult), nil
}
