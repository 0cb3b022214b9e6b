package houses_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.stellium.dev/stellium/internal/adapters/houses"
	"go.stellium.dev/stellium/internal/core/domain"
)

func TestForSystem(t *testing.T) {
	t.Parallel()

	t.Run("Covers Every System", func(t *testing.T) {
		t.Parallel()
		for _, sys := range domain.HouseSystems() {
			provider, err := houses.ForSystem(sys)
			require.NoError(t, err)
			assert.Equal(t, sys, provider.System())
		}
	})

	t.Run("Unknown System", func(t *testing.T) {
		t.Parallel()
		_, err := houses.ForSystem(domain.HouseSystem(99))
		require.ErrorContains(t, err, domain.ErrUnknownHouseSystem.Error())
	})
}

func TestWholeSignCusps(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "2000-01-01T12:00:00Z")
	loc := locationAt(t, 51.48, 0)

	hc, angles, err := houses.NewWholeSign().Cusps(context.Background(), m, loc)
	require.NoError(t, err)

	assert.Equal(t, domain.WholeSign, hc.System)
	for i, cusp := range hc.Cusps {
		assert.InDelta(t, 0, math.Mod(cusp, 30), 1e-9, "cusp %d is not a sign boundary", i+1)
	}
	assert.InDelta(t, 30*math.Floor(angles.Ascendant/30), hc.Cusps[0], 1e-9)
	assert.Equal(t, 1, hc.HouseOf(angles.Ascendant))
}

func TestEqualCusps(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "2024-03-20T03:06:00Z")
	loc := locationAt(t, 47.38, 8.54)

	hc, angles, err := houses.NewEqual().Cusps(context.Background(), m, loc)
	require.NoError(t, err)

	assert.Equal(t, domain.Equal, hc.System)
	assert.InDelta(t, angles.Ascendant, hc.Cusps[0], 1e-9)
	for i := range hc.Cusps {
		next := hc.Cusps[(i+1)%12]
		assert.InDelta(t, 30, domain.SignedDelta(hc.Cusps[i], next), 1e-9, "house %d span", i+1)
	}
}

func TestPorphyryCusps(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "1984-11-08T14:20:00Z")
	loc := locationAt(t, 40.71, -74.01)

	hc, angles, err := houses.NewPorphyry().Cusps(context.Background(), m, loc)
	require.NoError(t, err)

	assert.Equal(t, domain.Porphyry, hc.System)
	assert.InDelta(t, angles.Ascendant, hc.Cusps[0], 1e-9)
	assert.InDelta(t, angles.ImumCoeli, hc.Cusps[3], 1e-9)
	assert.InDelta(t, angles.Descendant, hc.Cusps[6], 1e-9)
	assert.InDelta(t, angles.Midheaven, hc.Cusps[9], 1e-9)

	t.Run("Trisects Each Quadrant", func(t *testing.T) {
		thirds := []float64{
			domain.SignedDelta(hc.Cusps[9], hc.Cusps[10]),
			domain.SignedDelta(hc.Cusps[10], hc.Cusps[11]),
			domain.SignedDelta(hc.Cusps[11], hc.Cusps[0]),
		}
		assert.InDelta(t, thirds[0], thirds[1], 1e-9)
		assert.InDelta(t, thirds[1], thirds[2], 1e-9)

		quarters := []float64{
			domain.SignedDelta(hc.Cusps[0], hc.Cusps[1]),
			domain.SignedDelta(hc.Cusps[1], hc.Cusps[2]),
			domain.SignedDelta(hc.Cusps[2], hc.Cusps[3]),
		}
		assert.InDelta(t, quarters[0], quarters[1], 1e-9)
		assert.InDelta(t, quarters[1], quarters[2], 1e-9)
	})

	t.Run("Opposite Cusps Mirror", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			assert.InDelta(t, 0, domain.Separation(hc.Cusps[i+6], hc.Cusps[i]+180), 1e-9, "houses %d and %d", i+1, i+7)
		}
	})
}

func TestSystemsShareAngles(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "2010-07-11T19:33:00Z")
	loc := locationAt(t, 47.38, 8.54)

	var last *domain.ChartAngles
	for _, sys := range domain.HouseSystems() {
		provider, err := houses.ForSystem(sys)
		require.NoError(t, err)

		_, angles, err := provider.Cusps(context.Background(), m, loc)
		require.NoError(t, err)
		if last != nil {
			assert.Equal(t, *last, angles, "system %s", sys)
		}
		last = &angles
	}
}

func TestCuspsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := momentAt(t, "2024-01-01T00:00:00Z")
	loc := locationAt(t, 47.38, 8.54)

	for _, sys := range domain.HouseSystems() {
		provider, err := houses.ForSystem(sys)
		require.NoError(t, err)

		_, _, err = provider.Cusps(ctx, m, loc)
		require.ErrorIs(t, err, context.Canceled, "system %s", sys)
	}
}
