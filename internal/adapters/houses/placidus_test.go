package houses_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.stellium.dev/stellium/internal/adapters/houses"
	"go.stellium.dev/stellium/internal/core/domain"
)

func TestPlacidusCusps(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "1991-02-03T09:12:00Z")
	loc := locationAt(t, 47.38, 8.54)

	hc, angles, err := houses.NewPlacidus().Cusps(context.Background(), m, loc)
	require.NoError(t, err)

	assert.Equal(t, domain.Placidus, hc.System)
	assert.InDelta(t, angles.Ascendant, hc.Cusps[0], 1e-9)
	assert.InDelta(t, angles.ImumCoeli, hc.Cusps[3], 1e-9)
	assert.InDelta(t, angles.Descendant, hc.Cusps[6], 1e-9)
	assert.InDelta(t, angles.Midheaven, hc.Cusps[9], 1e-9)

	t.Run("Cusps Advance In Zodiacal Order", func(t *testing.T) {
		total := 0.0
		for i := range hc.Cusps {
			span := domain.SignedDelta(hc.Cusps[i], hc.Cusps[(i+1)%12])
			assert.Greater(t, span, 0.0, "house %d has no span", i+1)
			total += span
		}
		assert.InDelta(t, 360, total, 1e-6)
	})

	t.Run("Opposite Cusps Mirror", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			assert.InDelta(t, 0, domain.Separation(hc.Cusps[i+6], hc.Cusps[i]+180), 1e-9, "houses %d and %d", i+1, i+7)
		}
	})
}

func TestPlacidusAtEquatorDividesRightAscensionEvenly(t *testing.T) {
	t.Parallel()

	// With no geographic latitude every semi-arc is exactly 90
	// degrees, so the intermediate cusps sit at fixed right-ascension
	// offsets from the midheaven.
	m := momentAt(t, "2005-05-05T05:05:00Z")
	loc := locationAt(t, 0, -78.5)

	ramc, eps, _, err := houses.FrameFor(m, loc)
	require.NoError(t, err)

	hc, _, err := houses.NewPlacidus().Cusps(context.Background(), m, loc)
	require.NoError(t, err)

	for _, tt := range []struct {
		house  int
		offset float64
	}{
		{11, 30},
		{12, 60},
		{2, 120},
		{3, 150},
	} {
		want := houses.EclipticFromRA(ramc+tt.offset, eps)
		assert.InDelta(t, 0, domain.Separation(want, hc.Cusps[tt.house-1]), 1e-6, "house %d", tt.house)
	}
}

func TestPlacidusRejectsPolarLatitudes(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "2024-01-01T00:00:00Z")

	for _, lat := range []float64{67, -67, 80, 89.9} {
		_, _, err := houses.NewPlacidus().Cusps(context.Background(), m, locationAt(t, lat, 0))
		require.ErrorContains(t, err, domain.ErrHouseSystemLatitude.Error(), "lat %g", lat)
	}
}

func TestQuadrantFreeSystemsSurvivePolarLatitudes(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "2024-01-01T00:00:00Z")
	loc := locationAt(t, 78.22, 15.64)

	for _, sys := range []domain.HouseSystem{domain.WholeSign, domain.Equal, domain.Porphyry} {
		provider, err := houses.ForSystem(sys)
		require.NoError(t, err)

		_, _, err = provider.Cusps(context.Background(), m, loc)
		require.NoError(t, err, "system %s", sys)
	}
}

func TestPlacidusDeterministic(t *testing.T) {
	t.Parallel()

	m := momentAt(t, "1969-07-20T20:17:00Z")
	loc := locationAt(t, 28.6, -80.6)

	first, _, err := houses.NewPlacidus().Cusps(context.Background(), m, loc)
	require.NoError(t, err)
	second, _, err := houses.NewPlacidus().Cusps(context.Background(), m, loc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
