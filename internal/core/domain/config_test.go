package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stellium.dev/stellium/internal/core/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Contains(t, cfg.Bodies, domain.Sun)
	assert.Contains(t, cfg.Bodies, domain.Moon)
	assert.NotContains(t, cfg.Bodies, domain.Chiron)
	assert.Contains(t, cfg.HouseSystems, domain.Placidus)
	assert.Contains(t, cfg.Aspects, domain.Trine)
	assert.NotContains(t, cfg.Aspects, domain.Quintile)
	assert.Equal(t, domain.ZodiacTropical, cfg.Options.Zodiac)
	assert.Equal(t, domain.CacheMemory, cfg.Cache.Backend)
	require.InDelta(t, domain.FallbackOrb, cfg.DefaultOrb, 1e-12)

	for aspect, orb := range cfg.AspectOrbs {
		assert.Positive(t, orb, "default orb for %s", aspect)
	}
}

func TestAspectFilter_Allows(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.AspectFilter
		a, b   domain.Body
		want   bool
	}{
		{
			name:   "Planet Pair Always Allowed",
			filter: domain.AspectFilter{},
			a:      domain.Mars, b: domain.Venus,
			want: true,
		},
		{
			name:   "Points Excluded By Default",
			filter: domain.AspectFilter{},
			a:      domain.Sun, b: domain.PartOfFortune,
			want: false,
		},
		{
			name:   "Points Included When Enabled",
			filter: domain.AspectFilter{IncludePoints: true},
			a:      domain.Sun, b: domain.PartOfFortune,
			want: true,
		},
		{
			name:   "Angles Excluded By Default",
			filter: domain.AspectFilter{},
			a:      domain.Ascendant, b: domain.Moon,
			want: false,
		},
		{
			name:   "Angle To Planet Allowed When Angles Enabled",
			filter: domain.AspectFilter{IncludeAngles: true},
			a:      domain.Ascendant, b: domain.Moon,
			want: true,
		},
		{
			name:   "Angle To Angle Needs Both Switches",
			filter: domain.AspectFilter{IncludeAngles: true},
			a:      domain.Ascendant, b: domain.Midheaven,
			want: false,
		},
		{
			name:   "Angle To Angle Allowed When Enabled",
			filter: domain.AspectFilter{IncludeAngles: true, AngleToAngle: true},
			a:      domain.Ascendant, b: domain.Midheaven,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Allows(tt.a, tt.b))
			assert.Equal(t, tt.want, tt.filter.Allows(tt.b, tt.a))
		})
	}
}

func TestCacheEntry_Expired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entry := domain.CacheEntry{CreatedAt: now.Add(-2 * time.Hour)}

	assert.False(t, entry.Expired(now, 0), "zero max age never expires")
	assert.False(t, entry.Expired(now, 3*time.Hour))
	assert.True(t, entry.Expired(now, time.Hour))
}
