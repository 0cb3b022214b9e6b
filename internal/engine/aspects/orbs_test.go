package aspects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/engine/aspects"
)

func TestOrbPolicyCascade(t *testing.T) {
	t.Parallel()

	cfg := domain.ChartConfig{
		OrbRules: []domain.OrbRule{
			{Bodies: []domain.Body{domain.Sun, domain.Moon}, Aspect: domain.Conjunction, HasAspect: true, Orb: 10},
			{Bodies: []domain.Body{domain.Sun, domain.Moon}, Orb: 9},
			{Bodies: []domain.Body{domain.Mercury}, Aspect: domain.Trine, HasAspect: true, Orb: 5},
			{Bodies: []domain.Body{domain.Venus}, Orb: 3},
		},
		AspectOrbs: map[domain.AspectName]float64{domain.Trine: 7},
		DefaultOrb: 6,
	}
	policy := aspects.NewOrbPolicy(cfg)

	tests := []struct {
		name   string
		a, b   domain.Body
		aspect domain.AspectName
		want   float64
	}{
		{"Pair Rule Scoped To Aspect", domain.Sun, domain.Moon, domain.Conjunction, 10},
		{"Pair Rule Unscoped", domain.Sun, domain.Moon, domain.Trine, 9},
		{"Single Rule Scoped To Aspect", domain.Mercury, domain.Jupiter, domain.Trine, 5},
		{"Single Rule Unscoped", domain.Mercury, domain.Venus, domain.Square, 3},
		{"Scoped Single Beats Unscoped Single", domain.Mercury, domain.Venus, domain.Trine, 5},
		{"Per Aspect Default", domain.Jupiter, domain.Saturn, domain.Trine, 7},
		{"Global Default", domain.Jupiter, domain.Saturn, domain.Square, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, policy.Allowance(tt.a, tt.b, tt.aspect), 1e-12)
		})
	}
}

func TestOrbPolicyIsSymmetric(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	cfg.OrbRules = []domain.OrbRule{
		{Bodies: []domain.Body{domain.Moon, domain.Mars}, Orb: 11},
		{Bodies: []domain.Body{domain.Saturn}, Orb: 4},
	}
	policy := aspects.NewOrbPolicy(cfg)

	pairs := [][2]domain.Body{
		{domain.Moon, domain.Mars},
		{domain.Sun, domain.Saturn},
		{domain.Venus, domain.Pluto},
	}
	for _, pair := range pairs {
		for _, aspect := range cfg.Aspects {
			forward := policy.Allowance(pair[0], pair[1], aspect)
			reverse := policy.Allowance(pair[1], pair[0], aspect)
			assert.Equal(t, forward, reverse, "%s/%s under %s", pair[0], pair[1], aspect)
		}
	}
}

func TestOrbPolicyLowerRankBodyDecides(t *testing.T) {
	t.Parallel()

	policy := aspects.NewOrbPolicy(domain.ChartConfig{
		OrbRules: []domain.OrbRule{
			{Bodies: []domain.Body{domain.Moon}, Orb: 11},
			{Bodies: []domain.Body{domain.Neptune}, Orb: 2},
		},
	})

	// Both bodies carry a rule; the luminary outranks the planet.
	assert.InDelta(t, 11, policy.Allowance(domain.Neptune, domain.Moon, domain.Sextile), 1e-12)
}

func TestOrbPolicyLaterRuleWins(t *testing.T) {
	t.Parallel()

	policy := aspects.NewOrbPolicy(domain.ChartConfig{
		OrbRules: []domain.OrbRule{
			{Bodies: []domain.Body{domain.Sun, domain.Moon}, Orb: 9},
			{Bodies: []domain.Body{domain.Moon, domain.Sun}, Orb: 12},
		},
	})

	assert.InDelta(t, 12, policy.Allowance(domain.Sun, domain.Moon, domain.Square), 1e-12)
}

func TestOrbPolicyFallback(t *testing.T) {
	t.Parallel()

	policy := aspects.NewOrbPolicy(domain.ChartConfig{})

	assert.InDelta(t, domain.FallbackOrb, policy.Allowance(domain.Sun, domain.Moon, domain.Opposition), 1e-12)
}
