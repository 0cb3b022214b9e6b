package aspects

import (
	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
)

var _ ports.OrbResolver = (*OrbPolicy)(nil)

// OrbPolicy resolves orb allowances through a fixed cascade: pair rules
// scoped to the aspect, unscoped pair rules, single-body rules scoped to
// the aspect, unscoped single-body rules, the per-aspect defaults, and
// finally the global default. When both bodies of a pair carry a matching
// single-body rule, the body with the lower canonical rank decides. When
// two rules share the exact same scope the one configured later wins.
type OrbPolicy struct {
	pairScoped   map[pairAspectKey]float64
	pairAny      map[pairKey]float64
	singleScoped map[bodyAspectKey]float64
	singleAny    map[domain.Body]float64
	aspectOrbs   map[domain.AspectName]float64
	defaultOrb   float64
}

type pairKey struct {
	lo, hi domain.Body
}

type pairAspectKey struct {
	lo, hi domain.Body
	aspect domain.AspectName
}

type bodyAspectKey struct {
	body   domain.Body
	aspect domain.AspectName
}

// NewOrbPolicy indexes the configured orb rules for constant-time
// resolution.
func NewOrbPolicy(cfg domain.ChartConfig) *OrbPolicy {
	p := &OrbPolicy{
		pairScoped:   make(map[pairAspectKey]float64),
		pairAny:      make(map[pairKey]float64),
		singleScoped: make(map[bodyAspectKey]float64),
		singleAny:    make(map[domain.Body]float64),
		aspectOrbs:   make(map[domain.AspectName]float64, len(cfg.AspectOrbs)),
		defaultOrb:   cfg.DefaultOrb,
	}
	for aspect, orb := range cfg.AspectOrbs {
		p.aspectOrbs[aspect] = orb
	}
	for _, rule := range cfg.OrbRules {
		switch len(rule.Bodies) {
		case 1:
			if rule.HasAspect {
				p.singleScoped[bodyAspectKey{rule.Bodies[0], rule.Aspect}] = rule.Orb
			} else {
				p.singleAny[rule.Bodies[0]] = rule.Orb
			}
		case 2:
			lo, hi := orderPair(rule.Bodies[0], rule.Bodies[1])
			if rule.HasAspect {
				p.pairScoped[pairAspectKey{lo, hi, rule.Aspect}] = rule.Orb
			} else {
				p.pairAny[pairKey{lo, hi}] = rule.Orb
			}
		}
	}
	return p
}

// Allowance implements ports.OrbResolver.
func (p *OrbPolicy) Allowance(a, b domain.Body, aspect domain.AspectName) float64 {
	lo, hi := orderPair(a, b)

	if orb, ok := p.pairScoped[pairAspectKey{lo, hi, aspect}]; ok {
		return orb
	}
	if orb, ok := p.pairAny[pairKey{lo, hi}]; ok {
		return orb
	}
	if orb, ok := p.singleScoped[bodyAspectKey{lo, aspect}]; ok {
		return orb
	}
	if orb, ok := p.singleScoped[bodyAspectKey{hi, aspect}]; ok {
		return orb
	}
	if orb, ok := p.singleAny[lo]; ok {
		return orb
	}
	if orb, ok := p.singleAny[hi]; ok {
		return orb
	}
	if orb, ok := p.aspectOrbs[aspect]; ok {
		return orb
	}
	if p.defaultOrb > 0 {
		return p.defaultOrb
	}
	return domain.FallbackOrb
}

// orderPair normalizes an unordered pair by canonical rank.
func orderPair(a, b domain.Body) (lo, hi domain.Body) {
	if b.Rank() < a.Rank() {
		return b, a
	}
	return a, b
}
