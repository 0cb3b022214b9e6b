package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// ChartConfig is the validated calculation configuration. Loaders build it
// from user-facing files; by the time a ChartConfig exists every name in it
// has resolved to a known enum value, so calculation code never sees an
// unknown body, system, or aspect.
type ChartConfig struct {
	Bodies       []Body
	HouseSystems []HouseSystem
	Aspects      []AspectName
	OrbRules     []OrbRule
	AspectOrbs   map[AspectName]float64
	DefaultOrb   float64
	Options      CalcOptions
	Components   []string
	Analyzers    []string
	Filter       AspectFilter
	Cache        CacheConfig
}

// OrbRule is one user-configured orb allowance. A rule binds to one or two
// bodies: a two-body rule matches the unordered pair, a single-body rule
// matches any pair containing the body. When HasAspect is set the rule
// applies to that aspect only, otherwise to every aspect.
type OrbRule struct {
	Bodies    []Body
	Aspect    AspectName
	HasAspect bool
	Orb       float64
}

// AspectFilter controls which position pairs the aspect detector considers.
type AspectFilter struct {
	// IncludePoints admits derived points such as the lots.
	IncludePoints bool
	// IncludeAngles admits the angle pseudo-bodies (Ascendant, Midheaven).
	IncludeAngles bool
	// AngleToAngle admits pairs where both members are angles. Has no
	// effect unless IncludeAngles is set.
	AngleToAngle bool
}

// Allows reports whether a pair of bodies passes the filter.
func (f AspectFilter) Allows(a, b Body) bool {
	if !f.IncludePoints && (a.Class() == ClassPoint || b.Class() == ClassPoint) {
		return false
	}
	aAngle := a.Class() == ClassAngle
	bAngle := b.Class() == ClassAngle
	if !f.IncludeAngles && (aAngle || bAngle) {
		return false
	}
	if !f.AngleToAngle && aAngle && bAngle {
		return false
	}
	return true
}

// CacheBackend selects a calculation cache implementation.
type CacheBackend string

const (
	// CacheNone disables position memoization entirely.
	CacheNone CacheBackend = "none"
	// CacheMemory keeps entries in process memory.
	CacheMemory CacheBackend = "memory"
	// CacheSQLite persists entries to a SQLite database on disk.
	CacheSQLite CacheBackend = "sqlite"
)

// ParseCacheBackend resolves a configuration name to a CacheBackend.
func ParseCacheBackend(s string) (CacheBackend, error) {
	switch b := CacheBackend(s); b {
	case CacheNone, CacheMemory, CacheSQLite:
		return b, nil
	default:
		return "", zerr.With(ErrUnknownCacheBackend, "backend", s)
	}
}

// CacheConfig selects and parameterizes the calculation cache.
type CacheConfig struct {
	Backend CacheBackend
	// Path is the SQLite database file. Empty selects the default location
	// under the user cache directory.
	Path string
	// MaxAge bounds how long a stored entry stays valid. Zero means entries
	// never expire.
	MaxAge time.Duration
}

// DefaultConfig returns the configuration used when no stellium.yaml is
// found: the ten classical bodies plus the lunar nodes, the five Ptolemaic
// aspects, Placidus and whole-sign houses, the built-in components and
// analyzers, and conventional orb allowances.
func DefaultConfig() ChartConfig {
	return ChartConfig{
		Bodies: []Body{
			Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn,
			Uranus, Neptune, Pluto, NorthNode, SouthNode,
		},
		HouseSystems: []HouseSystem{Placidus, WholeSign},
		Aspects: []AspectName{
			Conjunction, Sextile, Square, Trine, Opposition,
		},
		AspectOrbs: map[AspectName]float64{
			Conjunction: 8,
			Sextile:     4,
			Square:      7,
			Trine:       7,
			Opposition:  8,
		},
		DefaultOrb: FallbackOrb,
		Options:    CalcOptions{Zodiac: ZodiacTropical},
		Components: []string{"angles", "lots"},
		Analyzers:  []string{"sect", "balance", "patterns"},
		Filter: AspectFilter{
			IncludePoints: true,
			IncludeAngles: true,
			AngleToAngle:  false,
		},
		Cache: CacheConfig{Backend: CacheMemory},
	}
}

// FallbackOrb is the terminal step of the orb resolution cascade. It is
// used when neither a rule nor a per-aspect default matches.
const FallbackOrb = 6.0
