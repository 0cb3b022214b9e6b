package domain

import (
	"math"

	"go.trai.ch/zerr"
)

// AspectName identifies a named angular relationship.
type AspectName uint8

const (
	Conjunction AspectName = iota
	Semisextile
	Semisquare
	Sextile
	Quintile
	Square
	Trine
	Sesquiquadrate
	Biquintile
	Quincunx
	Opposition

	aspectCount
)

var aspectNames = [aspectCount]string{
	Conjunction:    "conjunction",
	Semisextile:    "semisextile",
	Semisquare:     "semisquare",
	Sextile:        "sextile",
	Quintile:       "quintile",
	Square:         "square",
	Trine:          "trine",
	Sesquiquadrate: "sesquiquadrate",
	Biquintile:     "biquintile",
	Quincunx:       "quincunx",
	Opposition:     "opposition",
}

var aspectAngles = [aspectCount]float64{
	Conjunction:    0,
	Semisextile:    30,
	Semisquare:     45,
	Sextile:        60,
	Quintile:       72,
	Square:         90,
	Trine:          120,
	Sesquiquadrate: 135,
	Biquintile:     144,
	Quincunx:       150,
	Opposition:     180,
}

// String returns the canonical configuration name of the aspect.
func (a AspectName) String() string {
	if a >= aspectCount {
		return "unknown"
	}
	return aspectNames[a]
}

// Angle returns the exact angle of the aspect in degrees.
func (a AspectName) Angle() float64 {
	if a >= aspectCount {
		return 0
	}
	return aspectAngles[a]
}

// ParseAspectName resolves a configuration name to an AspectName.
func ParseAspectName(s string) (AspectName, error) {
	for a, name := range aspectNames {
		if name == s {
			return AspectName(a), nil
		}
	}
	return 0, zerr.With(ErrUnknownAspect, "aspect", s)
}

// AspectNames returns all supported aspects in ascending angle order.
func AspectNames() []AspectName {
	out := make([]AspectName, 0, aspectCount)
	for a := AspectName(0); a < aspectCount; a++ {
		out = append(out, a)
	}
	return out
}

// AspectPhase states whether the angular gap between two bodies is
// narrowing toward or widening away from the exact aspect angle.
type AspectPhase uint8

const (
	// PhaseApplying means the separation is moving toward exactness.
	PhaseApplying AspectPhase = iota
	// PhaseSeparating means the separation is moving away from exactness.
	PhaseSeparating
	// PhaseIndeterminate means the motion is too small to decide, which
	// is the honest answer near a retrograde station.
	PhaseIndeterminate
)

// String returns a display name for the phase.
func (p AspectPhase) String() string {
	switch p {
	case PhaseApplying:
		return "applying"
	case PhaseSeparating:
		return "separating"
	default:
		return "indeterminate"
	}
}

// Aspect is a detected angular relationship between two positions. First
// always carries the lower canonical rank. Orb is the absolute deviation
// of the measured separation (minimal arc, <= 180) from the exact angle,
// so it is never negative.
type Aspect struct {
	First  Position
	Second Position
	Name   AspectName
	// Angle is the exact aspect angle in degrees.
	Angle float64
	// Orb is |measured separation - Angle|.
	Orb   float64
	Phase AspectPhase
}

// Separation returns the measured minimal arc between the participants.
func (a Aspect) Separation() float64 {
	return Separation(a.First.Longitude, a.Second.Longitude)
}

// ExactWithin reports whether the aspect is within the given orb.
func (a Aspect) ExactWithin(orb float64) bool {
	return math.Abs(a.Orb) <= orb
}
