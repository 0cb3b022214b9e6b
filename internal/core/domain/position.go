package domain

// Position is the state of one body at one moment: geocentric ecliptic
// coordinates plus their rates of change. Positions are immutable value
// types; derive variants with the With* helpers instead of mutating.
type Position struct {
	Body Body
	// Longitude is the ecliptic longitude, always normalized to [0, 360).
	Longitude float64
	// Latitude is the ecliptic latitude in degrees.
	Latitude float64
	// Distance is the geocentric distance in AU. Zero for derived points
	// and angles, which have no physical distance.
	Distance float64
	// SpeedLongitude is the rate of longitude change in degrees per day.
	// Negative speed means retrograde motion.
	SpeedLongitude float64
	// SpeedLatitude is the rate of latitude change in degrees per day.
	SpeedLatitude float64
	// SpeedDistance is the rate of distance change in AU per day.
	SpeedDistance float64
}

// Retrograde reports whether the body is in apparent backward motion.
// It is derived from the longitude velocity, never stored separately.
func (p Position) Retrograde() bool {
	return p.SpeedLongitude < 0
}

// WithLongitude returns a copy with the longitude replaced (normalized).
func (p Position) WithLongitude(lon float64) Position {
	p.Longitude = NormalizeDegrees(lon)
	return p
}

// Sign returns the zodiac sign index 0..11 (0 = Aries).
func (p Position) Sign() int {
	return int(p.Longitude / 30)
}

// SignDegree returns the longitude within the sign, in [0, 30).
func (p Position) SignDegree() float64 {
	return p.Longitude - float64(p.Sign())*30
}

// Omission records a requested body the provider could not supply, with
// the reason. Omissions are recoverable per-item conditions, not errors.
type Omission struct {
	Body   Body
	Reason string
}

// PositionSet is the result of one provider call: the positions that could
// be computed plus the per-body omissions.
type PositionSet struct {
	Positions []Position
	Omissions []Omission
}

// ByBody returns the position for a body, if present.
func (s PositionSet) ByBody(b Body) (Position, bool) {
	for _, p := range s.Positions {
		if p.Body == b {
			return p, true
		}
	}
	return Position{}, false
}

// Has reports whether a position for the body is present.
func (s PositionSet) Has(b Body) bool {
	_, ok := s.ByBody(b)
	return ok
}
