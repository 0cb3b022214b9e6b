package domain

import "go.trai.ch/zerr"

// CrossingDirection selects which motion direction makes a crossing
// count. Around a retrograde loop a body passes the same longitude up
// to three times; the direction picks which of those passes the search
// reports.
type CrossingDirection int8

const (
	// CrossingDirect reports crossings made in forward zodiacal motion.
	CrossingDirect CrossingDirection = 1
	// CrossingRetrograde reports crossings made in retrograde motion.
	CrossingRetrograde CrossingDirection = -1
)

// String returns the flag value of the direction.
func (d CrossingDirection) String() string {
	if d == CrossingRetrograde {
		return "retrograde"
	}
	return "direct"
}

// ParseCrossingDirection resolves a flag value to a CrossingDirection.
func ParseCrossingDirection(s string) (CrossingDirection, error) {
	switch s {
	case "direct":
		return CrossingDirect, nil
	case "retrograde":
		return CrossingRetrograde, nil
	default:
		return 0, zerr.With(ErrUnknownDirection, "direction", s)
	}
}

// ReturnEvent is a found crossing: the exact moment a body's longitude
// reached the target while moving in the requested direction.
type ReturnEvent struct {
	Body   Body
	Target float64
	// Exact is the crossing moment, resolved to the finder's tolerance.
	Exact Moment
	// Longitude is the body's longitude at Exact. Within tolerance of
	// Target; kept for reporting.
	Longitude float64
}
