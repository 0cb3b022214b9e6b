package domain

import "math"

// This file is the single home for circular-arithmetic helpers. Every
// wraparound comparison in the engine goes through these functions rather
// than raw subtraction.

// NormalizeDegrees maps an angle in degrees onto [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Separation returns the minimal arc between two longitudes, in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignedDelta returns the shortest signed arc from one longitude to
// another, in (-180, 180]. A positive result means `to` lies forward of
// `from` in zodiacal order.
func SignedDelta(from, to float64) float64 {
	d := NormalizeDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// InArc reports whether lon lies in the circular interval [start, end)
// walking forward through the zodiac. A longitude exactly on start is
// inside; exactly on end is outside. An arc with start == end is empty.
func InArc(lon, start, end float64) bool {
	span := NormalizeDegrees(end - start)
	offset := NormalizeDegrees(lon - start)
	return offset < span
}
