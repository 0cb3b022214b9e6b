// Package houses implements the house system providers.
//
// All systems share the same spherical-astronomy frame: mean obliquity,
// Greenwich sidereal time, and the ascendant and midheaven derived from
// them. The systems differ only in how they partition the ecliptic
// between those anchors.
package houses

import (
	"math"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.trai.ch/zerr"
)

// frame holds the shared quantities every house system starts from, in
// degrees.
type frame struct {
	obliquity float64
	ramc      float64
	angles    domain.ChartAngles
}

// newFrame computes the chart frame at a moment and location.
func newFrame(m domain.Moment, loc domain.Location) (frame, error) {
	// The ascendant degenerates at the geographic poles.
	if math.Abs(loc.Latitude) >= 90 {
		return frame{}, zerr.With(domain.ErrHouseSystemLatitude, "latitude", loc.String())
	}

	t := m.JulianCenturies()
	eps := obliquity(t)
	ramc := domain.NormalizeDegrees(gmstDegrees(m.JulianDay(), t) + loc.Longitude)

	mc := midheaven(ramc, eps)
	asc := ascendant(ramc, eps, loc.Latitude)

	// The ascendant always lies in the half-circle rising after the
	// midheaven. The arctangent can land on the setting side; flip it
	// back when it does.
	if domain.SignedDelta(mc, asc) <= 0 {
		asc = domain.NormalizeDegrees(asc + 180)
	}

	return frame{
		obliquity: eps,
		ramc:      ramc,
		angles: domain.ChartAngles{
			Ascendant:  asc,
			Midheaven:  mc,
			Descendant: domain.NormalizeDegrees(asc + 180),
			ImumCoeli:  domain.NormalizeDegrees(mc + 180),
		},
	}, nil
}

// obliquity returns the mean obliquity of the ecliptic in degrees at t
// Julian centuries from J2000.
func obliquity(t float64) float64 {
	return 23.43929111 - 0.013004167*t - 1.6389e-7*t*t + 5.0361e-7*t*t*t
}

// gmstDegrees returns the Greenwich mean sidereal time as an angle.
func gmstDegrees(jd, t float64) float64 {
	gmst := 280.46061837 +
		360.98564736629*(jd-domain.J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return domain.NormalizeDegrees(gmst)
}

// midheaven returns the ecliptic longitude culminating at the given RAMC.
func midheaven(ramc, eps float64) float64 {
	sinR, cosR := math.Sincos(radians(ramc))
	return domain.NormalizeDegrees(degrees(math.Atan2(sinR, cosR*math.Cos(radians(eps)))))
}

// ascendant returns the ecliptic longitude rising at the given RAMC and
// latitude, before the hemisphere correction applied by newFrame.
func ascendant(ramc, eps, lat float64) float64 {
	sinR, cosR := math.Sincos(radians(ramc))
	sinE, cosE := math.Sincos(radians(eps))
	tanL := math.Tan(radians(lat))

	return domain.NormalizeDegrees(degrees(math.Atan2(cosR, -(sinR*cosE + tanL*sinE))))
}

// mirrorQuadrants fills cusps 4 through 9 (indices 3..8) as the exact
// opposites of cusps 10 through 3, which the caller has already set.
func mirrorQuadrants(cusps *[12]float64) {
	for i := 3; i < 9; i++ {
		cusps[i] = domain.NormalizeDegrees(cusps[(i+6)%12] + 180)
	}
}

// eclipticFromRA converts a right ascension on the ecliptic back to
// ecliptic longitude.
func eclipticFromRA(alpha, eps float64) float64 {
	sinA, cosA := math.Sincos(radians(alpha))
	return domain.NormalizeDegrees(degrees(math.Atan2(sinA, cosA*math.Cos(radians(eps)))))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
