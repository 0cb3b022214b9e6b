package kepler

import (
	"math"

	"go.stellium.dev/stellium/internal/core/domain"
)

const (
	earthRadiusKm = 6378.14
	kmPerAU       = 1.495978707e8
)

// moonEcliptic computes the Moon's geocentric ecliptic position from the
// truncated periodic series in the Astronomical Almanac. The largest
// neglected terms are below 0.3 degrees in longitude.
func moonEcliptic(t float64) (lon, lat, dist float64) {
	sin := func(deg float64) float64 { return math.Sin(radians(deg)) }
	cos := func(deg float64) float64 { return math.Cos(radians(deg)) }

	lon = 218.32 + 481267.881*t +
		6.29*sin(135.0+477198.87*t) -
		1.27*sin(259.3-413335.36*t) +
		0.66*sin(235.7+890534.22*t) +
		0.21*sin(269.9+954397.74*t) -
		0.19*sin(357.5+35999.05*t) -
		0.11*sin(186.5+966404.03*t)

	lat = 5.13*sin(93.3+483202.02*t) +
		0.28*sin(228.2+960400.89*t) -
		0.28*sin(318.3+6003.15*t) -
		0.17*sin(217.6-407332.21*t)

	// Horizontal parallax, then distance from it.
	par := 0.9508 +
		0.0518*cos(135.0+477198.87*t) +
		0.0095*cos(259.3-413335.36*t) +
		0.0078*cos(235.7+890534.22*t) +
		0.0028*cos(269.9+954397.74*t)

	dist = earthRadiusKm / math.Sin(radians(par)) / kmPerAU

	return domain.NormalizeDegrees(lon), lat, dist
}

// meanLunarNode returns the mean longitude of the ascending lunar node.
func meanLunarNode(t float64) float64 {
	node := 125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000
	return domain.NormalizeDegrees(node)
}
