// Package kepler implements an analytic ephemeris position provider.
//
// Planets are computed from J2000 Keplerian mean elements with centennial
// rates, the Sun from the Earth-Moon barycenter orbit, and the Moon from a
// truncated periodic series. Accuracy is on the order of an arcminute for
// the planets and a third of a degree for the Moon, which is sufficient
// for chart work.
package kepler

import (
	"context"
	"math"
	"sort"

	"go.stellium.dev/stellium/internal/core/domain"
)

const (
	// speedStepDays is the half-width of the central-difference window
	// used for velocities.
	speedStepDays = 0.01

	// keplerTolerance terminates the Newton iteration on the eccentric
	// anomaly.
	keplerTolerance = 1e-12

	// keplerMaxIterations bounds the Newton iteration. High-eccentricity
	// orbits such as Pluto's converge well inside this.
	keplerMaxIterations = 32
)

// Provider computes geocentric ecliptic positions analytically. It is
// stateless and safe for concurrent use.
type Provider struct{}

// NewProvider creates a new analytic ephemeris provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Positions implements ports.PositionProvider. The location parameter is
// ignored: output is geocentric. Bodies without backing data become
// per-body omissions. The result lists positions in canonical rank order.
func (p *Provider) Positions(ctx context.Context, moment domain.Moment, _ domain.Location, bodies []domain.Body, opts domain.CalcOptions) (domain.PositionSet, error) {
	var set domain.PositionSet
	for _, b := range bodies {
		if err := ctx.Err(); err != nil {
			return domain.PositionSet{}, err
		}
		if reason, ok := omissionReason(b); ok {
			set.Omissions = append(set.Omissions, domain.Omission{Body: b, Reason: reason})
			continue
		}
		set.Positions = append(set.Positions, p.position(moment, b, opts))
	}
	sort.Slice(set.Positions, func(i, j int) bool {
		return set.Positions[i].Body.Rank() < set.Positions[j].Body.Rank()
	})
	return set, nil
}

// omissionReason reports whether the body is outside the ephemeris and why.
func omissionReason(b domain.Body) (string, bool) {
	switch b.Class() {
	case domain.ClassPoint:
		return "derived point, computed by the lots component", true
	case domain.ClassAngle:
		return "chart angle, computed by the house stage", true
	default:
	}
	if b == domain.Chiron {
		return "no orbital elements in the built-in ephemeris", true
	}
	return "", false
}

// position computes the full state of one body, including speeds by
// central differences around the moment.
func (p *Provider) position(m domain.Moment, b domain.Body, opts domain.CalcOptions) domain.Position {
	lon0, lat0, dist0 := p.ecliptic(m, b, opts)
	lonA, latA, distA := p.ecliptic(m.AddDays(-speedStepDays), b, opts)
	lonB, latB, distB := p.ecliptic(m.AddDays(speedStepDays), b, opts)

	return domain.Position{
		Body:           b,
		Longitude:      lon0,
		Latitude:       lat0,
		Distance:       dist0,
		SpeedLongitude: domain.SignedDelta(lonA, lonB) / (2 * speedStepDays),
		SpeedLatitude:  (latB - latA) / (2 * speedStepDays),
		SpeedDistance:  (distB - distA) / (2 * speedStepDays),
	}
}

// ecliptic returns geocentric ecliptic longitude and latitude in degrees
// and distance in au, in the frame selected by opts.
func (p *Provider) ecliptic(m domain.Moment, b domain.Body, opts domain.CalcOptions) (lon, lat, dist float64) {
	t := m.JulianCenturies()

	switch b {
	case domain.Sun:
		ex, ey, ez := heliocentric(embElements, t)
		lon, lat, dist = vectorToSpherical(-ex, -ey, -ez)
	case domain.Moon:
		lon, lat, dist = moonEcliptic(t)
	case domain.NorthNode:
		lon, lat, dist = meanLunarNode(t), 0, 0
	case domain.SouthNode:
		lon, lat, dist = domain.NormalizeDegrees(meanLunarNode(t)+180), 0, 0
	default:
		px, py, pz := heliocentric(planetElements[b], t)
		ex, ey, ez := heliocentric(embElements, t)
		lon, lat, dist = vectorToSpherical(px-ex, py-ey, pz-ez)
	}

	if opts.Zodiac == domain.ZodiacSidereal {
		lon = domain.NormalizeDegrees(lon - ayanamsaDegrees(opts.Ayanamsa, t))
	}
	return lon, lat, dist
}

// heliocentric computes the J2000-ecliptic heliocentric rectangular
// coordinates of a body from its propagated elements.
func heliocentric(el orbitalElements, t float64) (x, y, z float64) {
	a, e, i, l, lp, node := el.at(t)

	// Argument of perihelion and mean anomaly.
	omega := radians(lp - node)
	ma := radians(domain.SignedDelta(0, l-lp))

	ea := solveKepler(ma, e)

	// Position in the orbital plane, perihelion on the +x axis.
	xp := a * (math.Cos(ea) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ea)

	sinw, cosw := math.Sincos(omega)
	sinn, cosn := math.Sincos(radians(node))
	sini, cosi := math.Sincos(radians(i))

	x = (cosw*cosn-sinw*sinn*cosi)*xp + (-sinw*cosn-cosw*sinn*cosi)*yp
	y = (cosw*sinn+sinw*cosn*cosi)*xp + (-sinw*sinn+cosw*cosn*cosi)*yp
	z = sinw*sini*xp + cosw*sini*yp
	return x, y, z
}

// solveKepler solves E - e*sin(E) = M for the eccentric anomaly by Newton
// iteration. M is in radians.
func solveKepler(ma, e float64) float64 {
	ea := ma + e*math.Sin(ma)
	for range keplerMaxIterations {
		delta := (ea - e*math.Sin(ea) - ma) / (1 - e*math.Cos(ea))
		ea -= delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return ea
}

// vectorToSpherical converts an ecliptic rectangular vector to longitude
// and latitude in degrees and radial distance.
func vectorToSpherical(x, y, z float64) (lon, lat, dist float64) {
	dist = math.Sqrt(x*x + y*y + z*z)
	lon = domain.NormalizeDegrees(degrees(math.Atan2(y, x)))
	lat = degrees(math.Asin(z / dist))
	return lon, lat, dist
}

// ayanamsaDegrees returns the sidereal offset at t Julian centuries. Both
// models are linear approximations around their J2000 values; the rate is
// the general precession in longitude.
func ayanamsaDegrees(a domain.Ayanamsa, t float64) float64 {
	const precessionRate = 1.396971 // degrees per Julian century
	switch a {
	case domain.AyanamsaFaganBradley:
		return 24.736667 + precessionRate*t
	default:
		return 23.856750 + precessionRate*t
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
