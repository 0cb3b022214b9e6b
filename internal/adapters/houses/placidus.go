package houses

import (
	"context"
	"math"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// placidusTolerance is the fixed-point convergence threshold for the
	// intermediate cusps, in degrees of right ascension.
	placidusTolerance = 1e-9
	// placidusIterations bounds the fixed-point search. Below the polar
	// circles the iteration converges in well under ten rounds.
	placidusIterations = 50
)

var _ ports.HouseSystemProvider = (*Placidus)(nil)

// Placidus divides the diurnal and nocturnal semi-arcs by time. The
// intermediate cusps have no closed form and are found by fixed-point
// iteration over right ascension.
type Placidus struct{}

// NewPlacidus creates a Placidus house provider.
func NewPlacidus() *Placidus {
	return &Placidus{}
}

// System implements ports.HouseSystemProvider.
func (*Placidus) System() domain.HouseSystem {
	return domain.Placidus
}

// Cusps implements ports.HouseSystemProvider.
func (*Placidus) Cusps(ctx context.Context, m domain.Moment, loc domain.Location) (domain.HouseCusps, domain.ChartAngles, error) {
	if err := ctx.Err(); err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	fr, err := newFrame(m, loc)
	if err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	// Beyond the polar circles parts of the ecliptic never rise or set
	// and the time-based division is undefined.
	if math.Abs(loc.Latitude) >= 90-fr.obliquity {
		return domain.HouseCusps{}, domain.ChartAngles{}, zerr.With(domain.ErrHouseSystemLatitude, "latitude", loc.String())
	}

	it := placidusIterator{
		ramc:   fr.ramc,
		eps:    fr.obliquity,
		tanLat: math.Tan(radians(loc.Latitude)),
	}

	hc := domain.HouseCusps{System: domain.Placidus}
	hc.Cusps[0] = fr.angles.Ascendant
	hc.Cusps[9] = fr.angles.Midheaven
	for _, c := range []struct {
		index     int
		start     float64
		fraction  float64
		nocturnal bool
	}{
		{10, 30, 1.0 / 3.0, false},
		{11, 60, 2.0 / 3.0, false},
		{1, 120, 2.0 / 3.0, true},
		{2, 150, 1.0 / 3.0, true},
	} {
		lon, err := it.cusp(c.start, c.fraction, c.nocturnal)
		if err != nil {
			return domain.HouseCusps{}, domain.ChartAngles{}, zerr.With(err, "latitude", loc.String())
		}
		hc.Cusps[c.index] = lon
	}
	mirrorQuadrants(&hc.Cusps)

	return hc, fr.angles, nil
}

// placidusIterator carries the per-chart constants of the fixed-point
// search.
type placidusIterator struct {
	ramc   float64
	eps    float64
	tanLat float64
}

// semiArc returns the diurnal semi-arc, in degrees, of the ecliptic
// point whose right ascension is alpha.
func (it placidusIterator) semiArc(alpha float64) (float64, error) {
	decl := math.Atan(math.Tan(radians(it.eps)) * math.Sin(radians(alpha)))
	cosSA := -it.tanLat * math.Tan(decl)
	if cosSA < -1 || cosSA > 1 {
		return 0, domain.ErrHouseSystemLatitude
	}
	return degrees(math.Acos(cosSA)), nil
}

// cusp iterates alpha = f(alpha) until the right ascension of one
// intermediate cusp stabilizes, then maps it back to the ecliptic.
// Diurnal cusps divide the semi-arc east of the midheaven, nocturnal
// cusps divide its complement east of the imum coeli.
func (it placidusIterator) cusp(start, fraction float64, nocturnal bool) (float64, error) {
	alpha := domain.NormalizeDegrees(it.ramc + start)
	for range placidusIterations {
		sa, err := it.semiArc(alpha)
		if err != nil {
			return 0, err
		}
		var next float64
		if nocturnal {
			next = it.ramc + 180 - fraction*(180-sa)
		} else {
			next = it.ramc + fraction*sa
		}
		next = domain.NormalizeDegrees(next)
		done := math.Abs(domain.SignedDelta(alpha, next)) < placidusTolerance
		alpha = next
		if done {
			break
		}
	}
	return eclipticFromRA(alpha, it.eps), nil
}
