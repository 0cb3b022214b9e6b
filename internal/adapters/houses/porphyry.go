package houses

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
)

var _ ports.HouseSystemProvider = (*Porphyry)(nil)

// Porphyry anchors houses 1 and 10 on the ascendant and midheaven and
// trisects the two ecliptic arcs between them.
type Porphyry struct{}

// NewPorphyry creates a Porphyry house provider.
func NewPorphyry() *Porphyry {
	return &Porphyry{}
}

// System implements ports.HouseSystemProvider.
func (*Porphyry) System() domain.HouseSystem {
	return domain.Porphyry
}

// Cusps implements ports.HouseSystemProvider.
func (*Porphyry) Cusps(ctx context.Context, m domain.Moment, loc domain.Location) (domain.HouseCusps, domain.ChartAngles, error) {
	if err := ctx.Err(); err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	fr, err := newFrame(m, loc)
	if err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	// The arc from midheaven to ascendant spans houses 10 through 12,
	// its complement to the imum coeli spans houses 1 through 3. The
	// remaining six cusps mirror these.
	rising := domain.NormalizeDegrees(fr.angles.Ascendant - fr.angles.Midheaven)
	setting := 180 - rising

	hc := domain.HouseCusps{System: domain.Porphyry}
	hc.Cusps[9] = fr.angles.Midheaven
	hc.Cusps[10] = domain.NormalizeDegrees(fr.angles.Midheaven + rising/3)
	hc.Cusps[11] = domain.NormalizeDegrees(fr.angles.Midheaven + 2*rising/3)
	hc.Cusps[0] = fr.angles.Ascendant
	hc.Cusps[1] = domain.NormalizeDegrees(fr.angles.Ascendant + setting/3)
	hc.Cusps[2] = domain.NormalizeDegrees(fr.angles.Ascendant + 2*setting/3)
	mirrorQuadrants(&hc.Cusps)

	return hc, fr.angles, nil
}
