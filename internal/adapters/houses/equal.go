package houses

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
)

var _ ports.HouseSystemProvider = (*Equal)(nil)

// Equal divides the ecliptic into twelve 30-degree houses measured from
// the ascendant. The midheaven floats freely inside the wheel.
type Equal struct{}

// NewEqual creates an equal-house provider.
func NewEqual() *Equal {
	return &Equal{}
}

// System implements ports.HouseSystemProvider.
func (*Equal) System() domain.HouseSystem {
	return domain.Equal
}

// Cusps implements ports.HouseSystemProvider.
func (*Equal) Cusps(ctx context.Context, m domain.Moment, loc domain.Location) (domain.HouseCusps, domain.ChartAngles, error) {
	if err := ctx.Err(); err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	fr, err := newFrame(m, loc)
	if err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	hc := domain.HouseCusps{System: domain.Equal}
	for i := range hc.Cusps {
		hc.Cusps[i] = domain.NormalizeDegrees(fr.angles.Ascendant + 30*float64(i))
	}
	return hc, fr.angles, nil
}
