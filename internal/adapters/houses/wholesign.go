package houses

import (
	"context"
	"math"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
)

var _ ports.HouseSystemProvider = (*WholeSign)(nil)

// WholeSign assigns each zodiac sign to one house, starting with the
// ascendant's sign as house 1.
type WholeSign struct{}

// NewWholeSign creates a whole-sign house provider.
func NewWholeSign() *WholeSign {
	return &WholeSign{}
}

// System implements ports.HouseSystemProvider.
func (*WholeSign) System() domain.HouseSystem {
	return domain.WholeSign
}

// Cusps implements ports.HouseSystemProvider.
func (*WholeSign) Cusps(ctx context.Context, m domain.Moment, loc domain.Location) (domain.HouseCusps, domain.ChartAngles, error) {
	if err := ctx.Err(); err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	fr, err := newFrame(m, loc)
	if err != nil {
		return domain.HouseCusps{}, domain.ChartAngles{}, err
	}

	first := 30 * math.Floor(fr.angles.Ascendant/30)
	hc := domain.HouseCusps{System: domain.WholeSign}
	for i := range hc.Cusps {
		hc.Cusps[i] = domain.NormalizeDegrees(first + 30*float64(i))
	}
	return hc, fr.angles, nil
}
