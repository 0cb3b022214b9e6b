package houses

import "go.stellium.dev/stellium/internal/core/domain"

// export_test.go exports private state for white-box testing.

var (
	Obliquity      = obliquity
	GMSTDegrees    = gmstDegrees
	EclipticFromRA = eclipticFromRA
)

// FrameFor exposes the shared chart frame for a moment and location.
func FrameFor(m domain.Moment, loc domain.Location) (ramc, eps float64, angles domain.ChartAngles, err error) {
	fr, err := newFrame(m, loc)
	if err != nil {
		return 0, 0, domain.ChartAngles{}, err
	}
	return fr.ramc, fr.obliquity, fr.angles, nil
}
