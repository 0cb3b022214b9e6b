package pipeline

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	// ErrAnglesUnavailable is returned when an extension needs the chart
	// angles but no house system produced them.
	ErrAnglesUnavailable = zerr.New("chart angles unavailable")

	// ErrLotInputMissing is returned when a lot formula input position is
	// absent from the chart.
	ErrLotInputMissing = zerr.New("lot input position missing")
)

var _ Component = (*AnglesComponent)(nil)

// AnglesComponent republishes the ascendant and midheaven as positions so
// the chart angles can participate in aspect detection.
type AnglesComponent struct{}

// NewAnglesComponent creates the angles component.
func NewAnglesComponent() *AnglesComponent {
	return &AnglesComponent{}
}

// Name implements Component.
func (*AnglesComponent) Name() string { return "angles" }

// Derive implements Component.
func (*AnglesComponent) Derive(_ context.Context, view View) ([]domain.Position, error) {
	angles, ok := view.Angles()
	if !ok {
		return nil, ErrAnglesUnavailable
	}
	return []domain.Position{
		{Body: domain.Ascendant, Longitude: angles.Ascendant},
		{Body: domain.Midheaven, Longitude: angles.Midheaven},
	}, nil
}

var _ Component = (*LotsComponent)(nil)

// LotsComponent derives the Part of Fortune and Part of Spirit with the
// classical formulas, swapping them between day and night charts.
type LotsComponent struct{}

// NewLotsComponent creates the lots component.
func NewLotsComponent() *LotsComponent {
	return &LotsComponent{}
}

// Name implements Component.
func (*LotsComponent) Name() string { return "lots" }

// Derive implements Component.
func (*LotsComponent) Derive(_ context.Context, view View) ([]domain.Position, error) {
	angles, ok := view.Angles()
	if !ok {
		return nil, ErrAnglesUnavailable
	}
	sun, ok := view.Position(domain.Sun)
	if !ok {
		return nil, zerr.With(ErrLotInputMissing, "body", domain.Sun.String())
	}
	moon, ok := view.Position(domain.Moon)
	if !ok {
		return nil, zerr.With(ErrLotInputMissing, "body", domain.Moon.String())
	}

	fortune := angles.Ascendant + sun.Longitude - moon.Longitude
	spirit := angles.Ascendant + moon.Longitude - sun.Longitude
	if isDayChart(sun.Longitude, angles) {
		fortune, spirit = spirit, fortune
	}

	return []domain.Position{
		{Body: domain.PartOfFortune, Longitude: domain.NormalizeDegrees(fortune)},
		{Body: domain.PartOfSpirit, Longitude: domain.NormalizeDegrees(spirit)},
	}, nil
}

// isDayChart reports whether the Sun stands above the horizon, which is
// the arc from the descendant forward through the midheaven to the
// ascendant.
func isDayChart(sunLon float64, angles domain.ChartAngles) bool {
	return domain.InArc(sunLon, angles.Descendant, angles.Ascendant)
}
