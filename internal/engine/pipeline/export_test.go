package pipeline

import "go.stellium.dev/stellium/internal/core/domain"

// export_test.go exports private state for white-box testing.

// ViewFixture assembles a View over explicit chart state, for exercising
// components and analyzers without running the full pipeline.
type ViewFixture struct {
	Moment     domain.Moment
	Location   domain.Location
	Options    domain.CalcOptions
	Positions  []domain.Position
	Angles     *domain.ChartAngles
	Cusps      map[domain.HouseSystem]domain.HouseCusps
	Placements map[domain.HouseSystem]map[domain.Body]int
	Aspects    []domain.Aspect
}

// View materializes the fixture.
func (f ViewFixture) View() View {
	d := &draft{
		moment:     f.Moment,
		location:   f.Location,
		options:    f.Options,
		positions:  f.Positions,
		cusps:      f.Cusps,
		placements: f.Placements,
		aspects:    f.Aspects,
	}
	if f.Angles != nil {
		d.angles = *f.Angles
		d.hasAngles = true
	}
	return View{draft: d}
}
