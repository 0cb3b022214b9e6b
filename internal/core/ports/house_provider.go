package ports

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
)

// HouseSystemProvider defines the interface for computing house cusps.
// One implementation exists per house system; selection happens through
// configuration, never by probing.
//
//go:generate mockgen -source=house_provider.go -destination=mocks/mock_house_provider.go -package=mocks
type HouseSystemProvider interface {
	// System identifies the house system this provider computes.
	System() domain.HouseSystem

	// Cusps computes the twelve cusp longitudes and the chart angles for
	// the given moment and location. Systems that are undefined at the
	// location's latitude return domain.ErrHouseSystemLatitude rather
	// than degenerate cusps.
	Cusps(ctx context.Context, moment domain.Moment, loc domain.Location) (domain.HouseCusps, domain.ChartAngles, error)
}
