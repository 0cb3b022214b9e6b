// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
)

// PositionProvider defines the interface for computing body positions.
//
//go:generate mockgen -source=position_provider.go -destination=mocks/mock_position_provider.go -package=mocks
type PositionProvider interface {
	// Positions computes geocentric ecliptic positions for the requested
	// bodies at the given moment.
	//
	// Bodies the provider cannot supply are reported as per-body omissions
	// in the result, not as an error; the error return is reserved for
	// call-level failures. Output must be deterministic: identical
	// (moment, bodies, opts) inputs produce bit-identical positions.
	//
	// The location parameter exists for provider interchangeability. The
	// built-in ephemeris is geocentric and ignores it.
	Positions(ctx context.Context, moment domain.Moment, loc domain.Location, bodies []domain.Body, opts domain.CalcOptions) (domain.PositionSet, error)
}
