package ports

import "go.stellium.dev/stellium/internal/core/domain"

//go:generate mockgen -source=aspects.go -destination=mocks/mock_aspects.go -package=mocks

// OrbResolver defines the interface for resolving orb allowances.
type OrbResolver interface {
	// Allowance returns the maximum permitted deviation from exactness,
	// in degrees, for the unordered body pair under the given aspect.
	// Resolution is total and deterministic: it always yields a value,
	// and repeated calls with the same inputs yield the same value.
	Allowance(a, b domain.Body, aspect domain.AspectName) float64
}

// AspectDetector defines the interface for finding angular relationships.
type AspectDetector interface {
	// Detect finds all configured aspects among the eligible positions.
	// The result is sorted deterministically and each aspect carries an
	// applying/separating/indeterminate phase.
	Detect(positions []domain.Position) []domain.Aspect
}
