package aspects

import (
	"cmp"
	"math"
	"slices"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
)

const (
	// phaseStep is the extrapolation interval for phase classification,
	// one minute expressed in days.
	phaseStep = 1.0 / 1440
	// phaseEpsilon is the orb change below which motion is treated as
	// noise and the phase reported as indeterminate.
	phaseEpsilon = 1e-6
)

var _ ports.AspectDetector = (*Detector)(nil)

// Detector finds the configured aspects among eligible position pairs.
// Pair eligibility comes from the filter, allowances from the resolver.
type Detector struct {
	aspects  []domain.AspectName
	filter   domain.AspectFilter
	resolver ports.OrbResolver
}

// NewDetector creates a Detector for the given aspect set.
func NewDetector(aspects []domain.AspectName, filter domain.AspectFilter, resolver ports.OrbResolver) *Detector {
	return &Detector{
		aspects:  aspects,
		filter:   filter,
		resolver: resolver,
	}
}

// Detect implements ports.AspectDetector. Every configured aspect whose
// orb falls within its allowance is reported, so a single pair can carry
// more than one aspect when allowances overlap.
func (d *Detector) Detect(positions []domain.Position) []domain.Aspect {
	out := []domain.Aspect{}
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			first, second := positions[i], positions[j]
			if !d.filter.Allows(first.Body, second.Body) {
				continue
			}
			if second.Body.Rank() < first.Body.Rank() {
				first, second = second, first
			}

			sep := domain.Separation(first.Longitude, second.Longitude)
			for _, name := range d.aspects {
				orb := math.Abs(sep - name.Angle())
				if orb > d.resolver.Allowance(first.Body, second.Body, name) {
					continue
				}
				out = append(out, domain.Aspect{
					First:  first,
					Second: second,
					Name:   name,
					Angle:  name.Angle(),
					Orb:    orb,
					Phase:  phase(first, second, name.Angle(), orb),
				})
			}
		}
	}

	slices.SortFunc(out, func(a, b domain.Aspect) int {
		if c := cmp.Compare(a.First.Body.Rank(), b.First.Body.Rank()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Second.Body.Rank(), b.Second.Body.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.Angle, b.Angle)
	})
	return out
}

// phase extrapolates both longitudes one minute forward at their current
// velocities and compares the resulting orb with the present one.
func phase(first, second domain.Position, angle, orb float64) domain.AspectPhase {
	nextSep := domain.Separation(
		first.Longitude+first.SpeedLongitude*phaseStep,
		second.Longitude+second.SpeedLongitude*phaseStep,
	)
	delta := math.Abs(nextSep-angle) - orb
	switch {
	case math.Abs(delta) < phaseEpsilon:
		return domain.PhaseIndeterminate
	case delta < 0:
		return domain.PhaseApplying
	default:
		return domain.PhaseSeparating
	}
}
