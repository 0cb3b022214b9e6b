package pipeline

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.trai.ch/zerr"
)

var _ Analyzer = (*SectAnalyzer)(nil)

// SectAnalyzer classifies the chart as diurnal or nocturnal from the
// Sun's position relative to the horizon axis.
type SectAnalyzer struct{}

// NewSectAnalyzer creates the sect analyzer.
func NewSectAnalyzer() *SectAnalyzer {
	return &SectAnalyzer{}
}

// Name implements Analyzer.
func (*SectAnalyzer) Name() string { return "sect" }

// Analyze implements Analyzer.
func (*SectAnalyzer) Analyze(_ context.Context, view View) (any, error) {
	angles, ok := view.Angles()
	if !ok {
		return nil, ErrAnglesUnavailable
	}
	sun, ok := view.Position(domain.Sun)
	if !ok {
		return nil, zerr.With(ErrLotInputMissing, "body", domain.Sun.String())
	}
	if isDayChart(sun.Longitude, angles) {
		return domain.SectDay, nil
	}
	return domain.SectNight, nil
}

var _ Analyzer = (*BalanceAnalyzer)(nil)

// BalanceAnalyzer counts element and modality memberships over the
// chart's non-angle positions.
type BalanceAnalyzer struct{}

// NewBalanceAnalyzer creates the balance analyzer.
func NewBalanceAnalyzer() *BalanceAnalyzer {
	return &BalanceAnalyzer{}
}

// Name implements Analyzer.
func (*BalanceAnalyzer) Name() string { return "balance" }

// Analyze implements Analyzer.
func (*BalanceAnalyzer) Analyze(_ context.Context, view View) (any, error) {
	report := domain.BalanceReport{
		Elements:   make(map[string]int),
		Modalities: make(map[string]int),
	}
	for _, pos := range view.Positions() {
		if pos.Body.Class() == domain.ClassAngle {
			continue
		}
		sign := pos.Sign()
		report.Elements[domain.ElementOf(sign)]++
		report.Modalities[domain.ModalityOf(sign)]++
	}
	return report, nil
}

var _ Analyzer = (*PatternsAnalyzer)(nil)

// PatternsAnalyzer finds grand trines and t-squares in the final aspect
// set. Participants are listed in canonical rank order; for a t-square
// the apex comes last.
type PatternsAnalyzer struct{}

// NewPatternsAnalyzer creates the patterns analyzer.
func NewPatternsAnalyzer() *PatternsAnalyzer {
	return &PatternsAnalyzer{}
}

// Name implements Analyzer.
func (*PatternsAnalyzer) Name() string { return "patterns" }

// Analyze implements Analyzer.
func (*PatternsAnalyzer) Analyze(_ context.Context, view View) (any, error) {
	links := make(map[aspectLink]bool)
	for _, aspect := range view.Aspects() {
		links[aspectLink{aspect.First.Body, aspect.Second.Body, aspect.Name}] = true
	}
	linked := func(a, b domain.Body, name domain.AspectName) bool {
		if b.Rank() < a.Rank() {
			a, b = b, a
		}
		return links[aspectLink{a, b, name}]
	}

	// Positions are already in canonical rank order, which makes the
	// search and its output deterministic.
	bodies := make([]domain.Body, 0, len(view.Positions()))
	for _, pos := range view.Positions() {
		bodies = append(bodies, pos.Body)
	}

	patterns := []domain.Pattern{}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			for k := j + 1; k < len(bodies); k++ {
				if linked(bodies[i], bodies[j], domain.Trine) &&
					linked(bodies[j], bodies[k], domain.Trine) &&
					linked(bodies[i], bodies[k], domain.Trine) {
					patterns = append(patterns, domain.Pattern{
						Kind:   "grand_trine",
						Bodies: []domain.Body{bodies[i], bodies[j], bodies[k]},
					})
				}
			}
		}
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if !linked(bodies[i], bodies[j], domain.Opposition) {
				continue
			}
			for k := 0; k < len(bodies); k++ {
				if k == i || k == j {
					continue
				}
				if linked(bodies[i], bodies[k], domain.Square) &&
					linked(bodies[j], bodies[k], domain.Square) {
					patterns = append(patterns, domain.Pattern{
						Kind:   "t_square",
						Bodies: []domain.Body{bodies[i], bodies[j], bodies[k]},
					})
				}
			}
		}
	}
	return patterns, nil
}

type aspectLink struct {
	first  domain.Body
	second domain.Body
	name   domain.AspectName
}
