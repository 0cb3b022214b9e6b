package pipeline

import (
	"cmp"
	"context"
	"slices"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline runs the fixed stage sequence that turns a moment and a
// location into a frozen chart: positions, house cusps, placements,
// extension components, aspects, analyzers. One Calculate call is
// synchronous and single-threaded; callers may run many Pipelines
// concurrently because all state lives in the per-call draft.
type Pipeline struct {
	config   domain.ChartConfig
	provider ports.PositionProvider
	houses   []ports.HouseSystemProvider
	detector ports.AspectDetector
	registry *Registry
	tracer   ports.Tracer
}

// New creates a Pipeline with the given collaborators.
func New(
	config domain.ChartConfig,
	provider ports.PositionProvider,
	houses []ports.HouseSystemProvider,
	detector ports.AspectDetector,
	registry *Registry,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		config:   config,
		provider: provider,
		houses:   houses,
		detector: detector,
		registry: registry,
		tracer:   tracer,
	}
}

// draft accumulates chart state while the stages run. It never leaves
// the package; extensions see it only through View.
type draft struct {
	moment     domain.Moment
	location   domain.Location
	options    domain.CalcOptions
	positions  []domain.Position
	angles     domain.ChartAngles
	hasAngles  bool
	cusps      map[domain.HouseSystem]domain.HouseCusps
	placements map[domain.HouseSystem]map[domain.Body]int
	aspects    []domain.Aspect
	metadata   map[string]any
	warnings   []domain.Warning
}

func (d *draft) warn(stage, subject, message string) {
	d.warnings = append(d.warnings, domain.Warning{Stage: stage, Subject: subject, Message: message})
}

// Calculate runs every stage exactly once and returns the frozen chart.
// Per-item and per-stage failures are absorbed into chart warnings; only
// provider-level failures and missing luminaries abort the run.
func (p *Pipeline) Calculate(ctx context.Context, m domain.Moment, loc domain.Location) (*domain.CalculatedChart, error) {
	d := &draft{
		moment:     m,
		location:   loc,
		options:    p.config.Options,
		cusps:      make(map[domain.HouseSystem]domain.HouseCusps),
		placements: make(map[domain.HouseSystem]map[domain.Body]int),
		metadata:   make(map[string]any),
	}

	stages := []struct {
		name string
		run  func(context.Context, *draft) error
	}{
		{"chart.positions", p.runPositions},
		{"chart.houses", p.runHouses},
		{"chart.placements", p.runPlacements},
		{"chart.components", p.runComponents},
		{"chart.aspects", p.runAspects},
		{"chart.analyzers", p.runAnalyzers},
	}
	for _, stage := range stages {
		if err := p.stage(ctx, stage.name, d, stage.run); err != nil {
			return nil, err
		}
	}

	_, span := p.tracer.Start(ctx, "chart.freeze")
	defer span.End()
	return freeze(d), nil
}

// stage wraps one stage in a tracer span.
func (p *Pipeline) stage(ctx context.Context, name string, d *draft, run func(context.Context, *draft) error) error {
	ctx, span := p.tracer.Start(ctx, name)
	defer span.End()
	if err := run(ctx, d); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (p *Pipeline) runPositions(ctx context.Context, d *draft) error {
	set, err := p.provider.Positions(ctx, d.moment, d.location, p.config.Bodies, p.config.Options)
	if err != nil {
		return err
	}
	for _, om := range set.Omissions {
		if om.Body.Class() == domain.ClassLuminary {
			return zerr.With(zerr.With(domain.ErrRequiredBodyMissing, "body", om.Body.String()), "reason", om.Reason)
		}
		d.warn("positions", om.Body.String(), om.Reason)
	}
	d.positions = set.Positions
	return nil
}

func (p *Pipeline) runHouses(ctx context.Context, d *draft) error {
	for _, hp := range p.houses {
		hc, angles, err := hp.Cusps(ctx, d.moment, d.location)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			d.warn("houses", hp.System().String(), err.Error())
			continue
		}
		d.cusps[hp.System()] = hc
		if !d.hasAngles {
			d.angles = angles
			d.hasAngles = true
		}
	}
	return nil
}

func (p *Pipeline) runPlacements(_ context.Context, d *draft) error {
	for sys, hc := range d.cusps {
		d.placements[sys] = hc.AssignHouses(d.positions)
	}
	return nil
}

func (p *Pipeline) runComponents(ctx context.Context, d *draft) error {
	for _, name := range p.config.Components {
		component, ok := p.registry.Component(name)
		if !ok {
			d.warn("components", name, domain.ErrUnknownComponent.Error())
			continue
		}
		derived, err := component.Derive(ctx, View{draft: d})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			d.warn("components", name, err.Error())
			continue
		}
		for _, pos := range derived {
			if _, exists := byBody(d.positions, pos.Body); exists {
				d.warn("components", name, "position for "+pos.Body.String()+" already present, skipped")
				continue
			}
			pos.Longitude = domain.NormalizeDegrees(pos.Longitude)
			d.positions = append(d.positions, pos)
			for sys, hc := range d.cusps {
				d.placements[sys][pos.Body] = hc.HouseOf(pos.Longitude)
			}
		}
	}
	slices.SortFunc(d.positions, func(a, b domain.Position) int {
		return cmp.Compare(a.Body.Rank(), b.Body.Rank())
	})
	return nil
}

func (p *Pipeline) runAspects(_ context.Context, d *draft) error {
	d.aspects = []domain.Aspect{}
	if len(p.config.Aspects) == 0 {
		return nil
	}
	d.aspects = p.detector.Detect(d.positions)
	return nil
}

func (p *Pipeline) runAnalyzers(ctx context.Context, d *draft) error {
	for _, name := range p.config.Analyzers {
		analyzer, ok := p.registry.Analyzer(name)
		if !ok {
			d.warn("analyzers", name, domain.ErrUnknownAnalyzer.Error())
			continue
		}
		value, err := analyzer.Analyze(ctx, View{draft: d})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			d.warn("analyzers", name, err.Error())
			continue
		}
		d.metadata[name] = value
	}
	return nil
}

// freeze copies the draft into the immutable result. Collection fields
// are always non-nil so consumers can range without guarding.
func freeze(d *draft) *domain.CalculatedChart {
	chart := &domain.CalculatedChart{
		Moment:     d.moment,
		Location:   d.location,
		Options:    d.options,
		Positions:  d.positions,
		Angles:     d.angles,
		HasAngles:  d.hasAngles,
		Cusps:      d.cusps,
		Placements: d.placements,
		Aspects:    d.aspects,
		Metadata:   d.metadata,
		Warnings:   d.warnings,
	}
	if chart.Positions == nil {
		chart.Positions = []domain.Position{}
	}
	if chart.Aspects == nil {
		chart.Aspects = []domain.Aspect{}
	}
	if chart.Warnings == nil {
		chart.Warnings = []domain.Warning{}
	}
	return chart
}

func byBody(positions []domain.Position, b domain.Body) (domain.Position, bool) {
	for _, p := range positions {
		if p.Body == b {
			return p, true
		}
	}
	return domain.Position{}, false
}

// View is the read-only window extensions get onto the in-progress
// chart. Slices returned by its accessors are shared with the draft and
// must not be modified.
type View struct {
	draft *draft
}

// Moment returns the chart moment.
func (v View) Moment() domain.Moment { return v.draft.moment }

// Location returns the chart location.
func (v View) Location() domain.Location { return v.draft.location }

// Options returns the calculation options.
func (v View) Options() domain.CalcOptions { return v.draft.options }

// Positions returns the current position set.
func (v View) Positions() []domain.Position { return v.draft.positions }

// Position returns the position of a body, if present.
func (v View) Position(b domain.Body) (domain.Position, bool) {
	return byBody(v.draft.positions, b)
}

// Angles returns the chart angles if any house system produced them.
func (v View) Angles() (domain.ChartAngles, bool) {
	return v.draft.angles, v.draft.hasAngles
}

// Cusps returns the cusps of a system, if it was computed.
func (v View) Cusps(sys domain.HouseSystem) (domain.HouseCusps, bool) {
	hc, ok := v.draft.cusps[sys]
	return hc, ok
}

// HouseOf returns the house placement of a body under a system.
func (v View) HouseOf(sys domain.HouseSystem, b domain.Body) (int, bool) {
	placements, ok := v.draft.placements[sys]
	if !ok {
		return 0, false
	}
	house, ok := placements[b]
	return house, ok
}

// Aspects returns the detected aspect set. Empty until the aspect stage
// has run, which is the case for every component.
func (v View) Aspects() []domain.Aspect { return v.draft.aspects }
