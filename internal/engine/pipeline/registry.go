package pipeline

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.trai.ch/zerr"
)

// Component is a pluggable chart-building stage. Components run after
// house placement and before aspect detection, so the positions they
// derive can consult house context and still participate in aspects.
type Component interface {
	// Name is the identifier configurations enable the component by.
	Name() string
	// Derive returns synthetic positions to append to the chart. The
	// view is read-only; returned positions are the only output.
	Derive(ctx context.Context, view View) ([]domain.Position, error)
}

// Analyzer is a pluggable read-only stage running after aspect
// detection. Its result lands in the chart metadata under its name.
type Analyzer interface {
	// Name is the identifier configurations enable the analyzer by, and
	// the metadata key its result is stored under.
	Name() string
	// Analyze computes the analyzer's metadata value.
	Analyze(ctx context.Context, view View) (any, error)
}

// Registry holds the registered extension stages. Registration validates
// names up front so a run never encounters a half-usable extension.
type Registry struct {
	components []Component
	analyzers  []Analyzer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// BuiltinRegistry returns a Registry preloaded with the built-in
// components and analyzers.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	// Registration of the built-ins cannot fail; their names are
	// non-empty literals and registered exactly once.
	_ = r.RegisterComponent(NewAnglesComponent())
	_ = r.RegisterComponent(NewLotsComponent())
	_ = r.RegisterAnalyzer(NewSectAnalyzer())
	_ = r.RegisterAnalyzer(NewBalanceAnalyzer())
	_ = r.RegisterAnalyzer(NewPatternsAnalyzer())
	return r
}

// RegisterComponent adds a component to the registry.
func (r *Registry) RegisterComponent(c Component) error {
	if c.Name() == "" {
		return domain.ErrEmptyStageName
	}
	if _, ok := r.Component(c.Name()); ok {
		return zerr.With(domain.ErrDuplicateStage, "component", c.Name())
	}
	r.components = append(r.components, c)
	return nil
}

// RegisterAnalyzer adds an analyzer to the registry.
func (r *Registry) RegisterAnalyzer(a Analyzer) error {
	if a.Name() == "" {
		return domain.ErrEmptyStageName
	}
	if _, ok := r.Analyzer(a.Name()); ok {
		return zerr.With(domain.ErrDuplicateStage, "analyzer", a.Name())
	}
	r.analyzers = append(r.analyzers, a)
	return nil
}

// Component returns the registered component with the given name.
func (r *Registry) Component(name string) (Component, bool) {
	for _, c := range r.components {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Analyzer returns the registered analyzer with the given name.
func (r *Registry) Analyzer(name string) (Analyzer, bool) {
	for _, a := range r.analyzers {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}
