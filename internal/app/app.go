// Package app implements the application layer for stellium.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.stellium.dev/stellium/internal/adapters/cache"
	"go.stellium.dev/stellium/internal/adapters/houses"
	"go.stellium.dev/stellium/internal/adapters/kepler"
	"go.stellium.dev/stellium/internal/adapters/render"
	"go.stellium.dev/stellium/internal/adapters/telemetry"
	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.stellium.dev/stellium/internal/engine/aspects"
	"go.stellium.dev/stellium/internal/engine/pipeline"
	"go.stellium.dev/stellium/internal/engine/returns"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownReturnKind is returned when a flag carries an unrecognized return kind.
var ErrUnknownReturnKind = zerr.New("unknown return kind")

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	provider     ports.PositionProvider
	renderer     ports.ChartRenderer
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	provider ports.PositionProvider,
	renderer ports.ChartRenderer,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		provider:     provider,
		renderer:     renderer,
		logger:       log,
		tracer:       tracer,
		watcher:      watcher,
	}
}

// ChartRequest describes one chart calculation.
type ChartRequest struct {
	Moment   domain.Moment
	Location domain.Location
	// ConfigDir is where the configuration search starts. Empty means the
	// current directory.
	ConfigDir string
	// JSON selects machine-readable output.
	JSON bool
	// NoCache bypasses the calculation cache for this request.
	NoCache bool
	Out     io.Writer
}

// ReturnKind selects a return search variant.
type ReturnKind string

const (
	// ReturnSolar searches for the Sun's return to its natal longitude.
	ReturnSolar ReturnKind = "solar"
	// ReturnLunar searches for the Moon's return to its natal longitude.
	ReturnLunar ReturnKind = "lunar"
	// ReturnIngress searches for a body's entry into a zodiac sign.
	ReturnIngress ReturnKind = "ingress"
)

// ParseReturnKind resolves a flag value to a ReturnKind.
func ParseReturnKind(s string) (ReturnKind, error) {
	switch ReturnKind(s) {
	case ReturnSolar, ReturnLunar, ReturnIngress:
		return ReturnKind(s), nil
	default:
		return "", zerr.With(ErrUnknownReturnKind, "kind", s)
	}
}

// ReturnRequest describes one return search.
type ReturnRequest struct {
	Kind ReturnKind
	// Natal is the reference moment whose body longitude the solar and
	// lunar searches target.
	Natal    domain.Moment
	Location domain.Location
	// Start is where the search begins. The crossing found is the first
	// one after it.
	Start domain.Moment
	// Body and Sign parameterize ingress searches.
	Body      domain.Body
	Sign      int
	Direction domain.CrossingDirection
	ConfigDir string
	JSON      bool
	NoCache   bool
	Out       io.Writer
}

// Chart calculates a chart and renders it to the request writer.
func (a *App) Chart(ctx context.Context, req ChartRequest) error {
	chart, err := a.calculate(ctx, req)
	if err != nil {
		return err
	}
	return a.rendererFor(req.JSON).RenderChart(req.Out, chart)
}

// ChartBatch calculates several charts concurrently and renders them in
// request order. Output is buffered per request so interleaved completion
// never interleaves writers. A failed request fails the batch.
func (a *App) ChartBatch(ctx context.Context, reqs []ChartRequest) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	buffers := make([]bytes.Buffer, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			buffered := req
			buffered.Out = &buffers[i]
			return a.Chart(ctx, buffered)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, req := range reqs {
		if _, err := buffers[i].WriteTo(req.Out); err != nil {
			return err
		}
	}
	return nil
}

// Return finds the requested crossing, calculates the chart at its exact
// moment, and renders both.
func (a *App) Return(ctx context.Context, req ReturnRequest) error {
	cfg, err := a.configLoader.Load(searchDir(req.ConfigDir))
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	provider, release := a.providerFor(cfg, req.NoCache)
	defer release()

	finder := returns.NewFinder(req.Location, cfg.Options, provider, a.tracer)
	event, err := a.findEvent(ctx, finder, provider, cfg, req)
	if err != nil {
		return errors.Join(domain.ErrReturnSearchFailed, err)
	}

	pipe, err := a.pipelineFor(cfg, provider)
	if err != nil {
		return err
	}
	chart, err := pipe.Calculate(ctx, event.Exact, req.Location)
	if err != nil {
		return errors.Join(domain.ErrChartCalculationFailed, err)
	}

	return a.rendererFor(req.JSON).RenderReturn(req.Out, event, chart)
}

// Watch renders the chart, then re-renders it every time the configuration
// file changes. It returns when the context is canceled. Failures inside
// the loop are logged rather than returned, so an editing mistake in the
// file does not end the session.
func (a *App) Watch(ctx context.Context, req ChartRequest) error {
	if err := a.Chart(ctx, req); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		a.logger.Error(err)
	}

	cfgPath, err := a.configLoader.DiscoverConfigPath(searchDir(req.ConfigDir))
	if err != nil {
		return zerr.Wrap(err, "failed to locate configuration")
	}
	if cfgPath == "" {
		// No file yet: watch where one would first be picked up.
		cfgPath = filepath.Join(searchDir(req.ConfigDir), domain.ConfigFileName)
	}

	if err := a.watcher.Start(ctx, cfgPath); err != nil {
		return zerr.Wrap(err, "failed to watch configuration")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %s", cfgPath))

	for range a.watcher.Events() {
		if err := a.Chart(ctx, req); err != nil {
			if ctx.Err() != nil {
				break
			}
			a.logger.Error(err)
		}
	}
	return nil
}

// EnableStageTracing installs an SDK tracer provider whose spans are
// reported through the logger. Without it the tracer created at wiring
// time never records.
func (a *App) EnableStageTracing() {
	bridge := telemetry.NewBridge(a.logger)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}

// calculate loads the configuration and runs the pipeline for one request.
func (a *App) calculate(ctx context.Context, req ChartRequest) (*domain.CalculatedChart, error) {
	cfg, err := a.configLoader.Load(searchDir(req.ConfigDir))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	provider, release := a.providerFor(cfg, req.NoCache)
	defer release()

	pipe, err := a.pipelineFor(cfg, provider)
	if err != nil {
		return nil, err
	}

	chart, err := pipe.Calculate(ctx, req.Moment, req.Location)
	if err != nil {
		return nil, errors.Join(domain.ErrChartCalculationFailed, err)
	}
	return chart, nil
}

// providerFor wraps the raw provider with the configured cache. The
// release func closes the store and is safe to call when none was opened.
// A store that cannot be opened degrades to uncached operation with a
// warning instead of failing the calculation.
func (a *App) providerFor(cfg domain.ChartConfig, noCache bool) (ports.PositionProvider, func()) {
	if noCache {
		return a.provider, func() {}
	}

	store, err := cache.ForConfig(cfg.Cache, a.logger)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("cache disabled: %v", err))
		return a.provider, func() {}
	}
	if store == nil {
		return a.provider, func() {}
	}
	return kepler.NewMemoized(a.provider, store), func() {
		_ = store.Close()
	}
}

// pipelineFor assembles the calculation pipeline for one configuration.
func (a *App) pipelineFor(cfg domain.ChartConfig, provider ports.PositionProvider) (*pipeline.Pipeline, error) {
	systems := make([]ports.HouseSystemProvider, 0, len(cfg.HouseSystems))
	for _, sys := range cfg.HouseSystems {
		hp, err := houses.ForSystem(sys)
		if err != nil {
			return nil, err
		}
		systems = append(systems, hp)
	}

	policy := aspects.NewOrbPolicy(cfg)
	detector := aspects.NewDetector(cfg.Aspects, cfg.Filter, policy)

	return pipeline.New(cfg, provider, systems, detector, pipeline.BuiltinRegistry(), a.tracer), nil
}

// findEvent dispatches the search for the requested return kind.
func (a *App) findEvent(
	ctx context.Context,
	finder *returns.Finder,
	provider ports.PositionProvider,
	cfg domain.ChartConfig,
	req ReturnRequest,
) (domain.ReturnEvent, error) {
	switch req.Kind {
	case ReturnSolar:
		natal, err := a.natalLongitude(ctx, provider, cfg, domain.Sun, req)
		if err != nil {
			return domain.ReturnEvent{}, err
		}
		return finder.SolarReturn(ctx, natal, req.Start)
	case ReturnLunar:
		natal, err := a.natalLongitude(ctx, provider, cfg, domain.Moon, req)
		if err != nil {
			return domain.ReturnEvent{}, err
		}
		return finder.LunarReturn(ctx, natal, req.Start)
	case ReturnIngress:
		return finder.SignIngress(ctx, req.Body, req.Sign, req.Start, req.Direction)
	default:
		return domain.ReturnEvent{}, zerr.With(ErrUnknownReturnKind, "kind", string(req.Kind))
	}
}

// natalLongitude reads one body's longitude at the natal moment.
func (a *App) natalLongitude(
	ctx context.Context,
	provider ports.PositionProvider,
	cfg domain.ChartConfig,
	body domain.Body,
	req ReturnRequest,
) (float64, error) {
	set, err := provider.Positions(ctx, req.Natal, req.Location, []domain.Body{body}, cfg.Options)
	if err != nil {
		return 0, err
	}
	pos, ok := set.ByBody(body)
	if !ok {
		missing := zerr.With(domain.ErrRequiredBodyMissing, "body", body.String())
		for _, om := range set.Omissions {
			if om.Body == body {
				missing = zerr.With(missing, "reason", om.Reason)
			}
		}
		return 0, missing
	}
	return pos.Longitude, nil
}

// rendererFor selects the renderer for one request. JSON output is a
// per-request choice, so that variant is constructed here rather than
// injected.
func (a *App) rendererFor(jsonOut bool) ports.ChartRenderer {
	if jsonOut {
		return render.NewJSONRenderer()
	}
	return a.renderer
}

func searchDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
