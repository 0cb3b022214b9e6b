package returns

import (
	"context"
	"math"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// Tolerance is the longitude distance, in degrees, at which a
	// crossing counts as exact. 1e-4 degrees is under half an arcsecond.
	Tolerance = 1e-4

	// MaxBisections bounds the refinement of a single bracket.
	MaxBisections = 96

	// MaxBracketSteps bounds the coarse forward walk. Every position
	// sample taken while bracketing counts against it.
	MaxBracketSteps = 512

	// stepMotion is the arc, in degrees, one coarse step aims to cover.
	stepMotion = 10.0

	// minStep is the shortest coarse step, in days. Station halving
	// stops here; no body crosses a longitude and returns within it.
	minStep = 1.0 / 24

	// maxStep caps the coarse step, in days, so slow movers still
	// advance. It is shorter than the briefest retrograde loop, which
	// keeps at most one station inside any step.
	maxStep = 10.0
)

// Finder locates the exact moment a body's longitude crosses a target.
// It brackets the crossing by coarse forward stepping, then bisects in
// time until the body sits within Tolerance of the target. Around a
// retrograde loop a body passes the same longitude up to three times;
// only passes moving in the requested direction are reported, the rest
// are discarded and the walk continues.
type Finder struct {
	location domain.Location
	options  domain.CalcOptions
	provider ports.PositionProvider
	tracer   ports.Tracer
}

// NewFinder creates a Finder with the given dependencies. The location
// and options are passed through to every provider query.
func NewFinder(
	location domain.Location,
	options domain.CalcOptions,
	provider ports.PositionProvider,
	tracer ports.Tracer,
) *Finder {
	return &Finder{
		location: location,
		options:  options,
		provider: provider,
		tracer:   tracer,
	}
}

// FindCrossing returns the first moment after start at which the body's
// longitude equals target while moving in the requested direction. The
// search always runs forward in time. Exhausting the bracket or
// bisection budget returns domain.ErrNoConvergence.
func (f *Finder) FindCrossing(
	ctx context.Context,
	body domain.Body,
	target float64,
	start domain.Moment,
	direction domain.CrossingDirection,
) (domain.ReturnEvent, error) {
	ctx, span := f.tracer.Start(ctx, "return.crossing")
	defer span.End()
	span.SetAttribute("stellium.body", body.String())
	span.SetAttribute("stellium.target", target)
	span.SetAttribute("stellium.direction", direction.String())

	s := &crossingSearch{
		finder:    f,
		body:      body,
		target:    domain.NormalizeDegrees(target),
		direction: direction,
	}
	event, err := s.run(ctx, start)
	if err != nil {
		span.RecordError(err)
		return domain.ReturnEvent{}, err
	}
	return event, nil
}

// sample is one ephemeris reading on the unwrapped displacement line.
type sample struct {
	moment domain.Moment
	lon    float64
	// u is the accumulated signed displacement since the search start.
	// Unlike lon it never wraps, so crossings of the target sit at
	// uTarget + k*360 for integer k.
	u     float64
	speed float64
}

// crossingSearch is the per-call state of one FindCrossing walk.
type crossingSearch struct {
	finder    *Finder
	body      domain.Body
	target    float64
	direction domain.CrossingDirection
	// uTarget is the image of the target on the displacement line,
	// relative to the starting sample.
	uTarget  float64
	brackets int
}

func (s *crossingSearch) run(ctx context.Context, start domain.Moment) (domain.ReturnEvent, error) {
	pos, err := s.readPosition(ctx, start)
	if err != nil {
		return domain.ReturnEvent{}, err
	}
	cur := sample{moment: start, lon: pos.Longitude, speed: pos.SpeedLongitude}
	s.uTarget = domain.SignedDelta(cur.lon, s.target)

	for s.brackets < MaxBracketSteps {
		if err := ctx.Err(); err != nil {
			return domain.ReturnEvent{}, err
		}
		far, err := s.advance(ctx, cur)
		if err != nil {
			return domain.ReturnEvent{}, err
		}
		m, ok := s.crossingTarget(cur, far)
		if !ok {
			cur = far
			continue
		}
		hit, err := s.bisect(ctx, cur, far, m)
		if err != nil {
			return domain.ReturnEvent{}, err
		}
		if s.matches(hit.speed) {
			return domain.ReturnEvent{
				Body:      s.body,
				Target:    s.target,
				Exact:     hit.moment,
				Longitude: hit.lon,
			}, nil
		}
		// A pass in the other direction. The body recrosses the same
		// multiple later; keep walking from the far end.
		cur = far
	}
	return domain.ReturnEvent{}, s.exhausted()
}

// advance takes one coarse step forward, halving the step while a
// station falls inside it. A step containing a station can hide a pair
// of opposite passes over the target whose endpoint displacements
// cancel; at minStep the window is too short to hide one.
func (s *crossingSearch) advance(ctx context.Context, cur sample) (sample, error) {
	step := stepLength(cur.speed)
	for {
		if s.brackets >= MaxBracketSteps {
			return sample{}, s.exhausted()
		}
		s.brackets++
		far, err := s.sampleAfter(ctx, cur, cur.moment.AddDays(step))
		if err != nil {
			return sample{}, err
		}
		if step <= minStep || cur.speed*far.speed >= 0 {
			return far, nil
		}
		step /= 2
	}
}

// crossingTarget returns the unwrapped crossing target inside the
// interval, if it holds one. The near endpoint is excluded so a
// crossing landing exactly on a shared sample belongs to the interval
// that reached it, and so a search starting exactly on the target finds
// the next pass rather than the start itself.
func (s *crossingSearch) crossingTarget(a, b sample) (float64, bool) {
	switch {
	case b.u > a.u:
		m := s.uTarget + 360*math.Ceil((a.u-s.uTarget)/360)
		if m <= a.u {
			m += 360
		}
		return m, m <= b.u
	case b.u < a.u:
		m := s.uTarget + 360*math.Floor((a.u-s.uTarget)/360)
		if m >= a.u {
			m -= 360
		}
		return m, m >= b.u
	default:
		return 0, false
	}
}

// bisect narrows a bracketing interval until the body sits within
// Tolerance of the crossing target m.
func (s *crossingSearch) bisect(ctx context.Context, lo, hi sample, m float64) (sample, error) {
	for range MaxBisections {
		if err := ctx.Err(); err != nil {
			return sample{}, err
		}
		mid, err := s.sampleAfter(ctx, lo, lo.moment.AddDays(hi.moment.Sub(lo.moment)/2))
		if err != nil {
			return sample{}, err
		}
		if math.Abs(mid.u-m) <= Tolerance {
			return mid, nil
		}
		if (mid.u > m) == (lo.u > m) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return sample{}, s.exhausted()
}

// sampleAfter extends the displacement line to a later moment. Steps
// stay well under half a circle of motion, so the shortest signed arc
// between consecutive samples is the true displacement.
func (s *crossingSearch) sampleAfter(ctx context.Context, prev sample, m domain.Moment) (sample, error) {
	pos, err := s.readPosition(ctx, m)
	if err != nil {
		return sample{}, err
	}
	return sample{
		moment: m,
		lon:    pos.Longitude,
		u:      prev.u + domain.SignedDelta(prev.lon, pos.Longitude),
		speed:  pos.SpeedLongitude,
	}, nil
}

func (s *crossingSearch) readPosition(ctx context.Context, m domain.Moment) (domain.Position, error) {
	set, err := s.finder.provider.Positions(ctx, m, s.finder.location, []domain.Body{s.body}, s.finder.options)
	if err != nil {
		return domain.Position{}, err
	}
	pos, ok := set.ByBody(s.body)
	if !ok {
		err := zerr.With(domain.ErrRequiredBodyMissing, "body", s.body.String())
		for _, om := range set.Omissions {
			if om.Body == s.body {
				err = zerr.With(err, "reason", om.Reason)
			}
		}
		return domain.Position{}, err
	}
	return pos, nil
}

// matches reports whether motion at the crossing instant is the
// requested direction. A body stationary at the crossing matches
// neither.
func (s *crossingSearch) matches(speed float64) bool {
	if s.direction == domain.CrossingRetrograde {
		return speed < 0
	}
	return speed > 0
}

func (s *crossingSearch) exhausted() error {
	return zerr.With(zerr.With(domain.ErrNoConvergence, "body", s.body.String()), "target", s.target)
}

// stepLength sizes a coarse step so the body covers about stepMotion
// degrees, clamped so slow movers still advance and fast movers stay
// well under half a circle per step.
func stepLength(speed float64) float64 {
	speed = math.Abs(speed)
	if speed == 0 {
		return maxStep
	}
	return min(max(stepMotion/speed, minStep), maxStep)
}
