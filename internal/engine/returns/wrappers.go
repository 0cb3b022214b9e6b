package returns

import (
	"context"

	"go.stellium.dev/stellium/internal/core/domain"
)

// SolarReturn finds the next moment the Sun returns to the natal
// longitude. Starting the search at the natal moment itself yields the
// following return, a full revolution later.
func (f *Finder) SolarReturn(ctx context.Context, natal float64, start domain.Moment) (domain.ReturnEvent, error) {
	return f.FindCrossing(ctx, domain.Sun, natal, start, domain.CrossingDirect)
}

// LunarReturn finds the next moment the Moon returns to the natal
// longitude.
func (f *Finder) LunarReturn(ctx context.Context, natal float64, start domain.Moment) (domain.ReturnEvent, error) {
	return f.FindCrossing(ctx, domain.Moon, natal, start, domain.CrossingDirect)
}

// SignIngress finds the next moment the body enters a zodiac sign. A
// direct ingress crosses the sign's beginning; a retrograde ingress
// backs in across its end.
func (f *Finder) SignIngress(
	ctx context.Context,
	body domain.Body,
	sign int,
	start domain.Moment,
	direction domain.CrossingDirection,
) (domain.ReturnEvent, error) {
	boundary := float64(sign) * 30
	if direction == domain.CrossingRetrograde {
		boundary += 30
	}
	return f.FindCrossing(ctx, body, domain.NormalizeDegrees(boundary), start, direction)
}
