package render_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stellium.dev/stellium/internal/adapters/render"
	"go.stellium.dev/stellium/internal/core/domain"
)

// fullChart builds a chart exercising every report section. All values are
// exactly representable in binary so the formatted output is stable.
func fullChart() *domain.CalculatedChart {
	sun := domain.Position{Body: domain.Sun, Longitude: 0.25, SpeedLongitude: 1.0}
	moon := domain.Position{Body: domain.Moon, Longitude: 95.5, SpeedLongitude: 13.25}
	mars := domain.Position{Body: domain.Mars, Longitude: 120.75, SpeedLongitude: -0.125}
	asc := domain.Position{Body: domain.Ascendant, Longitude: 185.5}

	cusps := domain.HouseCusps{System: domain.Placidus}
	for i := range cusps.Cusps {
		cusps.Cusps[i] = domain.NormalizeDegrees(185.5 + float64(i)*30)
	}

	return &domain.CalculatedChart{
		Moment:    domain.NewMoment(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)),
		Location:  domain.Location{Latitude: 51.5, Longitude: -0.125},
		Positions: []domain.Position{sun, moon, mars, asc},
		Angles: domain.ChartAngles{
			Ascendant:  185.5,
			Midheaven:  95.5,
			Descendant: 5.5,
			ImumCoeli:  275.5,
		},
		HasAngles: true,
		Cusps:     map[domain.HouseSystem]domain.HouseCusps{domain.Placidus: cusps},
		Placements: map[domain.HouseSystem]map[domain.Body]int{
			domain.Placidus: {
				domain.Sun:       6,
				domain.Moon:      10,
				domain.Mars:      10,
				domain.Ascendant: 1,
			},
		},
		Aspects: []domain.Aspect{
			{First: sun, Second: moon, Name: domain.Square, Angle: 90, Orb: 5.25, Phase: domain.PhaseApplying},
			{First: sun, Second: mars, Name: domain.Trine, Angle: 120, Orb: 0.5, Phase: domain.PhaseSeparating},
		},
		Metadata: map[string]any{
			"sect": domain.SectDay,
			"balance": domain.BalanceReport{
				Elements:   map[string]int{"fire": 2, "water": 1},
				Modalities: map[string]int{"cardinal": 2, "fixed": 1},
			},
			"patterns": []domain.Pattern{
				{Kind: "t_square", Bodies: []domain.Body{domain.Sun, domain.Moon, domain.Mars}},
			},
		},
		Warnings: []domain.Warning{
			{Stage: "positions", Subject: "chiron", Message: "no ephemeris data for body"},
		},
	}
}

// minimalChart builds a chart without angles or houses, as produced for
// locations where no house system is defined.
func minimalChart() *domain.CalculatedChart {
	return &domain.CalculatedChart{
		Moment:   domain.NewMoment(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)),
		Location: domain.Location{Latitude: 78.25, Longitude: 15.5},
		Positions: []domain.Position{
			{Body: domain.Sun, Longitude: 280.5, SpeedLongitude: 1.0},
			{Body: domain.Saturn, Longitude: 40.25, SpeedLongitude: -0.0625},
		},
		Warnings: []domain.Warning{
			{Stage: "houses", Subject: "placidus", Message: "latitude beyond placidus limit"},
		},
	}
}

func TestRenderer_RenderChart_Full(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := render.NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf, fullChart()))

	g := goldie.New(t)
	g.Assert(t, "chart_full", buf.Bytes())
}

func TestRenderer_RenderChart_Minimal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := render.NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf, minimalChart()))

	g := goldie.New(t)
	g.Assert(t, "chart_minimal", buf.Bytes())
}

func TestRenderer_RenderChart_Sidereal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	chart := &domain.CalculatedChart{
		Moment:   domain.NewMoment(time.Date(1987, 6, 15, 6, 30, 0, 0, time.UTC)),
		Location: domain.Location{Latitude: 28.5, Longitude: 77.25},
		Options: domain.CalcOptions{
			Zodiac:   domain.ZodiacSidereal,
			Ayanamsa: domain.AyanamsaLahiri,
		},
		Positions: []domain.Position{
			{Body: domain.Moon, Longitude: 214.75, SpeedLongitude: 12.5},
		},
	}

	r := render.NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf, chart))

	g := goldie.New(t)
	g.Assert(t, "chart_sidereal", buf.Bytes())
}

func TestRenderer_RenderReturn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	event := domain.ReturnEvent{
		Body:      domain.Sun,
		Target:    280.5,
		Exact:     domain.NewMoment(time.Date(2032, 1, 1, 5, 30, 0, 0, time.UTC)),
		Longitude: 280.5,
	}
	chart := &domain.CalculatedChart{
		Moment:   event.Exact,
		Location: domain.Location{Latitude: 78.25, Longitude: 15.5},
		Positions: []domain.Position{
			{Body: domain.Sun, Longitude: 280.5, SpeedLongitude: 1.0},
		},
	}

	r := render.NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderReturn(&buf, event, chart))

	g := goldie.New(t)
	g.Assert(t, "return_event", buf.Bytes())
}

func TestRenderer_RenderChart_JSON(t *testing.T) {
	r := render.NewJSONRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf, fullChart()))

	g := goldie.New(t)
	g.Assert(t, "chart_full_json", buf.Bytes())
}

func TestRenderer_RenderReturn_JSON(t *testing.T) {
	event := domain.ReturnEvent{
		Body:      domain.Sun,
		Target:    280.5,
		Exact:     domain.NewMoment(time.Date(2032, 1, 1, 5, 30, 0, 0, time.UTC)),
		Longitude: 280.5,
	}
	chart := &domain.CalculatedChart{
		Moment:   event.Exact,
		Location: domain.Location{Latitude: 78.25, Longitude: 15.5},
		Positions: []domain.Position{
			{Body: domain.Sun, Longitude: 280.5, SpeedLongitude: 1.0},
		},
	}

	r := render.NewJSONRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderReturn(&buf, event, chart))

	g := goldie.New(t)
	g.Assert(t, "return_json", buf.Bytes())
}

func TestRenderer_RenderChart_JSONIsValid(t *testing.T) {
	r := render.NewJSONRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf, fullChart()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "day", doc["sect"])
	assert.Len(t, doc["positions"], 4)
	assert.Len(t, doc["aspects"], 2)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestRenderer_RenderChart_WriteError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := render.NewRenderer()
	err := r.RenderChart(brokenWriter{}, fullChart())
	require.ErrorIs(t, err, assert.AnError)
}

func TestRenderer_RenderReturn_JSONWriteError(t *testing.T) {
	r := render.NewJSONRenderer()
	err := r.RenderReturn(brokenWriter{}, domain.ReturnEvent{Body: domain.Sun}, minimalChart())
	require.ErrorIs(t, err, assert.AnError)
}

func TestFormatSignPosition(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want string
	}{
		{"aries start", 0, " 0°00' Aries"},
		{"mid taurus", 45.5, "15°30' Taurus"},
		{"minute carry into next sign", 29.9999999, " 0°00' Taurus"},
		{"minute carry across the wrap", 359.9999999, " 0°00' Aries"},
		{"negative input normalized", -0.25, "29°45' Pisces"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.FormatSignPosition(tt.lon))
		})
	}
}
