package render

import (
	"encoding/json"
	"io"
	"time"

	"go.stellium.dev/stellium/internal/core/domain"
)

// The JSON document mirrors the calculated chart with stable string keys,
// so downstream tooling never depends on internal enum values.

type chartJSON struct {
	Moment    string         `json:"moment"`
	Location  locationJSON   `json:"location"`
	Zodiac    string         `json:"zodiac"`
	Ayanamsa  string         `json:"ayanamsa,omitempty"`
	Positions []positionJSON `json:"positions"`
	Angles    *anglesJSON    `json:"angles,omitempty"`
	Houses    []housesJSON   `json:"houses,omitempty"`
	Aspects   []aspectJSON   `json:"aspects,omitempty"`
	Sect      string         `json:"sect,omitempty"`
	Balance   *balanceJSON   `json:"balance,omitempty"`
	Patterns  []patternJSON  `json:"patterns,omitempty"`
	Warnings  []warningJSON  `json:"warnings,omitempty"`
}

type locationJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type positionJSON struct {
	Body       string         `json:"body"`
	Longitude  float64        `json:"longitude"`
	Latitude   float64        `json:"latitude"`
	Distance   float64        `json:"distance"`
	Speed      float64        `json:"speed"`
	Sign       string         `json:"sign"`
	SignDegree float64        `json:"sign_degree"`
	Retrograde bool           `json:"retrograde"`
	Houses     map[string]int `json:"houses,omitempty"`
}

type anglesJSON struct {
	Ascendant  float64 `json:"ascendant"`
	Midheaven  float64 `json:"midheaven"`
	Descendant float64 `json:"descendant"`
	ImumCoeli  float64 `json:"imum_coeli"`
}

type housesJSON struct {
	System string      `json:"system"`
	Cusps  [12]float64 `json:"cusps"`
}

type aspectJSON struct {
	First  string  `json:"first"`
	Second string  `json:"second"`
	Name   string  `json:"name"`
	Angle  float64 `json:"angle"`
	Orb    float64 `json:"orb"`
	Phase  string  `json:"phase"`
}

type balanceJSON struct {
	Elements   map[string]int `json:"elements"`
	Modalities map[string]int `json:"modalities"`
}

type patternJSON struct {
	Kind   string   `json:"kind"`
	Bodies []string `json:"bodies"`
}

type warningJSON struct {
	Stage   string `json:"stage"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

type returnJSON struct {
	Body      string  `json:"body"`
	Target    float64 `json:"target"`
	Exact     string  `json:"exact"`
	Longitude float64 `json:"longitude"`
}

type returnReportJSON struct {
	Return returnJSON `json:"return"`
	Chart  chartJSON  `json:"chart"`
}

func chartToJSON(chart *domain.CalculatedChart) chartJSON {
	doc := chartJSON{
		Moment: chart.Moment.Time().Format(time.RFC3339Nano),
		Location: locationJSON{
			Latitude:  chart.Location.Latitude,
			Longitude: chart.Location.Longitude,
		},
		Zodiac:    chart.Options.Zodiac.String(),
		Positions: make([]positionJSON, 0, len(chart.Positions)),
	}
	if chart.Options.Zodiac == domain.ZodiacSidereal {
		doc.Ayanamsa = chart.Options.Ayanamsa.String()
	}

	for _, p := range chart.Positions {
		pos := positionJSON{
			Body:       p.Body.String(),
			Longitude:  p.Longitude,
			Latitude:   p.Latitude,
			Distance:   p.Distance,
			Speed:      p.SpeedLongitude,
			Sign:       domain.SignName(p.Sign()),
			SignDegree: p.SignDegree(),
			Retrograde: p.Retrograde(),
		}
		for _, sys := range domain.HouseSystems() {
			if h, ok := chart.HouseOf(sys, p.Body); ok {
				if pos.Houses == nil {
					pos.Houses = make(map[string]int, len(chart.Placements))
				}
				pos.Houses[sys.String()] = h
			}
		}
		doc.Positions = append(doc.Positions, pos)
	}

	if chart.HasAngles {
		doc.Angles = &anglesJSON{
			Ascendant:  chart.Angles.Ascendant,
			Midheaven:  chart.Angles.Midheaven,
			Descendant: chart.Angles.Descendant,
			ImumCoeli:  chart.Angles.ImumCoeli,
		}
	}

	for _, sys := range domain.HouseSystems() {
		cusps, ok := chart.Cusps[sys]
		if !ok {
			continue
		}
		doc.Houses = append(doc.Houses, housesJSON{System: sys.String(), Cusps: cusps.Cusps})
	}

	for _, a := range chart.Aspects {
		doc.Aspects = append(doc.Aspects, aspectJSON{
			First:  a.First.Body.String(),
			Second: a.Second.Body.String(),
			Name:   a.Name.String(),
			Angle:  a.Angle,
			Orb:    a.Orb,
			Phase:  a.Phase.String(),
		})
	}

	if sect, ok := chart.Metadata["sect"].(domain.Sect); ok {
		doc.Sect = string(sect)
	}
	if balance, ok := chart.Metadata["balance"].(domain.BalanceReport); ok {
		doc.Balance = &balanceJSON{Elements: balance.Elements, Modalities: balance.Modalities}
	}
	if patterns, ok := chart.Metadata["patterns"].([]domain.Pattern); ok {
		for _, p := range patterns {
			doc.Patterns = append(doc.Patterns, patternJSON{Kind: p.Kind, Bodies: bodyNames(p.Bodies)})
		}
	}

	for _, warning := range chart.Warnings {
		doc.Warnings = append(doc.Warnings, warningJSON{
			Stage:   warning.Stage,
			Subject: warning.Subject,
			Message: warning.Message,
		})
	}

	return doc
}

func returnToJSON(event domain.ReturnEvent) returnJSON {
	return returnJSON{
		Body:      event.Body.String(),
		Target:    event.Target,
		Exact:     event.Exact.Time().Format(time.RFC3339Nano),
		Longitude: event.Longitude,
	}
}

func bodyNames(bodies []domain.Body) []string {
	names := make([]string, len(bodies))
	for i, b := range bodies {
		names[i] = b.String()
	}
	return names
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
