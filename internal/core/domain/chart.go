package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Warning records an absorbed per-item or per-stage failure. Warnings ride
// on the chart so that a partial result still explains what is missing.
type Warning struct {
	// Stage is the pipeline stage that absorbed the failure.
	Stage string
	// Subject names the body, system, component, or analyzer concerned.
	Subject string
	Message string
}

// CalculatedChart is the immutable result of one pipeline run. Once
// returned it is never mutated; consumers that need variations must
// copy-with-change.
type CalculatedChart struct {
	Moment   Moment
	Location Location
	Options  CalcOptions

	// Positions is the final position set, including any synthetic
	// positions appended by chart components.
	Positions []Position
	// Angles are the four cardinal points. Valid only if HasAngles.
	Angles    ChartAngles
	HasAngles bool
	// Cusps maps each successfully computed house system to its cusps.
	Cusps map[HouseSystem]HouseCusps
	// Placements maps each system to the house number of every body.
	Placements map[HouseSystem]map[Body]int
	// Aspects is the detected aspect set over the final positions.
	Aspects []Aspect
	// Metadata holds one entry per analyzer, keyed by analyzer name.
	Metadata map[string]any
	// Warnings lists every absorbed failure, in stage order.
	Warnings []Warning
}

// Position returns the position of a body in the final set, if present.
func (c *CalculatedChart) Position(b Body) (Position, bool) {
	for _, p := range c.Positions {
		if p.Body == b {
			return p, true
		}
	}
	return Position{}, false
}

// HouseOf returns the house placement of a body under a system.
func (c *CalculatedChart) HouseOf(sys HouseSystem, b Body) (int, bool) {
	placements, ok := c.Placements[sys]
	if !ok {
		return 0, false
	}
	h, ok := placements[b]
	return h, ok
}

// Sect is the day/night classification of a chart, based on the Sun's
// position relative to the horizon axis.
type Sect string

const (
	// SectDay means the Sun is above the horizon.
	SectDay Sect = "day"
	// SectNight means the Sun is below the horizon.
	SectNight Sect = "night"
)

// BalanceReport is the element and modality census written by the balance
// analyzer. Keys are element and modality names, values are counts over
// the chart's non-angle positions.
type BalanceReport struct {
	Elements   map[string]int
	Modalities map[string]int
}

// Pattern is a higher-order aspect figure detected by the patterns
// analyzer.
type Pattern struct {
	// Kind is the figure name, e.g. "grand_trine" or "t_square".
	Kind string
	// Bodies are the participants in canonical rank order. For a
	// t_square the apex body is listed last.
	Bodies []Body
}

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var elementNames = [4]string{"fire", "earth", "air", "water"}

var modalityNames = [3]string{"cardinal", "fixed", "mutable"}

// SignName returns the zodiac sign name for an index 0..11.
func SignName(sign int) string {
	if sign < 0 || sign > 11 {
		return "unknown"
	}
	return signNames[sign]
}

// ParseSign resolves a sign name to its index 0..11. Matching is
// case-insensitive so flag values can stay lowercase.
func ParseSign(s string) (int, error) {
	for i, name := range signNames {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, zerr.With(ErrUnknownSign, "sign", s)
}

// ElementOf returns the element name of a sign index.
func ElementOf(sign int) string {
	return elementNames[((sign%4)+4)%4]
}

// ModalityOf returns the modality name of a sign index.
func ModalityOf(sign int) string {
	return modalityNames[((sign%3)+3)%3]
}
