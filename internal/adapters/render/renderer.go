// Package render implements chart presentation for the terminal: a styled
// plain-text report and a machine-readable JSON document.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.stellium.dev/stellium/internal/ui/output"
	"go.stellium.dev/stellium/internal/ui/style"
)

var _ ports.ChartRenderer = (*Renderer)(nil)

// Renderer implements ports.ChartRenderer. The zero value renders styled
// plain text; use NewJSONRenderer for the JSON document instead.
type Renderer struct {
	json bool
}

// NewRenderer creates a renderer producing the styled plain-text report.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// NewJSONRenderer creates a renderer producing machine-readable JSON.
func NewJSONRenderer() *Renderer {
	return &Renderer{json: true}
}

// RenderChart writes a formatted chart to the writer.
func (r *Renderer) RenderChart(w io.Writer, chart *domain.CalculatedChart) error {
	if r.json {
		return writeJSON(w, chartToJSON(chart))
	}

	cw := newChartWriter(w)
	cw.header(chart)
	cw.positions(chart)
	cw.angles(chart)
	cw.houses(chart)
	cw.aspects(chart)
	cw.analyses(chart)
	cw.warnings(chart)
	return cw.err
}

// RenderReturn writes a found return event followed by its chart.
func (r *Renderer) RenderReturn(w io.Writer, event domain.ReturnEvent, chart *domain.CalculatedChart) error {
	if r.json {
		return writeJSON(w, returnReportJSON{
			Return: returnToJSON(event),
			Chart:  chartToJSON(chart),
		})
	}

	cw := newChartWriter(w)
	cw.returnEvent(event)
	if cw.err != nil {
		return cw.err
	}
	return r.RenderChart(w, chart)
}

// chartWriter renders one report. It latches the first write error so the
// section helpers can stay unconditional.
type chartWriter struct {
	w   io.Writer
	out *termenv.Output
	err error
}

func newChartWriter(w io.Writer) *chartWriter {
	return &chartWriter{w: w, out: output.New(w)}
}

func (cw *chartWriter) printf(format string, args ...any) {
	if cw.err != nil {
		return
	}
	_, cw.err = fmt.Fprintf(cw.w, format, args...)
}

func (cw *chartWriter) title(s string) {
	cw.printf("%s\n", cw.out.String(s).Bold().String())
}

func (cw *chartWriter) header(chart *domain.CalculatedChart) {
	zodiac := chart.Options.Zodiac.String()
	if chart.Options.Zodiac == domain.ZodiacSidereal {
		zodiac += " (" + chart.Options.Ayanamsa.String() + ")"
	}
	cw.printf("%s  %s  %s  %s\n",
		cw.out.String("Chart").Bold().String(),
		chart.Moment, chart.Location, zodiac)
}

func (cw *chartWriter) positions(chart *domain.CalculatedChart) {
	if len(chart.Positions) == 0 {
		return
	}
	cw.printf("\n")
	cw.title("Positions")

	primary, hasPrimary := primarySystem(chart)
	for _, p := range chart.Positions {
		name := p.Body.String()
		line := "  " + pad(style.BodyGlyphs[name], 3) + pad(name, 16) + pad(formatSignPosition(p.Longitude), 20)
		if hasPrimary {
			house := ""
			if h, ok := chart.HouseOf(primary, p.Body); ok {
				house = fmt.Sprintf("house %2d", h)
			}
			line += pad(house, 10)
		}
		line += fmt.Sprintf("%+9.4f°/d", p.SpeedLongitude)
		if p.Retrograde() {
			line += "  " + cw.out.String(style.Retrograde).Foreground(termenv.RGBColor(string(style.Red))).String()
		}
		cw.printf("%s\n", line)
	}
}

func (cw *chartWriter) angles(chart *domain.CalculatedChart) {
	if !chart.HasAngles {
		return
	}
	cw.printf("\n")
	cw.title("Angles")
	for _, a := range []struct {
		label string
		lon   float64
	}{
		{"AC", chart.Angles.Ascendant},
		{"MC", chart.Angles.Midheaven},
		{"DC", chart.Angles.Descendant},
		{"IC", chart.Angles.ImumCoeli},
	} {
		cw.printf("  %s  %s\n", a.label, formatSignPosition(a.lon))
	}
}

func (cw *chartWriter) houses(chart *domain.CalculatedChart) {
	for _, sys := range domain.HouseSystems() {
		cusps, ok := chart.Cusps[sys]
		if !ok {
			continue
		}
		cw.printf("\n")
		cw.title(fmt.Sprintf("Houses (%s)", sys))
		for i, cusp := range cusps.Cusps {
			cw.printf("  %2d  %s\n", i+1, formatSignPosition(cusp))
		}
	}
}

func (cw *chartWriter) aspects(chart *domain.CalculatedChart) {
	if len(chart.Aspects) == 0 {
		return
	}
	cw.printf("\n")
	cw.title("Aspects")
	for _, a := range chart.Aspects {
		name := a.Name.String()
		cw.printf("  %s%s%s  %s%5.2f°  %s\n",
			pad(a.First.Body.String(), 16),
			pad(style.AspectGlyphs[name], 3),
			pad(a.Second.Body.String(), 16),
			pad(name, 16),
			a.Orb,
			a.Phase)
	}
}

func (cw *chartWriter) analyses(chart *domain.CalculatedChart) {
	if sect, ok := chart.Metadata["sect"].(domain.Sect); ok {
		cw.printf("\n%s  %s\n", cw.out.String("Sect").Bold().String(), sect)
	}
	if balance, ok := chart.Metadata["balance"].(domain.BalanceReport); ok {
		cw.printf("\n")
		cw.title("Balance")
		cw.printf("  elements    %s\n", formatCounts(balance.Elements, elementOrder))
		cw.printf("  modalities  %s\n", formatCounts(balance.Modalities, modalityOrder))
	}
	if patterns, ok := chart.Metadata["patterns"].([]domain.Pattern); ok && len(patterns) > 0 {
		cw.printf("\n")
		cw.title("Patterns")
		for _, p := range patterns {
			cw.printf("  %s%s\n", pad(p.Kind, 13), strings.Join(bodyNames(p.Bodies), ", "))
		}
	}
}

func (cw *chartWriter) warnings(chart *domain.CalculatedChart) {
	if len(chart.Warnings) == 0 {
		return
	}
	cw.printf("\n")
	cw.title("Warnings")
	for _, warning := range chart.Warnings {
		subject := warning.Stage
		if warning.Subject != "" {
			subject += "/" + warning.Subject
		}
		line := fmt.Sprintf("%s %s: %s", style.Warning, subject, warning.Message)
		cw.printf("  %s\n", cw.out.String(line).Foreground(termenv.RGBColor(string(style.Yellow))).String())
	}
}

func (cw *chartWriter) returnEvent(event domain.ReturnEvent) {
	cw.printf("%s  %s reached %s at %s\n\n",
		cw.out.String("Return").Bold().String(),
		event.Body,
		strings.TrimLeft(formatSignPosition(event.Target), " "),
		event.Exact)
}

// primarySystem picks the house system shown in the positions table: the
// first computed system in declaration order.
func primarySystem(chart *domain.CalculatedChart) (domain.HouseSystem, bool) {
	for _, sys := range domain.HouseSystems() {
		if _, ok := chart.Cusps[sys]; ok {
			return sys, true
		}
	}
	return 0, false
}

// formatSignPosition renders a longitude as degrees and minutes within its
// zodiac sign, e.g. "15°30' Taurus".
func formatSignPosition(lon float64) string {
	lon = domain.NormalizeDegrees(lon)
	sign := int(lon / 30)
	within := lon - float64(sign)*30
	deg := int(within)
	minutes := int(math.Round((within - float64(deg)) * 60))
	if minutes == 60 {
		deg++
		minutes = 0
	}
	if deg == 30 {
		deg = 0
		sign = (sign + 1) % 12
	}
	return fmt.Sprintf("%2d°%02d' %s", deg, minutes, domain.SignName(sign))
}

var (
	elementOrder  = []string{"fire", "earth", "air", "water"}
	modalityOrder = []string{"cardinal", "fixed", "mutable"}
)

func formatCounts(counts map[string]int, order []string) string {
	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%s %d", name, counts[name]))
	}
	return strings.Join(parts, "  ")
}

// pad right-pads a cell to the given width in runes. Byte-based padding
// would misalign columns containing glyphs.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
