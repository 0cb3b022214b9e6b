// Package style provides shared UI styling primitives including the color
// palette, status icons, and the astrological glyph tables used by the
// chart renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Gold   = lipgloss.Color("#D4A74A")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Night  = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check      = "✓"
	Cross      = "✗"
	Warning    = "!"
	Retrograde = "℞"
)

// SignGlyphs maps zodiac sign index 0 (Aries) through 11 (Pisces) to its
// glyph.
var SignGlyphs = [12]string{
	"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓",
}

// BodyGlyphs maps body configuration names to their glyphs. Bodies without
// an entry render under their name.
var BodyGlyphs = map[string]string{
	"sun":             "☉",
	"moon":            "☽",
	"mercury":         "☿",
	"venus":           "♀",
	"mars":            "♂",
	"jupiter":         "♃",
	"saturn":          "♄",
	"uranus":          "♅",
	"neptune":         "♆",
	"pluto":           "♇",
	"north_node":      "☊",
	"south_node":      "☋",
	"chiron":          "⚷",
	"part_of_fortune": "⊗",
	"part_of_spirit":  "⊛",
	"ascendant":       "AC",
	"midheaven":       "MC",
}

// AspectGlyphs maps aspect configuration names to their glyphs. The
// quintile family has no codepoint and uses letter abbreviations.
var AspectGlyphs = map[string]string{
	"conjunction":    "☌",
	"semisextile":    "⚺",
	"semisquare":     "∠",
	"sextile":        "⚹",
	"quintile":       "Q",
	"square":         "□",
	"trine":          "△",
	"sesquiquadrate": "⚼",
	"biquintile":     "bQ",
	"quincunx":       "⚻",
	"opposition":     "☍",
}
