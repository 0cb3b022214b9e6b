package domain

import "go.trai.ch/zerr"

// Zodiac selects the reference frame for longitudes.
type Zodiac uint8

const (
	// ZodiacTropical measures longitudes from the moving equinox.
	ZodiacTropical Zodiac = iota
	// ZodiacSidereal measures longitudes against the fixed stars by
	// subtracting an ayanamsa.
	ZodiacSidereal
)

// String returns the configuration name of the zodiac.
func (z Zodiac) String() string {
	if z == ZodiacSidereal {
		return "sidereal"
	}
	return "tropical"
}

// ParseZodiac resolves a configuration name to a Zodiac.
func ParseZodiac(s string) (Zodiac, error) {
	switch s {
	case "tropical":
		return ZodiacTropical, nil
	case "sidereal":
		return ZodiacSidereal, nil
	default:
		return 0, zerr.With(ErrUnknownZodiac, "zodiac", s)
	}
}

// Ayanamsa selects the sidereal offset model. Only meaningful when the
// zodiac is sidereal.
type Ayanamsa uint8

const (
	// AyanamsaLahiri is the Chitrapaksha ayanamsa.
	AyanamsaLahiri Ayanamsa = iota
	// AyanamsaFaganBradley is the western sidereal ayanamsa.
	AyanamsaFaganBradley
)

// String returns the configuration name of the ayanamsa.
func (a Ayanamsa) String() string {
	if a == AyanamsaFaganBradley {
		return "fagan_bradley"
	}
	return "lahiri"
}

// ParseAyanamsa resolves a configuration name to an Ayanamsa.
func ParseAyanamsa(s string) (Ayanamsa, error) {
	switch s {
	case "lahiri":
		return AyanamsaLahiri, nil
	case "fagan_bradley":
		return AyanamsaFaganBradley, nil
	default:
		return 0, zerr.With(ErrUnknownAyanamsa, "ayanamsa", s)
	}
}

// CalcOptions carries every calculation mode explicitly. Providers must
// derive their full behavior from this value rather than from ambient
// global state, so that identical (moment, body, options) inputs always
// produce bit-identical output.
type CalcOptions struct {
	Zodiac   Zodiac
	Ayanamsa Ayanamsa
}
