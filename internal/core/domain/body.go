package domain

import "go.trai.ch/zerr"

// Body identifies a celestial body, node, derived point, or chart angle
// that can carry a position in a chart.
type Body uint8

const (
	// Sun is the primary luminary.
	Sun Body = iota
	// Moon is the secondary luminary.
	Moon
	// Mercury through Pluto are the planets in heliocentric order.
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	// NorthNode is the mean ascending lunar node.
	NorthNode
	// SouthNode is the mean descending lunar node, opposite the north node.
	SouthNode
	// Chiron is recognized for configuration purposes but has no backing
	// data in the built-in ephemeris.
	Chiron
	// PartOfFortune is the classical lot of fortune, derived by the lots component.
	PartOfFortune
	// PartOfSpirit is the classical lot of spirit, derived by the lots component.
	PartOfSpirit
	// Ascendant is the rising degree, carried as a pseudo-body so it can
	// participate in aspects.
	Ascendant
	// Midheaven is the culminating degree, carried as a pseudo-body.
	Midheaven

	bodyCount
)

// BodyClass groups bodies for orb policy tie-breaks and display ordering.
type BodyClass uint8

const (
	// ClassLuminary covers the Sun and Moon.
	ClassLuminary BodyClass = iota
	// ClassPlanet covers Mercury through Pluto and Chiron.
	ClassPlanet
	// ClassNode covers the lunar nodes.
	ClassNode
	// ClassPoint covers derived points such as the lots.
	ClassPoint
	// ClassAngle covers the chart angles.
	ClassAngle
)

var bodyNames = [bodyCount]string{
	Sun:           "sun",
	Moon:          "moon",
	Mercury:       "mercury",
	Venus:         "venus",
	Mars:          "mars",
	Jupiter:       "jupiter",
	Saturn:        "saturn",
	Uranus:        "uranus",
	Neptune:       "neptune",
	Pluto:         "pluto",
	NorthNode:     "north_node",
	SouthNode:     "south_node",
	Chiron:        "chiron",
	PartOfFortune: "part_of_fortune",
	PartOfSpirit:  "part_of_spirit",
	Ascendant:     "ascendant",
	Midheaven:     "midheaven",
}

// String returns the canonical lowercase name used in configuration files
// and CLI flags.
func (b Body) String() string {
	if b >= bodyCount {
		return "unknown"
	}
	return bodyNames[b]
}

// ParseBody resolves a configuration name to a Body.
func ParseBody(s string) (Body, error) {
	for b, name := range bodyNames {
		if name == s {
			return Body(b), nil
		}
	}
	return 0, zerr.With(ErrUnknownBody, "body", s)
}

// Class returns the body's class.
func (b Body) Class() BodyClass {
	switch b {
	case Sun, Moon:
		return ClassLuminary
	case NorthNode, SouthNode:
		return ClassNode
	case PartOfFortune, PartOfSpirit:
		return ClassPoint
	case Ascendant, Midheaven:
		return ClassAngle
	default:
		return ClassPlanet
	}
}

// Rank returns the body's position in the canonical ordering: luminaries
// before planets before nodes before points before angles, enum order
// within a class. Orb resolution and output sorting both depend on this
// ordering being total and stable.
func (b Body) Rank() int {
	return int(b.Class())*int(bodyCount) + int(b)
}

// Bodies returns the full set of recognized bodies in declaration order.
func Bodies() []Body {
	out := make([]Body, 0, bodyCount)
	for b := Body(0); b < bodyCount; b++ {
		out = append(out, b)
	}
	return out
}
