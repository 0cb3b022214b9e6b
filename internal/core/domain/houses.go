package domain

import "go.trai.ch/zerr"

// HouseSystem identifies a house-division strategy.
type HouseSystem uint8

const (
	// WholeSign assigns each sign to one house, starting from the
	// ascendant's sign.
	WholeSign HouseSystem = iota
	// Equal divides the ecliptic into 30-degree houses from the ascendant.
	Equal
	// Porphyry trisects the arcs between the four angles.
	Porphyry
	// Placidus divides the diurnal and nocturnal semi-arcs by time.
	Placidus

	houseSystemCount
)

var houseSystemNames = [houseSystemCount]string{
	WholeSign: "whole_sign",
	Equal:     "equal",
	Porphyry:  "porphyry",
	Placidus:  "placidus",
}

// String returns the canonical configuration name of the system.
func (s HouseSystem) String() string {
	if s >= houseSystemCount {
		return "unknown"
	}
	return houseSystemNames[s]
}

// ParseHouseSystem resolves a configuration name to a HouseSystem.
func ParseHouseSystem(s string) (HouseSystem, error) {
	for sys, name := range houseSystemNames {
		if name == s {
			return HouseSystem(sys), nil
		}
	}
	return 0, zerr.With(ErrUnknownHouseSystem, "house_system", s)
}

// HouseSystems returns all supported systems in declaration order.
func HouseSystems() []HouseSystem {
	out := make([]HouseSystem, 0, houseSystemCount)
	for s := HouseSystem(0); s < houseSystemCount; s++ {
		out = append(out, s)
	}
	return out
}

// HouseCusps holds the twelve cusp longitudes of one system. Index 0 is
// the cusp of house 1. Raw cusps are not monotonically increasing - they
// wrap at 360 - so assignment must treat them as a circular partition.
type HouseCusps struct {
	System HouseSystem
	Cusps  [12]float64
}

// HouseOf assigns a longitude to a house number 1..12. House n spans the
// circular interval from its own cusp forward to the next cusp; a
// longitude exactly on a cusp belongs to the house that begins there.
func (hc HouseCusps) HouseOf(lon float64) int {
	for i := 0; i < 12; i++ {
		if InArc(lon, hc.Cusps[i], hc.Cusps[(i+1)%12]) {
			return i + 1
		}
	}
	// Unreachable for a valid circular partition; house 1 keeps the
	// assignment total even for degenerate cusp sets.
	return 1
}

// AssignHouses maps every position onto its house under this cusp set.
func (hc HouseCusps) AssignHouses(positions []Position) map[Body]int {
	out := make(map[Body]int, len(positions))
	for _, p := range positions {
		out[p.Body] = hc.HouseOf(p.Longitude)
	}
	return out
}

// ChartAngles are the four cardinal points of a chart. Descendant and
// ImumCoeli are always the respective opposites of Ascendant and
// Midheaven.
type ChartAngles struct {
	Ascendant float64
	Midheaven float64
	// Descendant is Ascendant + 180 normalized.
	Descendant float64
	// ImumCoeli is Midheaven + 180 normalized.
	ImumCoeli float64
}
