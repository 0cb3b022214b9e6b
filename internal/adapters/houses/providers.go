package houses

import (
	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.trai.ch/zerr"
)

// ForSystem returns the provider implementing the given house system.
func ForSystem(sys domain.HouseSystem) (ports.HouseSystemProvider, error) {
	switch sys {
	case domain.WholeSign:
		return NewWholeSign(), nil
	case domain.Equal:
		return NewEqual(), nil
	case domain.Porphyry:
		return NewPorphyry(), nil
	case domain.Placidus:
		return NewPlacidus(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownHouseSystem, "house_system", sys.String())
	}
}
