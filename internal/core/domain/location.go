package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Location is a geographic position. Latitude is positive north, longitude
// positive east.
type Location struct {
	Latitude  float64
	Longitude float64
}

// NewLocation validates coordinate ranges and returns a Location.
func NewLocation(lat, lon float64) (Location, error) {
	if lat < -90 || lat > 90 {
		return Location{}, zerr.With(ErrInvalidLatitude, "latitude", fmt.Sprintf("%g", lat))
	}
	if lon < -180 || lon > 180 {
		return Location{}, zerr.With(ErrInvalidLongitude, "longitude", fmt.Sprintf("%g", lon))
	}
	return Location{Latitude: lat, Longitude: lon}, nil
}

// String formats the location as "lat,lon" with fixed precision.
func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.Latitude, l.Longitude)
}
