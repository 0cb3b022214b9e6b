package domain

import (
	"time"
)

// J2000 is the Julian Day of the standard epoch 2000 January 1, 12:00 TT,
// which the ephemeris treats as 2000-01-01T12:00Z.
const J2000 = 2451545.0

// unixEpochJD is the Julian Day of 1970-01-01T00:00Z.
const unixEpochJD = 2440587.5

const (
	secondsPerDay = 86400.0
	nanosPerDay   = secondsPerDay * 1e9
)

// Moment is a timezone-resolved instant normalized to UTC. It is the only
// time representation the engine accepts; conversion from civil time and
// zone resolution happen at the boundary.
type Moment struct {
	utc time.Time
}

// NewMoment normalizes an instant to UTC.
func NewMoment(t time.Time) Moment {
	return Moment{utc: t.UTC()}
}

// MomentFromJulianDay converts a Julian Day back to a Moment (UTC, rounded
// to nanoseconds).
func MomentFromJulianDay(jd float64) Moment {
	nanos := (jd - unixEpochJD) * nanosPerDay
	sec := int64(nanos / 1e9)
	nsec := int64(nanos) - sec*1e9
	return Moment{utc: time.Unix(sec, nsec).UTC()}
}

// Time returns the instant in UTC.
func (m Moment) Time() time.Time {
	return m.utc
}

// JulianDay returns the continuous, timezone-independent day count used
// for all ephemeris queries. JD(2000-01-01T12:00Z) == 2451545.0.
func (m Moment) JulianDay() float64 {
	sec := float64(m.utc.Unix())
	nsec := float64(m.utc.Nanosecond())
	return unixEpochJD + (sec+nsec/1e9)/secondsPerDay
}

// JulianCenturies returns Julian centuries elapsed since J2000.
func (m Moment) JulianCenturies() float64 {
	return (m.JulianDay() - J2000) / 36525.0
}

// AddDays returns a new Moment offset by a fractional number of days.
func (m Moment) AddDays(days float64) Moment {
	return Moment{utc: m.utc.Add(time.Duration(days * nanosPerDay))}
}

// Add returns a new Moment offset by a duration.
func (m Moment) Add(d time.Duration) Moment {
	return Moment{utc: m.utc.Add(d)}
}

// Before reports whether m precedes other.
func (m Moment) Before(other Moment) bool {
	return m.utc.Before(other.utc)
}

// Sub returns the elapsed days from other to m.
func (m Moment) Sub(other Moment) float64 {
	return float64(m.utc.Sub(other.utc)) / nanosPerDay
}

// String formats the instant as RFC 3339 UTC.
func (m Moment) String() string {
	return m.utc.Format(time.RFC3339)
}
