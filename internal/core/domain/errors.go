package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownBody is returned when a configuration or flag references a body name that is not recognized.
	ErrUnknownBody = zerr.New("unknown body")

	// ErrUnknownHouseSystem is returned when a configuration references an unsupported house system.
	ErrUnknownHouseSystem = zerr.New("unknown house system")

	// ErrUnknownAspect is returned when a configuration references an unsupported aspect name.
	ErrUnknownAspect = zerr.New("unknown aspect")

	// ErrUnknownZodiac is returned when a configuration references an unsupported zodiac mode.
	ErrUnknownZodiac = zerr.New("unknown zodiac")

	// ErrUnknownAyanamsa is returned when a configuration references an unsupported ayanamsa.
	ErrUnknownAyanamsa = zerr.New("unknown ayanamsa")

	// ErrUnknownComponent is returned when a configuration enables a chart component that is not registered.
	ErrUnknownComponent = zerr.New("unknown chart component")

	// ErrUnknownAnalyzer is returned when a configuration enables an analyzer that is not registered.
	ErrUnknownAnalyzer = zerr.New("unknown analyzer")

	// ErrInvalidLatitude is returned when a latitude is outside [-90, 90].
	ErrInvalidLatitude = zerr.New("latitude must be between -90 and 90")

	// ErrInvalidLongitude is returned when a longitude is outside [-180, 180].
	ErrInvalidLongitude = zerr.New("longitude must be between -180 and 180")

	// ErrInvalidOrb is returned when an orb rule carries a negative allowance.
	ErrInvalidOrb = zerr.New("orb allowance must not be negative")

	// ErrInvalidOrbRule is returned when an orb rule names zero or more than two bodies.
	ErrInvalidOrbRule = zerr.New("orb rule must name one or two bodies")

	// ErrBodyUnavailable is the recoverable per-body condition for bodies the ephemeris cannot supply.
	ErrBodyUnavailable = zerr.New("body unavailable")

	// ErrRequiredBodyMissing aborts a calculation when a luminary cannot be computed.
	ErrRequiredBodyMissing = zerr.New("required body missing")

	// ErrHouseSystemLatitude is the recoverable per-system condition for systems undefined at the given latitude.
	ErrHouseSystemLatitude = zerr.New("house system undefined at this latitude")

	// ErrNoConvergence is returned when the crossing search exhausts its iteration or bracket budget.
	ErrNoConvergence = zerr.New("crossing search did not converge")

	// ErrUnknownDirection is returned when a flag carries an unrecognized crossing direction.
	ErrUnknownDirection = zerr.New("unknown crossing direction")

	// ErrUnknownSign is returned when a flag carries an unrecognized zodiac sign name.
	ErrUnknownSign = zerr.New("unknown zodiac sign")

	// ErrDuplicateStage is returned when a component or analyzer name is registered twice.
	ErrDuplicateStage = zerr.New("stage already registered")

	// ErrEmptyStageName is returned when a component or analyzer is registered without a name.
	ErrEmptyStageName = zerr.New("stage name must not be empty")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file references unknown names or invalid values.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrUnknownCacheBackend is returned when a configuration selects an unsupported cache backend.
	ErrUnknownCacheBackend = zerr.New("unknown cache backend")

	// ErrInvalidMaxAge is returned when the cache max age is negative or not a duration.
	ErrInvalidMaxAge = zerr.New("invalid cache max age")

	// ErrCacheOpenFailed is returned when the persistent cache store cannot be opened.
	ErrCacheOpenFailed = zerr.New("failed to open calculation cache")

	// ErrChartCalculationFailed wraps fatal pipeline errors for the CLI exit path.
	ErrChartCalculationFailed = zerr.New("chart calculation failed")

	// ErrReturnSearchFailed wraps return-finder errors for the CLI exit path.
	ErrReturnSearchFailed = zerr.New("return search failed")
)
