// Package cache implements calculation cache stores and key derivation.
package cache

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.stellium.dev/stellium/internal/core/domain"
)

// Key derives the cache key for one body computation. The key carries the
// body name, the full-precision Julian Day bits, and a fingerprint of the
// location and calculation options, so any input change produces a new
// key. Derivation is pure and shared by every store implementation.
func Key(moment domain.Moment, loc domain.Location, b domain.Body, opts domain.CalcOptions) domain.CacheKey {
	return domain.CacheKey(fmt.Sprintf("%s:%016x:%016x",
		b,
		math.Float64bits(moment.JulianDay()),
		fingerprint(loc, opts),
	))
}

// fingerprint hashes the location and options into a single value.
func fingerprint(loc domain.Location, opts domain.CalcOptions) uint64 {
	hasher := xxhash.New()

	_ = binary.Write(hasher, binary.LittleEndian, math.Float64bits(loc.Latitude))
	_ = binary.Write(hasher, binary.LittleEndian, math.Float64bits(loc.Longitude))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(opts.Zodiac.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(opts.Ayanamsa.String())
	_, _ = hasher.Write([]byte{0})

	return hasher.Sum64()
}
