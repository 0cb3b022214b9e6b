package cache

import (
	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
)

// ForConfig returns the store selected by the cache configuration. The
// none backend yields a nil store: callers use the provider uncached.
func ForConfig(cfg domain.CacheConfig, logger ports.Logger) (ports.CalculationCache, error) {
	switch cfg.Backend {
	case domain.CacheNone:
		return nil, nil
	case domain.CacheSQLite:
		path := cfg.Path
		if path == "" {
			path = domain.DefaultCacheDBPath()
		}
		return NewSQLite(path, cfg.MaxAge, logger)
	default:
		return NewMemory(cfg.MaxAge), nil
	}
}
