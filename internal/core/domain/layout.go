package domain

import "path/filepath"

const (
	// StelliumDirName is the name of the internal metadata directory.
	StelliumDirName = ".stellium"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// CacheDBFileName is the name of the persistent calculation cache.
	CacheDBFileName = "positions.db"

	// ConfigFileName is the name of the chart configuration file.
	ConfigFileName = "stellium.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDBPath returns the default path for the persistent
// calculation cache. It joins .stellium, cache, and positions.db.
func DefaultCacheDBPath() string {
	return filepath.Join(StelliumDirName, CacheDirName, CacheDBFileName)
}
