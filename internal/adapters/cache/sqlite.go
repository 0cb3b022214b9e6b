package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on open. Using IF NOT EXISTS makes it
// safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS positions (
    key        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    created_at INTEGER NOT NULL
);
`

var _ ports.CalculationCache = (*SQLite)(nil)

// SQLite is a persistent calculation cache backed by a local SQLite
// database in WAL mode. Runtime store failures are logged and absorbed: a
// broken cache degrades to recomputation, never to a failed calculation.
type SQLite struct {
	db     *sql.DB
	logger ports.Logger
	maxAge time.Duration
	now    func() time.Time
}

// NewSQLite opens (or creates) the database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema if needed. Entries older
// than maxAge are treated as absent; zero means entries never expire.
func NewSQLite(dbPath string, maxAge time.Duration, logger ports.Logger) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheOpenFailed.Error())
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheOpenFailed.Error())
	}

	// A single connection sidesteps SQLITE_BUSY contention between pooled
	// connections. WAL mode keeps reads and writes from blocking each
	// other across processes.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "pragma", pragma)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.Wrap(err, domain.ErrCacheOpenFailed.Error())
	}

	return &SQLite{db: db, logger: logger, maxAge: maxAge, now: time.Now}, nil
}

// Get implements ports.CalculationCache. Read failures and undecodable
// payloads are treated as misses.
func (s *SQLite) Get(key domain.CacheKey) (domain.CacheEntry, bool) {
	var (
		payload   string
		createdAt int64
	)
	err := s.db.QueryRow("SELECT payload, created_at FROM positions WHERE key = ?", string(key)).
		Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CacheEntry{}, false
	}
	if err != nil {
		s.logger.Warn(fmt.Sprintf("cache read failed for %s: %v", key, err))
		return domain.CacheEntry{}, false
	}

	entry := domain.CacheEntry{CreatedAt: time.Unix(0, createdAt).UTC()}
	if entry.Expired(s.now(), s.maxAge) {
		s.Invalidate(key)
		return domain.CacheEntry{}, false
	}

	if err := json.Unmarshal([]byte(payload), &entry.Position); err != nil {
		s.logger.Warn(fmt.Sprintf("cache entry for %s is corrupt, discarding: %v", key, err))
		s.Invalidate(key)
		return domain.CacheEntry{}, false
	}
	return entry, true
}

// Put implements ports.CalculationCache. Write failures are logged and
// dropped.
func (s *SQLite) Put(key domain.CacheKey, entry domain.CacheEntry) {
	payload, err := json.Marshal(entry.Position)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("cache encode failed for %s: %v", key, err))
		return
	}

	const q = `
		INSERT INTO positions (key, payload, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`
	if _, err := s.db.Exec(q, string(key), string(payload), entry.CreatedAt.UnixNano()); err != nil {
		s.logger.Warn(fmt.Sprintf("cache write failed for %s: %v", key, err))
	}
}

// Invalidate implements ports.CalculationCache.
func (s *SQLite) Invalidate(key domain.CacheKey) {
	if _, err := s.db.Exec("DELETE FROM positions WHERE key = ?", string(key)); err != nil {
		s.logger.Warn(fmt.Sprintf("cache invalidate failed for %s: %v", key, err))
	}
}

// Close implements ports.CalculationCache.
func (s *SQLite) Close() error {
	return s.db.Close()
}
