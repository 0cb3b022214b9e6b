// export_test.go exports private state for white-box testing.
package cache

import "time"

// SetNow overrides the store's clock for tests.
func (m *Memory) SetNow(now func() time.Time) { m.now = now }

// SetNow overrides the store's clock for tests.
func (s *SQLite) SetNow(now func() time.Time) { s.now = now }
