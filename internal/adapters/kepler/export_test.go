// export_test.go exports private state for white-box testing.
package kepler

import "time"

// SetNow overrides the memoizing provider's clock for tests.
func (m *Memoized) SetNow(now func() time.Time) { m.now = now }

// SolveKepler exports the eccentric anomaly solver for testing.
var SolveKepler = solveKepler
