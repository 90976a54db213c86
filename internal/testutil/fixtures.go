// Package testutil provides deterministic stand-ins for wall time and
// generated references, so rendering tests can compare golden output.
package testutil

import "time"

// FixedTime is the timestamp used by golden-file tests.
var FixedTime = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

// FixedClock returns a clock function frozen at t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// FixedRef returns a reference generator that always yields ref.
func FixedRef(ref string) func() string {
	return func() string { return ref }
}
