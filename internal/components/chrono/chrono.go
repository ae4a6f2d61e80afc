// Package chrono abstracts the wall clock so daily-selection behavior can
// be pinned to fixed dates in tests.
package chrono

import "time"

type API interface {
	Now() time.Time
}

// The daily pick rolls over at UTC midnight, so the standard clock
// reports UTC.
type StandardImpl struct{}

func (StandardImpl) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock stopped at a single instant.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}
