// Package clock provides the time sources injected into use cases.
package clock

import "time"

// System reads the wall clock. Times are returned in UTC with microsecond
// precision, which is what postgres timestamptz columns store.
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Fixed always returns the same instant.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) Fixed {
	return Fixed{t: t}
}

func (f Fixed) Now() time.Time {
	return f.t
}
