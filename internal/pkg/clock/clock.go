// Package clock supplies civil time in the office timezone. Timestamps
// written to the sheet have to be wall-clock times the administrators
// reading it can recognize, never UTC.
package clock

import "time"

// Clock yields the current time. Injected so tests can pin it.
type Clock interface {
	Now() time.Time
}

type officeClock struct {
	loc *time.Location
}

// New returns a Clock reporting civil time in loc.
func New(loc *time.Location) Clock {
	return officeClock{loc: loc}
}

func (c officeClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
