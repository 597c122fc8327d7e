package clock

import "time"

// Clock supplies "now" to the lifecycle services. Shift status is derived
// from wall-clock time, so everything downstream is deterministic given a
// Clock implementation.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// FixedClock reports a settable instant. Intended for tests that step a
// shift through its date-driven transitions.
type FixedClock struct {
	instant time.Time
}

// Fixed returns a FixedClock pinned to t.
func Fixed(t time.Time) *FixedClock {
	return &FixedClock{instant: t}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time { return c.instant }

// Set moves the pinned instant.
func (c *FixedClock) Set(t time.Time) { c.instant = t }

// Advance moves the pinned instant forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.instant = c.instant.Add(d) }
