package clock

import "time"

// Clock supplies the current time. Recency queries depend on wall-clock
// time, so the clock is injected to keep results reproducible in tests.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }

// NewFixed creates a Fixed clock pinned at the given instant.
func NewFixed(instant time.Time) Fixed {
	return Fixed{Instant: instant}
}
