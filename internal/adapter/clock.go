package adapter

import "time"

// Clock is the engine's source of wall-clock time. Listing schedules and
// sweeper cutoffs are computed against it so tests can pin the instant.
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	// Until is the delay from now until t, negative once t has passed
	Until(t time.Time) time.Duration
}

type systemClock struct{}

// NewClock returns the system clock, in UTC
func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (systemClock) Until(t time.Time) time.Duration {
	return time.Until(t)
}
