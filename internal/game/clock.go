package game

import "time"

// Clock is the wall-clock time source driving all simulation timers.
// The simulation never calls time.Now directly so tests can substitute
// a controllable clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time with monotonic clock readings.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
