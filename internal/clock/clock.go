// Package clock indirects the parts of package time the scheduler depends on,
// so tests can control apparent time.
package clock

import "time"

type (
	// Clock abstracts time.Now and time.After.
	Clock interface {
		Now() time.Time
		After(d time.Duration) <-chan time.Time
	}

	wallClock struct{}
)

// Now indirects time.Now.
func (wallClock) Now() time.Time {
	return time.Now()
}

// After indirects time.After.
func (wallClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Wall is the Clock backed by the system clock.
var Wall Clock = wallClock{}
