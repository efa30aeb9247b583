package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock. After fires immediately and moves the
// clock forward by d, so a loop sleeping on it runs without waiting.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Advance moves the clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

func (f *Fake) After(d time.Duration) <-chan time.Time {
	f.Advance(d)

	ch := make(chan time.Time, 1)
	ch <- f.Now()

	return ch
}
