// Package window holds the sample buffers filled between aggregation boundaries.
package window

import (
	"sync"
	"time"
)

// Observation is a single timestamped reading.
type Observation struct {
	Time  time.Time
	Value float64
}

// Buffer is an append-only sequence that is emptied by Drain.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
}

// Append adds v to the end of the buffer.
func (b *Buffer[T]) Append(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append(b.items, v)
}

// Drain returns the buffered items in append order and leaves the buffer empty.
func (b *Buffer[T]) Drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := b.items
	b.items = nil

	return items
}

// Len returns the number of buffered items.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.items)
}

// SampleWindow collects raw observations since the last discretization.
type SampleWindow struct {
	Buffer[Observation]
}

// Add records value observed at t.
func (w *SampleWindow) Add(t time.Time, value float64) {
	w.Append(Observation{Time: t, Value: value})
}

// DrainValues drains the window and returns only the observed values.
func (w *SampleWindow) DrainValues() []float64 {
	obs := w.Drain()
	values := make([]float64, len(obs))
	for i, o := range obs {
		values[i] = o.Value
	}

	return values
}

// Series collects per-window aggregates since the last notification.
type Series struct {
	Buffer[float64]
}
