package window_test

import (
	"sync"
	"testing"
	"time"

	"codeberg.org/mutker/meteoctl/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainReturnsAppendOrder(t *testing.T) {
	var s window.Series
	s.Append(3)
	s.Append(1)
	s.Append(2)

	assert.Equal(t, []float64{3, 1, 2}, s.Drain())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Drain())
}

func TestDrainedSliceIsDetached(t *testing.T) {
	var s window.Series
	s.Append(1)

	drained := s.Drain()
	s.Append(2)

	assert.Equal(t, []float64{1}, drained)
	assert.Equal(t, []float64{2}, s.Drain())
}

func TestSampleWindowDrainValues(t *testing.T) {
	var w window.SampleWindow
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	w.Add(start, 21.5)
	w.Add(start.Add(time.Minute), 21.7)
	require.Equal(t, 2, w.Len())

	assert.Equal(t, []float64{21.5, 21.7}, w.DrainValues())
	assert.Empty(t, w.DrainValues())
}

func TestConcurrentAppendAndDrain(t *testing.T) {
	var s window.Series
	const writers, perWriter = 8, 100

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				s.Append(1)
			}
		}()
	}

	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			total += len(s.Drain())
			assert.Equal(t, writers*perWriter, total)
			return
		default:
			total += len(s.Drain())
		}
	}
}
