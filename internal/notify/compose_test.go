package notify

import (
	"strings"
	"testing"
	"time"

	"codeberg.org/mutker/meteoctl/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeHours(t *testing.T) {
	msg := Compose(stats.Median, 43200*time.Second, 21.46, 40.2)

	lines := strings.Split(msg, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "The median temperature for the last 12 hours is: 21.5", lines[0])
	assert.Equal(t, "The median humidity for the last 12 hours is: 40.2", lines[1])
}

func TestComposeMinutes(t *testing.T) {
	msg := Compose(stats.Mean, 1800*time.Second, 19, 55)

	assert.Contains(t, msg, "average")
	assert.Contains(t, msg, "30 minutes")
	assert.NotContains(t, msg, "hours")
}

func TestComposeExactlyOneHourUsesMinutes(t *testing.T) {
	assert.Contains(t, Compose(stats.Median, time.Hour, 1, 1), "60 minutes")
}

func TestComposeRoundsInterval(t *testing.T) {
	assert.Contains(t, Compose(stats.Median, 5400*time.Second, 1, 1), "2 hours")
	assert.Contains(t, Compose(stats.Median, 90*time.Second, 1, 1), "2 minutes")
}

func TestComposeNoData(t *testing.T) {
	msg := Compose(stats.Median, 43200*time.Second, stats.NoData, 38.9)

	assert.Contains(t, msg, "temperature for the last 12 hours is: no data")
	assert.Contains(t, msg, "humidity for the last 12 hours is: 38.9")
	assert.NotContains(t, msg, "NaN")
}

func TestComposeAlert(t *testing.T) {
	assert.Equal(t, "HIGH CPU TEMPERATURE!!: 61.0", ComposeAlert(61))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "meteoctl: average for the last 12 hours", Subject(stats.Mean, 12*time.Hour))
}
