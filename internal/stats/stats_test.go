package stats_test

import (
	"testing"

	"codeberg.org/mutker/meteoctl/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{21.4}, 21.4},
		{"odd", []float64{1, 2, 3}, 2},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"unsorted odd", []float64{9, 1, 5}, 5},
		{"unsorted even", []float64{40, 10, 30, 20}, 25},
		{"duplicates", []float64{3, 3, 1, 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stats.Aggregate(tt.values, stats.Median)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAggregateMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{7}, 7},
		{"sequence", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-2, 4}, 1},
		{"fractional", []float64{20.1, 20.2, 20.6}, 20.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stats.Aggregate(tt.values, stats.Mean)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAggregateDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}

	_, err := stats.Aggregate(values, stats.Median)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestAggregateEmpty(t *testing.T) {
	for _, kind := range []stats.Kind{stats.Median, stats.Mean} {
		_, err := stats.Aggregate(nil, kind)
		require.ErrorIs(t, err, stats.ErrEmptyInput)

		assert.NotPanics(t, func() {
			assert.True(t, stats.IsNoData(stats.AggregateOr([]float64{}, kind)))
		})
	}
}

func TestAggregateConstant(t *testing.T) {
	values := []float64{22.5, 22.5, 22.5, 22.5}

	for _, kind := range []stats.Kind{stats.Median, stats.Mean} {
		assert.InDelta(t, 22.5, stats.AggregateOr(values, kind), 1e-9, kind.String())
	}
}

func TestWithoutNoData(t *testing.T) {
	values := []float64{1, stats.NoData, 3}

	assert.Equal(t, []float64{1, 3}, stats.WithoutNoData(values))
	assert.Empty(t, stats.WithoutNoData([]float64{stats.NoData}))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want stats.Kind
		ok   bool
	}{
		{"m", stats.Median, true},
		{"a", stats.Mean, true},
		{"Median", stats.Median, true},
		{"average", stats.Mean, true},
		{"x", stats.Median, false},
		{"", stats.Median, false},
	}

	for _, tt := range tests {
		got, ok := stats.ParseKind(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "median", stats.Median.Label())
	assert.Equal(t, "average", stats.Mean.Label())
}
