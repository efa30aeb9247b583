// Package stats reduces a sequence of samples to a single value.
package stats

import (
	"errors"
	"math"
	"slices"
	"strings"
)

// Kind selects the reduction applied to a sequence of samples.
type Kind int

const (
	Median Kind = iota
	Mean
)

// ErrEmptyInput signals that there was nothing to aggregate.
var ErrEmptyInput = errors.New("no samples to aggregate")

// NoData is the sentinel recorded in place of an aggregate when a window was empty.
var NoData = math.NaN()

// IsNoData reports whether v is the NoData sentinel.
func IsNoData(v float64) bool {
	return math.IsNaN(v)
}

// ParseKind maps the command line short forms ("m", "a") and the long names to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "median":
		return Median, true
	case "a", "mean", "average":
		return Mean, true
	default:
		return Median, false
	}
}

// Label is the word used for k in human readable output.
func (k Kind) Label() string {
	if k == Mean {
		return "average"
	}

	return "median"
}

func (k Kind) String() string {
	if k == Mean {
		return "mean"
	}

	return "median"
}

// Aggregate reduces values according to kind. The input is not modified.
func Aggregate(values []float64, kind Kind) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	if kind == Mean {
		return mean(values), nil
	}

	return median(values), nil
}

// AggregateOr is Aggregate with ErrEmptyInput mapped to NoData.
func AggregateOr(values []float64, kind Kind) float64 {
	v, err := Aggregate(values, kind)
	if err != nil {
		return NoData
	}

	return v
}

// WithoutNoData returns the values that are not the NoData sentinel.
func WithoutNoData(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !IsNoData(v) {
			out = append(out, v)
		}
	}

	return out
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
