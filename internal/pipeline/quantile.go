package pipeline

import (
	"math"
	"sort"
)

// quantile estimates the p-th quantile (0 <= p <= 1) of values using
// linear interpolation between order statistics (the estimator used by
// the reference dataset tooling). values must be non-empty; it is not
// modified.
func quantile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// median is the 0.5 quantile.
func median(values []float64) float64 {
	return quantile(values, 0.5)
}
