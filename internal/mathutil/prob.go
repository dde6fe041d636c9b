package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Ratio returns num/den. ok is false when den is zero, in which case the
// caller has no update signal and should keep its previous value.
func Ratio(num, den float64) (v float64, ok bool) {
	if den == 0 {
		return 0, false
	}
	return num / den, true
}

// Sum returns the sum of v, or 0 for an empty slice.
func Sum(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Sum(v)
}

// Clamp01 limits p to [0, 1]. Rounding in long sums can push a ratio a few
// ulps above 1.
func Clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// MaxAbsDiff tracks the largest absolute difference observed.
type MaxAbsDiff struct {
	max float64
}

// Observe records |a-b|.
func (m *MaxAbsDiff) Observe(a, b float64) {
	if d := math.Abs(a - b); d > m.max {
		m.max = d
	}
}

// Value returns the largest difference seen so far (0 if none).
func (m *MaxAbsDiff) Value() float64 { return m.max }
