package common

import "math"

// Epsilon is the tolerance used when deciding whether a position moved
// during a simulation step.
const Epsilon = 1e-4

func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// EqualWithinEpsilon reports whether a and b differ by less than Epsilon.
func EqualWithinEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

