package core

import "math"

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsFinitePositive reports whether x is finite and > 0.
func IsFinitePositive(x float64) bool {
	return IsFinite(x) && x > 0
}

// FirstNonFinite returns the index of the first NaN or Inf in buf, or -1.
func FirstNonFinite(buf []float64) int {
	for i, v := range buf {
		if !IsFinite(v) {
			return i
		}
	}

	return -1
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
