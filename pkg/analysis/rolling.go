package analysis

import "math"

// DefaultRollingWindow is the trailing window used for smoothed new cases.
const DefaultRollingWindow = 7

// RollingMean computes a trailing mean over the given window. The window
// shrinks at the start of the series (minimum one observation) instead of
// padding with NaN, so the first value equals the raw first value.
//
// NaNs inside a window are skipped; a window with no non-NaN observation
// yields NaN.
func RollingMean(vals []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	res := make([]float64, len(vals))
	for i := range vals {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		var sum float64
		var n int
		for j := lo; j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			sum += vals[j]
			n++
		}
		if n == 0 {
			res[i] = math.NaN()
			continue
		}
		res[i] = sum / float64(n)
	}
	return res
}
