package service

import "math"

// roundTo rounds half away from zero to the given number of decimals. Every
// rounding step in the pipeline goes through here so that score reports are
// reproducible digit for digit.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
