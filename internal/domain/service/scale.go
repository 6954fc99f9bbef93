package service

import "math"

// convertToScale maps a 0-100 composite score onto the dynamic range through
// a sigmoid curve, spreading the mid band and compressing the extremes. A
// power correction is applied below and at-or-above the curve midpoint; the
// midpoint test reads the normalized input, not the sigmoid output. The
// result is truncated to a whole score and pinned inside the range.
func convertToScale(score float64, rng DynamicRange, p Policy) int {
	normalized := clampFloat(score, 0, 100) / 100

	sigmoid := 1 / (1 + math.Exp(-p.Scale.Steepness*(normalized-0.5)))

	var positioned float64
	if normalized < 0.5 {
		positioned = math.Pow(sigmoid, p.Scale.PowerLow)
	} else {
		positioned = math.Pow(sigmoid, p.Scale.PowerHigh)
	}

	final := int(float64(rng.MinScore) + positioned*float64(rng.MaxScore-rng.MinScore))
	if final < rng.MinScore {
		final = rng.MinScore
	}
	if final > rng.MaxScore {
		final = rng.MaxScore
	}
	return final
}
