package service

// DynamicRange is the adaptive score window one calculation maps into.
// Thicker credit files widen the window symmetrically around the base range;
// thin files narrow it. Floor and ceiling bound the expansion.
type DynamicRange struct {
	MinScore        int     `json:"min_score"`
	MaxScore        int     `json:"max_score"`
	RangeMultiplier float64 `json:"range_multiplier"`
	RangeWidth      int     `json:"range_width"`
}

// calculateRange sizes the score window from credit age, exposure, and, in
// the derived mode, product diversity. Each signal adds its increment to the
// range multiplier; the base window then grows or shrinks by half the
// expansion on each side, truncated to whole points.
func calculateRange(f CreditFacts, p Policy) DynamicRange {
	r := p.Range
	multiplier := 1.0

	years := 0.0
	if f.HasHistoryDates {
		years = f.HistoryYears
	}
	switch {
	case years >= r.MatureYears:
		multiplier += r.MatureBoost
	case years >= r.MidYears:
		multiplier += r.MidBoost
	case years < r.NewYears:
		multiplier += r.NewPenalty
	}

	switch {
	case f.TotalCreditLimit > r.HighExposure:
		multiplier += r.HighExposureBoost
	case f.TotalCreditLimit > r.MidExposure:
		multiplier += r.MidExposureBoost
	case f.TotalCreditLimit < r.LowExposure:
		multiplier += r.LowExposurePenalty
	}

	if r.DiversityEnabled {
		diversity := diversityScore(f)
		switch {
		case diversity >= r.HighDiversity:
			multiplier += r.HighDiversityBoost
		case diversity < r.LowDiversity:
			multiplier += r.LowDiversityPenalty
		}
	}

	expansion := float64(r.BaseMax-r.BaseMin) * (multiplier - 1)

	minScore := int(float64(r.BaseMin) - expansion/2)
	if minScore < r.Floor {
		minScore = r.Floor
	}
	maxScore := int(float64(r.BaseMax) + expansion/2)
	if maxScore > r.Ceiling {
		maxScore = r.Ceiling
	}

	return DynamicRange{
		MinScore:        minScore,
		MaxScore:        maxScore,
		RangeMultiplier: roundTo(multiplier, 3),
		RangeWidth:      maxScore - minScore,
	}
}
