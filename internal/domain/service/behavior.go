package service

import "encoding/json"

// Behavioral component keys as they appear in the breakdown. The derived
// mode reports underutilization, diversity, consistency, and growth; the
// declarative mode reports dormancy, optimal utilization, diversity, and
// reliability.
const (
	ComponentUnderutilization   = "underutilization_penalty"
	ComponentDiversity          = "diversity_adjustment"
	ComponentConsistency        = "consistency_adjustment"
	ComponentGrowth             = "growth_adjustment"
	ComponentDormancy           = "dormancy_penalty"
	ComponentOptimalUtilization = "optimal_utilization_bonus"
	ComponentReliability        = "reliability_adjustment"
)

// BehavioralResult carries the clamped composite multiplier plus each
// sub-adjustment individually.
type BehavioralResult struct {
	Multiplier float64
	Components map[string]float64
}

// MarshalJSON flattens the sub-adjustments alongside the total multiplier,
// which is how downstream consumers read the breakdown.
func (r BehavioralResult) MarshalJSON() ([]byte, error) {
	flat := make(map[string]float64, len(r.Components)+1)
	for name, m := range r.Components {
		flat[name] = m
	}
	flat["total_multiplier"] = r.Multiplier
	return json.Marshal(flat)
}

// adjustBehavior computes the mode's four sub-multipliers in a fixed order,
// multiplies them, rounds to 4 decimals, and clamps into the policy's
// multiplier envelope. The fixed order keeps the float product reproducible.
func adjustBehavior(f CreditFacts, p Policy) BehavioralResult {
	b := p.Behavior
	components := make(map[string]float64, 4)
	multiplier := 1.0
	record := func(name string, m float64) {
		components[name] = m
		multiplier *= m
	}

	switch p.Mode {
	case ModeDeclarative:
		record(ComponentDormancy, firstMatchPenalty(f, b.Dormancy))
		record(ComponentOptimalUtilization, optimalUtilizationBonus(f, b))
		record(ComponentDiversity,
			tieredMultiplier(float64(productTypeCount(f)), b.DiversityBonuses, b.DiversityPenaltyBelow, b.DiversityPenalty))
		record(ComponentReliability,
			tieredMultiplier(f.onTimeRatio(), b.ConsistencyBonuses, b.ConsistencyPenaltyBelow, b.ConsistencyPenalty))
	default:
		record(ComponentUnderutilization, firstMatchPenalty(f, b.Underutilization))
		record(ComponentDiversity,
			tieredMultiplier(diversityScore(f), b.DiversityBonuses, b.DiversityPenaltyBelow, b.DiversityPenalty))
		record(ComponentConsistency,
			tieredMultiplier(consistencyScore(f), b.ConsistencyBonuses, b.ConsistencyPenaltyBelow, b.ConsistencyPenalty))
		record(ComponentGrowth, growthAdjustment(f, b))
	}

	multiplier = roundTo(multiplier, 4)
	if multiplier < b.MinMultiplier {
		multiplier = b.MinMultiplier
	}
	if multiplier > b.MaxMultiplier {
		multiplier = b.MaxMultiplier
	}

	return BehavioralResult{Multiplier: multiplier, Components: components}
}

// firstMatchPenalty walks the penalty tiers in order and applies the first
// whose ratio and limit conditions both hold.
func firstMatchPenalty(f CreditFacts, tiers []penaltyTier) float64 {
	ratio := f.utilizationRatio()
	for _, tier := range tiers {
		if ratio < tier.BelowRatio && f.TotalCreditLimit > tier.AboveLimit {
			return tier.Multiplier
		}
	}
	return 1.0
}

// optimalUtilizationBonus rewards utilization inside the policy's sweet spot.
func optimalUtilizationBonus(f CreditFacts, b BehaviorPolicy) float64 {
	ratio := f.utilizationRatio()
	if ratio >= b.OptimalUtilizationMin && ratio <= b.OptimalUtilizationMax {
		return b.OptimalUtilizationBonus
	}
	return 1.0
}

// tieredMultiplier returns the first bonus whose threshold the signal
// reaches, the penalty when the signal is below the penalty line, and 1.0
// in between.
func tieredMultiplier(value float64, bonuses []bonusTier, penaltyBelow, penalty float64) float64 {
	for _, tier := range bonuses {
		if value >= tier.AtLeast {
			return tier.Multiplier
		}
	}
	if value < penaltyBelow {
		return penalty
	}
	return 1.0
}

// diversityScore grades the breadth of active products on a 0-100 scale:
// 25 for credit cards, 15 per distinct loan type, 20 for bank accounts.
func diversityScore(f CreditFacts) float64 {
	score := 0.0
	if f.HasCreditCards {
		score += 25
	}
	score += 15 * float64(f.ActiveLoanTypeCount)
	if f.HasBankAccounts {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}

// consistencyScore grades recent on-time behavior on a 0-100 scale. Fewer
// than 3 recent payments is too thin a signal and pins the score at the
// neutral 50.
func consistencyScore(f CreditFacts) float64 {
	if f.RecentPaymentsTotal < 3 {
		return 50.0
	}
	return float64(f.RecentPaymentsOnTime) / float64(f.RecentPaymentsTotal) * 100
}

// growthScore grades year-over-year credit limit growth on a 0-100 scale.
// Moderate growth scores best; stagnation, shrinkage, and jumps score low.
func growthScore(f CreditFacts) float64 {
	if f.CardLimitOneYearAgo <= 0 {
		return 60.0
	}
	rate := (f.TotalCreditLimit - f.CardLimitOneYearAgo) / f.CardLimitOneYearAgo
	switch {
	case rate >= 0.10 && rate <= 0.50:
		return 85.0
	case (rate >= 0.05 && rate < 0.10) || (rate > 0.50 && rate <= 0.80):
		return 70.0
	default:
		return 50.0
	}
}

// growthAdjustment converts the growth score into a multiplier.
func growthAdjustment(f CreditFacts, b BehaviorPolicy) float64 {
	g := growthScore(f)
	switch {
	case g >= b.GrowthOptimalMin && g <= b.GrowthOptimalMax:
		return b.GrowthOptimalBonus
	case g > b.GrowthExtremeHigh || g < b.GrowthExtremeLow:
		return b.GrowthExtremePenalty
	default:
		return 1.0
	}
}

// productTypeCount counts the distinct product types a declarative profile
// asserts.
func productTypeCount(f CreditFacts) int {
	count := 0
	for _, has := range [5]bool{
		f.HasCreditCards,
		f.HasHomeLoan,
		f.HasCarLoan,
		f.HasPersonalLoan,
		f.HasBankAccounts,
	} {
		if has {
			count++
		}
	}
	return count
}
