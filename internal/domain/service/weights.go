package service

import (
	"fmt"
	"math"
)

// Factor identifies one of the five scored credit factors.
type Factor string

const (
	FactorPaymentHistory      Factor = "payment_history"
	FactorCreditUtilization   Factor = "credit_utilization"
	FactorCreditHistoryLength Factor = "credit_history_length"
	FactorCreditMix           Factor = "credit_mix"
	FactorNewCredit           Factor = "new_credit"
)

// Factors lists the five factors in canonical order. Every pipeline stage
// that iterates factors does so in this order so that float accumulation is
// reproducible.
var Factors = [5]Factor{
	FactorPaymentHistory,
	FactorCreditUtilization,
	FactorCreditHistoryLength,
	FactorCreditMix,
	FactorNewCredit,
}

// Weights maps each factor to its normalized fractional weight.
type Weights map[Factor]float64

// weightSumTolerance bounds the float drift accepted before weights are
// rescaled to sum to 1.
const weightSumTolerance = 1e-9

// NormalizeWeights converts raw factor weights into fractions summing to 1.
// Values above 1 are read as percentages and divided by 100, so percentage
// and fractional inputs may be mixed. Unknown factor names are dropped.
// Absent factors take the policy's default weight; with no defaults an
// absent factor is an error. A total weight of zero cannot be rescaled and
// is an error.
func NormalizeWeights(raw map[Factor]float64, p Policy) (Weights, error) {
	fractions := make(Weights, len(Factors))
	for _, factor := range Factors {
		w, ok := raw[factor]
		if !ok {
			if p.DefaultWeights == nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingWeightFactor, factor)
			}
			w = p.DefaultWeights[factor]
		}
		if w > 1 {
			w /= 100
		}
		fractions[factor] = w
	}

	total := 0.0
	for _, factor := range Factors {
		total += fractions[factor]
	}
	if total <= weightSumTolerance {
		return nil, ErrZeroTotalWeight
	}
	if math.Abs(total-1) > weightSumTolerance {
		for _, factor := range Factors {
			fractions[factor] /= total
		}
	}
	return fractions, nil
}
