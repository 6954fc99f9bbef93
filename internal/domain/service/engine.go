// Package service implements the scoring engine: weight normalization, five
// factor scorers, a behavioral multiplier, dynamic range sizing, and the
// nonlinear conversion onto the CIBIL scale. The engine is a pure function
// of its inputs; equal inputs always produce the identical breakdown.
// Persistence, transport, and history aggregation live in outer layers.
package service

import (
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// Engine runs the scoring pipeline for one policy. It is stateless and safe
// for concurrent use.
type Engine struct {
	policy Policy
}

// NewEngine creates an engine bound to the given policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the engine's constant tables.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Score runs the full pipeline over one fact snapshot. Weights may be nil or
// partial in a mode with defaults; values above 1 are read as percentages.
// The base score converts the weighted factor total onto the dynamic range,
// the final score converts the behaviorally adjusted total.
func (e *Engine) Score(facts CreditFacts, weights map[Factor]float64) (*Breakdown, error) {
	normalized, err := NormalizeWeights(weights, e.policy)
	if err != nil {
		return nil, err
	}

	raw := map[Factor]float64{
		FactorPaymentHistory:      paymentHistoryScore(facts, e.policy),
		FactorCreditUtilization:   utilizationScore(facts, e.policy),
		FactorCreditHistoryLength: historyLengthScore(facts, e.policy),
		FactorCreditMix:           creditMixScore(facts, e.policy),
		FactorNewCredit:           newCreditScore(facts, e.policy),
	}

	// The base total sums the already-rounded contributions, in canonical
	// factor order, so the reported rows always add up to it exactly.
	contributions := make(map[Factor]FactorContribution, len(Factors))
	baseTotal := 0.0
	for _, factor := range Factors {
		weighted := roundTo(raw[factor]*normalized[factor], 2)
		contributions[factor] = FactorContribution{
			WeightPercentage:     roundTo(normalized[factor]*100, 1),
			RawScore:             roundTo(raw[factor], 2),
			WeightedContribution: weighted,
			Rating:               valueobject.RatingFromScore(raw[factor]).String(),
		}
		baseTotal += weighted
	}

	behavior := adjustBehavior(facts, e.policy)
	adjustedTotal := baseTotal * behavior.Multiplier

	for _, factor := range Factors {
		c := contributions[factor]
		if adjustedTotal > 0 {
			c.ContributionPercentage = roundTo(c.WeightedContribution/adjustedTotal*100, 1)
		}
		contributions[factor] = c
	}

	rng := calculateRange(facts, e.policy)

	weightPercentages := make(map[Factor]float64, len(normalized))
	for factor, w := range normalized {
		weightPercentages[factor] = roundTo(w*100, 1)
	}

	return &Breakdown{
		FinalScore:    convertToScale(adjustedTotal, rng, e.policy),
		BaseScore:     convertToScale(baseTotal, rng, e.policy),
		DynamicRange:  rng,
		CustomWeights: weightPercentages,
		Behavioral:    behavior,
		Factors:       contributions,
		Summary: Summary{
			BaseTotalScore:       roundTo(baseTotal, 2),
			AdjustedTotalScore:   roundTo(adjustedTotal, 2),
			ImprovementPotential: roundTo(100-baseTotal, 2),
			ScoreRangeWidth:      rng.RangeWidth,
		},
	}, nil
}
