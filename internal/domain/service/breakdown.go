package service

// FactorContribution is one factor's row in the breakdown. The weighted
// contribution is the rounded product of raw score and fractional weight;
// the contribution percentage is its share of the adjusted total.
type FactorContribution struct {
	WeightPercentage       float64 `json:"weight_percentage"`
	RawScore               float64 `json:"raw_score"`
	WeightedContribution   float64 `json:"weighted_contribution"`
	ContributionPercentage float64 `json:"contribution_percentage"`
	Rating                 string  `json:"score_rating"`
}

// Summary carries the headline numbers of one calculation. The improvement
// potential is the headroom between the base total and a perfect 100.
type Summary struct {
	BaseTotalScore       float64 `json:"base_total_score"`
	AdjustedTotalScore   float64 `json:"adjusted_total_score"`
	ImprovementPotential float64 `json:"improvement_potential"`
	ScoreRangeWidth      int     `json:"score_range_width"`
}

// Breakdown is the full auditable result of one calculation: the final and
// pre-adjustment scores on the dynamic range, the normalized weights as
// percentages, the behavioral adjustments, and one contribution row per
// factor.
type Breakdown struct {
	FinalScore    int                           `json:"final_cibil_score"`
	BaseScore     int                           `json:"base_cibil_score"`
	DynamicRange  DynamicRange                  `json:"dynamic_range"`
	CustomWeights map[Factor]float64            `json:"custom_weights"`
	Behavioral    BehavioralResult              `json:"behavioral_adjustments"`
	Factors       map[Factor]FactorContribution `json:"score_factors"`
	Summary       Summary                       `json:"summary"`
}
