package service

// Mode names the fact-sourcing convention a Policy serves. The pipeline is
// identical in both modes; only the constant tables differ.
type Mode string

const (
	// ModeDerived scores facts aggregated from a stored credit history.
	ModeDerived Mode = "derived"

	// ModeDeclarative scores facts asserted directly by the caller.
	ModeDeclarative Mode = "declarative"
)

// ratioBucket maps a utilization ratio ceiling (inclusive) to a score.
// Buckets are checked in table order, first match wins.
type ratioBucket struct {
	UpTo  float64
	Score float64
}

// yearsBucket maps a minimum credit age in years (inclusive) to a score.
type yearsBucket struct {
	AtLeast float64
	Score   float64
}

// countBucket maps a maximum account count (inclusive) to a score.
type countBucket struct {
	UpTo  int
	Score float64
}

// penaltyTier applies a multiplier when the utilization ratio is below
// BelowRatio and the credit limit above AboveLimit. First match wins.
type penaltyTier struct {
	BelowRatio float64
	AboveLimit float64
	Multiplier float64
}

// bonusTier applies a multiplier when a behavioral signal reaches AtLeast.
type bonusTier struct {
	AtLeast    float64
	Multiplier float64
}

// mixPoints holds the additive credit-mix points per product family.
type mixPoints struct {
	Cards        float64
	BankAccounts float64
	HomeLoan     float64
	CarLoan      float64
	PersonalLoan float64
}

// BehaviorPolicy holds one mode's behavioral adjustment constants. The
// underutilization, consistency, and growth signals are read in the derived
// mode; dormancy, optimal utilization, and reliability in the declarative
// mode. Diversity applies to both, fed by a mode-specific signal.
type BehaviorPolicy struct {
	Underutilization []penaltyTier
	Dormancy         []penaltyTier

	OptimalUtilizationMin   float64
	OptimalUtilizationMax   float64
	OptimalUtilizationBonus float64

	DiversityBonuses      []bonusTier
	DiversityPenaltyBelow float64
	DiversityPenalty      float64

	ConsistencyBonuses      []bonusTier
	ConsistencyPenaltyBelow float64
	ConsistencyPenalty      float64

	GrowthOptimalMin     float64
	GrowthOptimalMax     float64
	GrowthOptimalBonus   float64
	GrowthExtremeLow     float64
	GrowthExtremeHigh    float64
	GrowthExtremePenalty float64

	// The composite multiplier is rounded to 4 decimals and then clamped
	// into [MinMultiplier, MaxMultiplier].
	MinMultiplier float64
	MaxMultiplier float64
}

// RangePolicy holds one mode's dynamic score range constants. Adjustments
// are additive increments to the range multiplier; penalties are negative.
type RangePolicy struct {
	BaseMin int
	BaseMax int
	Floor   int
	Ceiling int

	MatureYears float64
	MatureBoost float64
	MidYears    float64
	MidBoost    float64
	NewYears    float64
	NewPenalty  float64

	HighExposure       float64
	HighExposureBoost  float64
	MidExposure        float64
	MidExposureBoost   float64
	LowExposure        float64
	LowExposurePenalty float64

	DiversityEnabled    bool
	HighDiversity       float64
	HighDiversityBoost  float64
	LowDiversity        float64
	LowDiversityPenalty float64
}

// ScalePolicy holds one mode's nonlinear scale conversion constants: the
// sigmoid steepness and the exponents applied below and at-or-above the
// curve midpoint.
type ScalePolicy struct {
	Steepness float64
	PowerLow  float64
	PowerHigh float64
}

// Policy parametrizes the scoring pipeline with one mode's constant tables.
// DerivedPolicy and DeclarativePolicy are the only two configurations; every
// threshold below is load-bearing for score reproducibility, so changes to
// either table are breaking.
type Policy struct {
	Mode Mode

	// DefaultWeights fill factors absent from a caller's weight map. Nil
	// means every factor is required and an absent one is an error.
	DefaultWeights map[Factor]float64

	// Payment history.
	NoPaymentScore float64
	LatePenalty    float64
	MissedPenalty  float64

	// Credit utilization.
	NoLimitScore       float64
	UtilizationBuckets []ratioBucket
	UtilizationFloor   float64

	// Credit history length.
	NoHistoryScore float64
	HistoryBuckets []yearsBucket
	HistoryFloor   float64

	// Credit mix, capped at 100.
	Mix mixPoints

	// New credit inquiries.
	NewCreditBuckets []countBucket
	NewCreditFloor   float64

	Behavior BehaviorPolicy
	Range    RangePolicy
	Scale    ScalePolicy
}

// DerivedPolicy returns the constant tables for scoring a stored credit
// history snapshot.
func DerivedPolicy() Policy {
	return Policy{
		Mode: ModeDerived,

		DefaultWeights: map[Factor]float64{
			FactorPaymentHistory:      0.35,
			FactorCreditUtilization:   0.30,
			FactorCreditHistoryLength: 0.15,
			FactorCreditMix:           0.10,
			FactorNewCredit:           0.10,
		},

		NoPaymentScore: 50.0,
		LatePenalty:    30.0,
		MissedPenalty:  50.0,

		NoLimitScore: 70.0,
		UtilizationBuckets: []ratioBucket{
			{UpTo: 0.05, Score: 95.0},
			{UpTo: 0.10, Score: 100.0},
			{UpTo: 0.30, Score: 85.0},
			{UpTo: 0.50, Score: 65.0},
			{UpTo: 0.70, Score: 45.0},
			{UpTo: 0.90, Score: 25.0},
		},
		UtilizationFloor: 10.0,

		NoHistoryScore: 30.0,
		HistoryBuckets: []yearsBucket{
			{AtLeast: 10, Score: 100.0},
			{AtLeast: 7, Score: 85.0},
			{AtLeast: 5, Score: 70.0},
			{AtLeast: 3, Score: 55.0},
			{AtLeast: 1, Score: 40.0},
		},
		HistoryFloor: 25.0,

		Mix: mixPoints{
			Cards:        30,
			BankAccounts: 20,
			HomeLoan:     25,
			CarLoan:      15,
			PersonalLoan: 10,
		},

		NewCreditBuckets: []countBucket{
			{UpTo: 0, Score: 100.0},
			{UpTo: 1, Score: 80.0},
			{UpTo: 2, Score: 60.0},
			{UpTo: 4, Score: 40.0},
		},
		NewCreditFloor: 20.0,

		Behavior: BehaviorPolicy{
			Underutilization: []penaltyTier{
				{BelowRatio: 0.05, AboveLimit: 100000, Multiplier: 0.85},
				{BelowRatio: 0.02, AboveLimit: 50000, Multiplier: 0.92},
				{BelowRatio: 0.01, AboveLimit: 25000, Multiplier: 0.95},
			},

			DiversityBonuses: []bonusTier{
				{AtLeast: 80, Multiplier: 1.05},
				{AtLeast: 60, Multiplier: 1.02},
			},
			DiversityPenaltyBelow: 30,
			DiversityPenalty:      0.95,

			ConsistencyBonuses: []bonusTier{
				{AtLeast: 90, Multiplier: 1.03},
				{AtLeast: 75, Multiplier: 1.01},
			},
			ConsistencyPenaltyBelow: 50,
			ConsistencyPenalty:      0.97,

			GrowthOptimalMin:     70,
			GrowthOptimalMax:     85,
			GrowthOptimalBonus:   1.02,
			GrowthExtremeLow:     30,
			GrowthExtremeHigh:    90,
			GrowthExtremePenalty: 0.98,

			MinMultiplier: 0.8,
			MaxMultiplier: 1.2,
		},

		Range: RangePolicy{
			BaseMin: 200,
			BaseMax: 1000,
			Floor:   150,
			Ceiling: 1200,

			MatureYears: 10,
			MatureBoost: 0.2,
			MidYears:    5,
			MidBoost:    0.1,
			NewYears:    1,
			NewPenalty:  -0.1,

			HighExposure:       500000,
			HighExposureBoost:  0.15,
			MidExposure:        100000,
			MidExposureBoost:   0.05,
			LowExposure:        25000,
			LowExposurePenalty: -0.05,

			DiversityEnabled:    true,
			HighDiversity:       80,
			HighDiversityBoost:  0.1,
			LowDiversity:        40,
			LowDiversityPenalty: -0.05,
		},

		Scale: ScalePolicy{
			Steepness: 8.0,
			PowerLow:  1.2,
			PowerHigh: 0.9,
		},
	}
}

// DeclarativePolicy returns the constant tables for scoring a caller-asserted
// financial profile. There are no weight defaults: a profile calculation must
// state all five weights.
func DeclarativePolicy() Policy {
	return Policy{
		Mode: ModeDeclarative,

		NoPaymentScore: 0.0,
		LatePenalty:    30.0,
		MissedPenalty:  60.0,

		NoLimitScore: 0.0,
		UtilizationBuckets: []ratioBucket{
			{UpTo: 0.01, Score: 90.0},
			{UpTo: 0.10, Score: 100.0},
			{UpTo: 0.30, Score: 85.0},
			{UpTo: 0.50, Score: 65.0},
			{UpTo: 0.70, Score: 40.0},
			{UpTo: 0.90, Score: 20.0},
		},
		UtilizationFloor: 5.0,

		NoHistoryScore: 5.0,
		HistoryBuckets: []yearsBucket{
			{AtLeast: 15, Score: 100.0},
			{AtLeast: 10, Score: 90.0},
			{AtLeast: 7, Score: 80.0},
			{AtLeast: 5, Score: 65.0},
			{AtLeast: 3, Score: 50.0},
			{AtLeast: 1, Score: 35.0},
			{AtLeast: 0.5, Score: 20.0},
		},
		HistoryFloor: 5.0,

		Mix: mixPoints{
			Cards:        25,
			BankAccounts: 20,
			HomeLoan:     30,
			CarLoan:      15,
			PersonalLoan: 10,
		},

		NewCreditBuckets: []countBucket{
			{UpTo: 0, Score: 100.0},
			{UpTo: 1, Score: 80.0},
			{UpTo: 2, Score: 60.0},
			{UpTo: 4, Score: 35.0},
		},
		NewCreditFloor: 10.0,

		Behavior: BehaviorPolicy{
			Dormancy: []penaltyTier{
				{BelowRatio: 0.01, AboveLimit: 50000, Multiplier: 0.95},
			},

			OptimalUtilizationMin:   0.05,
			OptimalUtilizationMax:   0.15,
			OptimalUtilizationBonus: 1.03,

			// Diversity is the count of distinct product types held.
			DiversityBonuses: []bonusTier{
				{AtLeast: 4, Multiplier: 1.04},
				{AtLeast: 3, Multiplier: 1.02},
			},
			DiversityPenaltyBelow: 2,
			DiversityPenalty:      0.96,

			// Reliability reads the overall on-time ratio.
			ConsistencyBonuses: []bonusTier{
				{AtLeast: 0.95, Multiplier: 1.05},
				{AtLeast: 0.85, Multiplier: 1.02},
			},
			ConsistencyPenaltyBelow: 0,
			ConsistencyPenalty:      1.0,

			MinMultiplier: 0.8,
			MaxMultiplier: 1.2,
		},

		Range: RangePolicy{
			BaseMin: 300,
			BaseMax: 900,
			Floor:   250,
			Ceiling: 950,

			MatureYears: 10,
			MatureBoost: 0.15,
			MidYears:    5,
			MidBoost:    0.08,
			NewYears:    1,
			NewPenalty:  -0.1,

			HighExposure:       500000,
			HighExposureBoost:  0.12,
			MidExposure:        100000,
			MidExposureBoost:   0.06,
			LowExposure:        25000,
			LowExposurePenalty: -0.08,
		},

		Scale: ScalePolicy{
			Steepness: 6.0,
			PowerLow:  1.1,
			PowerHigh: 0.95,
		},
	}
}
