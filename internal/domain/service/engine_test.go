package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cibil-service/internal/domain/service"
)

var standardWeights = map[service.Factor]float64{
	service.FactorPaymentHistory:      35,
	service.FactorCreditUtilization:   30,
	service.FactorCreditHistoryLength: 15,
	service.FactorCreditMix:           10,
	service.FactorNewCredit:           10,
}

func TestEngine_Score_NeutralDerivedBaseline(t *testing.T) {
	// A customer with no history at all: every factor scores its neutral
	// policy. 50*0.35 + 70*0.30 + 30*0.15 + 0*0.10 + 100*0.10 = 53.0.
	engine := service.NewEngine(service.DerivedPolicy())

	breakdown, err := engine.Score(service.CreditFacts{}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, breakdown.Factors[service.FactorPaymentHistory].RawScore, 1e-9)
	assert.InDelta(t, 70.0, breakdown.Factors[service.FactorCreditUtilization].RawScore, 1e-9)
	assert.InDelta(t, 30.0, breakdown.Factors[service.FactorCreditHistoryLength].RawScore, 1e-9)
	assert.InDelta(t, 0.0, breakdown.Factors[service.FactorCreditMix].RawScore, 1e-9)
	assert.InDelta(t, 100.0, breakdown.Factors[service.FactorNewCredit].RawScore, 1e-9)

	assert.InDelta(t, 53.0, breakdown.Summary.BaseTotalScore, 1e-9)
	assert.InDelta(t, 47.0, breakdown.Summary.ImprovementPotential, 1e-9)

	// Only the diversity penalty applies: 53.0 * 0.95 = 50.35.
	assert.InDelta(t, 0.95, breakdown.Behavioral.Multiplier, 1e-9)
	assert.InDelta(t, 50.35, breakdown.Summary.AdjustedTotalScore, 1e-9)

	// Thin file shrinks the range: 1.0 - 0.1 - 0.05 - 0.05 = 0.8.
	assert.InDelta(t, 0.8, breakdown.DynamicRange.RangeMultiplier, 1e-9)
	assert.Equal(t, breakdown.DynamicRange.MaxScore-breakdown.DynamicRange.MinScore, breakdown.DynamicRange.RangeWidth)
	assert.GreaterOrEqual(t, breakdown.DynamicRange.MinScore, 150)
	assert.LessOrEqual(t, breakdown.DynamicRange.MaxScore, 1200)
}

func TestEngine_Score_NeutralDeclarativeBaseline(t *testing.T) {
	// The declarative mode is harsher on an empty profile: zero for no
	// payments, zero for no limit, 5 below six months of history.
	// 0*0.35 + 0*0.30 + 5*0.15 + 0*0.10 + 100*0.10 = 10.75.
	profile, err := service.NewFinancialProfile(service.ProfileInput{
		TotalPayments:             intp(0),
		OnTimePayments:            intp(0),
		LatePayments:              intp(0),
		MissedPayments:            intp(0),
		TotalCreditLimit:          f64p(0),
		CurrentBalance:            f64p(0),
		CreditHistoryYears:        f64p(0),
		HasCreditCards:            boolp(false),
		HasHomeLoan:               boolp(false),
		HasCarLoan:                boolp(false),
		HasPersonalLoan:           boolp(false),
		HasBankAccounts:           boolp(false),
		RecentAccountsLast6Months: intp(0),
	})
	require.NoError(t, err)

	engine := service.NewEngine(service.DeclarativePolicy())
	breakdown, err := engine.Score(profile.Facts(), standardWeights)
	require.NoError(t, err)

	assert.InDelta(t, 10.75, breakdown.Summary.BaseTotalScore, 1e-9)

	// Only the single-product-type penalty applies: 10.75 * 0.96 = 10.32.
	assert.InDelta(t, 0.96, breakdown.Behavioral.Multiplier, 1e-9)
	assert.InDelta(t, 10.32, breakdown.Summary.AdjustedTotalScore, 1e-9)

	// No history and no exposure: 1.0 - 0.1 - 0.08 = 0.82.
	assert.InDelta(t, 0.82, breakdown.DynamicRange.RangeMultiplier, 1e-9)
	assert.GreaterOrEqual(t, breakdown.DynamicRange.MinScore, 250)
	assert.LessOrEqual(t, breakdown.DynamicRange.MaxScore, 950)
}

func TestEngine_Score_RangeExpansionPinnedToEnvelope(t *testing.T) {
	// 12 years of history (+0.15) and a 600000 limit (+0.12) give range
	// multiplier 1.27. Half of the 162-point expansion pushes past both
	// bounds, so the envelope pins the range to [250, 950].
	profile, err := service.NewFinancialProfile(service.ProfileInput{
		TotalPayments:             intp(40),
		OnTimePayments:            intp(40),
		LatePayments:              intp(0),
		MissedPayments:            intp(0),
		TotalCreditLimit:          f64p(600000),
		CurrentBalance:            f64p(60000),
		CreditHistoryYears:        f64p(12),
		HasCreditCards:            boolp(true),
		HasHomeLoan:               boolp(true),
		HasCarLoan:                boolp(false),
		HasPersonalLoan:           boolp(false),
		HasBankAccounts:           boolp(true),
		RecentAccountsLast6Months: intp(0),
	})
	require.NoError(t, err)

	engine := service.NewEngine(service.DeclarativePolicy())
	breakdown, err := engine.Score(profile.Facts(), standardWeights)
	require.NoError(t, err)

	assert.InDelta(t, 1.27, breakdown.DynamicRange.RangeMultiplier, 1e-9)
	assert.Equal(t, 250, breakdown.DynamicRange.MinScore)
	assert.Equal(t, 950, breakdown.DynamicRange.MaxScore)
	assert.Equal(t, 700, breakdown.DynamicRange.RangeWidth)
}

func TestEngine_Score_BehavioralComponentsDerived(t *testing.T) {
	facts := service.CreditFacts{
		TotalPayments:  60,
		OnTimePayments: 57,
		LatePayments:   3,

		HasCreditCards:   true,
		TotalCreditLimit: 120000,
		CurrentBalance:   18000,

		HasHistoryDates: true,
		HistoryYears:    7.4,

		HasBankAccounts:     true,
		HasHomeLoan:         true,
		HasCarLoan:          true,
		ActiveLoanTypeCount: 2,

		RecentPaymentsTotal:  10,
		RecentPaymentsOnTime: 10,

		CardLimitOneYearAgo: 100000,
	}

	engine := service.NewEngine(service.DerivedPolicy())
	breakdown, err := engine.Score(facts, nil)
	require.NoError(t, err)

	components := breakdown.Behavioral.Components
	// 15% utilization draws no underutilization penalty.
	assert.InDelta(t, 1.0, components[service.ComponentUnderutilization], 1e-9)
	// Diversity 25 + 15*2 + 20 = 75 lands in the 60..79 bonus band.
	assert.InDelta(t, 1.02, components[service.ComponentDiversity], 1e-9)
	// 10 of 10 recent payments on time.
	assert.InDelta(t, 1.03, components[service.ComponentConsistency], 1e-9)
	// Limit grew 100000 -> 120000, a 20% rate inside the optimal window.
	assert.InDelta(t, 1.02, components[service.ComponentGrowth], 1e-9)

	// 1.0 * 1.02 * 1.03 * 1.02 = 1.0716 after rounding.
	assert.InDelta(t, 1.0716, breakdown.Behavioral.Multiplier, 1e-9)
}

func TestEngine_Score_BehavioralComponentsDeclarative(t *testing.T) {
	profile, err := service.NewFinancialProfile(service.ProfileInput{
		TotalPayments:             intp(100),
		OnTimePayments:            intp(96),
		LatePayments:              intp(4),
		MissedPayments:            intp(0),
		TotalCreditLimit:          f64p(200000),
		CurrentBalance:            f64p(1000),
		CreditHistoryYears:        f64p(8),
		HasCreditCards:            boolp(true),
		HasHomeLoan:               boolp(true),
		HasCarLoan:                boolp(true),
		HasPersonalLoan:           boolp(true),
		HasBankAccounts:           boolp(true),
		RecentAccountsLast6Months: intp(0),
	})
	require.NoError(t, err)

	engine := service.NewEngine(service.DeclarativePolicy())
	breakdown, err := engine.Score(profile.Facts(), standardWeights)
	require.NoError(t, err)

	components := breakdown.Behavioral.Components
	// 0.5% utilization on a 200000 limit reads as dormancy.
	assert.InDelta(t, 0.95, components[service.ComponentDormancy], 1e-9)
	assert.InDelta(t, 1.0, components[service.ComponentOptimalUtilization], 1e-9)
	// All five product types held.
	assert.InDelta(t, 1.04, components[service.ComponentDiversity], 1e-9)
	// 96% on time.
	assert.InDelta(t, 1.05, components[service.ComponentReliability], 1e-9)

	// 0.95 * 1.0 * 1.04 * 1.05 = 1.0374 after rounding.
	assert.InDelta(t, 1.0374, breakdown.Behavioral.Multiplier, 1e-9)
}

func TestEngine_Score_MultiplierClampedAtFloor(t *testing.T) {
	// Underutilized wealthy card, single product type, poor recent
	// consistency: 0.85 * 0.95 * 0.97 = 0.783275, clamped up to 0.8.
	facts := service.CreditFacts{
		HasCreditCards:   true,
		TotalCreditLimit: 150000,
		CurrentBalance:   3000,

		RecentPaymentsTotal:  4,
		RecentPaymentsOnTime: 1,
	}

	engine := service.NewEngine(service.DerivedPolicy())
	breakdown, err := engine.Score(facts, nil)
	require.NoError(t, err)

	components := breakdown.Behavioral.Components
	assert.InDelta(t, 0.85, components[service.ComponentUnderutilization], 1e-9)
	assert.InDelta(t, 0.95, components[service.ComponentDiversity], 1e-9)
	assert.InDelta(t, 0.97, components[service.ComponentConsistency], 1e-9)
	assert.InDelta(t, 1.0, components[service.ComponentGrowth], 1e-9)

	assert.InDelta(t, 0.8, breakdown.Behavioral.Multiplier, 1e-12)
}

func TestEngine_Score_Deterministic(t *testing.T) {
	facts := service.CreditFacts{
		TotalPayments:        48,
		OnTimePayments:       40,
		LatePayments:         6,
		MissedPayments:       2,
		HasCreditCards:       true,
		TotalCreditLimit:     250000,
		CurrentBalance:       60000,
		HasHistoryDates:      true,
		HistoryYears:         7.4,
		HasBankAccounts:      true,
		HasHomeLoan:          true,
		ActiveLoanTypeCount:  1,
		RecentAccountCount:   2,
		RecentPaymentsTotal:  12,
		RecentPaymentsOnTime: 10,
		CardLimitOneYearAgo:  200000,
	}
	weights := map[service.Factor]float64{
		service.FactorPaymentHistory:      30,
		service.FactorCreditUtilization:   30,
		service.FactorCreditHistoryLength: 20,
		service.FactorCreditMix:           10,
		service.FactorNewCredit:           10,
	}

	engine := service.NewEngine(service.DerivedPolicy())

	first, err := engine.Score(facts, weights)
	require.NoError(t, err)
	second, err := engine.Score(facts, weights)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Score_ScoreStaysInsideRange(t *testing.T) {
	variants := []service.CreditFacts{
		{},
		{TotalPayments: 12, OnTimePayments: 6, LatePayments: 4, MissedPayments: 2, RecentAccountCount: 6},
		{
			TotalPayments: 30, OnTimePayments: 10, LatePayments: 10, MissedPayments: 10,
			HasCreditCards: true, TotalCreditLimit: 20000, CurrentBalance: 19000,
			HasHistoryDates: true, HistoryYears: 0.4, RecentAccountCount: 7,
		},
		{
			TotalPayments: 60, OnTimePayments: 58, LatePayments: 2,
			HasCreditCards: true, TotalCreditLimit: 800000, CurrentBalance: 40000,
			HasHistoryDates: true, HistoryYears: 14,
			HasBankAccounts: true, HasHomeLoan: true, ActiveLoanTypeCount: 1,
			RecentPaymentsTotal: 8, RecentPaymentsOnTime: 8, CardLimitOneYearAgo: 700000,
		},
		{
			HasCreditCards: true, TotalCreditLimit: 1000000, CurrentBalance: 5000,
			HasHistoryDates: true, HistoryYears: 20,
			HasBankAccounts: true, HasHomeLoan: true, HasCarLoan: true, HasPersonalLoan: true,
			ActiveLoanTypeCount: 3, RecentPaymentsTotal: 20, RecentPaymentsOnTime: 20,
		},
	}

	for _, policy := range []service.Policy{service.DerivedPolicy(), service.DeclarativePolicy()} {
		engine := service.NewEngine(policy)
		for i, facts := range variants {
			breakdown, err := engine.Score(facts, standardWeights)
			require.NoError(t, err, "mode %s variant %d", policy.Mode, i)

			rng := breakdown.DynamicRange
			assert.GreaterOrEqual(t, breakdown.FinalScore, rng.MinScore, "mode %s variant %d", policy.Mode, i)
			assert.LessOrEqual(t, breakdown.FinalScore, rng.MaxScore, "mode %s variant %d", policy.Mode, i)
			assert.GreaterOrEqual(t, breakdown.BaseScore, rng.MinScore, "mode %s variant %d", policy.Mode, i)
			assert.LessOrEqual(t, breakdown.BaseScore, rng.MaxScore, "mode %s variant %d", policy.Mode, i)

			assert.Equal(t, rng.MaxScore-rng.MinScore, rng.RangeWidth)
			assert.GreaterOrEqual(t, rng.MinScore, policy.Range.Floor)
			assert.LessOrEqual(t, rng.MaxScore, policy.Range.Ceiling)
			assert.Equal(t, rng.RangeWidth, breakdown.Summary.ScoreRangeWidth)
		}
	}
}

func TestEngine_Score_MoreOnTimePaymentsNeverScoreLower(t *testing.T) {
	engine := service.NewEngine(service.DerivedPolicy())

	previous := -1.0
	for onTime := 0; onTime <= 100; onTime += 10 {
		facts := service.CreditFacts{
			TotalPayments:  100,
			OnTimePayments: onTime,
			LatePayments:   100 - onTime,
		}
		breakdown, err := engine.Score(facts, nil)
		require.NoError(t, err)

		raw := breakdown.Factors[service.FactorPaymentHistory].RawScore
		assert.GreaterOrEqual(t, raw, previous, "on-time count %d", onTime)
		previous = raw
	}
}

func TestEngine_Score_HigherUtilizationNeverScoresBetterPastTenPercent(t *testing.T) {
	engine := service.NewEngine(service.DerivedPolicy())

	previous := 101.0
	for balance := 10000.0; balance <= 100000.0; balance += 10000.0 {
		facts := service.CreditFacts{
			HasCreditCards:   true,
			TotalCreditLimit: 100000,
			CurrentBalance:   balance,
		}
		breakdown, err := engine.Score(facts, nil)
		require.NoError(t, err)

		raw := breakdown.Factors[service.FactorCreditUtilization].RawScore
		assert.LessOrEqual(t, raw, previous, "balance %.0f", balance)
		previous = raw
	}
}

func TestEngine_Score_ContributionsAddUpToBaseTotal(t *testing.T) {
	facts := service.CreditFacts{
		TotalPayments:    50,
		OnTimePayments:   47,
		LatePayments:     3,
		HasCreditCards:   true,
		TotalCreditLimit: 300000,
		CurrentBalance:   45000,
		HasHistoryDates:  true,
		HistoryYears:     6,
		HasBankAccounts:  true,
	}

	engine := service.NewEngine(service.DerivedPolicy())
	breakdown, err := engine.Score(facts, standardWeights)
	require.NoError(t, err)

	sum := 0.0
	percentages := 0.0
	for _, factor := range service.Factors {
		row := breakdown.Factors[factor]
		sum += row.WeightedContribution
		percentages += row.ContributionPercentage
		assert.NotEmpty(t, row.Rating, "factor %s", factor)
	}
	assert.InDelta(t, breakdown.Summary.BaseTotalScore, sum, 1e-9)
	// Rounded shares drift from 100 by at most 0.05 per row.
	assert.InDelta(t, 100.0, percentages, 0.3)
}

func TestEngine_Score_ZeroAdjustedTotalReportsZeroShares(t *testing.T) {
	// All weight on a factor that scores zero: nothing to take shares of.
	facts := service.CreditFacts{
		TotalPayments:  10,
		LatePayments:   5,
		MissedPayments: 5,
	}
	weights := map[service.Factor]float64{
		service.FactorPaymentHistory:      100,
		service.FactorCreditUtilization:   0,
		service.FactorCreditHistoryLength: 0,
		service.FactorCreditMix:           0,
		service.FactorNewCredit:           0,
	}

	engine := service.NewEngine(service.DeclarativePolicy())
	breakdown, err := engine.Score(facts, weights)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, breakdown.Summary.AdjustedTotalScore, 1e-12)
	for _, factor := range service.Factors {
		assert.InDelta(t, 0.0, breakdown.Factors[factor].ContributionPercentage, 1e-12, "factor %s", factor)
	}
}

func TestEngine_Score_WeightsReportedAsPercentages(t *testing.T) {
	engine := service.NewEngine(service.DerivedPolicy())

	breakdown, err := engine.Score(service.CreditFacts{}, map[service.Factor]float64{
		service.FactorPaymentHistory:      35,
		service.FactorCreditUtilization:   25,
		service.FactorCreditHistoryLength: 15,
		service.FactorCreditMix:           15,
		service.FactorNewCredit:           10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 35.0, breakdown.CustomWeights[service.FactorPaymentHistory], 1e-9)
	assert.InDelta(t, 25.0, breakdown.CustomWeights[service.FactorCreditUtilization], 1e-9)
	assert.InDelta(t, 15.0, breakdown.CustomWeights[service.FactorCreditHistoryLength], 1e-9)
	assert.InDelta(t, 15.0, breakdown.CustomWeights[service.FactorCreditMix], 1e-9)
	assert.InDelta(t, 10.0, breakdown.CustomWeights[service.FactorNewCredit], 1e-9)

	assert.InDelta(t, 35.0, breakdown.Factors[service.FactorPaymentHistory].WeightPercentage, 1e-9)
}

func TestEngine_Score_RatingsFollowRawScores(t *testing.T) {
	facts := service.CreditFacts{
		TotalPayments:      100,
		OnTimePayments:     90,
		LatePayments:       8,
		MissedPayments:     2,
		HasCreditCards:     true,
		TotalCreditLimit:   100000,
		CurrentBalance:     8000,
		HasHistoryDates:    true,
		HistoryYears:       6,
		HasBankAccounts:    true,
		RecentAccountCount: 1,
	}

	engine := service.NewEngine(service.DeclarativePolicy())
	breakdown, err := engine.Score(facts, standardWeights)
	require.NoError(t, err)

	// 86.4, 100, 65, 45, 80.
	assert.Equal(t, "Very Good", breakdown.Factors[service.FactorPaymentHistory].Rating)
	assert.Equal(t, "Excellent", breakdown.Factors[service.FactorCreditUtilization].Rating)
	assert.Equal(t, "Fair", breakdown.Factors[service.FactorCreditHistoryLength].Rating)
	assert.Equal(t, "Poor", breakdown.Factors[service.FactorCreditMix].Rating)
	assert.Equal(t, "Very Good", breakdown.Factors[service.FactorNewCredit].Rating)
}

func TestEngine_Score_MultiplierDirectionCarriesToFinalScore(t *testing.T) {
	engine := service.NewEngine(service.DerivedPolicy())

	// Multiplier above 1 never drops the final score below the base score.
	healthy := service.CreditFacts{
		TotalPayments: 60, OnTimePayments: 57, LatePayments: 3,
		HasCreditCards: true, TotalCreditLimit: 120000, CurrentBalance: 18000,
		HasHistoryDates: true, HistoryYears: 7.4,
		HasBankAccounts: true, HasHomeLoan: true, HasCarLoan: true, ActiveLoanTypeCount: 2,
		RecentPaymentsTotal: 10, RecentPaymentsOnTime: 10, CardLimitOneYearAgo: 100000,
	}
	breakdown, err := engine.Score(healthy, nil)
	require.NoError(t, err)
	assert.Greater(t, breakdown.Behavioral.Multiplier, 1.0)
	assert.GreaterOrEqual(t, breakdown.FinalScore, breakdown.BaseScore)

	// Multiplier below 1 never lifts it above.
	thin := service.CreditFacts{}
	breakdown, err = engine.Score(thin, nil)
	require.NoError(t, err)
	assert.Less(t, breakdown.Behavioral.Multiplier, 1.0)
	assert.LessOrEqual(t, breakdown.FinalScore, breakdown.BaseScore)
}
