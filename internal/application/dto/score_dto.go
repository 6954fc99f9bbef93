package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/service"
)

// algorithmVersion is stamped on every calculation response.
const algorithmVersion = "2.0_dynamic"

// ParseWeights validates a caller-supplied weight map at the API boundary:
// every key must name a known factor and every weight must lie in [0,100].
// Percent-versus-fraction interpretation happens later, during normalization.
// A nil or empty map passes through as nil (mode defaults apply).
func ParseWeights(raw map[string]float64) (map[service.Factor]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	known := make(map[service.Factor]bool, len(service.Factors))
	for _, f := range service.Factors {
		known[f] = true
	}

	weights := make(map[service.Factor]float64, len(raw))
	for name, weight := range raw {
		factor := service.Factor(name)
		if !known[factor] {
			return nil, fmt.Errorf("invalid factor: %s (valid factors are %v)", name, service.Factors)
		}
		if weight < 0 || weight > 100 {
			return nil, fmt.Errorf("weight for %s must be between 0 and 100", name)
		}
		weights[factor] = weight
	}
	return weights, nil
}

// CalculateScoreRequest is the input DTO for the CalculateScore use case.
type CalculateScoreRequest struct {
	PAN           string             `json:"pan_card_number"`
	CustomWeights map[string]float64 `json:"custom_weights,omitempty"`
}

// CustomerSummary is the abbreviated customer block on score responses.
type CustomerSummary struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PANCardNumber string `json:"pan_card_number"`
}

// ScoreRangeSummary is the possible-score envelope of one calculation.
type ScoreRangeSummary struct {
	MinimumPossible int `json:"minimum_possible"`
	MaximumPossible int `json:"maximum_possible"`
	RangeWidth      int `json:"range_width"`
}

// ScoreSummary is the headline block of a calculation response.
type ScoreSummary struct {
	FinalScore           int               `json:"final_score"`
	BaseScore            int               `json:"base_score"`
	ScoreRange           ScoreRangeSummary `json:"score_range"`
	ScoreGrade           string            `json:"score_grade"`
	ImprovementPotential float64           `json:"improvement_potential"`
}

// WeightConfiguration reports which weights the calculation actually used.
type WeightConfiguration struct {
	CustomWeightsApplied bool                       `json:"custom_weights_applied"`
	WeightsUsed          map[service.Factor]float64 `json:"weights_used"`
	WeightsNormalized    bool                       `json:"weights_normalized"`
}

// CalculationMetadata records when and how a score was produced.
type CalculationMetadata struct {
	CalculationDate              time.Time `json:"calculation_date"`
	DynamicRangeApplied          bool      `json:"dynamic_range_applied"`
	BehavioralAdjustmentsApplied bool      `json:"behavioral_adjustments_applied"`
	AlgorithmVersion             string    `json:"algorithm_version"`
}

// CalculateScoreResponse is the output DTO for the CalculateScore use case.
type CalculateScoreResponse struct {
	PANCardNumber       string              `json:"pan_card_number"`
	Customer            CustomerSummary     `json:"customer"`
	ScoreSummary        ScoreSummary        `json:"cibil_score_summary"`
	WeightConfiguration WeightConfiguration `json:"weight_configuration"`
	DetailedBreakdown   *service.Breakdown  `json:"detailed_breakdown"`
	Metadata            CalculationMetadata `json:"calculation_metadata"`
}

// NewCalculateScoreResponse assembles the calculation response from the
// persisted score card and the engine breakdown it was built from.
func NewCalculateScoreResponse(
	customer *model.Customer,
	card *model.ScoreCard,
	breakdown *service.Breakdown,
	customWeightsApplied bool,
) CalculateScoreResponse {
	return CalculateScoreResponse{
		PANCardNumber: customer.PAN().String(),
		Customer: CustomerSummary{
			FullName:      customer.FullName(),
			Email:         customer.Email(),
			Phone:         customer.PhoneNumber(),
			PANCardNumber: customer.PAN().String(),
		},
		ScoreSummary: ScoreSummary{
			FinalScore: breakdown.FinalScore,
			BaseScore:  breakdown.BaseScore,
			ScoreRange: ScoreRangeSummary{
				MinimumPossible: breakdown.DynamicRange.MinScore,
				MaximumPossible: breakdown.DynamicRange.MaxScore,
				RangeWidth:      breakdown.DynamicRange.RangeWidth,
			},
			ScoreGrade:           card.Grade().String(),
			ImprovementPotential: breakdown.Summary.ImprovementPotential,
		},
		WeightConfiguration: WeightConfiguration{
			CustomWeightsApplied: customWeightsApplied,
			WeightsUsed:          breakdown.CustomWeights,
			WeightsNormalized:    true,
		},
		DetailedBreakdown: breakdown,
		Metadata: CalculationMetadata{
			CalculationDate:              card.ScoreDate(),
			DynamicRangeApplied:          true,
			BehavioralAdjustmentsApplied: true,
			AlgorithmVersion:             algorithmVersion,
		},
	}
}

// ScoreProfileRequest is the input DTO for the stateless ScoreProfile use
// case: the thirteen declarative facts plus all five weights. Pointer fields
// distinguish absent from zero.
type ScoreProfileRequest struct {
	TotalPayments             *int               `json:"total_payments"`
	OnTimePayments            *int               `json:"on_time_payments"`
	LatePayments              *int               `json:"late_payments"`
	MissedPayments            *int               `json:"missed_payments"`
	TotalCreditLimit          *float64           `json:"total_credit_limit"`
	CurrentBalance            *float64           `json:"current_balance"`
	CreditHistoryYears        *float64           `json:"credit_history_years"`
	HasCreditCards            *bool              `json:"has_credit_cards"`
	HasHomeLoan               *bool              `json:"has_home_loan"`
	HasCarLoan                *bool              `json:"has_car_loan"`
	HasPersonalLoan           *bool              `json:"has_personal_loan"`
	HasBankAccounts           *bool              `json:"has_bank_accounts"`
	RecentAccountsLast6Months *int               `json:"recent_accounts_last_6_months"`
	Weights                   map[string]float64 `json:"weights"`
}

// ProfileInput converts the request's fact fields for domain validation.
func (r ScoreProfileRequest) ProfileInput() service.ProfileInput {
	return service.ProfileInput{
		TotalPayments:             r.TotalPayments,
		OnTimePayments:            r.OnTimePayments,
		LatePayments:              r.LatePayments,
		MissedPayments:            r.MissedPayments,
		TotalCreditLimit:          r.TotalCreditLimit,
		CurrentBalance:            r.CurrentBalance,
		CreditHistoryYears:        r.CreditHistoryYears,
		HasCreditCards:            r.HasCreditCards,
		HasHomeLoan:               r.HasHomeLoan,
		HasCarLoan:                r.HasCarLoan,
		HasPersonalLoan:           r.HasPersonalLoan,
		HasBankAccounts:           r.HasBankAccounts,
		RecentAccountsLast6Months: r.RecentAccountsLast6Months,
	}
}

// ScoreProfileResponse is the output DTO for the ScoreProfile use case.
// Nothing is persisted; the grade and category label the final score on the
// same scales a stored card would carry.
type ScoreProfileResponse struct {
	Breakdown *service.Breakdown `json:"breakdown"`
	Grade     string             `json:"grade"`
	Category  string             `json:"category"`
}

// GetScoreHistoryRequest is the input DTO for listing a customer's scores.
type GetScoreHistoryRequest struct {
	PAN    string `json:"pan_card_number"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ScoreCardResponse is the output DTO for one persisted score card.
type ScoreCardResponse struct {
	ID                       uuid.UUID `json:"id"`
	CustomerID               uuid.UUID `json:"customer_id"`
	Score                    int       `json:"score"`
	PaymentHistoryScore      float64   `json:"payment_history_score"`
	CreditUtilizationScore   float64   `json:"credit_utilization_score"`
	CreditHistoryLengthScore float64   `json:"credit_history_length_score"`
	CreditMixScore           float64   `json:"credit_mix_score"`
	NewCreditScore           float64   `json:"new_credit_score"`
	BehavioralMultiplier     float64   `json:"behavioral_multiplier"`
	RangeMin                 int       `json:"range_min"`
	RangeMax                 int       `json:"range_max"`
	RangeWidth               int       `json:"range_width"`
	TotalAccounts            int       `json:"total_accounts"`
	ActiveAccounts           int       `json:"active_accounts"`
	TotalCreditLimit         string    `json:"total_credit_limit"`
	TotalOutstanding         string    `json:"total_outstanding"`
	CreditUtilizationRatio   float64   `json:"credit_utilization_ratio"`
	Grade                    string    `json:"grade"`
	Category                 string    `json:"category"`
	ScoreDate                time.Time `json:"score_date"`
	IsLatest                 bool      `json:"is_latest"`
}

// FromScoreCard maps a score card aggregate to its response DTO.
func FromScoreCard(card *model.ScoreCard) ScoreCardResponse {
	f := card.Factors()
	m := card.Metrics()
	return ScoreCardResponse{
		ID:                       card.ID(),
		CustomerID:               card.CustomerID(),
		Score:                    card.Score(),
		PaymentHistoryScore:      f.PaymentHistory,
		CreditUtilizationScore:   f.CreditUtilization,
		CreditHistoryLengthScore: f.CreditHistoryLength,
		CreditMixScore:           f.CreditMix,
		NewCreditScore:           f.NewCredit,
		BehavioralMultiplier:     card.BehavioralMultiplier(),
		RangeMin:                 card.RangeMin(),
		RangeMax:                 card.RangeMax(),
		RangeWidth:               card.RangeWidth(),
		TotalAccounts:            m.TotalAccounts,
		ActiveAccounts:           m.ActiveAccounts,
		TotalCreditLimit:         m.TotalCreditLimit.String(),
		TotalOutstanding:         m.TotalOutstanding.String(),
		CreditUtilizationRatio:   m.UtilizationPercent,
		Grade:                    card.Grade().String(),
		Category:                 card.Category().String(),
		ScoreDate:                card.ScoreDate(),
		IsLatest:                 card.IsLatest(),
	}
}

// ScoreHistoryResponse is the output DTO for a customer's score history,
// newest first.
type ScoreHistoryResponse struct {
	Customer      string              `json:"customer"`
	PANCardNumber string              `json:"pan_card_number"`
	ScoreHistory  []ScoreCardResponse `json:"score_history"`
}
