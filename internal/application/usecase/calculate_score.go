package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/port"
	"github.com/bibbank/cibil-service/internal/domain/service"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// CalculateScore runs the derived scoring pipeline for an on-file customer:
// it loads the full credit history, scores it, persists the result as the
// customer's latest card, and publishes the score-calculated event.
type CalculateScore struct {
	customers port.CustomerRepository
	history   port.HistoryRepository
	scores    port.ScoreRepository
	publisher port.EventPublisher
	engine    *service.Engine
}

// NewCalculateScore creates the CalculateScore use case. The engine is
// expected to carry the derived policy.
func NewCalculateScore(
	customers port.CustomerRepository,
	history port.HistoryRepository,
	scores port.ScoreRepository,
	publisher port.EventPublisher,
	engine *service.Engine,
) *CalculateScore {
	return &CalculateScore{
		customers: customers,
		history:   history,
		scores:    scores,
		publisher: publisher,
		engine:    engine,
	}
}

// Execute validates the request, scores the customer, and persists the card.
func (uc *CalculateScore) Execute(ctx context.Context, req dto.CalculateScoreRequest) (dto.CalculateScoreResponse, error) {
	pan, err := valueobject.NewPAN(req.PAN)
	if err != nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("%w: invalid PAN: %v", ErrInvalidRequest, err)
	}

	weights, err := dto.ParseWeights(req.CustomWeights)
	if err != nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	customer, err := uc.customers.FindByPAN(ctx, pan)
	if err != nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("customer lookup failed: %w", err)
	}
	if customer == nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, pan.Masked())
	}

	history, err := uc.history.LoadByCustomer(ctx, customer.ID(), time.Now().UTC())
	if err != nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("failed to load credit history: %w", err)
	}

	breakdown, err := uc.engine.Score(creditFacts(history), weights)
	if err != nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("failed to calculate score: %w", err)
	}

	card, err := model.NewScoreCard(
		customer.ID(),
		breakdown.FinalScore,
		factorScores(breakdown),
		breakdown.Behavioral.Multiplier,
		breakdown.DynamicRange.MinScore,
		breakdown.DynamicRange.MaxScore,
		scoreMetrics(history),
	)
	if err != nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("failed to create score card: %w", err)
	}

	if err := uc.scores.SaveAsLatest(ctx, card); err != nil {
		return dto.CalculateScoreResponse{}, fmt.Errorf("failed to save score card: %w", err)
	}

	if events := card.DomainEvents(); len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			return dto.CalculateScoreResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	return dto.NewCalculateScoreResponse(customer, card, breakdown, len(req.CustomWeights) > 0), nil
}

// creditFacts aggregates a history snapshot into the engine's fact set.
func creditFacts(h *model.CreditHistory) service.CreditFacts {
	total, onTime, late, missed := h.PaymentCounts()
	recentTotal, recentOnTime := h.RecentPaymentCounts()
	years, hasDates := h.HistoryYears()

	return service.CreditFacts{
		TotalPayments:        total,
		OnTimePayments:       onTime,
		LatePayments:         late,
		MissedPayments:       missed,
		TotalCreditLimit:     h.ActiveCardLimit().InexactFloat64(),
		CurrentBalance:       h.ActiveCardBalance().InexactFloat64(),
		HasHistoryDates:      hasDates,
		HistoryYears:         years,
		HasCreditCards:       h.HasActiveCards(),
		HasBankAccounts:      h.HasActiveAccounts(),
		HasHomeLoan:          h.HasActiveLoanOfType(valueobject.LoanTypeHome),
		HasCarLoan:           h.HasActiveLoanOfType(valueobject.LoanTypeCar),
		HasPersonalLoan:      h.HasActiveLoanOfType(valueobject.LoanTypePersonal),
		ActiveLoanTypeCount:  len(h.ActiveLoanTypes()),
		RecentAccountCount:   h.RecentAccountCount(),
		RecentPaymentsTotal:  recentTotal,
		RecentPaymentsOnTime: recentOnTime,
		CardLimitOneYearAgo:  h.CardLimitOneYearAgo().InexactFloat64(),
	}
}

// factorScores lifts the raw factor scores out of a breakdown.
func factorScores(b *service.Breakdown) model.FactorScores {
	return model.FactorScores{
		PaymentHistory:      b.Factors[service.FactorPaymentHistory].RawScore,
		CreditUtilization:   b.Factors[service.FactorCreditUtilization].RawScore,
		CreditHistoryLength: b.Factors[service.FactorCreditHistoryLength].RawScore,
		CreditMix:           b.Factors[service.FactorCreditMix].RawScore,
		NewCredit:           b.Factors[service.FactorNewCredit].RawScore,
	}
}

// scoreMetrics captures the account-level aggregates recorded with a card.
func scoreMetrics(h *model.CreditHistory) model.ScoreMetrics {
	return model.ScoreMetrics{
		TotalCreditLimit:   h.ActiveCardLimit(),
		TotalOutstanding:   h.TotalOutstanding(),
		TotalAccounts:      h.TotalAccounts(),
		ActiveAccounts:     h.ActiveAccounts(),
		UtilizationPercent: h.UtilizationPercent(),
	}
}
