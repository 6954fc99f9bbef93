package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/domain/port"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// defaultHistoryLimit caps an unbounded history query.
const defaultHistoryLimit = 50

// GetScoreHistory lists a customer's score cards, newest first.
type GetScoreHistory struct {
	customers port.CustomerRepository
	scores    port.ScoreRepository
}

// NewGetScoreHistory creates the GetScoreHistory use case.
func NewGetScoreHistory(customers port.CustomerRepository, scores port.ScoreRepository) *GetScoreHistory {
	return &GetScoreHistory{customers: customers, scores: scores}
}

// Execute resolves the customer and pages through their score cards.
func (uc *GetScoreHistory) Execute(ctx context.Context, req dto.GetScoreHistoryRequest) (dto.ScoreHistoryResponse, error) {
	pan, err := valueobject.NewPAN(req.PAN)
	if err != nil {
		return dto.ScoreHistoryResponse{}, fmt.Errorf("%w: invalid PAN: %v", ErrInvalidRequest, err)
	}

	customer, err := uc.customers.FindByPAN(ctx, pan)
	if err != nil {
		return dto.ScoreHistoryResponse{}, fmt.Errorf("customer lookup failed: %w", err)
	}
	if customer == nil {
		return dto.ScoreHistoryResponse{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, pan.Masked())
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	cards, err := uc.scores.ListByCustomer(ctx, customer.ID(), limit, offset)
	if err != nil {
		return dto.ScoreHistoryResponse{}, fmt.Errorf("failed to list score history: %w", err)
	}

	history := make([]dto.ScoreCardResponse, 0, len(cards))
	for _, card := range cards {
		history = append(history, dto.FromScoreCard(card))
	}

	return dto.ScoreHistoryResponse{
		Customer:      customer.FullName(),
		PANCardNumber: customer.PAN().String(),
		ScoreHistory:  history,
	}, nil
}
