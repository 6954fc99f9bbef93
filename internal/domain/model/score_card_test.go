package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cibil-service/internal/domain/model"
)

func validFactors() model.FactorScores {
	return model.FactorScores{
		PaymentHistory:      95,
		CreditUtilization:   85,
		CreditHistoryLength: 70,
		CreditMix:           65,
		NewCredit:           80,
	}
}

func validMetrics() model.ScoreMetrics {
	return model.ScoreMetrics{
		TotalCreditLimit:   decimal.NewFromInt(500000),
		TotalOutstanding:   decimal.NewFromInt(120000),
		TotalAccounts:      6,
		ActiveAccounts:     5,
		UtilizationPercent: 24,
	}
}

func newTestScoreCard(t *testing.T, customerID uuid.UUID) *model.ScoreCard {
	t.Helper()
	card, err := model.NewScoreCard(customerID, 760, validFactors(), 1.05, 200, 1000, validMetrics())
	require.NoError(t, err)
	return card
}

func TestNewScoreCard(t *testing.T) {
	t.Run("creates latest card with derived labels", func(t *testing.T) {
		customerID := uuid.New()
		card := newTestScoreCard(t, customerID)

		assert.NotEqual(t, uuid.Nil, card.ID())
		assert.Equal(t, customerID, card.CustomerID())
		assert.Equal(t, 760, card.Score())
		assert.Equal(t, "A", card.Grade().String())
		assert.Equal(t, "Excellent", card.Category().String())
		assert.Equal(t, 200, card.RangeMin())
		assert.Equal(t, 1000, card.RangeMax())
		assert.Equal(t, 800, card.RangeWidth())
		assert.Equal(t, 1.05, card.BehavioralMultiplier())
		assert.True(t, card.IsLatest())
		assert.False(t, card.ScoreDate().IsZero())
	})

	t.Run("emits score calculated event", func(t *testing.T) {
		card := newTestScoreCard(t, uuid.New())

		events := card.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "cibil.score.calculated", events[0].EventType())
		assert.Equal(t, card.ID().String(), events[0].AggregateID())
		assert.Equal(t, "score_card", events[0].AggregateType())

		// Events drain on read.
		assert.Empty(t, card.DomainEvents())
	})

	t.Run("rejects nil customer ID", func(t *testing.T) {
		_, err := model.NewScoreCard(uuid.Nil, 760, validFactors(), 1.0, 200, 1000, validMetrics())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "customer ID")
	})

	t.Run("rejects range below the envelope floor", func(t *testing.T) {
		_, err := model.NewScoreCard(uuid.New(), 760, validFactors(), 1.0, 100, 1000, validMetrics())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "envelope")
	})

	t.Run("rejects range above the envelope ceiling", func(t *testing.T) {
		_, err := model.NewScoreCard(uuid.New(), 760, validFactors(), 1.0, 200, 1250, validMetrics())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "envelope")
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := model.NewScoreCard(uuid.New(), 760, validFactors(), 1.0, 1000, 200, validMetrics())
		assert.Error(t, err)
	})

	t.Run("rejects score outside its range", func(t *testing.T) {
		_, err := model.NewScoreCard(uuid.New(), 1100, validFactors(), 1.0, 200, 1000, validMetrics())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "outside its range")
	})

	t.Run("rejects factor score above 100", func(t *testing.T) {
		factors := validFactors()
		factors.CreditMix = 100.5
		_, err := model.NewScoreCard(uuid.New(), 760, factors, 1.0, 200, 1000, validMetrics())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "credit mix")
	})

	t.Run("rejects negative factor score", func(t *testing.T) {
		factors := validFactors()
		factors.NewCredit = -1
		_, err := model.NewScoreCard(uuid.New(), 760, factors, 1.0, 200, 1000, validMetrics())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "new credit")
	})

	t.Run("rejects non-positive multiplier", func(t *testing.T) {
		_, err := model.NewScoreCard(uuid.New(), 760, validFactors(), 0, 200, 1000, validMetrics())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "multiplier")
	})
}

func TestReconstructScoreCard(t *testing.T) {
	original := newTestScoreCard(t, uuid.New())
	original.DomainEvents() // drain

	rebuilt := model.ReconstructScoreCard(
		original.ID(), original.CustomerID(),
		original.Score(), original.Factors(), original.BehavioralMultiplier(),
		original.RangeMin(), original.RangeMax(), original.Metrics(),
		original.Grade(), original.Category(),
		original.ScoreDate(), false,
	)

	assert.Equal(t, original.ID(), rebuilt.ID())
	assert.Equal(t, original.Score(), rebuilt.Score())
	assert.False(t, rebuilt.IsLatest())
	assert.Empty(t, rebuilt.DomainEvents(), "reconstruction must not emit events")
}
