package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/application/usecase"
	"github.com/bibbank/cibil-service/internal/domain/model"
)

func TestGetScoreHistory_Execute(t *testing.T) {
	t.Run("returns the customer's cards newest first", func(t *testing.T) {
		customer := testCustomer(t)
		customers := &mockCustomerRepository{customer: customer}
		scores := &mockScoreRepository{
			cards: []*model.ScoreCard{
				testScoreCard(t, customer.ID(), 742, true),
				testScoreCard(t, customer.ID(), 718, false),
			},
		}
		uc := usecase.NewGetScoreHistory(customers, scores)

		resp, err := uc.Execute(context.Background(), dto.GetScoreHistoryRequest{PAN: "ABCDE1234F"})

		require.NoError(t, err)
		assert.Equal(t, "Asha Verma", resp.Customer)
		assert.Equal(t, "ABCDE1234F", resp.PANCardNumber)
		require.Len(t, resp.ScoreHistory, 2)
		assert.Equal(t, 742, resp.ScoreHistory[0].Score)
		assert.True(t, resp.ScoreHistory[0].IsLatest)
		assert.Equal(t, 718, resp.ScoreHistory[1].Score)
		assert.False(t, resp.ScoreHistory[1].IsLatest)
		assert.Equal(t, "B+", resp.ScoreHistory[0].Grade)
	})

	t.Run("defaults the page size", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		uc := usecase.NewGetScoreHistory(customers, scores)

		resp, err := uc.Execute(context.Background(), dto.GetScoreHistoryRequest{PAN: "ABCDE1234F"})

		require.NoError(t, err)
		assert.Empty(t, resp.ScoreHistory)
		assert.Equal(t, 50, scores.listedLimit)
		assert.Equal(t, 0, scores.listedOffset)
	})

	t.Run("passes explicit paging through", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		uc := usecase.NewGetScoreHistory(customers, scores)

		_, err := uc.Execute(context.Background(), dto.GetScoreHistoryRequest{PAN: "ABCDE1234F", Limit: 5, Offset: 10})

		require.NoError(t, err)
		assert.Equal(t, 5, scores.listedLimit)
		assert.Equal(t, 10, scores.listedOffset)
	})

	t.Run("fails when the customer is unknown", func(t *testing.T) {
		customers := &mockCustomerRepository{}
		uc := usecase.NewGetScoreHistory(customers, &mockScoreRepository{})

		_, err := uc.Execute(context.Background(), dto.GetScoreHistoryRequest{PAN: "ABCDE1234F"})

		require.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	})

	t.Run("rejects a malformed PAN", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		uc := usecase.NewGetScoreHistory(customers, &mockScoreRepository{})

		_, err := uc.Execute(context.Background(), dto.GetScoreHistoryRequest{PAN: "ABCDE12"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PAN")
	})
}
