package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/application/usecase"
	"github.com/bibbank/cibil-service/internal/domain/model"
)

func TestGenerateReport_Execute(t *testing.T) {
	t.Run("generates and persists the narrative report", func(t *testing.T) {
		customer := testCustomer(t)
		customers := &mockCustomerRepository{customer: customer}
		scores := &mockScoreRepository{latest: testScoreCard(t, customer.ID(), 742, true)}
		reports := &mockReportRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewGenerateReport(customers, scores, reports, publisher)

		resp, err := uc.Execute(context.Background(), dto.GenerateReportRequest{PAN: "ABCDE1234F"})

		require.NoError(t, err)
		require.NotNil(t, reports.savedReport)
		assert.Equal(t, reports.savedReport.ID(), resp.ID)
		assert.Equal(t, customer.ID(), resp.CustomerID)
		assert.Equal(t, "1.0", resp.ReportVersion)

		assert.Contains(t, resp.ReportSummary, "CIBIL Score Report for Asha Verma")
		assert.Contains(t, resp.ReportSummary, "Score: 742 (Good)")
		assert.Equal(t, "Short credit history", resp.RiskFactors)
		assert.Equal(t, "Maintain old accounts to build credit history", resp.Recommendations)
		assert.Equal(t, "Good payment history; Good credit utilization", resp.PositiveFactors)

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "cibil.report.generated", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails when the customer has never been scored", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		uc := usecase.NewGenerateReport(customers, &mockScoreRepository{}, &mockReportRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.GenerateReportRequest{PAN: "ABCDE1234F"})

		require.ErrorIs(t, err, usecase.ErrNoScoreOnFile)
	})

	t.Run("fails when the customer is unknown", func(t *testing.T) {
		uc := usecase.NewGenerateReport(&mockCustomerRepository{}, &mockScoreRepository{}, &mockReportRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.GenerateReportRequest{PAN: "ABCDE1234F"})

		require.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	})

	t.Run("fails when saving the report fails", func(t *testing.T) {
		customer := testCustomer(t)
		customers := &mockCustomerRepository{customer: customer}
		scores := &mockScoreRepository{latest: testScoreCard(t, customer.ID(), 742, true)}
		reports := &mockReportRepository{
			saveFunc: func(ctx context.Context, report *model.CreditReport) error {
				return fmt.Errorf("database unavailable")
			},
		}
		uc := usecase.NewGenerateReport(customers, scores, reports, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.GenerateReportRequest{PAN: "ABCDE1234F"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save report")
	})
}
