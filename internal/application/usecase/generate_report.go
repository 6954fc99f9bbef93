package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/port"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// GenerateReport builds the narrative credit report for a customer's latest
// score card, persists it, and publishes the report-generated event.
type GenerateReport struct {
	customers port.CustomerRepository
	scores    port.ScoreRepository
	reports   port.ReportRepository
	publisher port.EventPublisher
}

// NewGenerateReport creates the GenerateReport use case.
func NewGenerateReport(
	customers port.CustomerRepository,
	scores port.ScoreRepository,
	reports port.ReportRepository,
	publisher port.EventPublisher,
) *GenerateReport {
	return &GenerateReport{
		customers: customers,
		scores:    scores,
		reports:   reports,
		publisher: publisher,
	}
}

// Execute generates a report from the customer's latest score card.
func (uc *GenerateReport) Execute(ctx context.Context, req dto.GenerateReportRequest) (dto.ReportResponse, error) {
	pan, err := valueobject.NewPAN(req.PAN)
	if err != nil {
		return dto.ReportResponse{}, fmt.Errorf("%w: invalid PAN: %v", ErrInvalidRequest, err)
	}

	customer, err := uc.customers.FindByPAN(ctx, pan)
	if err != nil {
		return dto.ReportResponse{}, fmt.Errorf("customer lookup failed: %w", err)
	}
	if customer == nil {
		return dto.ReportResponse{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, pan.Masked())
	}

	card, err := uc.scores.FindLatestByCustomer(ctx, customer.ID())
	if err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to load latest score: %w", err)
	}
	if card == nil {
		return dto.ReportResponse{}, fmt.Errorf("%w: %s", ErrNoScoreOnFile, pan.Masked())
	}

	report, err := model.NewCreditReport(customer, card)
	if err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to generate report: %w", err)
	}

	if err := uc.reports.Save(ctx, report); err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to save report: %w", err)
	}

	if events := report.DomainEvents(); len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			return dto.ReportResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	return dto.FromReport(report), nil
}
