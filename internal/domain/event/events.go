// Package event defines the domain events published by the CIBIL service.
package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/cibil-service/pkg/events"
)

const (
	// TypeCustomerOnboarded is emitted when a customer record is first created.
	TypeCustomerOnboarded = "cibil.customer.onboarded"

	// TypeScoreCalculated is emitted when a new score card becomes the
	// customer's latest score.
	TypeScoreCalculated = "cibil.score.calculated"

	// TypeReportGenerated is emitted when a credit report is produced from a
	// score card.
	TypeReportGenerated = "cibil.report.generated"
)

// Aggregate type names used in event envelopes and the outbox.
const (
	AggregateCustomer     = "customer"
	AggregateScoreCard    = "score_card"
	AggregateCreditReport = "credit_report"
)

// CustomerOnboardedPayload is the wire payload for TypeCustomerOnboarded.
// The PAN is masked; subscribers correlate by customer ID.
type CustomerOnboardedPayload struct {
	CustomerID  string    `json:"customer_id"`
	MaskedPAN   string    `json:"masked_pan"`
	FullName    string    `json:"full_name"`
	OnboardedAt time.Time `json:"onboarded_at"`
}

// NewCustomerOnboarded builds the onboarding event for a new customer.
func NewCustomerOnboarded(customerID uuid.UUID, maskedPAN, fullName string, onboardedAt time.Time) events.DomainEvent {
	payload, _ := json.Marshal(CustomerOnboardedPayload{
		CustomerID:  customerID.String(),
		MaskedPAN:   maskedPAN,
		FullName:    fullName,
		OnboardedAt: onboardedAt,
	})
	return events.NewBaseEvent(TypeCustomerOnboarded, customerID.String(), AggregateCustomer, payload)
}

// ScoreCalculatedPayload is the wire payload for TypeScoreCalculated.
type ScoreCalculatedPayload struct {
	ScoreID              string    `json:"score_id"`
	CustomerID           string    `json:"customer_id"`
	Score                int       `json:"score"`
	Grade                string    `json:"grade"`
	Category             string    `json:"category"`
	BehavioralMultiplier float64   `json:"behavioral_multiplier"`
	ScoreDate            time.Time `json:"score_date"`
}

// NewScoreCalculated builds the event announcing a freshly calculated score.
func NewScoreCalculated(scoreID, customerID uuid.UUID, score int, grade, category string, multiplier float64, scoreDate time.Time) events.DomainEvent {
	payload, _ := json.Marshal(ScoreCalculatedPayload{
		ScoreID:              scoreID.String(),
		CustomerID:           customerID.String(),
		Score:                score,
		Grade:                grade,
		Category:             category,
		BehavioralMultiplier: multiplier,
		ScoreDate:            scoreDate,
	})
	return events.NewBaseEvent(TypeScoreCalculated, scoreID.String(), AggregateScoreCard, payload)
}

// ReportGeneratedPayload is the wire payload for TypeReportGenerated.
type ReportGeneratedPayload struct {
	ReportID    string    `json:"report_id"`
	CustomerID  string    `json:"customer_id"`
	ScoreID     string    `json:"score_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReportGenerated builds the event announcing a generated credit report.
func NewReportGenerated(reportID, customerID, scoreID uuid.UUID, generatedAt time.Time) events.DomainEvent {
	payload, _ := json.Marshal(ReportGeneratedPayload{
		ReportID:    reportID.String(),
		CustomerID:  customerID.String(),
		ScoreID:     scoreID.String(),
		GeneratedAt: generatedAt,
	})
	return events.NewBaseEvent(TypeReportGenerated, reportID.String(), AggregateCreditReport, payload)
}
