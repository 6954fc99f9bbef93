package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/cibil-service/internal/domain/event"
	"github.com/bibbank/cibil-service/pkg/events"
	"github.com/bibbank/cibil-service/pkg/money"
)

// currentReportVersion is stamped on every newly generated report.
const currentReportVersion = "1.0"

// CreditReport is an aggregate holding the narrative view of a score card:
// a formatted summary block plus recommendation, risk and positive findings
// joined with "; ". Reports are immutable once generated.
type CreditReport struct {
	id              uuid.UUID
	customerID      uuid.UUID
	scoreCardID     uuid.UUID
	reportSummary   string
	recommendations string
	riskFactors     string
	positiveFactors string
	reportVersion   string
	generatedAt     time.Time

	domainEvents []events.DomainEvent
}

// NewCreditReport builds a report for the given customer and score card,
// deriving the narrative findings from the card's factor scores and account
// metrics. The report-generated event is emitted on construction.
func NewCreditReport(customer *Customer, card *ScoreCard) (*CreditReport, error) {
	if customer == nil {
		return nil, fmt.Errorf("customer is required")
	}
	if card == nil {
		return nil, fmt.Errorf("score card is required")
	}
	if card.CustomerID() != customer.ID() {
		return nil, fmt.Errorf("score card %s does not belong to customer %s", card.ID(), customer.ID())
	}

	recommendations, riskFactors, positiveFactors := reportFindings(card.Factors(), card.Metrics().UtilizationPercent)

	report := &CreditReport{
		id:              uuid.New(),
		customerID:      customer.ID(),
		scoreCardID:     card.ID(),
		reportSummary:   reportSummaryText(customer, card),
		recommendations: strings.Join(recommendations, "; "),
		riskFactors:     strings.Join(riskFactors, "; "),
		positiveFactors: strings.Join(positiveFactors, "; "),
		reportVersion:   currentReportVersion,
		generatedAt:     time.Now().UTC(),
	}

	report.domainEvents = append(report.domainEvents, event.NewReportGenerated(
		report.id, report.customerID, report.scoreCardID, report.generatedAt,
	))

	return report, nil
}

// ReconstructCreditReport rehydrates a report from storage without emitting
// events.
func ReconstructCreditReport(
	id, customerID, scoreCardID uuid.UUID,
	reportSummary, recommendations, riskFactors, positiveFactors, reportVersion string,
	generatedAt time.Time,
) *CreditReport {
	return &CreditReport{
		id:              id,
		customerID:      customerID,
		scoreCardID:     scoreCardID,
		reportSummary:   reportSummary,
		recommendations: recommendations,
		riskFactors:     riskFactors,
		positiveFactors: positiveFactors,
		reportVersion:   reportVersion,
		generatedAt:     generatedAt,
	}
}

// reportFindings derives the recommendation and risk narratives from a score
// card. Utilization is judged on the measured percent, not the factor score.
func reportFindings(f FactorScores, utilizationPercent float64) (recommendations, riskFactors, positiveFactors []string) {
	if f.PaymentHistory < 70 {
		riskFactors = append(riskFactors, "Payment history needs improvement")
		recommendations = append(recommendations, "Make all payments on time to improve payment history")
	} else {
		positiveFactors = append(positiveFactors, "Good payment history")
	}

	if utilizationPercent > 30 {
		riskFactors = append(riskFactors, "High credit utilization")
		recommendations = append(recommendations, "Reduce credit card balances to below 30% of limit")
	} else {
		positiveFactors = append(positiveFactors, "Good credit utilization")
	}

	if f.CreditHistoryLength < 50 {
		riskFactors = append(riskFactors, "Short credit history")
		recommendations = append(recommendations, "Maintain old accounts to build credit history")
	}

	if f.CreditMix < 50 {
		recommendations = append(recommendations, "Consider diversifying credit types")
	}

	return recommendations, riskFactors, positiveFactors
}

// reportSummaryText renders the human-readable summary block. The weight
// labels always show the standard weighting, regardless of the weights used
// for the calculation.
func reportSummaryText(customer *Customer, card *ScoreCard) string {
	f := card.Factors()
	m := card.Metrics()

	var b strings.Builder
	fmt.Fprintf(&b, "CIBIL Score Report for %s\n", customer.FullName())
	fmt.Fprintf(&b, "PAN: %s\n", customer.PAN())
	fmt.Fprintf(&b, "Score: %d (%s)\n", card.Score(), card.Category())
	fmt.Fprintf(&b, "Report Date: %s\n", card.ScoreDate().Format("2006-01-02"))
	b.WriteString("\nScore Breakdown:\n")
	fmt.Fprintf(&b, "- Payment History: %.2f%% (Weight: 35%%)\n", f.PaymentHistory)
	fmt.Fprintf(&b, "- Credit Utilization: %.2f%% (Weight: 30%%)\n", f.CreditUtilization)
	fmt.Fprintf(&b, "- Credit History Length: %.2f%% (Weight: 15%%)\n", f.CreditHistoryLength)
	fmt.Fprintf(&b, "- Credit Mix: %.2f%% (Weight: 10%%)\n", f.CreditMix)
	fmt.Fprintf(&b, "- New Credit: %.2f%% (Weight: 10%%)\n", f.NewCredit)
	b.WriteString("\nAccount Summary:\n")
	fmt.Fprintf(&b, "- Total Accounts: %d\n", m.TotalAccounts)
	fmt.Fprintf(&b, "- Active Accounts: %d\n", m.ActiveAccounts)
	fmt.Fprintf(&b, "- Total Credit Limit: %s\n", money.New(m.TotalCreditLimit, money.INR).Display())
	fmt.Fprintf(&b, "- Total Outstanding: %s\n", money.New(m.TotalOutstanding, money.INR).Display())
	fmt.Fprintf(&b, "- Credit Utilization: %.2f%%", m.UtilizationPercent)
	return b.String()
}

func (r *CreditReport) ID() uuid.UUID           { return r.id }
func (r *CreditReport) CustomerID() uuid.UUID   { return r.customerID }
func (r *CreditReport) ScoreCardID() uuid.UUID  { return r.scoreCardID }
func (r *CreditReport) ReportSummary() string   { return r.reportSummary }
func (r *CreditReport) Recommendations() string { return r.recommendations }
func (r *CreditReport) RiskFactors() string     { return r.riskFactors }
func (r *CreditReport) PositiveFactors() string { return r.positiveFactors }
func (r *CreditReport) ReportVersion() string   { return r.reportVersion }
func (r *CreditReport) GeneratedAt() time.Time  { return r.generatedAt }

// DomainEvents returns and clears the events recorded on this aggregate.
func (r *CreditReport) DomainEvents() []events.DomainEvent {
	evts := r.domainEvents
	r.domainEvents = nil
	return evts
}
