package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/cibil-service/internal/domain/model"
)

// GenerateReportRequest is the input DTO for generating a credit report.
type GenerateReportRequest struct {
	PAN string `json:"pan_card_number"`
}

// ReportResponse is the output DTO for a generated credit report.
type ReportResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	ScoreCardID     uuid.UUID `json:"score_card_id"`
	ReportSummary   string    `json:"report_summary"`
	Recommendations string    `json:"recommendations"`
	RiskFactors     string    `json:"risk_factors"`
	PositiveFactors string    `json:"positive_factors"`
	ReportVersion   string    `json:"report_version"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// FromReport maps a credit report aggregate to its response DTO.
func FromReport(r *model.CreditReport) ReportResponse {
	return ReportResponse{
		ID:              r.ID(),
		CustomerID:      r.CustomerID(),
		ScoreCardID:     r.ScoreCardID(),
		ReportSummary:   r.ReportSummary(),
		Recommendations: r.Recommendations(),
		RiskFactors:     r.RiskFactors(),
		PositiveFactors: r.PositiveFactors(),
		ReportVersion:   r.ReportVersion(),
		GeneratedAt:     r.GeneratedAt(),
	}
}
