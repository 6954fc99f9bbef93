package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/cibil-service/internal/domain/model"
)

// ReportRepository implements port.ReportRepository using PostgreSQL.
// Reports are write-once snapshots; there is no update path.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new PostgreSQL-backed ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Save persists a generated credit report.
func (r *ReportRepository) Save(ctx context.Context, report *model.CreditReport) error {
	query := `
		INSERT INTO credit_reports (
			id, customer_id, score_card_id, report_summary,
			recommendations, risk_factors, positive_factors,
			report_version, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		report.ID(),
		report.CustomerID(),
		report.ScoreCardID(),
		report.ReportSummary(),
		report.Recommendations(),
		report.RiskFactors(),
		report.PositiveFactors(),
		report.ReportVersion(),
		report.GeneratedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save credit report: %w", err)
	}

	return nil
}
