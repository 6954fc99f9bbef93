package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// ScoreRepository implements port.ScoreRepository using PostgreSQL. A
// partial unique index on (customer_id) WHERE is_latest backs the
// one-latest-card-per-customer invariant at the storage level.
type ScoreRepository struct {
	pool *pgxpool.Pool
}

// NewScoreRepository creates a new PostgreSQL-backed ScoreRepository.
func NewScoreRepository(pool *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{pool: pool}
}

// SaveAsLatest persists a score card and marks it as the customer's latest,
// demoting any previous latest card in the same transaction.
func (r *ScoreRepository) SaveAsLatest(ctx context.Context, card *model.ScoreCard) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	demoteSQL := `
		UPDATE score_cards
		SET is_latest = FALSE
		WHERE customer_id = $1 AND is_latest
	`
	if _, err := tx.Exec(ctx, demoteSQL, card.CustomerID()); err != nil {
		return fmt.Errorf("failed to demote previous score card: %w", err)
	}

	insertSQL := `
		INSERT INTO score_cards (
			id, customer_id, score,
			payment_history_score, credit_utilization_score, credit_history_length_score,
			credit_mix_score, new_credit_score,
			behavioral_multiplier, range_min, range_max,
			total_credit_limit, total_outstanding, total_accounts, active_accounts,
			utilization_percent, grade, category, score_date, is_latest
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	factors := card.Factors()
	metrics := card.Metrics()

	_, err = tx.Exec(ctx, insertSQL,
		card.ID(),
		card.CustomerID(),
		card.Score(),
		factors.PaymentHistory,
		factors.CreditUtilization,
		factors.CreditHistoryLength,
		factors.CreditMix,
		factors.NewCredit,
		card.BehavioralMultiplier(),
		card.RangeMin(),
		card.RangeMax(),
		metrics.TotalCreditLimit,
		metrics.TotalOutstanding,
		metrics.TotalAccounts,
		metrics.ActiveAccounts,
		metrics.UtilizationPercent,
		card.Grade().String(),
		card.Category().String(),
		card.ScoreDate(),
		card.IsLatest(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert score card: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FindLatestByCustomer retrieves the customer's current score card, or nil
// without error when the customer has never been scored.
func (r *ScoreRepository) FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*model.ScoreCard, error) {
	query := `
		SELECT id, customer_id, score,
			payment_history_score, credit_utilization_score, credit_history_length_score,
			credit_mix_score, new_credit_score,
			behavioral_multiplier, range_min, range_max,
			total_credit_limit, total_outstanding, total_accounts, active_accounts,
			utilization_percent, grade, category, score_date, is_latest
		FROM score_cards
		WHERE customer_id = $1 AND is_latest
	`

	card, err := r.scanScoreCard(r.pool.QueryRow(ctx, query, customerID))
	if err != nil {
		return nil, err
	}

	return card, nil
}

// ListByCustomer returns score cards for a customer, newest first.
func (r *ScoreRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*model.ScoreCard, error) {
	query := `
		SELECT id, customer_id, score,
			payment_history_score, credit_utilization_score, credit_history_length_score,
			credit_mix_score, new_credit_score,
			behavioral_multiplier, range_min, range_max,
			total_credit_limit, total_outstanding, total_accounts, active_accounts,
			utilization_percent, grade, category, score_date, is_latest
		FROM score_cards
		WHERE customer_id = $1
		ORDER BY score_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query score cards: %w", err)
	}
	defer rows.Close()

	var cards []*model.ScoreCard
	for rows.Next() {
		card, err := r.scanScoreCardFromRows(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score cards: %w", err)
	}

	return cards, nil
}

func (r *ScoreRepository) scanScoreCard(row pgx.Row) (*model.ScoreCard, error) {
	var (
		id                   uuid.UUID
		customerID           uuid.UUID
		score                int
		factors              model.FactorScores
		behavioralMultiplier float64
		rangeMin             int
		rangeMax             int
		totalCreditLimit     decimal.Decimal
		totalOutstanding     decimal.Decimal
		totalAccounts        int
		activeAccounts       int
		utilizationPercent   float64
		gradeStr             string
		categoryStr          string
		scoreDate            time.Time
		isLatest             bool
	)

	err := row.Scan(
		&id, &customerID, &score,
		&factors.PaymentHistory, &factors.CreditUtilization, &factors.CreditHistoryLength,
		&factors.CreditMix, &factors.NewCredit,
		&behavioralMultiplier, &rangeMin, &rangeMax,
		&totalCreditLimit, &totalOutstanding, &totalAccounts, &activeAccounts,
		&utilizationPercent, &gradeStr, &categoryStr, &scoreDate, &isLatest,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan score card: %w", err)
	}

	return reconstructScoreCard(
		id, customerID, score, factors, behavioralMultiplier, rangeMin, rangeMax,
		totalCreditLimit, totalOutstanding, totalAccounts, activeAccounts,
		utilizationPercent, gradeStr, categoryStr, scoreDate, isLatest,
	)
}

func (r *ScoreRepository) scanScoreCardFromRows(rows pgx.Rows) (*model.ScoreCard, error) {
	var (
		id                   uuid.UUID
		customerID           uuid.UUID
		score                int
		factors              model.FactorScores
		behavioralMultiplier float64
		rangeMin             int
		rangeMax             int
		totalCreditLimit     decimal.Decimal
		totalOutstanding     decimal.Decimal
		totalAccounts        int
		activeAccounts       int
		utilizationPercent   float64
		gradeStr             string
		categoryStr          string
		scoreDate            time.Time
		isLatest             bool
	)

	err := rows.Scan(
		&id, &customerID, &score,
		&factors.PaymentHistory, &factors.CreditUtilization, &factors.CreditHistoryLength,
		&factors.CreditMix, &factors.NewCredit,
		&behavioralMultiplier, &rangeMin, &rangeMax,
		&totalCreditLimit, &totalOutstanding, &totalAccounts, &activeAccounts,
		&utilizationPercent, &gradeStr, &categoryStr, &scoreDate, &isLatest,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan score card row: %w", err)
	}

	return reconstructScoreCard(
		id, customerID, score, factors, behavioralMultiplier, rangeMin, rangeMax,
		totalCreditLimit, totalOutstanding, totalAccounts, activeAccounts,
		utilizationPercent, gradeStr, categoryStr, scoreDate, isLatest,
	)
}

func reconstructScoreCard(
	id, customerID uuid.UUID,
	score int,
	factors model.FactorScores,
	behavioralMultiplier float64,
	rangeMin, rangeMax int,
	totalCreditLimit, totalOutstanding decimal.Decimal,
	totalAccounts, activeAccounts int,
	utilizationPercent float64,
	gradeStr, categoryStr string,
	scoreDate time.Time,
	isLatest bool,
) (*model.ScoreCard, error) {
	grade, err := valueobject.GradeFromString(gradeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grade: %w", err)
	}

	category, err := valueobject.ScoreCategoryFromString(categoryStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}

	metrics := model.ScoreMetrics{
		TotalCreditLimit:   totalCreditLimit,
		TotalOutstanding:   totalOutstanding,
		TotalAccounts:      totalAccounts,
		ActiveAccounts:     activeAccounts,
		UtilizationPercent: utilizationPercent,
	}

	return model.ReconstructScoreCard(
		id, customerID, score, factors, behavioralMultiplier,
		rangeMin, rangeMax, metrics, grade, category, scoreDate, isLatest,
	), nil
}
