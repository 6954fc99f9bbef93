package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/cibil-service/pkg/events"
)

// OutboxRepository persists domain events for asynchronous delivery. Enqueue
// is called by the event publisher adapter on the write path; the relay
// drains entries through FetchUnpublished and MarkPublished.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

// NewOutboxRepository creates a new PostgreSQL-backed OutboxRepository.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// Enqueue stores outbox entries in a single transaction.
func (r *OutboxRepository) Enqueue(ctx context.Context, entries ...events.OutboxEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertSQL := `
		INSERT INTO outbox (
			id, aggregate_id, aggregate_type, event_type, payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, entry := range entries {
		_, err := tx.Exec(ctx, insertSQL,
			entry.ID,
			entry.AggregateID,
			entry.AggregateType,
			entry.EventType,
			entry.Payload,
			entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert outbox entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FetchUnpublished returns up to batchSize entries that have not been
// delivered yet, oldest first. The relay is the only reader, so rows are
// not locked.
func (r *OutboxRepository) FetchUnpublished(ctx context.Context, batchSize int) ([]events.OutboxEntry, error) {
	query := `
		SELECT id, aggregate_id, aggregate_type, event_type, payload, created_at, published_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query outbox: %w", err)
	}
	defer rows.Close()

	var entries []events.OutboxEntry
	for rows.Next() {
		var (
			id            uuid.UUID
			aggregateID   string
			aggregateType string
			eventType     string
			payload       []byte
			createdAt     time.Time
			publishedAt   *time.Time
		)

		err := rows.Scan(&id, &aggregateID, &aggregateType, &eventType, &payload, &createdAt, &publishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox entry: %w", err)
		}

		entries = append(entries, events.OutboxEntry{
			ID:            id.String(),
			AggregateID:   aggregateID,
			AggregateType: aggregateType,
			EventType:     eventType,
			Payload:       payload,
			CreatedAt:     createdAt,
			PublishedAt:   publishedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outbox entries: %w", err)
	}

	return entries, nil
}

// MarkPublished stamps the given entries as delivered.
func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE outbox
		SET published_at = now()
		WHERE id = ANY($1)
	`

	_, err := r.pool.Exec(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to mark outbox entries published: %w", err)
	}

	return nil
}
