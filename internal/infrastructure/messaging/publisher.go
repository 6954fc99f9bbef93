package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/cibil-service/pkg/events"
)

// OutboxWriter stores entries for asynchronous delivery.
type OutboxWriter interface {
	Enqueue(ctx context.Context, entries ...events.OutboxEntry) error
}

// OutboxPublisher implements port.EventPublisher by writing events to the
// transactional outbox. The relay delivers them to Kafka out of band, so a
// successful Publish means the events are durable, not yet on the wire.
type OutboxPublisher struct {
	outbox OutboxWriter
	logger *slog.Logger
}

// NewOutboxPublisher creates a publisher backed by the given outbox.
func NewOutboxPublisher(outbox OutboxWriter, logger *slog.Logger) *OutboxPublisher {
	return &OutboxPublisher{
		outbox: outbox,
		logger: logger,
	}
}

// Publish enqueues domain events for delivery.
func (p *OutboxPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	entries := make([]events.OutboxEntry, 0, len(domainEvents))
	for _, evt := range domainEvents {
		p.logger.DebugContext(ctx, "enqueueing event",
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID()),
		)
		entries = append(entries, events.NewOutboxEntry(evt))
	}

	if err := p.outbox.Enqueue(ctx, entries...); err != nil {
		return fmt.Errorf("failed to enqueue events: %w", err)
	}

	return nil
}
