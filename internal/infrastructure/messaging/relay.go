package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bibbank/cibil-service/pkg/events"
	"github.com/bibbank/cibil-service/pkg/kafka"
)

// EventProducer publishes messages to a topic. *kafka.Producer satisfies
// it.
type EventProducer interface {
	Publish(ctx context.Context, topic string, messages ...kafka.Message) error
}

// OutboxRelay drains the outbox and delivers entries to Kafka. Entries are
// marked published only after the producer acknowledges the batch, so a
// crash between the two steps re-delivers rather than drops.
type OutboxRelay struct {
	outbox    events.OutboxRepository
	producer  EventProducer
	topic     string
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

// NewOutboxRelay creates a relay that polls the outbox on the given
// interval and publishes to the given topic.
func NewOutboxRelay(
	outbox events.OutboxRepository,
	producer EventProducer,
	topic string,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelay {
	return &OutboxRelay{
		outbox:    outbox,
		producer:  producer,
		topic:     topic,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run polls the outbox until the context is canceled. Drain failures are
// logged and retried on the next tick.
func (r *OutboxRelay) Run(ctx context.Context) error {
	r.logger.Info("outbox relay starting",
		slog.String("topic", r.topic),
		slog.Duration("interval", r.interval),
		slog.Int("batch_size", r.batchSize),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopping")
			return nil
		case <-ticker.C:
			if err := r.Drain(ctx); err != nil {
				r.logger.ErrorContext(ctx, "outbox drain failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Drain publishes unpublished entries batch by batch until the backlog is
// empty. Run calls it on every tick; it can also be called directly to
// flush synchronously.
func (r *OutboxRelay) Drain(ctx context.Context) error {
	for {
		entries, err := r.outbox.FetchUnpublished(ctx, r.batchSize)
		if err != nil {
			return fmt.Errorf("failed to fetch outbox entries: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		messages := make([]kafka.Message, 0, len(entries))
		ids := make([]string, 0, len(entries))
		for _, entry := range entries {
			messages = append(messages, kafka.Message{
				Key:   []byte(entry.AggregateID),
				Value: entry.Payload,
				Headers: map[string]string{
					"event_id":       entry.ID,
					"event_type":     entry.EventType,
					"aggregate_type": entry.AggregateType,
				},
			})
			ids = append(ids, entry.ID)
		}

		if err := r.producer.Publish(ctx, r.topic, messages...); err != nil {
			return fmt.Errorf("failed to publish outbox batch: %w", err)
		}

		if err := r.outbox.MarkPublished(ctx, ids); err != nil {
			return fmt.Errorf("failed to mark outbox entries published: %w", err)
		}

		r.logger.DebugContext(ctx, "outbox batch published",
			slog.String("topic", r.topic),
			slog.Int("count", len(entries)),
		)

		if len(entries) < r.batchSize {
			return nil
		}
	}
}
