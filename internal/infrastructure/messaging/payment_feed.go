package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/port"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
	"github.com/bibbank/cibil-service/pkg/kafka"
)

// paymentFeedEnvelope is the wire shape member institutions publish on the
// payment feed topic.
type paymentFeedEnvelope struct {
	PANCardNumber string                   `json:"pan_card_number"`
	Payment       dto.PaymentRecordPayload `json:"payment"`
}

// PaymentFeedHandler consumes payment records streamed by member
// institutions and appends them to the owning customer's history. Malformed
// messages and unknown PANs are logged and dropped so one bad record cannot
// wedge the partition; storage failures surface as errors and are
// redelivered.
type PaymentFeedHandler struct {
	customers port.CustomerRepository
	histories port.HistoryRepository
	logger    *slog.Logger
}

// NewPaymentFeedHandler creates a handler over the customer and history
// stores.
func NewPaymentFeedHandler(customers port.CustomerRepository, histories port.HistoryRepository, logger *slog.Logger) *PaymentFeedHandler {
	return &PaymentFeedHandler{
		customers: customers,
		histories: histories,
		logger:    logger,
	}
}

// Handle implements kafka.Handler.
func (h *PaymentFeedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var envelope paymentFeedEnvelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		h.logger.WarnContext(ctx, "dropping malformed payment feed message",
			slog.String("error", err.Error()),
		)
		return nil
	}

	pan, err := valueobject.NewPAN(envelope.PANCardNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "dropping payment feed message with invalid PAN",
			slog.String("error", err.Error()),
		)
		return nil
	}

	customer, err := h.customers.FindByPAN(ctx, pan)
	if err != nil {
		return fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		h.logger.WarnContext(ctx, "dropping payment for unknown customer",
			slog.String("pan", pan.Masked()),
		)
		return nil
	}

	payment, err := envelope.Payment.ToModel(customer.ID())
	if err != nil {
		h.logger.WarnContext(ctx, "dropping invalid payment record",
			slog.String("pan", pan.Masked()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	if err := h.histories.AppendRecords(ctx, customer.ID(), nil, nil, nil, []*model.PaymentRecord{payment}); err != nil {
		return fmt.Errorf("failed to append payment record: %w", err)
	}

	h.logger.InfoContext(ctx, "payment record ingested from feed",
		slog.String("pan", pan.Masked()),
		slog.String("payment_type", payment.PaymentType().String()),
	)

	return nil
}
