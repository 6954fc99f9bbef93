package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
	"github.com/bibbank/cibil-service/pkg/events"
)

// CustomerRepository defines persistence operations for customers. Lookups
// return nil without error when no customer matches; errors signal storage
// failures only.
type CustomerRepository interface {
	// Save persists a customer (insert or update).
	Save(ctx context.Context, customer *model.Customer) error
	// FindByID retrieves a customer by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	// FindByPAN retrieves a customer by PAN card number.
	FindByPAN(ctx context.Context, pan valueobject.PAN) (*model.Customer, error)
}

// HistoryRepository loads and appends the financial records a score is
// computed from. Appends never overwrite existing records; a customer's
// history only grows.
type HistoryRepository interface {
	// LoadByCustomer assembles the full credit history for a customer as
	// observed at the given time.
	LoadByCustomer(ctx context.Context, customerID uuid.UUID, asOf time.Time) (*model.CreditHistory, error)
	// AppendRecords persists new accounts, cards, loans, and payments for a
	// customer in a single transaction.
	AppendRecords(ctx context.Context, customerID uuid.UUID, accounts []*model.BankAccount, cards []*model.CreditCard, loans []*model.Loan, payments []*model.PaymentRecord) error
}

// ScoreRepository defines persistence operations for score cards.
type ScoreRepository interface {
	// SaveAsLatest persists a score card and marks it as the customer's
	// latest, demoting any previous latest card in the same transaction.
	SaveAsLatest(ctx context.Context, card *model.ScoreCard) error
	// FindLatestByCustomer retrieves the customer's current score card, or
	// nil without error when the customer has never been scored.
	FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*model.ScoreCard, error)
	// ListByCustomer returns score cards for a customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*model.ScoreCard, error)
}

// ReportRepository defines persistence operations for credit reports.
// Reports are write-once; the narrative travels back to the caller on the
// generate response rather than through a read API.
type ReportRepository interface {
	// Save persists a generated credit report.
	Save(ctx context.Context, report *model.CreditReport) error
}

// EventPublisher hands domain events to the delivery pipeline. Routing,
// topic, and delivery guarantees are adapter concerns fixed at construction.
type EventPublisher interface {
	Publish(ctx context.Context, events ...events.DomainEvent) error
}
