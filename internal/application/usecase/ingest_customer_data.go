package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/port"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// IngestCustomerData persists a bulk payload of customer records. The
// customer is created on first sight of the PAN and reused afterwards;
// accounts, cards, loans, and payments always append in one transaction.
type IngestCustomerData struct {
	customers port.CustomerRepository
	history   port.HistoryRepository
	publisher port.EventPublisher
}

// NewIngestCustomerData creates the IngestCustomerData use case.
func NewIngestCustomerData(
	customers port.CustomerRepository,
	history port.HistoryRepository,
	publisher port.EventPublisher,
) *IngestCustomerData {
	return &IngestCustomerData{
		customers: customers,
		history:   history,
		publisher: publisher,
	}
}

// Execute resolves or creates the customer, then appends the payload's
// records to their file.
func (uc *IngestCustomerData) Execute(ctx context.Context, req dto.IngestCustomerDataRequest) (dto.IngestCustomerDataResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.IngestCustomerDataResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	pan, err := valueobject.NewPAN(req.Customer.PANCardNumber)
	if err != nil {
		return dto.IngestCustomerDataResponse{}, fmt.Errorf("%w: invalid PAN: %v", ErrInvalidRequest, err)
	}

	customer, created, err := uc.resolveCustomer(ctx, pan, req.Customer)
	if err != nil {
		return dto.IngestCustomerDataResponse{}, err
	}

	accounts := make([]*model.BankAccount, 0, len(req.BankAccounts))
	for i, payload := range req.BankAccounts {
		account, err := payload.ToModel(customer.ID())
		if err != nil {
			return dto.IngestCustomerDataResponse{}, fmt.Errorf("%w: bank account %d: %v", ErrInvalidRequest, i, err)
		}
		accounts = append(accounts, account)
	}

	cards := make([]*model.CreditCard, 0, len(req.CreditCards))
	for i, payload := range req.CreditCards {
		card, err := payload.ToModel(customer.ID())
		if err != nil {
			return dto.IngestCustomerDataResponse{}, fmt.Errorf("%w: credit card %d: %v", ErrInvalidRequest, i, err)
		}
		cards = append(cards, card)
	}

	loans := make([]*model.Loan, 0, len(req.Loans))
	for i, payload := range req.Loans {
		loan, err := payload.ToModel(customer.ID())
		if err != nil {
			return dto.IngestCustomerDataResponse{}, fmt.Errorf("%w: loan %d: %v", ErrInvalidRequest, i, err)
		}
		loans = append(loans, loan)
	}

	payments := make([]*model.PaymentRecord, 0, len(req.PaymentHistory))
	for i, payload := range req.PaymentHistory {
		payment, err := payload.ToModel(customer.ID())
		if err != nil {
			return dto.IngestCustomerDataResponse{}, fmt.Errorf("%w: payment record %d: %v", ErrInvalidRequest, i, err)
		}
		payments = append(payments, payment)
	}

	if err := uc.history.AppendRecords(ctx, customer.ID(), accounts, cards, loans, payments); err != nil {
		return dto.IngestCustomerDataResponse{}, fmt.Errorf("failed to persist records: %w", err)
	}

	if events := customer.DomainEvents(); len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			return dto.IngestCustomerDataResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	return dto.IngestCustomerDataResponse{
		Customer:        dto.FromCustomer(customer),
		CustomerCreated: created,
		BankAccounts:    len(accounts),
		CreditCards:     len(cards),
		Loans:           len(loans),
		Payments:        len(payments),
	}, nil
}

// resolveCustomer finds the customer by PAN or creates them from the payload.
// Payload fields of an existing customer are left untouched.
func (uc *IngestCustomerData) resolveCustomer(
	ctx context.Context,
	pan valueobject.PAN,
	payload dto.CustomerPayload,
) (*model.Customer, bool, error) {
	existing, err := uc.customers.FindByPAN(ctx, pan)
	if err != nil {
		return nil, false, fmt.Errorf("customer lookup failed: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	customer, err := model.NewCustomer(
		pan,
		payload.FullName,
		payload.DateOfBirth,
		payload.PhoneNumber,
		payload.Email,
		payload.Address,
	)
	if err != nil {
		return nil, false, fmt.Errorf("%w: invalid customer: %v", ErrInvalidRequest, err)
	}

	if err := uc.customers.Save(ctx, customer); err != nil {
		return nil, false, fmt.Errorf("failed to save customer: %w", err)
	}
	return customer, true, nil
}
