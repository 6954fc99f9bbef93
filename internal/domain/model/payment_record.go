package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// PaymentRecord is a single settled or unsettled obligation in a customer's
// payment history. It may reference the loan or card it paid down. Payment
// records are the raw material of the payment-history factor and the
// consistency signal.
type PaymentRecord struct {
	dueDate     time.Time
	paymentDate *time.Time
	createdAt   time.Time
	dueAmount   decimal.Decimal
	paidAmount  decimal.Decimal
	paymentType valueobject.PaymentType
	status      valueobject.PaymentStatus
	loanID      *uuid.UUID
	cardID      *uuid.UUID
	customerID  uuid.UUID
	id          uuid.UUID
	daysLate    int
}

// NewPaymentRecord creates a payment history entry. paymentDate is nil for
// missed or defaulted obligations.
func NewPaymentRecord(
	customerID uuid.UUID,
	loanID, cardID *uuid.UUID,
	paymentType valueobject.PaymentType,
	status valueobject.PaymentStatus,
	dueDate time.Time,
	paymentDate *time.Time,
	dueAmount, paidAmount decimal.Decimal,
	daysLate int,
) (*PaymentRecord, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customer ID is required")
	}
	if paymentType.IsZero() {
		return nil, fmt.Errorf("payment type is required")
	}
	if status.IsZero() {
		return nil, fmt.Errorf("payment status is required")
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}
	if dueAmount.IsNegative() {
		return nil, fmt.Errorf("due amount must not be negative")
	}
	if daysLate < 0 {
		return nil, fmt.Errorf("days late must not be negative")
	}

	return &PaymentRecord{
		id:          uuid.New(),
		customerID:  customerID,
		loanID:      loanID,
		cardID:      cardID,
		paymentType: paymentType,
		status:      status,
		dueDate:     dueDate,
		paymentDate: paymentDate,
		dueAmount:   dueAmount,
		paidAmount:  paidAmount,
		daysLate:    daysLate,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructPaymentRecord rebuilds a PaymentRecord from persisted data.
func ReconstructPaymentRecord(
	id, customerID uuid.UUID,
	loanID, cardID *uuid.UUID,
	paymentType valueobject.PaymentType,
	status valueobject.PaymentStatus,
	dueDate time.Time,
	paymentDate *time.Time,
	dueAmount, paidAmount decimal.Decimal,
	daysLate int,
	createdAt time.Time,
) *PaymentRecord {
	return &PaymentRecord{
		id:          id,
		customerID:  customerID,
		loanID:      loanID,
		cardID:      cardID,
		paymentType: paymentType,
		status:      status,
		dueDate:     dueDate,
		paymentDate: paymentDate,
		dueAmount:   dueAmount,
		paidAmount:  paidAmount,
		daysLate:    daysLate,
		createdAt:   createdAt,
	}
}

// --- Accessors ---

func (p *PaymentRecord) ID() uuid.UUID                        { return p.id }
func (p *PaymentRecord) CustomerID() uuid.UUID                { return p.customerID }
func (p *PaymentRecord) LoanID() *uuid.UUID                   { return p.loanID }
func (p *PaymentRecord) CardID() *uuid.UUID                   { return p.cardID }
func (p *PaymentRecord) PaymentType() valueobject.PaymentType { return p.paymentType }
func (p *PaymentRecord) Status() valueobject.PaymentStatus    { return p.status }
func (p *PaymentRecord) DueDate() time.Time                   { return p.dueDate }
func (p *PaymentRecord) PaymentDate() *time.Time              { return p.paymentDate }
func (p *PaymentRecord) DueAmount() decimal.Decimal           { return p.dueAmount }
func (p *PaymentRecord) PaidAmount() decimal.Decimal          { return p.paidAmount }
func (p *PaymentRecord) DaysLate() int                        { return p.daysLate }
func (p *PaymentRecord) CreatedAt() time.Time                 { return p.createdAt }
