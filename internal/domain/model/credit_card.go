package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// CreditCard is a revolving credit line reported to the bureau. Only the last
// four digits of the card number are ever stored. Cards drive the utilization
// factor and most behavioral signals.
type CreditCard struct {
	issuedDate     time.Time
	expiryDate     time.Time
	createdAt      time.Time
	bankName       string
	lastFour       string
	creditLimit    decimal.Decimal
	currentBalance decimal.Decimal
	cardType       valueobject.CardType
	customerID     uuid.UUID
	id             uuid.UUID
	isActive       bool
}

// NewCreditCard creates a reported credit card.
func NewCreditCard(
	customerID uuid.UUID,
	bankName string,
	lastFour string,
	cardType valueobject.CardType,
	creditLimit decimal.Decimal,
	currentBalance decimal.Decimal,
	issuedDate time.Time,
	expiryDate time.Time,
) (*CreditCard, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customer ID is required")
	}
	if strings.TrimSpace(bankName) == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	if len(lastFour) != 4 {
		return nil, fmt.Errorf("card last four must be exactly 4 digits, got %q", lastFour)
	}
	if cardType.IsZero() {
		return nil, fmt.Errorf("card type is required")
	}
	if creditLimit.IsNegative() {
		return nil, fmt.Errorf("credit limit must not be negative")
	}
	if issuedDate.IsZero() {
		return nil, fmt.Errorf("card issued date is required")
	}

	return &CreditCard{
		id:             uuid.New(),
		customerID:     customerID,
		bankName:       strings.TrimSpace(bankName),
		lastFour:       lastFour,
		cardType:       cardType,
		creditLimit:    creditLimit,
		currentBalance: currentBalance,
		issuedDate:     issuedDate,
		expiryDate:     expiryDate,
		isActive:       true,
		createdAt:      time.Now().UTC(),
	}, nil
}

// ReconstructCreditCard rebuilds a CreditCard from persisted data.
func ReconstructCreditCard(
	id, customerID uuid.UUID,
	bankName, lastFour string,
	cardType valueobject.CardType,
	creditLimit, currentBalance decimal.Decimal,
	issuedDate, expiryDate time.Time,
	isActive bool,
	createdAt time.Time,
) *CreditCard {
	return &CreditCard{
		id:             id,
		customerID:     customerID,
		bankName:       bankName,
		lastFour:       lastFour,
		cardType:       cardType,
		creditLimit:    creditLimit,
		currentBalance: currentBalance,
		issuedDate:     issuedDate,
		expiryDate:     expiryDate,
		isActive:       isActive,
		createdAt:      createdAt,
	}
}

// AvailableCredit is the unused portion of the limit.
func (c *CreditCard) AvailableCredit() decimal.Decimal {
	return c.creditLimit.Sub(c.currentBalance)
}

// Deactivate marks the card closed.
func (c *CreditCard) Deactivate() {
	c.isActive = false
}

// --- Accessors ---

func (c *CreditCard) ID() uuid.UUID                   { return c.id }
func (c *CreditCard) CustomerID() uuid.UUID           { return c.customerID }
func (c *CreditCard) BankName() string                { return c.bankName }
func (c *CreditCard) LastFour() string                { return c.lastFour }
func (c *CreditCard) CardType() valueobject.CardType  { return c.cardType }
func (c *CreditCard) CreditLimit() decimal.Decimal    { return c.creditLimit }
func (c *CreditCard) CurrentBalance() decimal.Decimal { return c.currentBalance }
func (c *CreditCard) IssuedDate() time.Time           { return c.issuedDate }
func (c *CreditCard) ExpiryDate() time.Time           { return c.expiryDate }
func (c *CreditCard) IsActive() bool                  { return c.isActive }
func (c *CreditCard) CreatedAt() time.Time            { return c.createdAt }
