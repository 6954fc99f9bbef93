package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// BankAccount is a deposit account reported to the bureau. Accounts feed the
// credit-mix and history-length factors and the dashboard summary.
type BankAccount struct {
	openedDate     time.Time
	createdAt      time.Time
	bankName       string
	accountNumber  string
	ifscCode       string
	currentBalance decimal.Decimal
	accountType    valueobject.AccountType
	customerID     uuid.UUID
	id             uuid.UUID
	isActive       bool
}

// NewBankAccount creates a reported bank account.
func NewBankAccount(
	customerID uuid.UUID,
	bankName string,
	accountNumber string,
	accountType valueobject.AccountType,
	ifscCode string,
	openedDate time.Time,
	currentBalance decimal.Decimal,
) (*BankAccount, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customer ID is required")
	}
	if strings.TrimSpace(bankName) == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	if strings.TrimSpace(accountNumber) == "" {
		return nil, fmt.Errorf("account number is required")
	}
	if accountType.IsZero() {
		return nil, fmt.Errorf("account type is required")
	}
	if openedDate.IsZero() {
		return nil, fmt.Errorf("account opened date is required")
	}

	return &BankAccount{
		id:             uuid.New(),
		customerID:     customerID,
		bankName:       strings.TrimSpace(bankName),
		accountNumber:  strings.TrimSpace(accountNumber),
		accountType:    accountType,
		ifscCode:       strings.ToUpper(strings.TrimSpace(ifscCode)),
		openedDate:     openedDate,
		currentBalance: currentBalance,
		isActive:       true,
		createdAt:      time.Now().UTC(),
	}, nil
}

// ReconstructBankAccount rebuilds a BankAccount from persisted data.
func ReconstructBankAccount(
	id, customerID uuid.UUID,
	bankName, accountNumber string,
	accountType valueobject.AccountType,
	ifscCode string,
	openedDate time.Time,
	currentBalance decimal.Decimal,
	isActive bool,
	createdAt time.Time,
) *BankAccount {
	return &BankAccount{
		id:             id,
		customerID:     customerID,
		bankName:       bankName,
		accountNumber:  accountNumber,
		accountType:    accountType,
		ifscCode:       ifscCode,
		openedDate:     openedDate,
		currentBalance: currentBalance,
		isActive:       isActive,
		createdAt:      createdAt,
	}
}

// Close marks the account inactive.
func (a *BankAccount) Close() {
	a.isActive = false
}

// --- Accessors ---

func (a *BankAccount) ID() uuid.UUID                        { return a.id }
func (a *BankAccount) CustomerID() uuid.UUID                { return a.customerID }
func (a *BankAccount) BankName() string                     { return a.bankName }
func (a *BankAccount) AccountNumber() string                { return a.accountNumber }
func (a *BankAccount) AccountType() valueobject.AccountType { return a.accountType }
func (a *BankAccount) IFSCCode() string                     { return a.ifscCode }
func (a *BankAccount) OpenedDate() time.Time                { return a.openedDate }
func (a *BankAccount) CurrentBalance() decimal.Decimal      { return a.currentBalance }
func (a *BankAccount) IsActive() bool                       { return a.isActive }
func (a *BankAccount) CreatedAt() time.Time                 { return a.createdAt }
