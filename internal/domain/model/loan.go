package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// Loan is an installment credit facility reported to the bureau. Loan types
// and statuses feed the credit-mix factor; outstanding amounts feed the
// dashboard and score card metrics.
type Loan struct {
	startDate         time.Time
	endDate           time.Time
	createdAt         time.Time
	bankName          string
	loanAccountNumber string
	principalAmount   decimal.Decimal
	outstandingAmount decimal.Decimal
	emiAmount         decimal.Decimal
	interestRate      decimal.Decimal
	loanType          valueobject.LoanType
	status            valueobject.LoanStatus
	customerID        uuid.UUID
	id                uuid.UUID
	tenureMonths      int
	remainingTenure   int
}

// NewLoan creates a reported loan in ACTIVE status.
func NewLoan(
	customerID uuid.UUID,
	bankName string,
	loanAccountNumber string,
	loanType valueobject.LoanType,
	principalAmount decimal.Decimal,
	outstandingAmount decimal.Decimal,
	emiAmount decimal.Decimal,
	interestRate decimal.Decimal,
	tenureMonths int,
	remainingTenure int,
	startDate time.Time,
	endDate time.Time,
) (*Loan, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customer ID is required")
	}
	if strings.TrimSpace(bankName) == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	if strings.TrimSpace(loanAccountNumber) == "" {
		return nil, fmt.Errorf("loan account number is required")
	}
	if loanType.IsZero() {
		return nil, fmt.Errorf("loan type is required")
	}
	if principalAmount.IsNegative() || principalAmount.IsZero() {
		return nil, fmt.Errorf("principal amount must be positive")
	}
	if outstandingAmount.IsNegative() {
		return nil, fmt.Errorf("outstanding amount must not be negative")
	}
	if tenureMonths <= 0 {
		return nil, fmt.Errorf("tenure months must be positive")
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("loan start date is required")
	}

	return &Loan{
		id:                uuid.New(),
		customerID:        customerID,
		bankName:          strings.TrimSpace(bankName),
		loanAccountNumber: strings.TrimSpace(loanAccountNumber),
		loanType:          loanType,
		principalAmount:   principalAmount,
		outstandingAmount: outstandingAmount,
		emiAmount:         emiAmount,
		interestRate:      interestRate,
		tenureMonths:      tenureMonths,
		remainingTenure:   remainingTenure,
		startDate:         startDate,
		endDate:           endDate,
		status:            valueobject.LoanStatusActive,
		createdAt:         time.Now().UTC(),
	}, nil
}

// ReconstructLoan rebuilds a Loan from persisted data.
func ReconstructLoan(
	id, customerID uuid.UUID,
	bankName, loanAccountNumber string,
	loanType valueobject.LoanType,
	principalAmount, outstandingAmount, emiAmount, interestRate decimal.Decimal,
	tenureMonths, remainingTenure int,
	startDate, endDate time.Time,
	status valueobject.LoanStatus,
	createdAt time.Time,
) *Loan {
	return &Loan{
		id:                id,
		customerID:        customerID,
		bankName:          bankName,
		loanAccountNumber: loanAccountNumber,
		loanType:          loanType,
		principalAmount:   principalAmount,
		outstandingAmount: outstandingAmount,
		emiAmount:         emiAmount,
		interestRate:      interestRate,
		tenureMonths:      tenureMonths,
		remainingTenure:   remainingTenure,
		startDate:         startDate,
		endDate:           endDate,
		status:            status,
		createdAt:         createdAt,
	}
}

// MarkStatus transitions the loan to the given status.
func (l *Loan) MarkStatus(status valueobject.LoanStatus) error {
	if status.IsZero() {
		return fmt.Errorf("loan status is required")
	}
	l.status = status
	return nil
}

// --- Accessors ---

func (l *Loan) ID() uuid.UUID                      { return l.id }
func (l *Loan) CustomerID() uuid.UUID              { return l.customerID }
func (l *Loan) BankName() string                   { return l.bankName }
func (l *Loan) LoanAccountNumber() string          { return l.loanAccountNumber }
func (l *Loan) LoanType() valueobject.LoanType     { return l.loanType }
func (l *Loan) PrincipalAmount() decimal.Decimal   { return l.principalAmount }
func (l *Loan) OutstandingAmount() decimal.Decimal { return l.outstandingAmount }
func (l *Loan) EMIAmount() decimal.Decimal         { return l.emiAmount }
func (l *Loan) InterestRate() decimal.Decimal      { return l.interestRate }
func (l *Loan) TenureMonths() int                  { return l.tenureMonths }
func (l *Loan) RemainingTenure() int               { return l.remainingTenure }
func (l *Loan) StartDate() time.Time               { return l.startDate }
func (l *Loan) EndDate() time.Time                 { return l.endDate }
func (l *Loan) Status() valueobject.LoanStatus     { return l.status }
func (l *Loan) CreatedAt() time.Time               { return l.createdAt }
