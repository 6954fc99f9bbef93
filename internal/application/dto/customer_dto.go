package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// CustomerResponse is the output DTO for a customer record.
type CustomerResponse struct {
	ID            uuid.UUID `json:"id"`
	PANCardNumber string    `json:"pan_card_number"`
	FullName      string    `json:"full_name"`
	DateOfBirth   string    `json:"date_of_birth"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromCustomer maps a customer aggregate to its response DTO. The date of
// birth travels date-only.
func FromCustomer(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID(),
		PANCardNumber: c.PAN().String(),
		FullName:      c.FullName(),
		DateOfBirth:   c.DateOfBirth().Format("2006-01-02"),
		PhoneNumber:   c.PhoneNumber(),
		Email:         c.Email(),
		Address:       c.Address(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

// CustomerPayload is the customer block of a bulk ingest request.
type CustomerPayload struct {
	PANCardNumber string    `json:"pan_card_number"`
	FullName      string    `json:"full_name"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
}

// BankAccountPayload is one reported bank account in a bulk ingest request.
type BankAccountPayload struct {
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number"`
	AccountType    string          `json:"account_type"`
	IFSCCode       string          `json:"ifsc_code"`
	OpenedDate     time.Time       `json:"opened_date"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// ToModel builds the domain entity for the given customer.
func (p BankAccountPayload) ToModel(customerID uuid.UUID) (*model.BankAccount, error) {
	accountType, err := valueobject.NewAccountType(p.AccountType)
	if err != nil {
		return nil, err
	}
	return model.NewBankAccount(
		customerID,
		p.BankName,
		p.AccountNumber,
		accountType,
		p.IFSCCode,
		p.OpenedDate,
		p.CurrentBalance,
	)
}

// CreditCardPayload is one reported credit card in a bulk ingest request.
type CreditCardPayload struct {
	BankName       string          `json:"bank_name"`
	LastFour       string          `json:"card_last_four"`
	CardType       string          `json:"card_type"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	IssuedDate     time.Time       `json:"issued_date"`
	ExpiryDate     time.Time       `json:"expiry_date"`
}

// ToModel builds the domain entity for the given customer.
func (p CreditCardPayload) ToModel(customerID uuid.UUID) (*model.CreditCard, error) {
	cardType, err := valueobject.NewCardType(p.CardType)
	if err != nil {
		return nil, err
	}
	return model.NewCreditCard(
		customerID,
		p.BankName,
		p.LastFour,
		cardType,
		p.CreditLimit,
		p.CurrentBalance,
		p.IssuedDate,
		p.ExpiryDate,
	)
}

// LoanPayload is one reported loan in a bulk ingest request.
type LoanPayload struct {
	BankName          string          `json:"bank_name"`
	LoanAccountNumber string          `json:"loan_account_number"`
	LoanType          string          `json:"loan_type"`
	PrincipalAmount   decimal.Decimal `json:"principal_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	EMIAmount         decimal.Decimal `json:"emi_amount"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	TenureMonths      int             `json:"tenure_months"`
	RemainingTenure   int             `json:"remaining_tenure"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	Status            string          `json:"status,omitempty"`
}

// ToModel builds the domain entity for the given customer. Loans ingest as
// ACTIVE unless the payload carries an explicit status.
func (p LoanPayload) ToModel(customerID uuid.UUID) (*model.Loan, error) {
	loanType, err := valueobject.NewLoanType(p.LoanType)
	if err != nil {
		return nil, err
	}
	loan, err := model.NewLoan(
		customerID,
		p.BankName,
		p.LoanAccountNumber,
		loanType,
		p.PrincipalAmount,
		p.OutstandingAmount,
		p.EMIAmount,
		p.InterestRate,
		p.TenureMonths,
		p.RemainingTenure,
		p.StartDate,
		p.EndDate,
	)
	if err != nil {
		return nil, err
	}
	if p.Status != "" {
		status, err := valueobject.NewLoanStatus(p.Status)
		if err != nil {
			return nil, err
		}
		if err := loan.MarkStatus(status); err != nil {
			return nil, err
		}
	}
	return loan, nil
}

// PaymentRecordPayload is one payment history entry in a bulk ingest request.
// PaymentDate is nil for missed or defaulted obligations.
type PaymentRecordPayload struct {
	PaymentType string          `json:"payment_type"`
	Status      string          `json:"status"`
	DueDate     time.Time       `json:"due_date"`
	PaymentDate *time.Time      `json:"payment_date"`
	DueAmount   decimal.Decimal `json:"due_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	DaysLate    int             `json:"days_late"`
}

// ToModel builds the domain entity for the given customer. Ingested payments
// are not linked to a specific loan or card.
func (p PaymentRecordPayload) ToModel(customerID uuid.UUID) (*model.PaymentRecord, error) {
	paymentType, err := valueobject.NewPaymentType(p.PaymentType)
	if err != nil {
		return nil, err
	}
	status, err := valueobject.NewPaymentStatus(p.Status)
	if err != nil {
		return nil, err
	}
	return model.NewPaymentRecord(
		customerID,
		nil, nil,
		paymentType,
		status,
		p.DueDate,
		p.PaymentDate,
		p.DueAmount,
		p.PaidAmount,
		p.DaysLate,
	)
}

// IngestCustomerDataRequest is the bulk ingest payload: one customer plus any
// number of accounts, cards, loans, and payment records.
type IngestCustomerDataRequest struct {
	Customer       CustomerPayload        `json:"customer"`
	BankAccounts   []BankAccountPayload   `json:"bank_accounts"`
	CreditCards    []CreditCardPayload    `json:"credit_cards"`
	Loans          []LoanPayload          `json:"loans"`
	PaymentHistory []PaymentRecordPayload `json:"payment_history"`
}

// Validate rejects payloads that cannot identify a customer.
func (r IngestCustomerDataRequest) Validate() error {
	if r.Customer.PANCardNumber == "" {
		return fmt.Errorf("customer pan_card_number is required")
	}
	return nil
}

// IngestCustomerDataResponse reports what a bulk ingest created.
type IngestCustomerDataResponse struct {
	Customer        CustomerResponse `json:"customer"`
	CustomerCreated bool             `json:"customer_created"`
	BankAccounts    int              `json:"bank_accounts_added"`
	CreditCards     int              `json:"credit_cards_added"`
	Loans           int              `json:"loans_added"`
	Payments        int              `json:"payments_added"`
}
