package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/cibil-service/internal/domain/model"
)

// GetDashboardRequest is the input DTO for the customer dashboard.
type GetDashboardRequest struct {
	PAN string `json:"pan_card_number"`
}

// DashboardSummary carries the aggregate statistics of a customer's file.
// Limits and balances are active-card sums; the loan outstanding covers
// ACTIVE loans only.
type DashboardSummary struct {
	TotalBankAccounts      int     `json:"total_bank_accounts"`
	ActiveCreditCards      int     `json:"active_credit_cards"`
	ActiveLoans            int     `json:"active_loans"`
	TotalCreditLimit       float64 `json:"total_credit_limit"`
	TotalCreditUsed        float64 `json:"total_credit_used"`
	CreditUtilizationRatio float64 `json:"credit_utilization_ratio"`
	TotalLoanOutstanding   float64 `json:"total_loan_outstanding"`
}

// BankAccountResponse is the output DTO for one bank account.
type BankAccountResponse struct {
	ID             uuid.UUID `json:"id"`
	BankName       string    `json:"bank_name"`
	AccountNumber  string    `json:"account_number"`
	AccountType    string    `json:"account_type"`
	IFSCCode       string    `json:"ifsc_code"`
	OpenedDate     time.Time `json:"opened_date"`
	CurrentBalance string    `json:"current_balance"`
	IsActive       bool      `json:"is_active"`
}

// FromBankAccount maps a bank account entity to its response DTO.
func FromBankAccount(a *model.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:             a.ID(),
		BankName:       a.BankName(),
		AccountNumber:  a.AccountNumber(),
		AccountType:    a.AccountType().String(),
		IFSCCode:       a.IFSCCode(),
		OpenedDate:     a.OpenedDate(),
		CurrentBalance: a.CurrentBalance().String(),
		IsActive:       a.IsActive(),
	}
}

// CreditCardResponse is the output DTO for one credit card. Only the last
// four digits of the card number ever leave the service.
type CreditCardResponse struct {
	ID              uuid.UUID `json:"id"`
	BankName        string    `json:"bank_name"`
	LastFour        string    `json:"card_last_four"`
	CardType        string    `json:"card_type"`
	CreditLimit     string    `json:"credit_limit"`
	CurrentBalance  string    `json:"current_balance"`
	AvailableCredit string    `json:"available_credit"`
	IssuedDate      time.Time `json:"issued_date"`
	ExpiryDate      time.Time `json:"expiry_date"`
	IsActive        bool      `json:"is_active"`
}

// FromCreditCard maps a credit card entity to its response DTO.
func FromCreditCard(c *model.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:              c.ID(),
		BankName:        c.BankName(),
		LastFour:        c.LastFour(),
		CardType:        c.CardType().String(),
		CreditLimit:     c.CreditLimit().String(),
		CurrentBalance:  c.CurrentBalance().String(),
		AvailableCredit: c.AvailableCredit().String(),
		IssuedDate:      c.IssuedDate(),
		ExpiryDate:      c.ExpiryDate(),
		IsActive:        c.IsActive(),
	}
}

// LoanResponse is the output DTO for one loan.
type LoanResponse struct {
	ID                uuid.UUID `json:"id"`
	BankName          string    `json:"bank_name"`
	LoanAccountNumber string    `json:"loan_account_number"`
	LoanType          string    `json:"loan_type"`
	PrincipalAmount   string    `json:"principal_amount"`
	OutstandingAmount string    `json:"outstanding_amount"`
	EMIAmount         string    `json:"emi_amount"`
	InterestRate      string    `json:"interest_rate"`
	TenureMonths      int       `json:"tenure_months"`
	RemainingTenure   int       `json:"remaining_tenure"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Status            string    `json:"status"`
}

// FromLoan maps a loan entity to its response DTO.
func FromLoan(l *model.Loan) LoanResponse {
	return LoanResponse{
		ID:                l.ID(),
		BankName:          l.BankName(),
		LoanAccountNumber: l.LoanAccountNumber(),
		LoanType:          l.LoanType().String(),
		PrincipalAmount:   l.PrincipalAmount().String(),
		OutstandingAmount: l.OutstandingAmount().String(),
		EMIAmount:         l.EMIAmount().String(),
		InterestRate:      l.InterestRate().String(),
		TenureMonths:      l.TenureMonths(),
		RemainingTenure:   l.RemainingTenure(),
		StartDate:         l.StartDate(),
		EndDate:           l.EndDate(),
		Status:            l.Status().String(),
	}
}

// PaymentRecordResponse is the output DTO for one payment history entry.
type PaymentRecordResponse struct {
	ID          uuid.UUID  `json:"id"`
	PaymentType string     `json:"payment_type"`
	Status      string     `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	PaymentDate *time.Time `json:"payment_date"`
	DueAmount   string     `json:"due_amount"`
	PaidAmount  string     `json:"paid_amount"`
	DaysLate    int        `json:"days_late"`
}

// FromPaymentRecord maps a payment record entity to its response DTO.
func FromPaymentRecord(p *model.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:          p.ID(),
		PaymentType: p.PaymentType().String(),
		Status:      p.Status().String(),
		DueDate:     p.DueDate(),
		PaymentDate: p.PaymentDate(),
		DueAmount:   p.DueAmount().String(),
		PaidAmount:  p.PaidAmount().String(),
		DaysLate:    p.DaysLate(),
	}
}

// DashboardResponse is the complete customer dashboard: the customer record,
// summary statistics, every reported account, and the ten most recent
// payments. LatestScore is null until the customer's first calculation.
type DashboardResponse struct {
	Customer       CustomerResponse        `json:"customer"`
	Summary        DashboardSummary        `json:"summary"`
	BankAccounts   []BankAccountResponse   `json:"bank_accounts"`
	CreditCards    []CreditCardResponse    `json:"credit_cards"`
	Loans          []LoanResponse          `json:"loans"`
	RecentPayments []PaymentRecordResponse `json:"recent_payments"`
	LatestScore    *ScoreCardResponse      `json:"latest_cibil_score"`
}
