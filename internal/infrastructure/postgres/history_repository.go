package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// HistoryRepository implements port.HistoryRepository using PostgreSQL. A
// credit history is assembled from four record tables; records are append
// only and rows created after the asOf instant are excluded so a score can
// be recomputed against what the bureau knew at the time.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new PostgreSQL-backed HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// LoadByCustomer assembles the full credit history for a customer as
// observed at the given time.
func (r *HistoryRepository) LoadByCustomer(ctx context.Context, customerID uuid.UUID, asOf time.Time) (*model.CreditHistory, error) {
	accounts, err := r.loadAccounts(ctx, customerID, asOf)
	if err != nil {
		return nil, err
	}

	cards, err := r.loadCards(ctx, customerID, asOf)
	if err != nil {
		return nil, err
	}

	loans, err := r.loadLoans(ctx, customerID, asOf)
	if err != nil {
		return nil, err
	}

	payments, err := r.loadPayments(ctx, customerID, asOf)
	if err != nil {
		return nil, err
	}

	return model.NewCreditHistory(asOf, accounts, cards, loans, payments), nil
}

// AppendRecords persists new accounts, cards, loans, and payments for a
// customer in a single transaction.
func (r *HistoryRepository) AppendRecords(
	ctx context.Context,
	customerID uuid.UUID,
	accounts []*model.BankAccount,
	cards []*model.CreditCard,
	loans []*model.Loan,
	payments []*model.PaymentRecord,
) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertAccountSQL := `
		INSERT INTO bank_accounts (
			id, customer_id, bank_name, account_number, account_type,
			ifsc_code, opened_date, current_balance, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, account := range accounts {
		_, err := tx.Exec(ctx, insertAccountSQL,
			account.ID(),
			customerID,
			account.BankName(),
			account.AccountNumber(),
			account.AccountType().String(),
			account.IFSCCode(),
			account.OpenedDate(),
			account.CurrentBalance(),
			account.IsActive(),
			account.CreatedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert bank account: %w", err)
		}
	}

	insertCardSQL := `
		INSERT INTO credit_cards (
			id, customer_id, bank_name, card_last_four, card_type,
			credit_limit, current_balance, issued_date, expiry_date, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, card := range cards {
		_, err := tx.Exec(ctx, insertCardSQL,
			card.ID(),
			customerID,
			card.BankName(),
			card.LastFour(),
			card.CardType().String(),
			card.CreditLimit(),
			card.CurrentBalance(),
			card.IssuedDate(),
			card.ExpiryDate(),
			card.IsActive(),
			card.CreatedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert credit card: %w", err)
		}
	}

	insertLoanSQL := `
		INSERT INTO loans (
			id, customer_id, bank_name, loan_account_number, loan_type,
			principal_amount, outstanding_amount, emi_amount, interest_rate,
			tenure_months, remaining_tenure, start_date, end_date, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	for _, loan := range loans {
		_, err := tx.Exec(ctx, insertLoanSQL,
			loan.ID(),
			customerID,
			loan.BankName(),
			loan.LoanAccountNumber(),
			loan.LoanType().String(),
			loan.PrincipalAmount(),
			loan.OutstandingAmount(),
			loan.EMIAmount(),
			loan.InterestRate(),
			loan.TenureMonths(),
			loan.RemainingTenure(),
			loan.StartDate(),
			loan.EndDate(),
			loan.Status().String(),
			loan.CreatedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert loan: %w", err)
		}
	}

	insertPaymentSQL := `
		INSERT INTO payment_records (
			id, customer_id, loan_id, card_id, payment_type, status,
			due_date, payment_date, due_amount, paid_amount, days_late, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	for _, payment := range payments {
		_, err := tx.Exec(ctx, insertPaymentSQL,
			payment.ID(),
			customerID,
			payment.LoanID(),
			payment.CardID(),
			payment.PaymentType().String(),
			payment.Status().String(),
			payment.DueDate(),
			payment.PaymentDate(),
			payment.DueAmount(),
			payment.PaidAmount(),
			payment.DaysLate(),
			payment.CreatedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *HistoryRepository) loadAccounts(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]*model.BankAccount, error) {
	query := `
		SELECT id, customer_id, bank_name, account_number, account_type,
			ifsc_code, opened_date, current_balance, is_active, created_at
		FROM bank_accounts
		WHERE customer_id = $1 AND created_at <= $2
		ORDER BY opened_date
	`

	rows, err := r.pool.Query(ctx, query, customerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.BankAccount
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bank accounts: %w", err)
	}

	return accounts, nil
}

func (r *HistoryRepository) loadCards(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]*model.CreditCard, error) {
	query := `
		SELECT id, customer_id, bank_name, card_last_four, card_type,
			credit_limit, current_balance, issued_date, expiry_date, is_active, created_at
		FROM credit_cards
		WHERE customer_id = $1 AND created_at <= $2
		ORDER BY issued_date
	`

	rows, err := r.pool.Query(ctx, query, customerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit cards: %w", err)
	}
	defer rows.Close()

	var cards []*model.CreditCard
	for rows.Next() {
		card, err := scanCreditCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credit cards: %w", err)
	}

	return cards, nil
}

func (r *HistoryRepository) loadLoans(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]*model.Loan, error) {
	query := `
		SELECT id, customer_id, bank_name, loan_account_number, loan_type,
			principal_amount, outstanding_amount, emi_amount, interest_rate,
			tenure_months, remaining_tenure, start_date, end_date, status, created_at
		FROM loans
		WHERE customer_id = $1 AND created_at <= $2
		ORDER BY start_date
	`

	rows, err := r.pool.Query(ctx, query, customerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	var loans []*model.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read loans: %w", err)
	}

	return loans, nil
}

func (r *HistoryRepository) loadPayments(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]*model.PaymentRecord, error) {
	query := `
		SELECT id, customer_id, loan_id, card_id, payment_type, status,
			due_date, payment_date, due_amount, paid_amount, days_late, created_at
		FROM payment_records
		WHERE customer_id = $1 AND created_at <= $2
		ORDER BY due_date
	`

	rows, err := r.pool.Query(ctx, query, customerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment records: %w", err)
	}
	defer rows.Close()

	var payments []*model.PaymentRecord
	for rows.Next() {
		payment, err := scanPaymentRecord(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payment records: %w", err)
	}

	return payments, nil
}

func scanBankAccount(rows pgx.Rows) (*model.BankAccount, error) {
	var (
		id             uuid.UUID
		customerID     uuid.UUID
		bankName       string
		accountNumber  string
		accountTypeStr string
		ifscCode       string
		openedDate     time.Time
		currentBalance decimal.Decimal
		isActive       bool
		createdAt      time.Time
	)

	err := rows.Scan(
		&id, &customerID, &bankName, &accountNumber, &accountTypeStr,
		&ifscCode, &openedDate, &currentBalance, &isActive, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bank account: %w", err)
	}

	accountType, err := valueobject.NewAccountType(accountTypeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account type: %w", err)
	}

	return model.ReconstructBankAccount(
		id, customerID, bankName, accountNumber, accountType,
		ifscCode, openedDate, currentBalance, isActive, createdAt,
	), nil
}

func scanCreditCard(rows pgx.Rows) (*model.CreditCard, error) {
	var (
		id             uuid.UUID
		customerID     uuid.UUID
		bankName       string
		lastFour       string
		cardTypeStr    string
		creditLimit    decimal.Decimal
		currentBalance decimal.Decimal
		issuedDate     time.Time
		expiryDate     time.Time
		isActive       bool
		createdAt      time.Time
	)

	err := rows.Scan(
		&id, &customerID, &bankName, &lastFour, &cardTypeStr,
		&creditLimit, &currentBalance, &issuedDate, &expiryDate, &isActive, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan credit card: %w", err)
	}

	cardType, err := valueobject.NewCardType(cardTypeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse card type: %w", err)
	}

	return model.ReconstructCreditCard(
		id, customerID, bankName, lastFour, cardType,
		creditLimit, currentBalance, issuedDate, expiryDate, isActive, createdAt,
	), nil
}

func scanLoan(rows pgx.Rows) (*model.Loan, error) {
	var (
		id                uuid.UUID
		customerID        uuid.UUID
		bankName          string
		loanAccountNumber string
		loanTypeStr       string
		principalAmount   decimal.Decimal
		outstandingAmount decimal.Decimal
		emiAmount         decimal.Decimal
		interestRate      decimal.Decimal
		tenureMonths      int
		remainingTenure   int
		startDate         time.Time
		endDate           time.Time
		statusStr         string
		createdAt         time.Time
	)

	err := rows.Scan(
		&id, &customerID, &bankName, &loanAccountNumber, &loanTypeStr,
		&principalAmount, &outstandingAmount, &emiAmount, &interestRate,
		&tenureMonths, &remainingTenure, &startDate, &endDate, &statusStr, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan loan: %w", err)
	}

	loanType, err := valueobject.NewLoanType(loanTypeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse loan type: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, customerID, bankName, loanAccountNumber, loanType,
		principalAmount, outstandingAmount, emiAmount, interestRate,
		tenureMonths, remainingTenure, startDate, endDate, status, createdAt,
	), nil
}

func scanPaymentRecord(rows pgx.Rows) (*model.PaymentRecord, error) {
	var (
		id             uuid.UUID
		customerID     uuid.UUID
		loanID         *uuid.UUID
		cardID         *uuid.UUID
		paymentTypeStr string
		statusStr      string
		dueDate        time.Time
		paymentDate    *time.Time
		dueAmount      decimal.Decimal
		paidAmount     decimal.Decimal
		daysLate       int
		createdAt      time.Time
	)

	err := rows.Scan(
		&id, &customerID, &loanID, &cardID, &paymentTypeStr, &statusStr,
		&dueDate, &paymentDate, &dueAmount, &paidAmount, &daysLate, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment record: %w", err)
	}

	paymentType, err := valueobject.NewPaymentType(paymentTypeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment type: %w", err)
	}

	status, err := valueobject.NewPaymentStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment status: %w", err)
	}

	return model.ReconstructPaymentRecord(
		id, customerID, loanID, cardID, paymentType, status,
		dueDate, paymentDate, dueAmount, paidAmount, daysLate, createdAt,
	), nil
}
