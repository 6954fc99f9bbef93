package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/port"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// recentPaymentLimit is how many payment records the dashboard shows.
const recentPaymentLimit = 10

// GetDashboard assembles the complete financial picture of one customer:
// the customer record, every reported account, summary statistics, the most
// recent payments, and the latest score card when one exists.
type GetDashboard struct {
	customers port.CustomerRepository
	history   port.HistoryRepository
	scores    port.ScoreRepository
}

// NewGetDashboard creates the GetDashboard use case.
func NewGetDashboard(
	customers port.CustomerRepository,
	history port.HistoryRepository,
	scores port.ScoreRepository,
) *GetDashboard {
	return &GetDashboard{customers: customers, history: history, scores: scores}
}

// Execute loads the customer's full file and computes the summary statistics.
func (uc *GetDashboard) Execute(ctx context.Context, req dto.GetDashboardRequest) (dto.DashboardResponse, error) {
	pan, err := valueobject.NewPAN(req.PAN)
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("%w: invalid PAN: %v", ErrInvalidRequest, err)
	}

	customer, err := uc.customers.FindByPAN(ctx, pan)
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("customer lookup failed: %w", err)
	}
	if customer == nil {
		return dto.DashboardResponse{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, pan.Masked())
	}

	history, err := uc.history.LoadByCustomer(ctx, customer.ID(), time.Now().UTC())
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("failed to load credit history: %w", err)
	}

	latest, err := uc.scores.FindLatestByCustomer(ctx, customer.ID())
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("failed to load latest score: %w", err)
	}

	resp := dto.DashboardResponse{
		Customer:       dto.FromCustomer(customer),
		Summary:        dashboardSummary(history),
		BankAccounts:   make([]dto.BankAccountResponse, 0, len(history.Accounts())),
		CreditCards:    make([]dto.CreditCardResponse, 0, len(history.Cards())),
		Loans:          make([]dto.LoanResponse, 0, len(history.Loans())),
		RecentPayments: recentPayments(history.Payments()),
	}
	for _, a := range history.Accounts() {
		resp.BankAccounts = append(resp.BankAccounts, dto.FromBankAccount(a))
	}
	for _, c := range history.Cards() {
		resp.CreditCards = append(resp.CreditCards, dto.FromCreditCard(c))
	}
	for _, l := range history.Loans() {
		resp.Loans = append(resp.Loans, dto.FromLoan(l))
	}
	if latest != nil {
		card := dto.FromScoreCard(latest)
		resp.LatestScore = &card
	}

	return resp, nil
}

// dashboardSummary computes the aggregate statistics with decimal arithmetic,
// converting to float only at the response boundary.
func dashboardSummary(h *model.CreditHistory) dto.DashboardSummary {
	activeCards := 0
	for _, c := range h.Cards() {
		if c.IsActive() {
			activeCards++
		}
	}

	activeLoans := 0
	loanOutstanding := decimal.Zero
	for _, l := range h.Loans() {
		if l.Status().IsActive() {
			activeLoans++
			loanOutstanding = loanOutstanding.Add(l.OutstandingAmount())
		}
	}

	return dto.DashboardSummary{
		TotalBankAccounts:      len(h.Accounts()),
		ActiveCreditCards:      activeCards,
		ActiveLoans:            activeLoans,
		TotalCreditLimit:       h.ActiveCardLimit().InexactFloat64(),
		TotalCreditUsed:        h.ActiveCardBalance().InexactFloat64(),
		CreditUtilizationRatio: h.UtilizationPercent(),
		TotalLoanOutstanding:   loanOutstanding.InexactFloat64(),
	}
}

// recentPayments returns the newest records by due date, most recent first.
func recentPayments(payments []*model.PaymentRecord) []dto.PaymentRecordResponse {
	sorted := make([]*model.PaymentRecord, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate().After(sorted[j].DueDate())
	})

	if len(sorted) > recentPaymentLimit {
		sorted = sorted[:recentPaymentLimit]
	}

	recent := make([]dto.PaymentRecordResponse, 0, len(sorted))
	for _, p := range sorted {
		recent = append(recent, dto.FromPaymentRecord(p))
	}
	return recent
}
