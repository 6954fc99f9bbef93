package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// Window constants for history aggregation. Recent activity (new accounts,
// payment consistency) looks back six months; credit growth compares against
// the limit held one year ago.
const (
	recentWindowDays = 180
	growthWindowDays = 365
	daysPerYear      = 365.25
)

// CreditHistory is an immutable in-memory snapshot of everything the bureau
// holds about one customer: bank accounts, credit cards, loans, and payment
// records, frozen at asOf. All time-windowed aggregation is relative to asOf
// so that scoring the same snapshot twice yields identical results.
type CreditHistory struct {
	asOf     time.Time
	accounts []*BankAccount
	cards    []*CreditCard
	loans    []*Loan
	payments []*PaymentRecord
}

// NewCreditHistory freezes a snapshot of a customer's records as of the given time.
func NewCreditHistory(
	asOf time.Time,
	accounts []*BankAccount,
	cards []*CreditCard,
	loans []*Loan,
	payments []*PaymentRecord,
) *CreditHistory {
	h := &CreditHistory{
		asOf:     asOf.UTC(),
		accounts: make([]*BankAccount, len(accounts)),
		cards:    make([]*CreditCard, len(cards)),
		loans:    make([]*Loan, len(loans)),
		payments: make([]*PaymentRecord, len(payments)),
	}
	copy(h.accounts, accounts)
	copy(h.cards, cards)
	copy(h.loans, loans)
	copy(h.payments, payments)
	return h
}

// AsOf returns the snapshot time all windowed aggregation is relative to.
func (h *CreditHistory) AsOf() time.Time { return h.asOf }

// Accounts returns the snapshot's bank accounts.
func (h *CreditHistory) Accounts() []*BankAccount { return h.accounts }

// Cards returns the snapshot's credit cards.
func (h *CreditHistory) Cards() []*CreditCard { return h.cards }

// Loans returns the snapshot's loans.
func (h *CreditHistory) Loans() []*Loan { return h.loans }

// Payments returns the snapshot's payment records.
func (h *CreditHistory) Payments() []*PaymentRecord { return h.payments }

// PaymentCounts partitions the full payment history by settlement outcome.
func (h *CreditHistory) PaymentCounts() (total, onTime, late, missed int) {
	for _, p := range h.payments {
		total++
		switch {
		case p.Status().IsOnTime():
			onTime++
		case p.Status().IsLate():
			late++
		case p.Status().IsMissed():
			missed++
		}
	}
	return total, onTime, late, missed
}

// RecentPaymentCounts counts payments settled within the recent window,
// keyed on the payment date. Unsettled records (nil payment date) are
// excluded regardless of their due date.
func (h *CreditHistory) RecentPaymentCounts() (total, onTime int) {
	cutoff := h.asOf.AddDate(0, 0, -recentWindowDays)
	for _, p := range h.payments {
		if p.PaymentDate() == nil || p.PaymentDate().Before(cutoff) {
			continue
		}
		total++
		if p.Status().IsOnTime() {
			onTime++
		}
	}
	return total, onTime
}

// ActiveCardLimit sums the credit limits of active cards.
func (h *CreditHistory) ActiveCardLimit() decimal.Decimal {
	total := decimal.Zero
	for _, c := range h.cards {
		if c.IsActive() {
			total = total.Add(c.CreditLimit())
		}
	}
	return total
}

// ActiveCardBalance sums the outstanding balances of active cards.
func (h *CreditHistory) ActiveCardBalance() decimal.Decimal {
	total := decimal.Zero
	for _, c := range h.cards {
		if c.IsActive() {
			total = total.Add(c.CurrentBalance())
		}
	}
	return total
}

// CardLimitOneYearAgo sums the limits of every card already on file a year
// before asOf, active or not. Compared against the current active limit it
// yields the credit growth signal.
func (h *CreditHistory) CardLimitOneYearAgo() decimal.Decimal {
	cutoff := h.asOf.AddDate(0, 0, -growthWindowDays)
	total := decimal.Zero
	for _, c := range h.cards {
		if !c.CreatedAt().After(cutoff) {
			total = total.Add(c.CreditLimit())
		}
	}
	return total
}

// OldestCreditDate returns the earliest of all loan start dates, card issue
// dates, and account opened dates. ok is false when the snapshot holds no
// dated records at all.
func (h *CreditHistory) OldestCreditDate() (oldest time.Time, ok bool) {
	consider := func(t time.Time) {
		if !ok || t.Before(oldest) {
			oldest = t
			ok = true
		}
	}
	for _, l := range h.loans {
		consider(l.StartDate())
	}
	for _, c := range h.cards {
		consider(c.IssuedDate())
	}
	for _, a := range h.accounts {
		consider(a.OpenedDate())
	}
	return oldest, ok
}

// HistoryYears returns the age of the oldest credit record in 365.25-day
// years, using whole calendar days. ok is false when no dated records exist.
func (h *CreditHistory) HistoryYears() (years float64, ok bool) {
	oldest, ok := h.OldestCreditDate()
	if !ok {
		return 0, false
	}
	days := int(h.asOf.Sub(oldest).Hours() / 24)
	return float64(days) / daysPerYear, true
}

// ActiveLoanTypes returns the distinct types among ACTIVE loans, in first-seen order.
func (h *CreditHistory) ActiveLoanTypes() []valueobject.LoanType {
	seen := make(map[valueobject.LoanType]bool)
	var types []valueobject.LoanType
	for _, l := range h.loans {
		if !l.Status().IsActive() {
			continue
		}
		if !seen[l.LoanType()] {
			seen[l.LoanType()] = true
			types = append(types, l.LoanType())
		}
	}
	return types
}

// HasActiveLoanOfType reports whether any ACTIVE loan has the given type.
func (h *CreditHistory) HasActiveLoanOfType(t valueobject.LoanType) bool {
	for _, l := range h.loans {
		if l.Status().IsActive() && l.LoanType().Equal(t) {
			return true
		}
	}
	return false
}

// HasActiveCards reports whether any card is active.
func (h *CreditHistory) HasActiveCards() bool {
	for _, c := range h.cards {
		if c.IsActive() {
			return true
		}
	}
	return false
}

// HasActiveAccounts reports whether any bank account is active.
func (h *CreditHistory) HasActiveAccounts() bool {
	for _, a := range h.accounts {
		if a.IsActive() {
			return true
		}
	}
	return false
}

// RecentAccountCount counts loans and cards added to the file within the
// recent window, keyed on record creation time.
func (h *CreditHistory) RecentAccountCount() int {
	cutoff := h.asOf.AddDate(0, 0, -recentWindowDays)
	count := 0
	for _, l := range h.loans {
		if !l.CreatedAt().Before(cutoff) {
			count++
		}
	}
	for _, c := range h.cards {
		if !c.CreatedAt().Before(cutoff) {
			count++
		}
	}
	return count
}

// TotalAccounts counts every loan, card, and bank account on file.
func (h *CreditHistory) TotalAccounts() int {
	return len(h.loans) + len(h.cards) + len(h.accounts)
}

// ActiveAccounts counts ACTIVE loans, active cards, and active bank accounts.
func (h *CreditHistory) ActiveAccounts() int {
	count := 0
	for _, l := range h.loans {
		if l.Status().IsActive() {
			count++
		}
	}
	for _, c := range h.cards {
		if c.IsActive() {
			count++
		}
	}
	for _, a := range h.accounts {
		if a.IsActive() {
			count++
		}
	}
	return count
}

// TotalOutstanding sums active card balances and ACTIVE loan outstanding amounts.
func (h *CreditHistory) TotalOutstanding() decimal.Decimal {
	total := h.ActiveCardBalance()
	for _, l := range h.loans {
		if l.Status().IsActive() {
			total = total.Add(l.OutstandingAmount())
		}
	}
	return total
}

// UtilizationPercent is the active card balance as a percentage of the active
// card limit, rounded to two decimals. Zero when there is no limit.
func (h *CreditHistory) UtilizationPercent() float64 {
	limit := h.ActiveCardLimit()
	if !limit.IsPositive() {
		return 0
	}
	ratio, _ := h.ActiveCardBalance().Div(limit).Float64()
	return math.Round(ratio*100*100) / 100
}
