package service

// CreditFacts is the mode-agnostic fact set the pipeline consumes. Derived
// callers aggregate it from a credit history snapshot, where product flags
// and counts cover active products only; declarative callers build it from a
// validated FinancialProfile.
type CreditFacts struct {
	TotalPayments  int
	OnTimePayments int
	LatePayments   int
	MissedPayments int

	// Active card limit and balance in the derived mode, asserted totals in
	// the declarative mode.
	TotalCreditLimit float64
	CurrentBalance   float64

	// HasHistoryDates is false when no account or loan carries an opening
	// date, in which case HistoryYears is meaningless.
	HasHistoryDates bool
	HistoryYears    float64

	HasCreditCards  bool
	HasBankAccounts bool
	HasHomeLoan     bool
	HasCarLoan      bool
	HasPersonalLoan bool

	// ActiveLoanTypeCount is the number of distinct active loan types,
	// read by the derived diversity signal.
	ActiveLoanTypeCount int

	// RecentAccountCount is the number of products opened in the recent
	// inquiry window.
	RecentAccountCount int

	// Recent payment counts feed the derived consistency signal.
	RecentPaymentsTotal  int
	RecentPaymentsOnTime int

	// CardLimitOneYearAgo is the total limit of cards already issued a year
	// before the snapshot, read by the derived growth signal.
	CardLimitOneYearAgo float64
}

// utilizationRatio is balance over limit, 0 when there is no limit.
func (f CreditFacts) utilizationRatio() float64 {
	if f.TotalCreditLimit <= 0 {
		return 0
	}
	return f.CurrentBalance / f.TotalCreditLimit
}

// onTimeRatio is the on-time share of the full payment history.
func (f CreditFacts) onTimeRatio() float64 {
	if f.TotalPayments == 0 {
		return 0
	}
	return float64(f.OnTimePayments) / float64(f.TotalPayments)
}
