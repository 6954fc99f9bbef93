package service

import "fmt"

// ProfileInput carries the raw declarative fact set as supplied by a caller.
// Pointer fields distinguish absent from zero so that an explicit zero
// passes validation and an omitted field does not.
type ProfileInput struct {
	TotalPayments             *int
	OnTimePayments            *int
	LatePayments              *int
	MissedPayments            *int
	TotalCreditLimit          *float64
	CurrentBalance            *float64
	CreditHistoryYears        *float64
	HasCreditCards            *bool
	HasHomeLoan               *bool
	HasCarLoan                *bool
	HasPersonalLoan           *bool
	HasBankAccounts           *bool
	RecentAccountsLast6Months *int
}

// FinancialProfile is a validated declarative fact set, ready for scoring.
type FinancialProfile struct {
	TotalPayments             int
	OnTimePayments            int
	LatePayments              int
	MissedPayments            int
	TotalCreditLimit          float64
	CurrentBalance            float64
	CreditHistoryYears        float64
	HasCreditCards            bool
	HasHomeLoan               bool
	HasCarLoan                bool
	HasPersonalLoan           bool
	HasBankAccounts           bool
	RecentAccountsLast6Months int
}

// NewFinancialProfile validates the raw input eagerly: every field must be
// present, no quantity may be negative, and the on-time, late, and missed
// counts must add up to the total. Errors name the offending field.
func NewFinancialProfile(in ProfileInput) (*FinancialProfile, error) {
	required := []struct {
		name   string
		absent bool
	}{
		{"total_payments", in.TotalPayments == nil},
		{"on_time_payments", in.OnTimePayments == nil},
		{"late_payments", in.LatePayments == nil},
		{"missed_payments", in.MissedPayments == nil},
		{"total_credit_limit", in.TotalCreditLimit == nil},
		{"current_balance", in.CurrentBalance == nil},
		{"credit_history_years", in.CreditHistoryYears == nil},
		{"has_credit_cards", in.HasCreditCards == nil},
		{"has_home_loan", in.HasHomeLoan == nil},
		{"has_car_loan", in.HasCarLoan == nil},
		{"has_personal_loan", in.HasPersonalLoan == nil},
		{"has_bank_accounts", in.HasBankAccounts == nil},
		{"recent_accounts_last_6_months", in.RecentAccountsLast6Months == nil},
	}
	for _, field := range required {
		if field.absent {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, field.name)
		}
	}

	profile := &FinancialProfile{
		TotalPayments:             *in.TotalPayments,
		OnTimePayments:            *in.OnTimePayments,
		LatePayments:              *in.LatePayments,
		MissedPayments:            *in.MissedPayments,
		TotalCreditLimit:          *in.TotalCreditLimit,
		CurrentBalance:            *in.CurrentBalance,
		CreditHistoryYears:        *in.CreditHistoryYears,
		HasCreditCards:            *in.HasCreditCards,
		HasHomeLoan:               *in.HasHomeLoan,
		HasCarLoan:                *in.HasCarLoan,
		HasPersonalLoan:           *in.HasPersonalLoan,
		HasBankAccounts:           *in.HasBankAccounts,
		RecentAccountsLast6Months: *in.RecentAccountsLast6Months,
	}

	nonnegative := []struct {
		name  string
		value float64
	}{
		{"total_payments", float64(profile.TotalPayments)},
		{"on_time_payments", float64(profile.OnTimePayments)},
		{"late_payments", float64(profile.LatePayments)},
		{"missed_payments", float64(profile.MissedPayments)},
		{"current_balance", profile.CurrentBalance},
		{"credit_history_years", profile.CreditHistoryYears},
		{"recent_accounts_last_6_months", float64(profile.RecentAccountsLast6Months)},
	}
	for _, field := range nonnegative {
		if field.value < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeValue, field.name)
		}
	}

	accounted := profile.OnTimePayments + profile.LatePayments + profile.MissedPayments
	if accounted != profile.TotalPayments {
		return nil, fmt.Errorf("%w: on_time %d + late %d + missed %d != total %d",
			ErrPaymentCountMismatch,
			profile.OnTimePayments, profile.LatePayments, profile.MissedPayments, profile.TotalPayments)
	}

	return profile, nil
}

// Facts converts the profile into the pipeline's fact set. Declarative
// profiles always carry a year count, so the history-dates flag is set even
// when the count is zero; growth and consistency signals have no declarative
// source and stay at their zero values.
func (p *FinancialProfile) Facts() CreditFacts {
	return CreditFacts{
		TotalPayments:      p.TotalPayments,
		OnTimePayments:     p.OnTimePayments,
		LatePayments:       p.LatePayments,
		MissedPayments:     p.MissedPayments,
		TotalCreditLimit:   p.TotalCreditLimit,
		CurrentBalance:     p.CurrentBalance,
		HasHistoryDates:    true,
		HistoryYears:       p.CreditHistoryYears,
		HasCreditCards:     p.HasCreditCards,
		HasBankAccounts:    p.HasBankAccounts,
		HasHomeLoan:        p.HasHomeLoan,
		HasCarLoan:         p.HasCarLoan,
		HasPersonalLoan:    p.HasPersonalLoan,
		RecentAccountCount: p.RecentAccountsLast6Months,
	}
}
