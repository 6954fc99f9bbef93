package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// snapshotTime anchors every windowed aggregation test so results do not
// depend on the wall clock.
var snapshotTime = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func daysBefore(n int) time.Time {
	return snapshotTime.AddDate(0, 0, -n)
}

func snapshotCard(limit, balance int64, active bool, issued, created time.Time) *model.CreditCard {
	return model.ReconstructCreditCard(
		uuid.New(), uuid.New(),
		"HDFC Bank", "4242",
		valueobject.CardTypeVisa,
		decimal.NewFromInt(limit), decimal.NewFromInt(balance),
		issued, issued.AddDate(5, 0, 0),
		active,
		created,
	)
}

func snapshotLoan(loanType valueobject.LoanType, status valueobject.LoanStatus, outstanding int64, start, created time.Time) *model.Loan {
	return model.ReconstructLoan(
		uuid.New(), uuid.New(),
		"SBI", "LN-001",
		loanType,
		decimal.NewFromInt(1000000), decimal.NewFromInt(outstanding),
		decimal.NewFromInt(15000), decimal.NewFromFloat(8.5),
		240, 180,
		start, start.AddDate(20, 0, 0),
		status,
		created,
	)
}

func snapshotAccount(active bool, opened time.Time) *model.BankAccount {
	return model.ReconstructBankAccount(
		uuid.New(), uuid.New(),
		"ICICI Bank", "000123456789",
		valueobject.AccountTypeSavings,
		"ICIC0000001",
		opened,
		decimal.NewFromInt(50000),
		active,
		opened,
	)
}

func snapshotPayment(status valueobject.PaymentStatus, paymentDate *time.Time) *model.PaymentRecord {
	return model.ReconstructPaymentRecord(
		uuid.New(), uuid.New(),
		nil, nil,
		valueobject.PaymentTypeLoanEMI,
		status,
		daysBefore(400),
		paymentDate,
		decimal.NewFromInt(15000), decimal.NewFromInt(15000),
		0,
		daysBefore(400),
	)
}

func paidOn(t time.Time) *time.Time { return &t }

func TestCreditHistory_PaymentCounts(t *testing.T) {
	history := model.NewCreditHistory(snapshotTime, nil, nil, nil, []*model.PaymentRecord{
		snapshotPayment(valueobject.PaymentOnTime, paidOn(daysBefore(10))),
		snapshotPayment(valueobject.PaymentOnTime, paidOn(daysBefore(40))),
		snapshotPayment(valueobject.PaymentLate1To30, paidOn(daysBefore(70))),
		snapshotPayment(valueobject.PaymentLate90Plus, paidOn(daysBefore(100))),
		snapshotPayment(valueobject.PaymentMissed, nil),
		snapshotPayment(valueobject.PaymentDefaulted, nil),
	})

	total, onTime, late, missed := history.PaymentCounts()
	assert.Equal(t, 6, total)
	assert.Equal(t, 2, onTime)
	assert.Equal(t, 2, late)
	assert.Equal(t, 2, missed)
}

func TestCreditHistory_RecentPaymentCounts(t *testing.T) {
	history := model.NewCreditHistory(snapshotTime, nil, nil, nil, []*model.PaymentRecord{
		snapshotPayment(valueobject.PaymentOnTime, paidOn(daysBefore(30))),
		snapshotPayment(valueobject.PaymentLate1To30, paidOn(daysBefore(179))),
		snapshotPayment(valueobject.PaymentOnTime, paidOn(daysBefore(180))), // exactly on the cutoff
		snapshotPayment(valueobject.PaymentOnTime, paidOn(daysBefore(181))),
		snapshotPayment(valueobject.PaymentMissed, nil),
	})

	total, onTime := history.RecentPaymentCounts()
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, onTime)
}

func TestCreditHistory_ActiveCardAggregates(t *testing.T) {
	t.Run("sums active cards only", func(t *testing.T) {
		history := model.NewCreditHistory(snapshotTime, nil, []*model.CreditCard{
			snapshotCard(100000, 30000, true, daysBefore(800), daysBefore(800)),
			snapshotCard(50000, 10000, false, daysBefore(900), daysBefore(900)),
		}, nil, nil)

		assert.True(t, history.ActiveCardLimit().Equal(decimal.NewFromInt(100000)))
		assert.True(t, history.ActiveCardBalance().Equal(decimal.NewFromInt(30000)))
		assert.True(t, history.HasActiveCards())
	})

	t.Run("no active cards", func(t *testing.T) {
		history := model.NewCreditHistory(snapshotTime, nil, []*model.CreditCard{
			snapshotCard(50000, 10000, false, daysBefore(900), daysBefore(900)),
		}, nil, nil)

		assert.True(t, history.ActiveCardLimit().IsZero())
		assert.False(t, history.HasActiveCards())
	})
}

func TestCreditHistory_CardLimitOneYearAgo(t *testing.T) {
	history := model.NewCreditHistory(snapshotTime, nil, []*model.CreditCard{
		snapshotCard(50000, 0, true, daysBefore(400), daysBefore(400)),
		snapshotCard(25000, 0, false, daysBefore(400), daysBefore(400)), // inactive still counts
		snapshotCard(80000, 0, true, daysBefore(365), daysBefore(365)),  // exactly on the cutoff
		snapshotCard(99999, 0, true, daysBefore(100), daysBefore(100)),
	}, nil, nil)

	assert.True(t, history.CardLimitOneYearAgo().Equal(decimal.NewFromInt(155000)),
		"got %s", history.CardLimitOneYearAgo())
}

func TestCreditHistory_OldestCreditDate(t *testing.T) {
	t.Run("earliest across loans, cards, and accounts", func(t *testing.T) {
		history := model.NewCreditHistory(snapshotTime,
			[]*model.BankAccount{snapshotAccount(true, daysBefore(3000))},
			[]*model.CreditCard{snapshotCard(100000, 0, true, daysBefore(2000), daysBefore(2000))},
			[]*model.Loan{snapshotLoan(valueobject.LoanTypeHome, valueobject.LoanStatusActive, 500000, daysBefore(1000), daysBefore(1000))},
			nil,
		)

		oldest, ok := history.OldestCreditDate()
		require.True(t, ok)
		assert.Equal(t, daysBefore(3000), oldest)
	})

	t.Run("no dated records", func(t *testing.T) {
		history := model.NewCreditHistory(snapshotTime, nil, nil, nil, nil)
		_, ok := history.OldestCreditDate()
		assert.False(t, ok)

		_, ok = history.HistoryYears()
		assert.False(t, ok)
	})
}

func TestCreditHistory_HistoryYears(t *testing.T) {
	history := model.NewCreditHistory(snapshotTime,
		[]*model.BankAccount{snapshotAccount(true, daysBefore(3653))},
		nil, nil, nil,
	)

	years, ok := history.HistoryYears()
	require.True(t, ok)
	assert.InDelta(t, 3653.0/365.25, years, 1e-9)
	assert.Greater(t, years, 10.0)
}

func TestCreditHistory_ActiveLoanTypes(t *testing.T) {
	history := model.NewCreditHistory(snapshotTime, nil, nil, []*model.Loan{
		snapshotLoan(valueobject.LoanTypeHome, valueobject.LoanStatusActive, 500000, daysBefore(1000), daysBefore(1000)),
		snapshotLoan(valueobject.LoanTypeHome, valueobject.LoanStatusActive, 200000, daysBefore(800), daysBefore(800)),
		snapshotLoan(valueobject.LoanTypeCar, valueobject.LoanStatusClosed, 0, daysBefore(700), daysBefore(700)),
		snapshotLoan(valueobject.LoanTypePersonal, valueobject.LoanStatusActive, 80000, daysBefore(300), daysBefore(300)),
	}, nil)

	types := history.ActiveLoanTypes()
	require.Len(t, types, 2)
	assert.True(t, types[0].Equal(valueobject.LoanTypeHome))
	assert.True(t, types[1].Equal(valueobject.LoanTypePersonal))

	assert.True(t, history.HasActiveLoanOfType(valueobject.LoanTypeHome))
	assert.False(t, history.HasActiveLoanOfType(valueobject.LoanTypeCar), "closed loans do not count")
}

func TestCreditHistory_RecentAccountCount(t *testing.T) {
	history := model.NewCreditHistory(snapshotTime, nil,
		[]*model.CreditCard{
			snapshotCard(50000, 0, true, daysBefore(200), daysBefore(200)),
			snapshotCard(50000, 0, true, daysBefore(180), daysBefore(180)), // exactly on the cutoff
		},
		[]*model.Loan{
			snapshotLoan(valueobject.LoanTypePersonal, valueobject.LoanStatusActive, 80000, daysBefore(100), daysBefore(100)),
			snapshotLoan(valueobject.LoanTypeCar, valueobject.LoanStatusClosed, 0, daysBefore(181), daysBefore(181)),
		},
		nil,
	)

	assert.Equal(t, 2, history.RecentAccountCount())
}

func TestCreditHistory_AccountTotals(t *testing.T) {
	history := model.NewCreditHistory(snapshotTime,
		[]*model.BankAccount{
			snapshotAccount(true, daysBefore(2000)),
			snapshotAccount(false, daysBefore(1500)),
		},
		[]*model.CreditCard{
			snapshotCard(100000, 24000, true, daysBefore(800), daysBefore(800)),
			snapshotCard(50000, 10000, false, daysBefore(900), daysBefore(900)),
		},
		[]*model.Loan{
			snapshotLoan(valueobject.LoanTypeHome, valueobject.LoanStatusActive, 500000, daysBefore(1000), daysBefore(1000)),
			snapshotLoan(valueobject.LoanTypeCar, valueobject.LoanStatusClosed, 999999, daysBefore(700), daysBefore(700)),
		},
		nil,
	)

	assert.Equal(t, 6, history.TotalAccounts())
	assert.Equal(t, 3, history.ActiveAccounts())

	// 24000 active card balance + 500000 active loan outstanding; the closed
	// loan's balance is excluded.
	assert.True(t, history.TotalOutstanding().Equal(decimal.NewFromInt(524000)),
		"got %s", history.TotalOutstanding())

	assert.InDelta(t, 24.0, history.UtilizationPercent(), 1e-9)
}

func TestCreditHistory_UtilizationPercent(t *testing.T) {
	t.Run("rounds to two decimals", func(t *testing.T) {
		history := model.NewCreditHistory(snapshotTime, nil, []*model.CreditCard{
			snapshotCard(30000, 10000, true, daysBefore(800), daysBefore(800)),
		}, nil, nil)

		assert.InDelta(t, 33.33, history.UtilizationPercent(), 1e-9)
	})

	t.Run("zero when no limit", func(t *testing.T) {
		history := model.NewCreditHistory(snapshotTime, nil, []*model.CreditCard{
			snapshotCard(0, 5000, true, daysBefore(800), daysBefore(800)),
		}, nil, nil)

		assert.Zero(t, history.UtilizationPercent())
	})
}

func TestNewCreditHistory_CopiesInputSlices(t *testing.T) {
	cards := []*model.CreditCard{
		snapshotCard(100000, 0, true, daysBefore(800), daysBefore(800)),
	}
	history := model.NewCreditHistory(snapshotTime, nil, cards, nil, nil)

	cards[0] = nil
	require.Len(t, history.Cards(), 1)
	assert.NotNil(t, history.Cards()[0])
}
