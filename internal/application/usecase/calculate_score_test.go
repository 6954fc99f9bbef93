package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/application/usecase"
	"github.com/bibbank/cibil-service/internal/domain/model"
	"github.com/bibbank/cibil-service/internal/domain/service"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
	"github.com/bibbank/cibil-service/pkg/events"
)

// --- Mock implementations ---

type mockCustomerRepository struct {
	customer      *model.Customer
	savedCustomer *model.Customer
	saveFunc      func(ctx context.Context, customer *model.Customer) error
	findByPANFunc func(ctx context.Context, pan valueobject.PAN) (*model.Customer, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, customer *model.Customer) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, customer)
	}
	m.savedCustomer = customer
	return nil
}

func (m *mockCustomerRepository) FindByID(_ context.Context, _ uuid.UUID) (*model.Customer, error) {
	return m.customer, nil
}

func (m *mockCustomerRepository) FindByPAN(ctx context.Context, pan valueobject.PAN) (*model.Customer, error) {
	if m.findByPANFunc != nil {
		return m.findByPANFunc(ctx, pan)
	}
	return m.customer, nil
}

type mockHistoryRepository struct {
	history          *model.CreditHistory
	appendedAccounts []*model.BankAccount
	appendedCards    []*model.CreditCard
	appendedLoans    []*model.Loan
	appendedPayments []*model.PaymentRecord
	appendFunc       func(ctx context.Context, customerID uuid.UUID) error
}

func (m *mockHistoryRepository) LoadByCustomer(_ context.Context, _ uuid.UUID, asOf time.Time) (*model.CreditHistory, error) {
	if m.history != nil {
		return m.history, nil
	}
	return model.NewCreditHistory(asOf, nil, nil, nil, nil), nil
}

func (m *mockHistoryRepository) AppendRecords(
	ctx context.Context,
	customerID uuid.UUID,
	accounts []*model.BankAccount,
	cards []*model.CreditCard,
	loans []*model.Loan,
	payments []*model.PaymentRecord,
) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, customerID)
	}
	m.appendedAccounts = accounts
	m.appendedCards = cards
	m.appendedLoans = loans
	m.appendedPayments = payments
	return nil
}

type mockScoreRepository struct {
	latest       *model.ScoreCard
	cards        []*model.ScoreCard
	savedCard    *model.ScoreCard
	listedLimit  int
	listedOffset int
	saveFunc     func(ctx context.Context, card *model.ScoreCard) error
}

func (m *mockScoreRepository) SaveAsLatest(ctx context.Context, card *model.ScoreCard) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, card)
	}
	m.savedCard = card
	return nil
}

func (m *mockScoreRepository) FindLatestByCustomer(_ context.Context, _ uuid.UUID) (*model.ScoreCard, error) {
	return m.latest, nil
}

func (m *mockScoreRepository) ListByCustomer(_ context.Context, _ uuid.UUID, limit, offset int) ([]*model.ScoreCard, error) {
	m.listedLimit = limit
	m.listedOffset = offset
	return m.cards, nil
}

type mockReportRepository struct {
	savedReport *model.CreditReport
	saveFunc    func(ctx context.Context, report *model.CreditReport) error
}

func (m *mockReportRepository) Save(ctx context.Context, report *model.CreditReport) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, report)
	}
	m.savedReport = report
	return nil
}

type mockEventPublisher struct {
	publishedEvents []events.DomainEvent
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Fixtures ---

var snapshotTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testPAN(t *testing.T) valueobject.PAN {
	t.Helper()
	pan, err := valueobject.NewPAN("ABCDE1234F")
	require.NoError(t, err)
	return pan
}

func testCustomer(t *testing.T) *model.Customer {
	t.Helper()
	return model.ReconstructCustomer(
		uuid.New(),
		testPAN(t),
		"Asha Verma",
		date(1990, 5, 12),
		"+91-9876543210",
		"asha.verma@example.in",
		"42 MG Road, Bengaluru",
		date(2024, 1, 15),
		date(2024, 1, 15),
	)
}

// testHistory builds a healthy seven-year file: one savings account, one
// active card at 15% utilization, one active home loan, and two years of
// monthly EMI payments with a single late entry.
func testHistory(t *testing.T, customerID uuid.UUID) *model.CreditHistory {
	t.Helper()

	account := model.ReconstructBankAccount(
		uuid.New(), customerID,
		"HDFC Bank", "50100123456789",
		valueobject.AccountTypeSavings, "HDFC0001234",
		date(2018, 3, 10), decimal.NewFromInt(250000),
		true, date(2018, 3, 10),
	)

	card := model.ReconstructCreditCard(
		uuid.New(), customerID,
		"HDFC Bank", "4321",
		valueobject.CardTypeVisa,
		decimal.NewFromInt(200000), decimal.NewFromInt(30000),
		date(2020, 7, 1), date(2028, 7, 1),
		true, date(2020, 7, 1),
	)

	loan := model.ReconstructLoan(
		uuid.New(), customerID,
		"HDFC Bank", "HL-9912",
		valueobject.LoanTypeHome,
		decimal.NewFromInt(3500000), decimal.NewFromInt(2100000),
		decimal.NewFromInt(31000), decimal.NewFromFloat(8.5),
		240, 160,
		date(2021, 1, 5), date(2041, 1, 5),
		valueobject.LoanStatusActive, date(2021, 1, 5),
	)

	payments := make([]*model.PaymentRecord, 0, 24)
	for i := 0; i < 24; i++ {
		due := snapshotTime.AddDate(0, -i, 0)
		paid := due.AddDate(0, 0, -1)
		status := valueobject.PaymentOnTime
		daysLate := 0
		if i == 5 {
			status = valueobject.PaymentLate1To30
			paid = due.AddDate(0, 0, 12)
			daysLate = 12
		}
		payments = append(payments, model.ReconstructPaymentRecord(
			uuid.New(), customerID, nil, nil,
			valueobject.PaymentTypeLoanEMI, status,
			due, &paid,
			decimal.NewFromInt(31000), decimal.NewFromInt(31000),
			daysLate, due,
		))
	}

	return model.NewCreditHistory(
		snapshotTime,
		[]*model.BankAccount{account},
		[]*model.CreditCard{card},
		[]*model.Loan{loan},
		payments,
	)
}

func testScoreCard(t *testing.T, customerID uuid.UUID, score int, isLatest bool) *model.ScoreCard {
	t.Helper()
	return model.ReconstructScoreCard(
		uuid.New(), customerID, score,
		model.FactorScores{
			PaymentHistory:      88.5,
			CreditUtilization:   85,
			CreditHistoryLength: 40,
			CreditMix:           75,
			NewCredit:           100,
		},
		1.0302, 250, 950,
		model.ScoreMetrics{
			TotalCreditLimit:   decimal.NewFromInt(200000),
			TotalOutstanding:   decimal.NewFromInt(2130000),
			TotalAccounts:      3,
			ActiveAccounts:     3,
			UtilizationPercent: 15,
		},
		valueobject.GradeFromScore(score),
		valueobject.CategoryFromScore(score),
		date(2025, 5, 20), isLatest,
	)
}

// --- Tests ---

func TestCalculateScore_Execute(t *testing.T) {
	newUseCase := func(customers *mockCustomerRepository, scores *mockScoreRepository, publisher *mockEventPublisher) *usecase.CalculateScore {
		history := &mockHistoryRepository{}
		if customers.customer != nil {
			history.history = testHistory(t, customers.customer.ID())
		}
		return usecase.NewCalculateScore(customers, history, scores, publisher, service.NewEngine(service.DerivedPolicy()))
	}

	t.Run("scores an on-file customer and persists the latest card", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{}
		uc := newUseCase(customers, scores, publisher)

		resp, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{PAN: "ABCDE1234F"})

		require.NoError(t, err)
		require.NotNil(t, scores.savedCard)
		assert.True(t, scores.savedCard.IsLatest())
		assert.Equal(t, scores.savedCard.Score(), resp.ScoreSummary.FinalScore)
		assert.GreaterOrEqual(t, resp.ScoreSummary.FinalScore, resp.ScoreSummary.ScoreRange.MinimumPossible)
		assert.LessOrEqual(t, resp.ScoreSummary.FinalScore, resp.ScoreSummary.ScoreRange.MaximumPossible)
		assert.Equal(t, "ABCDE1234F", resp.PANCardNumber)
		assert.Equal(t, "Asha Verma", resp.Customer.FullName)
		assert.NotEmpty(t, resp.ScoreSummary.ScoreGrade)
		assert.False(t, resp.WeightConfiguration.CustomWeightsApplied)
		assert.Equal(t, "2.0_dynamic", resp.Metadata.AlgorithmVersion)
		assert.NotNil(t, resp.DetailedBreakdown)

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "cibil.score.calculated", publisher.publishedEvents[0].EventType())
	})

	t.Run("applies custom weights", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{}
		uc := newUseCase(customers, scores, publisher)

		resp, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{
			PAN: "ABCDE1234F",
			CustomWeights: map[string]float64{
				"payment_history":       50,
				"credit_utilization":    20,
				"credit_history_length": 10,
				"credit_mix":            10,
				"new_credit":            10,
			},
		})

		require.NoError(t, err)
		assert.True(t, resp.WeightConfiguration.CustomWeightsApplied)
		assert.InDelta(t, 0.50, resp.WeightConfiguration.WeightsUsed[service.FactorPaymentHistory], 1e-9)
		assert.InDelta(t, 0.20, resp.WeightConfiguration.WeightsUsed[service.FactorCreditUtilization], 1e-9)
	})

	t.Run("rejects an unknown weight factor", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{}
		uc := newUseCase(customers, scores, publisher)

		_, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{
			PAN:           "ABCDE1234F",
			CustomWeights: map[string]float64{"credit_karma": 10},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid factor: credit_karma")
	})

	t.Run("rejects an out-of-range weight", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{}
		uc := newUseCase(customers, scores, publisher)

		_, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{
			PAN:           "ABCDE1234F",
			CustomWeights: map[string]float64{"payment_history": 150},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight for payment_history must be between 0 and 100")
	})

	t.Run("rejects a malformed PAN", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{}
		uc := newUseCase(customers, scores, publisher)

		_, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{PAN: "not-a-pan"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PAN")
	})

	t.Run("fails when the customer is unknown", func(t *testing.T) {
		customers := &mockCustomerRepository{}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{}
		uc := newUseCase(customers, scores, publisher)

		_, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{PAN: "ABCDE1234F"})

		require.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	})

	t.Run("fails when saving the card fails", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{
			saveFunc: func(ctx context.Context, card *model.ScoreCard) error {
				return fmt.Errorf("database unavailable")
			},
		}
		publisher := &mockEventPublisher{}
		uc := newUseCase(customers, scores, publisher)

		_, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{PAN: "ABCDE1234F"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save score card")
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{
			publishFunc: func(ctx context.Context, evts ...events.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}
		uc := newUseCase(customers, scores, publisher)

		_, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{PAN: "ABCDE1234F"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish events")
	})

	t.Run("scores an empty file with neutral policies", func(t *testing.T) {
		customers := &mockCustomerRepository{customer: testCustomer(t)}
		scores := &mockScoreRepository{}
		publisher := &mockEventPublisher{}
		history := &mockHistoryRepository{}
		uc := usecase.NewCalculateScore(customers, history, scores, publisher, service.NewEngine(service.DerivedPolicy()))

		resp, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{PAN: "ABCDE1234F"})

		require.NoError(t, err)
		require.NotNil(t, scores.savedCard)
		// No payments 50, no cards 70, no dates 30, empty mix 0, no recent accounts 100.
		factors := scores.savedCard.Factors()
		assert.InDelta(t, 50.0, factors.PaymentHistory, 1e-9)
		assert.InDelta(t, 70.0, factors.CreditUtilization, 1e-9)
		assert.InDelta(t, 30.0, factors.CreditHistoryLength, 1e-9)
		assert.InDelta(t, 0.0, factors.CreditMix, 1e-9)
		assert.InDelta(t, 100.0, factors.NewCredit, 1e-9)
		assert.GreaterOrEqual(t, resp.ScoreSummary.FinalScore, model.ScoreFloor)
		assert.LessOrEqual(t, resp.ScoreSummary.FinalScore, model.ScoreCeiling)
	})
}
