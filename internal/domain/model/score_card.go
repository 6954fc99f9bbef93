package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/cibil-service/internal/domain/event"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
	"github.com/bibbank/cibil-service/pkg/events"
)

// Absolute bounds any persisted score must fall in. The dynamic range of an
// individual calculation is always contained in this envelope.
const (
	ScoreFloor   = 150
	ScoreCeiling = 1200
)

// FactorScores carries the five raw 0-100 factor scores of a calculation.
type FactorScores struct {
	PaymentHistory      float64
	CreditUtilization   float64
	CreditHistoryLength float64
	CreditMix           float64
	NewCredit           float64
}

// ScoreMetrics carries the account-level aggregates recorded with a score.
type ScoreMetrics struct {
	TotalCreditLimit   decimal.Decimal
	TotalOutstanding   decimal.Decimal
	TotalAccounts      int
	ActiveAccounts     int
	UtilizationPercent float64
}

// ScoreCard is the aggregate root for a persisted score calculation. A new
// card is the customer's latest by construction; the repository demotes the
// previous latest in the same transaction that saves this one.
type ScoreCard struct {
	scoreDate            time.Time
	factors              FactorScores
	metrics              ScoreMetrics
	grade                valueobject.Grade
	category             valueobject.ScoreCategory
	domainEvents         []events.DomainEvent
	customerID           uuid.UUID
	id                   uuid.UUID
	score                int
	rangeMin             int
	rangeMax             int
	behavioralMultiplier float64
	isLatest             bool
}

// NewScoreCard creates a score card from a completed calculation and emits
// the score-calculated event.
func NewScoreCard(
	customerID uuid.UUID,
	score int,
	factors FactorScores,
	behavioralMultiplier float64,
	rangeMin, rangeMax int,
	metrics ScoreMetrics,
) (*ScoreCard, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customer ID is required")
	}
	if rangeMin < ScoreFloor || rangeMax > ScoreCeiling || rangeMin >= rangeMax {
		return nil, fmt.Errorf("score range [%d,%d] outside envelope [%d,%d]", rangeMin, rangeMax, ScoreFloor, ScoreCeiling)
	}
	if score < rangeMin || score > rangeMax {
		return nil, fmt.Errorf("score %d outside its range [%d,%d]", score, rangeMin, rangeMax)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"payment history", factors.PaymentHistory},
		{"credit utilization", factors.CreditUtilization},
		{"credit history length", factors.CreditHistoryLength},
		{"credit mix", factors.CreditMix},
		{"new credit", factors.NewCredit},
	} {
		if f.value < 0 || f.value > 100 {
			return nil, fmt.Errorf("%s score %v outside [0,100]", f.name, f.value)
		}
	}
	if behavioralMultiplier <= 0 {
		return nil, fmt.Errorf("behavioral multiplier must be positive")
	}

	now := time.Now().UTC()
	grade := valueobject.GradeFromScore(score)
	category := valueobject.CategoryFromScore(score)

	card := &ScoreCard{
		id:                   uuid.New(),
		customerID:           customerID,
		score:                score,
		factors:              factors,
		behavioralMultiplier: behavioralMultiplier,
		rangeMin:             rangeMin,
		rangeMax:             rangeMax,
		metrics:              metrics,
		grade:                grade,
		category:             category,
		scoreDate:            now,
		isLatest:             true,
	}

	card.domainEvents = append(card.domainEvents, event.NewScoreCalculated(
		card.id, customerID, score, grade.String(), category.String(), behavioralMultiplier, now,
	))

	return card, nil
}

// ReconstructScoreCard rebuilds a ScoreCard from persisted data (no validation, no events).
func ReconstructScoreCard(
	id, customerID uuid.UUID,
	score int,
	factors FactorScores,
	behavioralMultiplier float64,
	rangeMin, rangeMax int,
	metrics ScoreMetrics,
	grade valueobject.Grade,
	category valueobject.ScoreCategory,
	scoreDate time.Time,
	isLatest bool,
) *ScoreCard {
	return &ScoreCard{
		id:                   id,
		customerID:           customerID,
		score:                score,
		factors:              factors,
		behavioralMultiplier: behavioralMultiplier,
		rangeMin:             rangeMin,
		rangeMax:             rangeMax,
		metrics:              metrics,
		grade:                grade,
		category:             category,
		scoreDate:            scoreDate,
		isLatest:             isLatest,
		domainEvents:         make([]events.DomainEvent, 0),
	}
}

// --- Accessors ---

func (s *ScoreCard) ID() uuid.UUID                       { return s.id }
func (s *ScoreCard) CustomerID() uuid.UUID               { return s.customerID }
func (s *ScoreCard) Score() int                          { return s.score }
func (s *ScoreCard) Factors() FactorScores               { return s.factors }
func (s *ScoreCard) BehavioralMultiplier() float64       { return s.behavioralMultiplier }
func (s *ScoreCard) RangeMin() int                       { return s.rangeMin }
func (s *ScoreCard) RangeMax() int                       { return s.rangeMax }
func (s *ScoreCard) RangeWidth() int                     { return s.rangeMax - s.rangeMin }
func (s *ScoreCard) Metrics() ScoreMetrics               { return s.metrics }
func (s *ScoreCard) Grade() valueobject.Grade            { return s.grade }
func (s *ScoreCard) Category() valueobject.ScoreCategory { return s.category }
func (s *ScoreCard) ScoreDate() time.Time                { return s.scoreDate }
func (s *ScoreCard) IsLatest() bool                      { return s.isLatest }

// DomainEvents returns all accumulated domain events and clears them.
func (s *ScoreCard) DomainEvents() []events.DomainEvent {
	evts := s.domainEvents
	s.domainEvents = make([]events.DomainEvent, 0)
	return evts
}
