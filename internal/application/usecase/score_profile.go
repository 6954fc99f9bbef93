package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/cibil-service/internal/application/dto"
	"github.com/bibbank/cibil-service/internal/domain/service"
	"github.com/bibbank/cibil-service/internal/domain/valueobject"
)

// ScoreProfile scores a caller-asserted financial profile with the
// declarative engine. Nothing is persisted and no events are published; the
// caller owns the result.
type ScoreProfile struct {
	engine *service.Engine
}

// NewScoreProfile creates the ScoreProfile use case. The engine is expected
// to carry the declarative policy.
func NewScoreProfile(engine *service.Engine) *ScoreProfile {
	return &ScoreProfile{engine: engine}
}

// Execute validates the profile eagerly and runs the pipeline on it.
func (uc *ScoreProfile) Execute(ctx context.Context, req dto.ScoreProfileRequest) (dto.ScoreProfileResponse, error) {
	profile, err := service.NewFinancialProfile(req.ProfileInput())
	if err != nil {
		return dto.ScoreProfileResponse{}, fmt.Errorf("invalid profile: %w", err)
	}

	weights, err := dto.ParseWeights(req.Weights)
	if err != nil {
		return dto.ScoreProfileResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	breakdown, err := uc.engine.Score(profile.Facts(), weights)
	if err != nil {
		return dto.ScoreProfileResponse{}, fmt.Errorf("failed to calculate score: %w", err)
	}

	return dto.ScoreProfileResponse{
		Breakdown: breakdown,
		Grade:     valueobject.GradeFromScore(breakdown.FinalScore).String(),
		Category:  valueobject.CategoryFromScore(breakdown.FinalScore).String(),
	}, nil
}
