package service

import (
	"context"
	"strings"

	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// PlanRecommender produces an actionable remediation plan for a complaint.
type PlanRecommender interface {
	Recommend(ctx context.Context, text string) string
}

// RecommendationService validates input and delegates plan generation.
type RecommendationService struct {
	recommender PlanRecommender
}

// NewRecommendationService builds the service.
func NewRecommendationService(recommender PlanRecommender) *RecommendationService {
	return &RecommendationService{recommender: recommender}
}

// Recommend returns a remediation plan for the complaint text. Model outages
// surface as the recommender's degraded-mode message, never as an error.
func (s *RecommendationService) Recommend(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.NewValidationError("Поле жалобы обязательно для заполнения")
	}
	return s.recommender.Recommend(ctx, text), nil
}
