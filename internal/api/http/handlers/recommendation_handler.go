package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// RecommendationHandler exposes remediation plan generation.
type RecommendationHandler struct {
	recommendations *service.RecommendationService
}

// NewRecommendationHandler constructs handler.
func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendationService}
}

// Recommend POST /recommendation.
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Некорректное тело запроса")
	}

	plan, err := h.recommendations.Recommend(c.UserContext(), req.Complaint)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Рекомендация успешно сгенерирована",
		"data":    plan,
	})
}
