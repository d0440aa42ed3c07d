package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/llm"
)

const recommendPrompt = `Ты — советник по регламенту для госслужащих КР.
Тебе, как ответственному должностному лицу, поступила следующая жалоба от гражданина.
Дай четкий план действий по регламенту:

1. Необходимые действия по порядку с указанием сроков
2. Какие службы нужно задействовать
3. Какие документы нужно оформить
4. В какие сроки нужно отчитаться

Формат ответа:
- Четкие пункты
- Конкретные сроки
- Ссылки на НПА
- Без лишних слов

Жалоба гражданина: `

// RecommendationFallback is shown to callers when the model cannot produce a
// plan. A degraded mode, not an error.
const RecommendationFallback = "Не удалось сгенерировать рекомендацию."

// Recommender produces a remediation plan for a complaint.
type Recommender struct {
	gateway llm.Gateway
	logger  *zap.Logger
}

// NewRecommender constructs the recommender around a shared gateway.
func NewRecommender(gateway llm.Gateway, logger *zap.Logger) *Recommender {
	return &Recommender{gateway: gateway, logger: logger}
}

// Recommend returns the generated plan text, or RecommendationFallback when
// the gateway fails.
func (r *Recommender) Recommend(ctx context.Context, text string) string {
	plan, err := r.gateway.Generate(ctx, recommendPrompt+text, llm.GenerationParams{
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		r.logger.Warn("recommendation unavailable, using fallback", zap.Error(err))
		return RecommendationFallback
	}
	return plan
}
