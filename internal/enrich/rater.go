package enrich

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/llm"
)

const ratePrompt = `Оцени, насколько жалоба звучит правдоподобно и серьёзно, по шкале от 0 (полная чушь/шутка) до 10 (очень серьёзная и реальная жалоба). Не объясняй.
Оценивай уровень серьёзности с учётом общего смысла. Если в жалобе присутствует явный абсурд или фантазия, ставь оценку ближе к 0.
0 — шутка, сарказм, абсурд, бред, невозможная ситуация
1–3 — звучит сомнительно, подозрительно, похоже на выдумку
4–6 — возможно, но с натяжкой
7–9 — вероятно, звучит серьёзно
10 — совершенно серьёзная и правдоподобная жалоба
Ответь только числом от 0 до 10.

Жалоба: `

// Rater scores how serious and credible a complaint sounds.
type Rater struct {
	gateway llm.Gateway
	logger  *zap.Logger
}

// NewRater constructs the rater around a shared gateway.
func NewRater(gateway llm.Gateway, logger *zap.Logger) *Rater {
	return &Rater{gateway: gateway, logger: logger}
}

// Rate returns a 0-10 score and whether one was obtained. It reports false
// on gateway failure, a non-numeric response or a number outside 0-10 so the
// caller decides the fallback policy.
func (r *Rater) Rate(ctx context.Context, text string) (float64, bool) {
	raw, err := r.gateway.Generate(ctx, ratePrompt+text, llm.GenerationParams{
		Temperature: 0,
		TopP:        1,
		MaxTokens:   10,
	})
	if err != nil {
		r.logger.Warn("seriousness rating unavailable", zap.Error(err))
		return 0, false
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		r.logger.Warn("seriousness rating not numeric", zap.String("response", raw))
		return 0, false
	}
	if score < 0 || score > 10 {
		r.logger.Warn("seriousness rating out of range", zap.Float64("score", score))
		return 0, false
	}
	return score, true
}
