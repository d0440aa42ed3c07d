package enrich

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/llm"
)

const classifyPrompt = `Ты — строгий классификатор жалоб. Не объясняй. Не пиши полных предложений. Не добавляй формат.

Прочитай жалобу. Верни одно слово — категорию:

housing, transport, medicine, education, ecology, police, social, corruption, government, other

Если не относится ни к чему — верни: other
Если несколько тем — выбери самую опасную для жизни или здоровья
Симптомы (кашель, обморок, тошнота и т.п.) — medicine
Недомогание, отравление, ухудшение самочувствия — medicine
Огонь, дым, гарь — ecology
Угрозы, хамство, агрессия — police
Место (школа, автобус) ≠ категория, если есть угроза

Приоритет:
medicine
ecology
police
transport
housing
social
government
corruption
education

Ответ — только одно слово на английском. Без точек, кавычек и пояснений

Жалоба: `

var classifierLabels = func() map[domain.ComplaintCategory]bool {
	labels := make(map[domain.ComplaintCategory]bool, len(domain.ClassifierCategories))
	for _, c := range domain.ClassifierCategories {
		labels[c] = true
	}
	return labels
}()

// Classifier assigns a topic category to complaint text.
type Classifier struct {
	gateway llm.Gateway
	logger  *zap.Logger
}

// NewClassifier constructs the classifier around a shared gateway.
func NewClassifier(gateway llm.Gateway, logger *zap.Logger) *Classifier {
	return &Classifier{gateway: gateway, logger: logger}
}

// Classify returns one label from the closed category set. Gateway failure
// and any response outside the set map to CategoryUncategorized; the caller
// never sees an error.
func (c *Classifier) Classify(ctx context.Context, text string) domain.ComplaintCategory {
	raw, err := c.gateway.Generate(ctx, classifyPrompt+text, llm.GenerationParams{
		Temperature: 0,
		TopP:        1,
		MaxTokens:   10,
	})
	if err != nil {
		c.logger.Warn("classification unavailable, using fallback", zap.Error(err))
		return domain.CategoryUncategorized
	}

	label := domain.ComplaintCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !classifierLabels[label] {
		c.logger.Warn("classifier returned unknown label", zap.String("label", string(label)))
		return domain.CategoryUncategorized
	}
	return label
}
