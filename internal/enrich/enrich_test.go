package enrich

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/llm"
)

// stubGateway returns a canned response or error and records the last prompt.
type stubGateway struct {
	response   string
	err        error
	lastPrompt string
	lastParams llm.GenerationParams
}

func (s *stubGateway) Generate(_ context.Context, prompt string, params llm.GenerationParams) (string, error) {
	s.lastPrompt = prompt
	s.lastParams = params
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestClassifyReturnsKnownLabel(t *testing.T) {
	gw := &stubGateway{response: "housing"}
	c := NewClassifier(gw, zap.NewNop())

	got := c.Classify(context.Background(), "В доме нет отопления")
	if got != domain.CategoryHousing {
		t.Errorf("got %q, want %q", got, domain.CategoryHousing)
	}
	if gw.lastParams.Temperature != 0 || gw.lastParams.MaxTokens != 10 {
		t.Errorf("unexpected generation params: %+v", gw.lastParams)
	}
}

func TestClassifyNormalizesResponse(t *testing.T) {
	gw := &stubGateway{response: "  Medicine\n"}
	c := NewClassifier(gw, zap.NewNop())

	if got := c.Classify(context.Background(), "кашель и обморок"); got != domain.CategoryMedicine {
		t.Errorf("got %q, want %q", got, domain.CategoryMedicine)
	}
}

func TestClassifyUnknownLabelFallsBack(t *testing.T) {
	gw := &stubGateway{response: "plumbing issues, definitely"}
	c := NewClassifier(gw, zap.NewNop())

	if got := c.Classify(context.Background(), "текст"); got != domain.CategoryUncategorized {
		t.Errorf("got %q, want %q", got, domain.CategoryUncategorized)
	}
}

func TestClassifyGatewayFailureFallsBack(t *testing.T) {
	gw := &stubGateway{err: llm.ErrModelUnavailable}
	c := NewClassifier(gw, zap.NewNop())

	if got := c.Classify(context.Background(), "текст"); got != domain.CategoryUncategorized {
		t.Errorf("got %q, want %q", got, domain.CategoryUncategorized)
	}
}

func TestRateParsesNumbers(t *testing.T) {
	cases := []struct {
		response string
		want     float64
		ok       bool
	}{
		{"7", 7, true},
		{" 7.5 ", 7.5, true},
		{"0", 0, true},
		{"10", 10, true},
		{"15", 0, false},
		{"-1", 0, false},
		{"ten", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		gw := &stubGateway{response: tc.response}
		r := NewRater(gw, zap.NewNop())
		got, ok := r.Rate(context.Background(), "жалоба")
		if ok != tc.ok || got != tc.want {
			t.Errorf("response %q: got (%v, %v), want (%v, %v)", tc.response, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRateGatewayFailureReportsUnknown(t *testing.T) {
	gw := &stubGateway{err: llm.ErrModelUnavailable}
	r := NewRater(gw, zap.NewNop())

	if _, ok := r.Rate(context.Background(), "жалоба"); ok {
		t.Error("expected unknown result on gateway failure")
	}
}

func TestRecommendReturnsPlan(t *testing.T) {
	gw := &stubGateway{response: "1. Направить комиссию в течение 3 дней"}
	r := NewRecommender(gw, zap.NewNop())

	got := r.Recommend(context.Background(), "жалоба")
	if got != gw.response {
		t.Errorf("got %q, want %q", got, gw.response)
	}
	if gw.lastParams.Temperature != 0.3 || gw.lastParams.MaxTokens != 800 {
		t.Errorf("unexpected generation params: %+v", gw.lastParams)
	}
}

func TestRecommendGatewayFailureReturnsFallbackMessage(t *testing.T) {
	gw := &stubGateway{err: llm.ErrModelUnavailable}
	r := NewRecommender(gw, zap.NewNop())

	if got := r.Recommend(context.Background(), "жалоба"); got != RecommendationFallback {
		t.Errorf("got %q, want %q", got, RecommendationFallback)
	}
}
