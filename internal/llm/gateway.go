package llm

import (
	"context"
	"errors"
)

// ErrModelUnavailable is the single failure every gateway problem collapses
// to: transport errors, non-success responses, malformed bodies, missing
// content segments and bounded-wait expiry.
var ErrModelUnavailable = errors.New("model unavailable")

// GenerationParams tune a single model invocation.
type GenerationParams struct {
	Temperature float64
	TopP        float64
	MaxTokens   int32
}

// Gateway abstracts the hosted text-generation model. One attempt per call,
// no retries, no caching: identical prompts are always re-sent.
type Gateway interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
