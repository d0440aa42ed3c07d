package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/config"
	"github.com/spec-kit/complaint-service/internal/observability"
)

const anthropicVersion = "bedrock-2023-05-31"

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	Messages         []anthropicMessage `json:"messages"`
	Temperature      float64            `json:"temperature"`
	TopP             float64            `json:"top_p,omitempty"`
	MaxTokens        int32              `json:"max_tokens"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

// BedrockGateway invokes an Anthropic model hosted on AWS Bedrock. A single
// process-wide instance is constructed at startup and injected everywhere a
// model call is needed.
type BedrockGateway struct {
	client  *bedrockruntime.Client
	modelID string
	timeout time.Duration
	sem     chan struct{}
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewBedrockGateway builds the gateway. Static credentials are used when
// provided; otherwise the SDK default chain applies.
func NewBedrockGateway(ctx context.Context, cfg config.BedrockConfig, logger *zap.Logger, metrics *observability.Metrics) (*BedrockGateway, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
	})

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}

	return &BedrockGateway{
		client:  client,
		modelID: cfg.ModelID,
		timeout: cfg.CallTimeout(),
		sem:     make(chan struct{}, maxConcurrent),
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Generate sends a single-turn request and returns the first text segment of
// the response. Concurrent invocations are bounded so slow model calls cannot
// exhaust the server's concurrency budget.
func (g *BedrockGateway) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	select {
	case g.sem <- struct{}{}:
		defer func() { <-g.sem }()
	case <-ctx.Done():
		g.logger.Warn("model call rejected while waiting for slot", zap.Error(ctx.Err()))
		return "", ErrModelUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	payload := anthropicRequest{
		AnthropicVersion: anthropicVersion,
		Messages: []anthropicMessage{{
			Role:    "user",
			Content: []anthropicContent{{Type: "text", Text: prompt}},
		}},
		Temperature: params.Temperature,
		TopP:        params.TopP,
		MaxTokens:   params.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("marshal model request", zap.Error(err))
		return "", ErrModelUnavailable
	}

	out, err := g.client.InvokeModel(callCtx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		g.metrics.RecordModelCall(g.modelID, false)
		g.logger.Warn("model invocation failed", zap.String("model_id", g.modelID), zap.Error(err))
		return "", ErrModelUnavailable
	}

	var resp anthropicResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		g.metrics.RecordModelCall(g.modelID, false)
		g.logger.Warn("malformed model response", zap.Error(err))
		return "", ErrModelUnavailable
	}
	if len(resp.Content) == 0 || strings.TrimSpace(resp.Content[0].Text) == "" {
		g.metrics.RecordModelCall(g.modelID, false)
		g.logger.Warn("model response missing content segment")
		return "", ErrModelUnavailable
	}

	g.metrics.RecordModelCall(g.modelID, true)
	return strings.TrimSpace(resp.Content[0].Text), nil
}
