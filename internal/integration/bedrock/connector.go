// Package bedrock is the alternate completion provider: the same Claude
// family invoked through AWS Bedrock, for deployments that keep all traffic
// inside AWS.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/legiit/coldmail-backend/internal/config"
	"github.com/legiit/coldmail-backend/internal/entity"
	"go.uber.org/zap"
)

type Connector struct {
	client *bedrockruntime.Client
	config config.BedrockConfig
	logger *zap.Logger
}

func NewConnector(ctx context.Context, cfg config.BedrockConfig, logger *zap.Logger) (*Connector, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Connector{
		client: bedrockruntime.NewFromConfig(awsCfg),
		config: cfg,
		logger: logger,
	}, nil
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
	Temperature      *float64  `json:"temperature,omitempty"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func (c *Connector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting completion via Bedrock",
		zap.String("model_id", c.config.ModelID),
		zap.Int("max_tokens", c.config.MaxTokens),
	)

	req := invokeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        c.config.MaxTokens,
		Temperature:      c.config.Temperature,
		Messages: []message{
			{Role: "user", Content: []contentBlock{{Type: "text", Text: prompt}}},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	output, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.config.ModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", &entity.TransportError{Err: err}
	}

	var resp invokeResponse
	if err := json.Unmarshal(output.Body, &resp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return "", fmt.Errorf("empty completion response")
	}

	ctxzap.Info(ctx, "completion received via Bedrock",
		zap.String("stop_reason", resp.StopReason),
	)

	return resp.Content[0].Text, nil
}
