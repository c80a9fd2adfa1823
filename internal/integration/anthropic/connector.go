// Package anthropic is the default completion provider: a direct call to
// the Anthropic Messages API through the shared HTTP connector.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/legiit/coldmail-backend/internal/config"
	"github.com/legiit/coldmail-backend/internal/entity"
	pkghttp "github.com/legiit/coldmail-backend/pkg/http"
	"go.uber.org/zap"
)

const messagesEndpoint = "/v1/messages"

type Connector struct {
	config    config.AnthropicConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.AnthropicConfig, logger *zap.Logger) *Connector {
	connCfg := &pkghttp.ConnectorConfig{
		BaseURL: cfg.BaseURL,
		Logger:  logger,
	}

	return &Connector{
		connector: pkghttp.NewConnector(
			connCfg,
			pkghttp.WithRequestTimeout(cfg.Timeout),
			pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
			pkghttp.WithResponseHeaderTimeout(cfg.Timeout),
			pkghttp.WithRequestLogging(),
			pkghttp.WithAPIKeyHeader("x-api-key", cfg.APIKey),
		),
		config: cfg,
		logger: logger,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

// Complete sends the prompt as a single user message and returns the first
// content block's text. The credential is checked at call time: a missing
// key is a configuration error for this request, not a transport failure,
// and never crashes the process.
func (c *Connector) Complete(ctx context.Context, prompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", entity.ErrAPIKeyMissing
	}

	ctxzap.Info(ctx, "requesting completion",
		zap.String("model", c.config.Model),
		zap.Int("max_tokens", c.config.MaxTokens),
		zap.Int("prompt_length", len(prompt)),
	)

	req := messagesRequest{
		Model:       c.config.Model,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	var resp messagesResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, messagesEndpoint, req, &resp,
		pkghttp.WithHeader("anthropic-version", c.config.Version),
	)
	if err != nil {
		return "", translateError(err)
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return "", fmt.Errorf("empty completion response")
	}

	ctxzap.Info(ctx, "completion received",
		zap.String("stop_reason", resp.StopReason),
		zap.Int("completion_length", len(resp.Content[0].Text)),
	)

	return resp.Content[0].Text, nil
}

func translateError(err error) error {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return &entity.VendorError{StatusCode: httpErr.StatusCode, Body: httpErr.Message}
	}

	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return &entity.TransportError{Err: netErr.Err}
	}

	return &entity.TransportError{Err: err}
}
