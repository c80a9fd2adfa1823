package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/legiit/coldmail-backend/internal/api"
	generationapi "github.com/legiit/coldmail-backend/internal/api/generation"
	"github.com/legiit/coldmail-backend/internal/config"
	"github.com/legiit/coldmail-backend/internal/entity"
	"github.com/legiit/coldmail-backend/internal/integration/anthropic"
	"github.com/legiit/coldmail-backend/internal/integration/bedrock"
	"github.com/legiit/coldmail-backend/internal/knowledge"
	"github.com/legiit/coldmail-backend/internal/prompt"
	"github.com/legiit/coldmail-backend/internal/usecase/generation"
	"github.com/legiit/coldmail-backend/internal/validate"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("output_mode", string(cfg.Generation.OutputMode)),
		zap.String("provider", string(cfg.Generation.Provider)),
	)

	// Initialize the product knowledge base
	kb := knowledge.NewBase()

	// Initialize prompt composer
	composer := prompt.NewComposer(cfg.Generation.EmailCount, cfg.Generation.SubjectCount)

	// Initialize response validator for the active output mode
	validator, err := validate.NewValidator(cfg.Generation.OutputMode, cfg.Generation.SubjectCount)
	if err != nil {
		return nil, fmt.Errorf("setup validator: %w", err)
	}

	// Initialize completion client (with mock support)
	var client generation.CompletionClient
	if cfg.EnableMocks {
		logger.Info("Using mock completion client")
		client = anthropic.NewMockConnector(cfg.Generation, logger)
	} else {
		switch cfg.Generation.Provider {
		case entity.ProviderBedrock:
			logger.Info("Using AWS Bedrock completion client",
				zap.String("region", cfg.BedrockCfg.Region),
				zap.String("model_id", cfg.BedrockCfg.ModelID),
			)
			client, err = bedrock.NewConnector(ctx, cfg.BedrockCfg, logger)
			if err != nil {
				return nil, fmt.Errorf("setup bedrock client: %w", err)
			}
		default:
			logger.Info("Using Anthropic completion client",
				zap.String("model", cfg.AnthropicCfg.Model),
			)
			client = anthropic.NewConnector(cfg.AnthropicCfg, logger)
		}
	}

	// Initialize use case
	generationUC := generation.NewUsecase(
		kb,
		composer,
		validator,
		client,
		cfg.Generation,
		cfg.CacheCfg,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handler
	generationHandler := generationapi.NewHandler(generationUC)

	// Setup router
	router := api.SetupRouter(generationHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
