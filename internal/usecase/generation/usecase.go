// Package generation orchestrates one generation request: knowledge lookup,
// prompt composition, the single vendor call, extraction and validation.
// Nothing here survives the request except the optional result cache.
package generation

import (
	"context"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/legiit/coldmail-backend/internal/config"
	"github.com/legiit/coldmail-backend/internal/entity"
	"github.com/legiit/coldmail-backend/internal/extract"
	"github.com/legiit/coldmail-backend/internal/pkg/logger"
)

type Usecase struct {
	kb        KnowledgeBase
	composer  Composer
	validator Validator
	client    CompletionClient
	mode      entity.OutputMode
	provider  entity.Provider
	cache     *resultCache
	logger    *zap.Logger
}

func NewUsecase(
	kb KnowledgeBase,
	composer Composer,
	validator Validator,
	client CompletionClient,
	gen config.GenerationConfig,
	cacheCfg config.CacheConfig,
	log *zap.Logger,
) *Usecase {
	var cache *resultCache
	if cacheCfg.Enabled {
		cache = newResultCache(cacheCfg.TTL)
	}

	return &Usecase{
		kb:        kb,
		composer:  composer,
		validator: validator,
		client:    client,
		mode:      gen.OutputMode,
		provider:  gen.Provider,
		cache:     cache,
		logger:    log,
	}
}

// GenerateEmails runs the full pipeline for one request. Every failure is
// returned as a typed entity error; the vendor call is never retried.
func (u *Usecase) GenerateEmails(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	generationID := uuid.NewString()
	ctx = logger.AddFields(ctx,
		zap.String("generation_id", generationID),
		zap.String("niche", req.Niche),
		zap.String("product", req.Product),
	)

	key := fingerprint(req.Niche, req.Product, u.mode, u.provider)
	if cached, ok := u.cache.Get(key); ok {
		ctxzap.Info(ctx, "serving cached generation result",
			zap.String("cached_generation_id", cached.ID),
		)
		return cached, nil
	}

	profile := u.kb.Lookup(req.Product)
	ctxzap.Debug(ctx, "resolved product profile", zap.String("product_key", profile.ProductKey))

	promptText := u.composer.Compose(req.Niche, req.Product, profile, u.mode)

	raw, err := u.client.Complete(ctx, promptText)
	if err != nil {
		ctxzap.Error(ctx, "completion call failed", zap.Error(err))
		return nil, err
	}

	candidate, err := extract.Extract(raw, u.mode)
	if err != nil {
		// Keep the raw text server-side for offline diagnosis; the caller
		// only sees the typed error.
		ctxzap.Error(ctx, "extraction failed",
			zap.Error(err),
			zap.String("raw_completion", raw),
		)
		return nil, err
	}

	drafts, err := u.validator.Validate(candidate)
	if err != nil {
		ctxzap.Error(ctx, "validation failed",
			zap.Error(err),
			zap.String("raw_completion", raw),
		)
		return nil, err
	}

	result := &entity.GenerationResult{
		ID:     generationID,
		Mode:   u.mode,
		Emails: drafts,
	}

	u.cache.Set(key, result)

	ctxzap.Info(ctx, "emails generated successfully", zap.Int("email_count", len(drafts)))

	return result, nil
}
