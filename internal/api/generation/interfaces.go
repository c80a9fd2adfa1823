package generation

import (
	"context"

	"github.com/legiit/coldmail-backend/internal/entity"
)

type GenerationUsecase interface {
	GenerateEmails(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error)
}
