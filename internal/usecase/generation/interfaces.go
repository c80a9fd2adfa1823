package generation

import (
	"context"

	"github.com/legiit/coldmail-backend/internal/entity"
)

// CompletionClient is one call-and-response round trip with the LLM vendor.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// KnowledgeBase resolves product names to profiles. Lookup is total.
type KnowledgeBase interface {
	Lookup(productName string) entity.ProductProfile
}

// Composer builds the prompt document for one request.
type Composer interface {
	Compose(niche, product string, profile entity.ProductProfile, mode entity.OutputMode) string
}

// Validator checks an extracted candidate against the draft schema.
type Validator interface {
	Validate(candidate entity.Candidate) ([]entity.EmailDraft, error)
}
