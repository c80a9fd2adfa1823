package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/legiit/coldmail-backend/internal/config"
	"github.com/legiit/coldmail-backend/internal/entity"
	"github.com/legiit/coldmail-backend/internal/integration/anthropic"
	"github.com/legiit/coldmail-backend/internal/knowledge"
	"github.com/legiit/coldmail-backend/internal/prompt"
	"github.com/legiit/coldmail-backend/internal/validate"
)

// stubClient returns a fixed completion and records how it was called.
type stubClient struct {
	completion string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.completion, nil
}

func testGenConfig(mode entity.OutputMode) config.GenerationConfig {
	return config.GenerationConfig{
		Provider:     entity.ProviderAnthropic,
		OutputMode:   mode,
		EmailCount:   5,
		SubjectCount: 5,
	}
}

func newTestUsecase(t *testing.T, mode entity.OutputMode, client CompletionClient, cacheCfg config.CacheConfig) *Usecase {
	t.Helper()

	validator, err := validate.NewValidator(mode, 5)
	require.NoError(t, err)

	return NewUsecase(
		knowledge.NewBase(),
		prompt.NewComposer(5, 5),
		validator,
		client,
		testGenConfig(mode),
		cacheCfg,
		zap.NewNop(),
	)
}

func TestGenerateEmailsEndToEndWithMockClient(t *testing.T) {
	gen := testGenConfig(entity.ModeFiveSubjects)
	client := anthropic.NewMockConnector(gen, zap.NewNop())
	uc := newTestUsecase(t, entity.ModeFiveSubjects, client, config.CacheConfig{})

	result, err := uc.GenerateEmails(context.Background(), &entity.GenerationRequest{
		Niche:   "dentists",
		Product: "Legiit Leads",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, entity.ModeFiveSubjects, result.Mode)
	require.Len(t, result.Emails, 5)
	for _, draft := range result.Emails {
		assert.Len(t, draft.SubjectLines, 5)
		assert.NotEmpty(t, draft.Body)
	}
}

func TestGenerateEmailsEndToEndPlainText(t *testing.T) {
	gen := testGenConfig(entity.ModePlainText)
	client := anthropic.NewMockConnector(gen, zap.NewNop())
	uc := newTestUsecase(t, entity.ModePlainText, client, config.CacheConfig{})

	result, err := uc.GenerateEmails(context.Background(), &entity.GenerationRequest{
		Niche:   "plumbers",
		Product: "Audiit.io",
	})

	require.NoError(t, err)
	require.Len(t, result.Emails, 5)
	for _, draft := range result.Emails {
		require.Len(t, draft.SubjectLines, 1)
		assert.NotEmpty(t, draft.SubjectLines[0])
		assert.NotEmpty(t, draft.Body)
	}
}

func TestGenerateEmailsPromptEmbedsProductKnowledge(t *testing.T) {
	client := &stubClient{
		completion: `{"emails": [{"subject": "Hi", "body": "There"}]}`,
	}
	uc := newTestUsecase(t, entity.ModeSingleSubject, client, config.CacheConfig{})

	_, err := uc.GenerateEmails(context.Background(), &entity.GenerationRequest{
		Niche:   "dentists",
		Product: "leads",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.lastPrompt, "dentists")
	// Alias resolves to the full catalog entry.
	assert.Contains(t, client.lastPrompt, "prospects")
}

func TestGenerateEmailsClientErrorPassesThrough(t *testing.T) {
	vendorErr := &entity.VendorError{StatusCode: 529, Body: "overloaded"}
	client := &stubClient{err: vendorErr}
	uc := newTestUsecase(t, entity.ModeSingleSubject, client, config.CacheConfig{})

	_, err := uc.GenerateEmails(context.Background(), &entity.GenerationRequest{
		Niche:   "dentists",
		Product: "Legiit Leads",
	})

	var got *entity.VendorError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 529, got.StatusCode)
	// One call, no retries.
	assert.Equal(t, 1, client.calls)
}

func TestGenerateEmailsAPIKeyMissingPassesThrough(t *testing.T) {
	client := &stubClient{err: entity.ErrAPIKeyMissing}
	uc := newTestUsecase(t, entity.ModeSingleSubject, client, config.CacheConfig{})

	_, err := uc.GenerateEmails(context.Background(), &entity.GenerationRequest{
		Niche:   "dentists",
		Product: "Legiit Leads",
	})

	assert.True(t, errors.Is(err, entity.ErrAPIKeyMissing))
}

func TestGenerateEmailsExtractionFailure(t *testing.T) {
	client := &stubClient{completion: "I refuse to answer in JSON."}
	uc := newTestUsecase(t, entity.ModeSingleSubject, client, config.CacheConfig{})

	_, err := uc.GenerateEmails(context.Background(), &entity.GenerationRequest{
		Niche:   "dentists",
		Product: "Legiit Leads",
	})

	var extractionErr *entity.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestGenerateEmailsValidationFailure(t *testing.T) {
	client := &stubClient{
		completion: `{"emails": [{"subject": "Hi", "body": ""}]}`,
	}
	uc := newTestUsecase(t, entity.ModeSingleSubject, client, config.CacheConfig{})

	_, err := uc.GenerateEmails(context.Background(), &entity.GenerationRequest{
		Niche:   "dentists",
		Product: "Legiit Leads",
	})

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, validationErr.Index)
}

func TestGenerateEmailsCacheShortCircuitsSecondCall(t *testing.T) {
	client := &stubClient{
		completion: `{"emails": [{"subject": "Hi", "body": "There"}]}`,
	}
	uc := newTestUsecase(t, entity.ModeSingleSubject, client, config.CacheConfig{
		Enabled: true,
		TTL:     time.Minute,
	})

	req := &entity.GenerationRequest{Niche: "dentists", Product: "Legiit Leads"}

	first, err := uc.GenerateEmails(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.GenerateEmails(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateEmailsCacheDisabledByDefault(t *testing.T) {
	client := &stubClient{
		completion: `{"emails": [{"subject": "Hi", "body": "There"}]}`,
	}
	uc := newTestUsecase(t, entity.ModeSingleSubject, client, config.CacheConfig{})

	req := &entity.GenerationRequest{Niche: "dentists", Product: "Legiit Leads"}

	first, err := uc.GenerateEmails(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.GenerateEmails(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, client.calls)
}

func TestFingerprintIsCaseInsensitiveOnInputs(t *testing.T) {
	a := fingerprint("Dentists", "Legiit Leads", entity.ModeFiveSubjects, entity.ProviderAnthropic)
	b := fingerprint("dentists", "legiit leads", entity.ModeFiveSubjects, entity.ProviderAnthropic)
	c := fingerprint("dentists", "legiit leads", entity.ModePlainText, entity.ProviderAnthropic)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
