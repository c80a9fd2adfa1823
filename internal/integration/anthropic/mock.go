package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/legiit/coldmail-backend/internal/config"
	"github.com/legiit/coldmail-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector produces deterministic canned completions for local
// development and tests, shaped according to the configured output mode so
// the whole extract/validate pipeline still runs.
type MockConnector struct {
	gen    config.GenerationConfig
	logger *zap.Logger
}

func NewMockConnector(gen config.GenerationConfig, logger *zap.Logger) *MockConnector {
	return &MockConnector{
		gen:    gen,
		logger: logger,
	}
}

func (m *MockConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] returning canned completion",
		zap.String("output_mode", string(m.gen.OutputMode)),
	)

	if m.gen.OutputMode == entity.ModePlainText {
		return m.plainTextCompletion(), nil
	}
	return m.jsonCompletion()
}

func (m *MockConnector) jsonCompletion() (string, error) {
	emails := make([]map[string]any, 0, m.gen.EmailCount)
	for i := 1; i <= m.gen.EmailCount; i++ {
		draft := map[string]any{
			"body": mockBody(i),
		}
		if m.gen.OutputMode == entity.ModeFiveSubjects {
			subjects := make([]string, 0, m.gen.SubjectCount)
			for j := 1; j <= m.gen.SubjectCount; j++ {
				subjects = append(subjects, mockSubject(i, j))
			}
			draft["subjects"] = subjects
		} else {
			draft["subject"] = mockSubject(i, 1)
		}
		emails = append(emails, draft)
	}

	buf, err := json.Marshal(map[string]any{"emails": emails})
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (m *MockConnector) plainTextCompletion() string {
	var b strings.Builder
	for i := 1; i <= m.gen.EmailCount; i++ {
		if i > 1 {
			b.WriteString("\n***\n")
		}
		fmt.Fprintf(&b, "Subject: %s\nBody:\n%s\n", mockSubject(i, 1), mockBody(i))
	}
	return b.String()
}

func mockSubject(email, option int) string {
	return fmt.Sprintf("Mock subject %d for draft %d", option, email)
}

func mockBody(email int) string {
	return fmt.Sprintf("Hi there,\n\nThis is mock draft %d. It exists so the pipeline can run without a vendor credential.\n\nBest,\nThe team", email)
}
