// Package formatter serializes a draft batch into downloadable documents.
// The plain-text format is the canonical one: it reproduces the exact
// "download all" layout with a literal *** separator between drafts.
package formatter

import (
	"fmt"

	"github.com/legiit/coldmail-backend/internal/entity"
)

type Formatter interface {
	Format(niche string, drafts []entity.EmailDraft) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatText:
		return NewTextFormatter(), nil
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func title(niche string) string {
	if niche == "" {
		return "Cold Email Drafts"
	}
	return fmt.Sprintf("Cold Email Drafts for %s", niche)
}
