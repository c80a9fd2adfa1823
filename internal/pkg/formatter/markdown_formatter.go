package formatter

import (
	"bytes"
	"fmt"

	"github.com/legiit/coldmail-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(niche string, drafts []entity.EmailDraft) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", title(niche))
	for i, draft := range drafts {
		fmt.Fprintf(&buf, "\n## Email %d\n\n", i+1)
		for j, subject := range draft.SubjectLines {
			fmt.Fprintf(&buf, "**Subject option %d:** %s\n\n", j+1, subject)
		}
		fmt.Fprintf(&buf, "%s\n", draft.Body)
	}
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
