package formatter

import (
	"bytes"
	"fmt"

	"github.com/legiit/coldmail-backend/internal/entity"
	"github.com/legiit/coldmail-backend/internal/extract"
)

const (
	textContentType   = "text/plain; charset=utf-8"
	textFileExtension = ".txt"
)

type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format writes each draft as an "Email N:" block with numbered subject
// options and a Body section, drafts separated by the *** delimiter line.
func (tf *TextFormatter) Format(niche string, drafts []entity.EmailDraft) ([]byte, error) {
	var buf bytes.Buffer
	for i, draft := range drafts {
		fmt.Fprintf(&buf, "Email %d:\n", i+1)
		for j, subject := range draft.SubjectLines {
			fmt.Fprintf(&buf, "Subject Option %d: %s\n", j+1, subject)
		}
		fmt.Fprintf(&buf, "Body:\n%s\n\n%s\n\n", draft.Body, extract.Delimiter)
	}
	return buf.Bytes(), nil
}

func (tf *TextFormatter) ContentType() string {
	return textContentType
}

func (tf *TextFormatter) FileExtension() string {
	return textFileExtension
}
