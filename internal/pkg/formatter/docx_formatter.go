package formatter

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unioffice/document"

	"github.com/legiit/coldmail-backend/internal/entity"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(niche string, drafts []entity.EmailDraft) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(title(niche))

	for i, draft := range drafts {
		headPar := doc.AddParagraph()
		headPar.SetStyle("Heading2")
		headPar.AddRun().AddText(fmt.Sprintf("Email %d", i+1))

		for j, subject := range draft.SubjectLines {
			subjPar := doc.AddParagraph()
			run := subjPar.AddRun()
			run.Properties().SetBold(true)
			run.AddText(fmt.Sprintf("Subject option %d: %s", j+1, subject))
		}

		doc.AddParagraph()
		bodyPar := doc.AddParagraph()
		bodyPar.AddRun().AddText(draft.Body)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
