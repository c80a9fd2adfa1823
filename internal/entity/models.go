package entity

// OutputMode is the contract negotiated between the prompt composer, the
// response extractor and the schema validator. All three must be handed the
// same mode or extraction will look at the wrong shape.
type OutputMode string

const (
	// ModeSingleSubject asks the model for JSON drafts with one subject line.
	ModeSingleSubject OutputMode = "single_subject"
	// ModeFiveSubjects asks the model for JSON drafts with exactly five
	// candidate subject lines per email.
	ModeFiveSubjects OutputMode = "five_subjects"
	// ModePlainText asks the model for Subject:/Body: blocks separated by a
	// literal "***" line instead of JSON.
	ModePlainText OutputMode = "plain_text"
)

func (m OutputMode) IsValid() bool {
	switch m {
	case ModeSingleSubject, ModeFiveSubjects, ModePlainText:
		return true
	}
	return false
}

// Provider selects the completion backend.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderBedrock   Provider = "bedrock"
)

// GenerationRequest is one incoming generation call. Immutable once built,
// discarded after the response is produced.
type GenerationRequest struct {
	Niche   string
	Product string
}

// ProductProfile is one entry of the product knowledge base: a product key
// and the long-form description text embedded into prompts.
type ProductProfile struct {
	ProductKey      string
	DescriptionText string
}

// EmailDraft is the canonical output unit. SubjectLines always holds at
// least one entry; in five-subjects mode it holds exactly five.
type EmailDraft struct {
	SubjectLines []string
	Body         string
}

// GenerationResult is the validated batch of drafts returned to the caller.
// Never persisted.
type GenerationResult struct {
	ID     string
	Mode   OutputMode
	Emails []EmailDraft
}

// Candidate is the loosely typed structure recovered from raw model output,
// awaiting schema validation.
type Candidate map[string]any

// ExportFormat names a download format for a draft batch.
type ExportFormat string

const (
	FormatText     ExportFormat = "txt"
	FormatMarkdown ExportFormat = "markdown"
	FormatPDF      ExportFormat = "pdf"
	FormatDOCX     ExportFormat = "docx"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatPDF, FormatDOCX:
		return true
	}
	return false
}
