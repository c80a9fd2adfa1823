package generation

import "github.com/legiit/coldmail-backend/internal/entity"

// toGenerateResponse converts validated drafts into the wire shape of the
// active output mode: {subjects:[...]} in five-subjects mode, {subject} in
// the single-subject and plain-text modes.
func toGenerateResponse(result *entity.GenerationResult) *entity.GenerateEmailsResponse {
	emails := make([]entity.EmailDraftDTO, 0, len(result.Emails))
	for _, draft := range result.Emails {
		dto := entity.EmailDraftDTO{Body: draft.Body}
		if result.Mode == entity.ModeFiveSubjects {
			dto.Subjects = draft.SubjectLines
		} else if len(draft.SubjectLines) > 0 {
			dto.Subject = draft.SubjectLines[0]
		}
		emails = append(emails, dto)
	}
	return &entity.GenerateEmailsResponse{Emails: emails}
}

// fromExportDTOs accepts both historic wire shapes on export input.
func fromExportDTOs(dtos []entity.EmailDraftDTO) []entity.EmailDraft {
	drafts := make([]entity.EmailDraft, 0, len(dtos))
	for _, dto := range dtos {
		draft := entity.EmailDraft{Body: dto.Body}
		switch {
		case len(dto.Subjects) > 0:
			draft.SubjectLines = dto.Subjects
		case dto.Subject != "":
			draft.SubjectLines = []string{dto.Subject}
		}
		drafts = append(drafts, draft)
	}
	return drafts
}
