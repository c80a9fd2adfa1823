package entity

// GenerateEmailsRequest is the wire form of an incoming generation call.
type GenerateEmailsRequest struct {
	Niche   string `json:"niche"`
	Product string `json:"product"`
}

// EmailDraftDTO is the wire form of one draft. Exactly one of Subject or
// Subjects is populated, depending on the active output mode. On input
// (export) both shapes are accepted.
type EmailDraftDTO struct {
	Subject  string   `json:"subject,omitempty"`
	Subjects []string `json:"subjects,omitempty"`
	Body     string   `json:"body"`
}

// GenerateEmailsResponse is the success payload of a generation call.
type GenerateEmailsResponse struct {
	Emails []EmailDraftDTO `json:"emails"`
}

// ExportEmailsRequest is the wire form of an export call.
type ExportEmailsRequest struct {
	Niche  string          `json:"niche"`
	Emails []EmailDraftDTO `json:"emails"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
