// Package validate checks extracted candidates against the draft schema
// contract. Validation is fail-fast over the whole batch: one malformed
// draft invalidates the result, so callers never receive a silently
// under-delivered batch.
package validate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/legiit/coldmail-backend/internal/entity"
	"github.com/xeipuuv/gojsonschema"
)

const singleSubjectSchema = `{
  "type": "object",
  "required": ["emails"],
  "properties": {
    "emails": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["subject", "body"],
        "properties": {
          "subject": {"type": "string", "minLength": 1},
          "body": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

const multiSubjectSchemaTemplate = `{
  "type": "object",
  "required": ["emails"],
  "properties": {
    "emails": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["subjects", "body"],
        "properties": {
          "subjects": {
            "type": "array",
            "minItems": %d,
            "maxItems": %d,
            "items": {"type": "string", "minLength": 1}
          },
          "body": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// Validator holds one compiled schema per configured output mode.
type Validator struct {
	mode   entity.OutputMode
	schema *gojsonschema.Schema
}

// NewValidator compiles the schema for the given mode. subjectCount is the
// exact arity required of the subjects array in five-subjects mode.
func NewValidator(mode entity.OutputMode, subjectCount int) (*Validator, error) {
	raw := singleSubjectSchema
	if mode == entity.ModeFiveSubjects {
		raw = fmt.Sprintf(multiSubjectSchemaTemplate, subjectCount, subjectCount)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile draft schema: %w", err)
	}

	return &Validator{mode: mode, schema: schema}, nil
}

// Validate checks the candidate against the schema contract and converts it
// into typed drafts. The returned error is always a *entity.ValidationError
// naming the 1-based position and field of the first failing draft.
func (v *Validator) Validate(candidate entity.Candidate) ([]entity.EmailDraft, error) {
	rawEmails, ok := candidate["emails"]
	if !ok {
		return nil, &entity.ValidationError{Reason: "missing emails array"}
	}
	if _, ok := rawEmails.([]any); !ok {
		return nil, &entity.ValidationError{Reason: "missing emails array"}
	}

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(map[string]any(candidate)))
	if err != nil {
		return nil, &entity.ValidationError{Reason: fmt.Sprintf("schema validation failed: %v", err)}
	}
	if !result.Valid() {
		return nil, translateFirstError(result.Errors())
	}

	return v.decode(candidate)
}

// translateFirstError maps schema errors onto the draft that fails first.
// Schema errors arrive in document-walk order but the batch contract is
// fail-fast on the lowest draft index, so pick the error with the smallest
// index explicitly.
func translateFirstError(errs []gojsonschema.ResultError) error {
	best := (*entity.ValidationError)(nil)

	for _, re := range errs {
		ve := toValidationError(re)
		if best == nil || ve.Index < best.Index {
			best = ve
		}
	}

	if best == nil {
		return &entity.ValidationError{Reason: "schema validation failed"}
	}
	return best
}

// toValidationError parses a gojsonschema field path ("emails.2.subjects.4")
// into a draft index and field name.
func toValidationError(re gojsonschema.ResultError) *entity.ValidationError {
	field := re.Field()
	if field == "(root)" || field == "emails" {
		return &entity.ValidationError{Reason: "missing emails array"}
	}

	parts := strings.Split(field, ".")
	if len(parts) < 2 || parts[0] != "emails" {
		return &entity.ValidationError{Reason: re.Description()}
	}

	pos, err := strconv.Atoi(parts[1])
	if err != nil {
		return &entity.ValidationError{Reason: re.Description()}
	}

	name := ""
	if len(parts) > 2 {
		name = parts[2]
	} else if prop, ok := re.Details()["property"].(string); ok {
		// required-property errors point at the draft, not the field
		name = prop
	}

	return &entity.ValidationError{
		Index:  pos + 1,
		Field:  name,
		Reason: re.Description(),
	}
}

type wireDraft struct {
	Subject  string   `json:"subject"`
	Subjects []string `json:"subjects"`
	Body     string   `json:"body"`
}

type wireBatch struct {
	Emails []wireDraft `json:"emails"`
}

func (v *Validator) decode(candidate entity.Candidate) ([]entity.EmailDraft, error) {
	buf, err := json.Marshal(candidate)
	if err != nil {
		return nil, &entity.ValidationError{Reason: fmt.Sprintf("re-encode candidate: %v", err)}
	}

	var batch wireBatch
	if err := json.Unmarshal(buf, &batch); err != nil {
		return nil, &entity.ValidationError{Reason: fmt.Sprintf("decode candidate: %v", err)}
	}

	drafts := make([]entity.EmailDraft, 0, len(batch.Emails))
	for _, e := range batch.Emails {
		draft := entity.EmailDraft{Body: e.Body}
		if v.mode == entity.ModeFiveSubjects {
			draft.SubjectLines = e.Subjects
		} else {
			draft.SubjectLines = []string{e.Subject}
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}
