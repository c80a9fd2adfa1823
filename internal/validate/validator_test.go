package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legiit/coldmail-backend/internal/entity"
)

func fiveSubjects(prefix string) []any {
	return []any{
		prefix + " option 1",
		prefix + " option 2",
		prefix + " option 3",
		prefix + " option 4",
		prefix + " option 5",
	}
}

func validFiveSubjectBatch() entity.Candidate {
	emails := make([]any, 0, 5)
	for i := 0; i < 5; i++ {
		emails = append(emails, map[string]any{
			"subjects": fiveSubjects("Subject"),
			"body":     "A body.",
		})
	}
	return entity.Candidate{"emails": emails}
}

func TestValidateFiveSubjectsHappyPath(t *testing.T) {
	v, err := NewValidator(entity.ModeFiveSubjects, 5)
	require.NoError(t, err)

	drafts, err := v.Validate(validFiveSubjectBatch())

	require.NoError(t, err)
	require.Len(t, drafts, 5)
	for _, draft := range drafts {
		assert.Len(t, draft.SubjectLines, 5)
		assert.Equal(t, "A body.", draft.Body)
	}
}

func TestValidateSingleSubjectHappyPath(t *testing.T) {
	v, err := NewValidator(entity.ModeSingleSubject, 5)
	require.NoError(t, err)

	drafts, err := v.Validate(entity.Candidate{
		"emails": []any{
			map[string]any{"subject": "Hello", "body": "World"},
		},
	})

	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, []string{"Hello"}, drafts[0].SubjectLines)
	assert.Equal(t, "World", drafts[0].Body)
}

func TestValidateMissingEmailsKey(t *testing.T) {
	v, err := NewValidator(entity.ModeFiveSubjects, 5)
	require.NoError(t, err)

	_, err = v.Validate(entity.Candidate{"drafts": []any{}})

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, validationErr.Index)
	assert.Equal(t, "missing emails array", validationErr.Reason)
}

func TestValidateEmailsNotAnArray(t *testing.T) {
	v, err := NewValidator(entity.ModeFiveSubjects, 5)
	require.NoError(t, err)

	_, err = v.Validate(entity.Candidate{"emails": "not an array"})

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "missing emails array", validationErr.Reason)
}

func TestValidateWrongSubjectCount(t *testing.T) {
	v, err := NewValidator(entity.ModeFiveSubjects, 5)
	require.NoError(t, err)

	batch := validFiveSubjectBatch()
	emails := batch["emails"].([]any)
	emails[1] = map[string]any{
		"subjects": []any{"only one option"},
		"body":     "A body.",
	}

	_, err = v.Validate(batch)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 2, validationErr.Index)
	assert.Equal(t, "subjects", validationErr.Field)
}

func TestValidateMissingBody(t *testing.T) {
	v, err := NewValidator(entity.ModeFiveSubjects, 5)
	require.NoError(t, err)

	batch := validFiveSubjectBatch()
	emails := batch["emails"].([]any)
	emails[3] = map[string]any{
		"subjects": fiveSubjects("Subject"),
	}

	_, err = v.Validate(batch)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 4, validationErr.Index)
	assert.Equal(t, "body", validationErr.Field)
}

func TestValidateFailsFastOnLowestIndex(t *testing.T) {
	v, err := NewValidator(entity.ModeFiveSubjects, 5)
	require.NoError(t, err)

	batch := validFiveSubjectBatch()
	emails := batch["emails"].([]any)
	emails[2] = map[string]any{"subjects": []any{}, "body": "A body."}
	emails[4] = map[string]any{"subjects": fiveSubjects("Subject")}

	_, err = v.Validate(batch)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 3, validationErr.Index)
}

func TestValidateEmptySubjectString(t *testing.T) {
	v, err := NewValidator(entity.ModeSingleSubject, 5)
	require.NoError(t, err)

	_, err = v.Validate(entity.Candidate{
		"emails": []any{
			map[string]any{"subject": "", "body": "World"},
		},
	})

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, validationErr.Index)
	assert.Equal(t, "subject", validationErr.Field)
}

func TestValidationErrorMessageNamesDraft(t *testing.T) {
	v, err := NewValidator(entity.ModeSingleSubject, 5)
	require.NoError(t, err)

	_, err = v.Validate(entity.Candidate{
		"emails": []any{
			map[string]any{"subject": "Hello", "body": ""},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email 1")
	assert.Contains(t, err.Error(), `"body"`)
}
