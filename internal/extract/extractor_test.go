package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legiit/coldmail-backend/internal/entity"
)

func TestExtractWellFormedJSON(t *testing.T) {
	raw := `{"emails": [{"subject": "Hello", "body": "World"}]}`

	candidate, err := Extract(raw, entity.ModeSingleSubject)

	require.NoError(t, err)
	emails, ok := candidate["emails"].([]any)
	require.True(t, ok)
	require.Len(t, emails, 1)
	draft := emails[0].(map[string]any)
	assert.Equal(t, "Hello", draft["subject"])
	assert.Equal(t, "World", draft["body"])
}

func TestExtractJSONWithSurroundingProse(t *testing.T) {
	raw := "Sure! Here are your emails:\n\n" +
		`{"emails": [{"subject": "Hi", "body": "There"}]}` +
		"\n\nLet me know if you need more."

	candidate, err := Extract(raw, entity.ModeSingleSubject)

	require.NoError(t, err)
	emails := candidate["emails"].([]any)
	assert.Len(t, emails, 1)
}

func TestExtractJSONTrailingBracedProseFails(t *testing.T) {
	// Prose after the JSON that itself contains braces drags the slice past
	// the real object. No leniency layer can recover this shape; it must
	// fail as an extraction error rather than return garbage.
	raw := `{"emails": [{"subject": "Hi", "body": "There"}]}` +
		"\nNote: adjust the tone {if needed}"

	_, err := Extract(raw, entity.ModeSingleSubject)

	var extractionErr *entity.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "failed to parse JSON after multiple attempts", extractionErr.Reason)
}

func TestExtractNoJSONObject(t *testing.T) {
	_, err := Extract("I could not generate the emails, sorry.", entity.ModeSingleSubject)

	var extractionErr *entity.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "no JSON object found in response", extractionErr.Reason)
}

func TestExtractUnparseableJSON(t *testing.T) {
	_, err := Extract(`{"emails": [{"subject": "Hi", "body": }`, entity.ModeSingleSubject)

	var extractionErr *entity.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "failed to parse JSON after multiple attempts", extractionErr.Reason)
	assert.Error(t, extractionErr.Cause)
}

func TestExtractPlainText(t *testing.T) {
	raw := `Subject: First subject
Body:
First line.
Second line.
***
Subject: Second subject
Body:
Another body.`

	candidate, err := Extract(raw, entity.ModePlainText)

	require.NoError(t, err)
	emails, ok := candidate["emails"].([]any)
	require.True(t, ok)
	require.Len(t, emails, 2)

	first := emails[0].(map[string]any)
	assert.Equal(t, "First subject", first["subject"])
	assert.Equal(t, "First line.\nSecond line.", first["body"])

	second := emails[1].(map[string]any)
	assert.Equal(t, "Second subject", second["subject"])
	assert.Equal(t, "Another body.", second["body"])
}

func TestExtractPlainTextDropsPartialSegments(t *testing.T) {
	raw := `Subject: Complete draft
Body:
Has a body.
***
Subject: Truncated draft without a body`

	candidate, err := Extract(raw, entity.ModePlainText)

	require.NoError(t, err)
	emails := candidate["emails"].([]any)
	require.Len(t, emails, 1)
	assert.Equal(t, "Complete draft", emails[0].(map[string]any)["subject"])
}

func TestExtractPlainTextEmptyBatchFails(t *testing.T) {
	_, err := Extract("Nothing useful here.\n***\nStill nothing.", entity.ModePlainText)

	var extractionErr *entity.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "no email drafts found in response", extractionErr.Reason)
}

func TestExtractPlainTextIgnoresBlankSegments(t *testing.T) {
	raw := "***\nSubject: Only draft\nBody:\nStill works.\n***\n   \n"

	candidate, err := Extract(raw, entity.ModePlainText)

	require.NoError(t, err)
	assert.Len(t, candidate["emails"].([]any), 1)
}
