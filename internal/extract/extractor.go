// Package extract recovers structured candidates from raw LLM output.
// Model output is not guaranteed to be well-formed even when the prompt
// demands it, so JSON extraction runs a chain of leniency layers, each
// attempted only after the stricter one fails. A well-formed response is
// never penalized with fallback cost; an unrecoverable one fails loudly.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/legiit/coldmail-backend/internal/entity"
)

// Delimiter separates drafts in plain-text mode. The same literal is used
// by the export formatter.
const Delimiter = "***"

const (
	subjectPrefix = "Subject:"
	bodyMarker    = "Body:"
)

// conservativePattern matches a JSON object that contains the "emails" key
// and ends the raw text (modulo trailing whitespace). Last-resort layer.
var conservativePattern = regexp.MustCompile(`(?s)\{.*?"emails".*?\}\s*$`)

// Extract parses raw completion text according to the output mode agreed
// with the composer.
func Extract(raw string, mode entity.OutputMode) (entity.Candidate, error) {
	if mode == entity.ModePlainText {
		return extractPlainText(raw)
	}
	return extractJSON(raw)
}

// extractJSON runs the layered JSON recovery strategy:
//  1. slice between the first '{' and the last '}'
//  2. parse the slice directly
//  3. re-slice up to the last '}' inside the slice and parse again
//     (drops prose the model appended after the JSON)
//  4. conservative pattern scan over the original text
func extractJSON(raw string) (entity.Candidate, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &entity.ExtractionError{Reason: "no JSON object found in response"}
	}

	slice := raw[start : end+1]

	var candidate entity.Candidate
	firstErr := json.Unmarshal([]byte(slice), &candidate)
	if firstErr == nil {
		return candidate, nil
	}

	// Trailing-garbage cleanup: cut after the last brace inside the slice.
	if lastBrace := strings.LastIndex(slice, "}"); lastBrace != -1 {
		cleaned := slice[:lastBrace+1]
		candidate = nil
		if err := json.Unmarshal([]byte(cleaned), &candidate); err == nil {
			return candidate, nil
		}
	}

	// Conservative extraction: smallest block holding the "emails" key that
	// closes out the response.
	if match := conservativePattern.FindString(raw); match != "" {
		candidate = nil
		if err := json.Unmarshal([]byte(match), &candidate); err == nil {
			return candidate, nil
		}
	}

	return nil, &entity.ExtractionError{
		Reason: "failed to parse JSON after multiple attempts",
		Cause:  firstErr,
	}
}

// extractPlainText splits the raw text on the *** delimiter and parses each
// segment as a Subject:/Body: block. Segments missing either part are
// dropped silently; partial generation is tolerated in this mode. An
// entirely empty batch is still an error so callers never get a silent
// empty result.
func extractPlainText(raw string) (entity.Candidate, error) {
	segments := strings.Split(raw, Delimiter)

	emails := make([]any, 0, len(segments))
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		if draft, ok := parseSegment(segment); ok {
			emails = append(emails, draft)
		}
	}

	if len(emails) == 0 {
		return nil, &entity.ExtractionError{Reason: "no email drafts found in response"}
	}

	return entity.Candidate{"emails": emails}, nil
}

// parseSegment scans one segment's lines. A line starting with "Subject:"
// sets the subject; a line equal to "Body:" switches the parser into body
// accumulation for every following non-empty line.
func parseSegment(segment string) (map[string]any, bool) {
	var (
		subject   string
		bodyLines []string
		inBody    bool
	)

	for _, line := range strings.Split(segment, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case inBody:
			if trimmed != "" {
				bodyLines = append(bodyLines, trimmed)
			}
		case strings.HasPrefix(trimmed, subjectPrefix):
			subject = strings.TrimSpace(strings.TrimPrefix(trimmed, subjectPrefix))
		case trimmed == bodyMarker:
			inBody = true
		}
	}

	if subject == "" || len(bodyLines) == 0 {
		return nil, false
	}

	return map[string]any{
		"subject": subject,
		"body":    strings.Join(bodyLines, "\n"),
	}, true
}
