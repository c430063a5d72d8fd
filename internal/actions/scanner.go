package actions

import (
	"errors"
	"regexp"
	"strings"
)

// actionDelimiter separates the conversational reply from the action blocks
// in a model response. The assistant's instructions tell the model to emit
// it on its own line before any actions.
const actionDelimiter = "Actions"

// actionTokenPattern matches an upper-snake-case action type token on its
// own line, e.g. CREATE_WORKOUT_DAY.
var actionTokenPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]+$`)

// ErrEmptyResponse marks a degenerate model response: no conversational
// text survived scanning. Callers should substitute a fallback message and
// apply no mutations.
var ErrEmptyResponse = errors.New("model response contained no conversational text")

// RawAction is one unparsed (type, JSON text) pair pulled out of a response.
type RawAction struct {
	Type     string
	JSONText string
}

// ScanResult is the outcome of splitting a model response.
type ScanResult struct {
	TextResponse string
	Raw          []RawAction
}

// Scan splits a raw model response into its conversational text and the
// ordered raw action blocks that follow the delimiter. Without a delimiter
// the entire string is conversational text. Scan has no side effects.
func Scan(response string) (ScanResult, error) {
	lines := strings.Split(response, "\n")

	delimiterAt := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == actionDelimiter {
			delimiterAt = i
			break
		}
	}

	var result ScanResult
	if delimiterAt == -1 {
		result.TextResponse = strings.TrimSpace(response)
	} else {
		result.TextResponse = strings.TrimSpace(strings.Join(lines[:delimiterAt], "\n"))
		result.Raw = scanBlocks(lines[delimiterAt+1:])
	}

	if result.TextResponse == "" {
		return result, ErrEmptyResponse
	}
	return result, nil
}

// scanBlocks groups the lines after the delimiter into (token, payload)
// blocks. A new block starts at every all-caps token line; anything before
// the first token line has no action to belong to and is dropped.
func scanBlocks(lines []string) []RawAction {
	var raw []RawAction
	var current *RawAction
	var payload []string

	flush := func() {
		if current == nil {
			return
		}
		current.JSONText = stripCodeFences(strings.TrimSpace(strings.Join(payload, "\n")))
		raw = append(raw, *current)
		current = nil
		payload = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if actionTokenPattern.MatchString(trimmed) {
			flush()
			current = &RawAction{Type: trimmed}
			continue
		}
		if current != nil {
			payload = append(payload, line)
		}
	}
	flush()

	return raw
}

// stripCodeFences removes a surrounding markdown code fence (``` or
// ```json) from a payload; models wrap JSON in fences often enough that the
// decoder should never see them.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
