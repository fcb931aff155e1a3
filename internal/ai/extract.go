package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoPayload means the text contains no bracketed/braced span to parse.
var ErrNoPayload = errors.New("ai: no structured payload found")

// UnmarshalArray extracts a JSON array from free text and parses it into v.
// The policy is deliberately simple and testable on its own: strip markdown
// fences, take the span from the first '[' to the last ']', and attempt a
// strict parse. Anything else is a failure the caller degrades on.
func UnmarshalArray(text string, v any) error {
	return unmarshalSpan(text, '[', ']', v)
}

// UnmarshalObject extracts a JSON object from free text and parses it into v.
func UnmarshalObject(text string, v any) error {
	return unmarshalSpan(text, '{', '}', v)
}

func unmarshalSpan(text string, open, shut byte, v any) error {
	text = stripFences(text)
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, shut)
	if start < 0 || end <= start {
		return ErrNoPayload
	}
	return json.Unmarshal([]byte(text[start:end+1]), v)
}

// stripFences removes markdown code blocks if present (e.g. ```json ... ```)
func stripFences(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
