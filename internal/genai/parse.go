package genai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// arraySpan is deliberately greedy: it captures from the first '[' to the
// last ']' in the text. A malformed document with two separate array-like
// substrings over-captures, but the strict parse below runs first, so the
// regex only sees responses that are already prose-wrapped; over-capture
// then fails the parse and the call falls back.
var arraySpan = regexp.MustCompile(`(?s)\[.*\]`)

// ExtractArray parses a model response as a JSON array. It tries a strict
// parse of the whole trimmed text first, then the bracket-span scan as a
// last resort. Anything that is not ultimately an array is a hard failure;
// a malformed payload is never partially trusted.
func ExtractArray(text string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
		return arr, nil
	}

	span := arraySpan.FindString(trimmed)
	if span == "" {
		return nil, fmt.Errorf("no JSON array in model response")
	}
	if err := json.Unmarshal([]byte(span), &arr); err != nil {
		return nil, fmt.Errorf("parse extracted JSON array: %w", err)
	}
	return arr, nil
}
