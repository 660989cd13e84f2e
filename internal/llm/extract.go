package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Model output is JSON "and nothing else guaranteed": the array may arrive
// bare, fenced in a code block, buried in prose, or truncated mid-element.
// ExtractArray tries, in order: direct parse, code-fence extraction, first
// well-formed array in the text, and finally reconstruction from individually
// well-formed object fragments. The bool reports whether anything usable was
// found.

var (
	codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	objectRe    = regexp.MustCompile(`\{[^{}]*\}`)
)

// ExtractArray pulls a JSON array of objects out of raw model output.
func ExtractArray(text string) ([]json.RawMessage, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	if items, ok := parseArray(text); ok {
		return items, true
	}

	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		if items, ok := parseArray(strings.TrimSpace(m[1])); ok {
			return items, true
		}
	}

	if candidate := firstArray(text); candidate != "" {
		if items, ok := parseArray(candidate); ok {
			return items, true
		}
	}

	return salvageObjects(text)
}

func parseArray(text string) ([]json.RawMessage, bool) {
	if !gjson.Valid(text) {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}
	return items, true
}

// firstArray returns the first balanced bracket span in the text, respecting
// string literals so brackets inside values don't end the scan early.
func firstArray(text string) string {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// salvageObjects reconstructs an array from whatever complete objects survive
// in a truncated response. Fragments that fail to parse individually are
// dropped; the caller's per-item decoding catches schema mismatches.
func salvageObjects(text string) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	for _, frag := range objectRe.FindAllString(text, -1) {
		if !gjson.Valid(frag) {
			continue
		}
		items = append(items, json.RawMessage(frag))
	}
	return items, len(items) > 0
}
