package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

// structuredCandidate finds the most promising JSON object in raw model
// output: a ```json fence first, then any fence, then the whole text,
// then the first balanced object past any preamble. Candidates get a
// trailing-comma repair before validation.
func structuredCandidate(raw string) ([]byte, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errors.New("empty input")
	}
	if c, ok := fencedBlock(text, "```json"); ok {
		if b, ok := validJSON(c); ok {
			return b, nil
		}
	}
	if c, ok := fencedBlock(text, "```"); ok {
		if b, ok := validJSON(c); ok {
			return b, nil
		}
	}
	if b, ok := validJSON(text); ok {
		return b, nil
	}
	if b, ok := firstValidObject(text); ok {
		return b, nil
	}
	return nil, errors.New("no JSON object found")
}

func validJSON(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if json.Valid([]byte(s)) {
		return []byte(s), true
	}
	repaired := stripTrailingCommas(s)
	if repaired != s && json.Valid([]byte(repaired)) {
		return []byte(repaired), true
	}
	return nil, false
}

// fencedBlock returns the body of the first code fence opened by marker.
// For the generic marker a short language identifier on the opening line
// is skipped.
func fencedBlock(text, marker string) (string, bool) {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return "", false
	}
	start := idx + len(marker)
	if marker == "```" {
		if nl := strings.Index(text[start:], "\n"); nl >= 0 && nl < 20 {
			start += nl + 1
		}
	}
	for start < len(text) && (text[start] == '\n' || text[start] == '\r' || text[start] == ' ') {
		start++
	}
	end := strings.Index(text[start:], "```")
	if end <= 0 {
		return "", false
	}
	return strings.TrimSpace(text[start : start+end]), true
}

// firstValidObject scans from the first opening brace for balanced
// objects, tracking strings and escapes, and returns the first one that
// validates. Invalid balanced spans are skipped so a later object can
// still win.
func firstValidObject(text string) ([]byte, bool) {
	origin := strings.Index(text, "{")
	if origin < 0 {
		return nil, false
	}
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := origin; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				if b, ok := validJSON(text[start : i+1]); ok {
					return b, true
				}
				start = -1
			}
		}
	}
	return nil, false
}

// stripTrailingCommas removes commas that directly precede a closing
// brace or bracket, a frequent model mistake that breaks strict JSON.
func stripTrailingCommas(s string) string {
	for {
		changed := false
		var b strings.Builder
		b.Grow(len(s))
		for i := 0; i < len(s); i++ {
			if s[i] == ',' {
				j := i + 1
				for j < len(s) && (s[j] == ' ' || s[j] == '\n' || s[j] == '\r' || s[j] == '\t') {
					j++
				}
				if j < len(s) && (s[j] == '}' || s[j] == ']') {
					changed = true
					continue
				}
			}
			b.WriteByte(s[i])
		}
		if !changed {
			return s
		}
		s = b.String()
	}
}
