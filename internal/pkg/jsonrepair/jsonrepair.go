// Package jsonrepair recovers a structured JSON object from arbitrary
// language-model output, tolerating markdown fences, surrounding
// prose, and truncation. Recover is pure: same input, same outcome,
// no side effects.
package jsonrepair

import (
	"encoding/json"
	"strings"

	"github.com/storyforge/storyforge-api/internal/errors"
)

// OutcomeKind classifies what Recover found
type OutcomeKind int

// Outcome kinds
const (
	// OutcomeStructured means a JSON object was recovered
	OutcomeStructured OutcomeKind = iota
	// OutcomeUnstructured means the text held no recoverable object;
	// the raw text is preserved for caller-defined fallbacks
	OutcomeUnstructured
	// OutcomeEmpty means the input held nothing usable at all
	OutcomeEmpty
)

// Outcome is the result of a recovery attempt
type Outcome struct {
	Kind OutcomeKind

	// Object holds the recovered JSON object when Kind is OutcomeStructured
	Object json.RawMessage

	// Raw holds the original input when Kind is OutcomeUnstructured
	Raw string
}

// Decode unmarshals the recovered object into v
func (o Outcome) Decode(v interface{}) error {
	if o.Kind != OutcomeStructured {
		return errors.FailedPrecondition("no structured object was recovered")
	}
	if err := json.Unmarshal(o.Object, v); err != nil {
		return errors.Wrap(err, "failed to decode recovered object")
	}
	return nil
}

var fenceReplacer = strings.NewReplacer(
	"```json", "",
	"```JSON", "",
	"```", "",
	"\ufeff", "",
)

// Recover extracts a single JSON object from raw model output.
// Steps: strip fences, trim to the outermost braces, direct parse,
// largest balanced-object re-extract, structural repair. Inputs with
// no opening brace yield OutcomeUnstructured (the text is prose);
// inputs with nothing usable yield OutcomeEmpty.
func Recover(raw string) Outcome {
	text := strings.TrimSpace(fenceReplacer.Replace(raw))
	if text == "" {
		return Outcome{Kind: OutcomeEmpty}
	}

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return Outcome{Kind: OutcomeUnstructured, Raw: raw}
	}

	candidate := text[start:]
	if end := strings.LastIndexByte(candidate, '}'); end != -1 {
		candidate = candidate[:end+1]
	}

	if obj, ok := tryParse(candidate); ok {
		return Outcome{Kind: OutcomeStructured, Object: obj}
	}

	if balanced, ok := largestObject(candidate); ok {
		if obj, ok := tryParse(balanced); ok {
			return Outcome{Kind: OutcomeStructured, Object: obj}
		}
	}

	if obj, ok := tryParse(repair(candidate)); ok {
		return Outcome{Kind: OutcomeStructured, Object: obj}
	}

	return Outcome{Kind: OutcomeUnstructured, Raw: raw}
}

// tryParse accepts candidate text only if it is a valid JSON object
func tryParse(s string) (json.RawMessage, bool) {
	var probe map[string]interface{}
	if err := json.Unmarshal([]byte(s), &probe); err != nil {
		return nil, false
	}
	return json.RawMessage(s), true
}

// largestObject returns the first balanced {...} span, scanning
// string-aware so braces inside string values do not count
func largestObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}

	return "", false
}

// repair appends the minimum closers needed to balance the text: an
// unterminated string is closed first, then open brackets and braces
// innermost-first
func repair(s string) string {
	var open []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			open = append(open, c)
		case '}':
			if len(open) > 0 && open[len(open)-1] == '{' {
				open = open[:len(open)-1]
			}
		case ']':
			if len(open) > 0 && open[len(open)-1] == '[' {
				open = open[:len(open)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(s)
	if inString {
		b.WriteByte('"')
	}
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}
