package parser

import (
	"strconv"
	"strings"

	"github.com/aretw0/lex/internal/syntax"
	"github.com/aretw0/lex/pkg/dialogue"
)

// ParseValue infers a typed Value from raw text. The trial order is
// fixed: boolean, then number, then bracketed comma-array, else text.
// Array elements are never re-typed; they stay raw trimmed strings, so
// "[true, 2]" yields Array("true", "2").
func ParseValue(raw string) dialogue.Value {
	switch raw {
	case "true":
		return dialogue.BooleanValue(true)
	case "false":
		return dialogue.BooleanValue(false)
	}

	if number, err := strconv.ParseFloat(raw, 64); err == nil {
		return dialogue.NumberValue(number)
	}

	if inner, ok := cutArray(raw); ok {
		items := make([]string, 0)
		for _, item := range strings.Split(inner, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return dialogue.ArrayValue(items...)
	}

	return dialogue.TextValue(raw)
}

func cutArray(raw string) (string, bool) {
	inner, ok := strings.CutPrefix(raw, syntax.ArrayStart)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(inner, syntax.ArrayEnd)
}
