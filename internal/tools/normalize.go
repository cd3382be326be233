package tools

import (
	"encoding/json"
	"strings"
)

// NormalizeQuery repairs queries that arrive JSON-encoded, a known
// caller quirk where an entire argument object lands in the query
// field. Exactly two shapes are recovered: a JSON value that decodes
// to a plain string, and an object whose "query" field is a string.
// Anything else, including malformed JSON, falls back to the trimmed
// original. It never fails.
func NormalizeQuery(query string) string {
	trimmed := strings.TrimSpace(query)
	if !looksLikeJSON(trimmed) {
		return trimmed
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return trimmed
	}

	switch v := decoded.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if inner, ok := v["query"].(string); ok {
			return strings.TrimSpace(inner)
		}
	}
	return trimmed
}

func looksLikeJSON(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}
