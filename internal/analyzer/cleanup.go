package analyzer

import (
	"encoding/json"
	"strings"
)

// CleanModelJSON strips the wrapper markers the model tends to emit around
// its JSON reply: a leading/trailing triple-quote block and a
// leading/trailing markdown code fence (```json or bare ```, any case).
// Anything beyond those exact patterns is left for the JSON parser to
// reject. Calling it on an already-clean string is a no-op.
func CleanModelJSON(s string) string {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, `"""`); ok {
		s = strings.TrimPrefix(rest, "\n")
	}
	s = strings.TrimSuffix(s, `"""`)

	if rest, ok := strings.CutPrefix(s, "```"); ok {
		if len(rest) >= 4 && strings.EqualFold(rest[:4], "json") {
			rest = rest[4:]
		}
		s = strings.TrimLeft(rest, " \t\r\n")
	}
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

// ParseStructured cleans a raw model reply and parses it as a JSON object.
// A reply that is not a valid object after cleanup yields an empty map;
// the error never reaches the caller. The caller keeps the raw text either
// way.
func ParseStructured(raw string) map[string]any {
	structured := map[string]any{}
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &structured); err != nil {
		return map[string]any{}
	}
	return structured
}
