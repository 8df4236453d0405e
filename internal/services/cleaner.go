package services

import "strings"

const jsonFence = "```json"

// ExtractJSONBlock pulls the JSON payload out of a model reply that may be
// wrapped in a markdown code fence. The text between the first "```json"
// marker and the last "```" in the reply is returned trimmed; without an
// opening marker the whole reply is returned trimmed. The extraction assumes
// at most one fenced block and does not validate that the result parses —
// that is the caller's job.
func ExtractJSONBlock(text string) string {
	start := strings.Index(text, jsonFence)
	if start == -1 {
		return strings.TrimSpace(text)
	}

	start += len(jsonFence)
	end := strings.LastIndex(text, "```")
	if end > start {
		return strings.TrimSpace(text[start:end])
	}

	// Opening fence never closed; take everything after it.
	return strings.TrimSpace(text[start:])
}
