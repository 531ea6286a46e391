package stages

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeJSON extracts and decodes the JSON object from raw model output.
// Models wrap payloads in markdown fences or add prose around them often
// enough that both are stripped before decoding.
func decodeJSON[T any](raw string) (*T, error) {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var result T
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to decode model output: %w", err)
	}
	return &result, nil
}

// stripFences removes a surrounding markdown code fence if present
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
