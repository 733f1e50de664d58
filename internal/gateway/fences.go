package gateway

import "strings"

// stripFences removes Markdown code-fence delimiters a model may wrap
// around JSON output, despite the prompt forbidding them. Handles
// ```json and bare ``` fences at either end, then trims whitespace.
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if after, ok := strings.CutPrefix(s, "```json"); ok {
		s = after
	} else if after, ok := strings.CutPrefix(s, "```"); ok {
		s = after
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
