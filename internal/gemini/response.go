package gemini

import (
	"encoding/json"
	"strings"
)

// Finding is one inline comment the model produced for a hunk. LineNumber is
// 1-based and counts only the hunk's added lines.
type Finding struct {
	LineNumber    int    `json:"lineNumber"`
	ReviewComment string `json:"reviewComment"`
}

// ReviewResult is the decoded initial-review response.
type ReviewResult struct {
	Summary string    `json:"summary"`
	Reviews []Finding `json:"reviews"`
}

// ParseReview decodes the model's review output. Models habitually wrap JSON
// in a fenced code block, so the fence is stripped first. Output that still
// fails to decode degrades to an empty result — a malformed response means
// fewer comments, never a failed run.
func ParseReview(raw string) (ReviewResult, bool) {
	text := StripFence(raw)

	var result ReviewResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return ReviewResult{}, false
	}
	return result, true
}

// StripFence removes a leading ```json (or bare ```) fence and a trailing
// ``` fence, leaving other content untouched.
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
