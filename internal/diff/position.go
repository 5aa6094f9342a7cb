package diff

import "strings"

// AddedLineIndex returns the zero-based indices of the hunk's added lines,
// in order of appearance. The '+++' file header marker never appears inside
// a hunk body, but the guard mirrors the position contract exactly.
func AddedLineIndex(h Hunk) []int {
	var indices []int
	for i, line := range h.Lines {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			indices = append(indices, i)
		}
	}
	return indices
}

// Position converts a 1-based logical line number, counted over added lines
// only, into the 1-based position GitHub expects for an inline comment:
// an offset over all hunk lines. The second return is false when the logical
// line falls outside the hunk's added lines — the model referenced a line
// that does not exist, and the caller drops that finding.
func Position(h Hunk, logicalLine int) (int, bool) {
	indices := AddedLineIndex(h)
	if logicalLine < 1 || logicalLine > len(indices) {
		return 0, false
	}
	return indices[logicalLine-1] + 1, true
}
