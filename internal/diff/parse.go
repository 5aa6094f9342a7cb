package diff

import "strings"

const (
	fileMarker    = "diff --git"
	oldFileMarker = "--- a/"
	newFileMarker = "+++ b/"
	hunkMarker    = "@@"
)

// Parse scans a unified diff blob into a ChangeSet. Parsing is best-effort:
// unrecognized lines outside a hunk are skipped, malformed input never
// returns an error, and a blob with no file marker yields an empty set.
// Parse is a pure function of its input; the review pass and follow-up
// recovery both call it independently.
func Parse(text string) ChangeSet {
	var (
		result      ChangeSet
		currentFile *FileDiff
		currentHunk *Hunk
	)

	flushHunk := func() {
		if currentFile != nil && currentHunk != nil {
			currentFile.Hunks = append(currentFile.Hunks, *currentHunk)
		}
		currentHunk = nil
	}
	flushFile := func() {
		flushHunk()
		if currentFile != nil {
			result = append(result, *currentFile)
		}
		currentFile = nil
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, fileMarker):
			flushFile()
			currentFile = &FileDiff{}
		case strings.HasPrefix(line, oldFileMarker), strings.HasPrefix(line, newFileMarker):
			if currentFile != nil {
				currentFile.Path = line[len(newFileMarker):]
			}
		case strings.HasPrefix(line, hunkMarker):
			if currentFile != nil {
				flushHunk()
				currentHunk = &Hunk{Header: line}
			}
		default:
			if currentHunk != nil {
				currentHunk.Lines = append(currentHunk.Lines, line)
			}
		}
	}
	flushFile()

	return result
}

// Flatten reassembles every hunk's raw lines in file order. Non-header lines
// of a well-formed input survive a Parse/Flatten round trip verbatim.
func Flatten(cs ChangeSet) []string {
	var lines []string
	for _, file := range cs {
		for _, hunk := range file.Hunks {
			lines = append(lines, hunk.Lines...)
		}
	}
	return lines
}
