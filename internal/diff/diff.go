// Package diff parses unified diff text into the structures the review
// pipeline works on: a ChangeSet of per-file hunk sequences.
package diff

import "strings"

// ChangeSet is the ordered sequence of file diffs parsed from one diff blob.
type ChangeSet []FileDiff

// FileDiff holds the hunks for a single file, in file order.
type FileDiff struct {
	Path  string
	Hunks []Hunk
}

// Hunk is one contiguous changed region: the @@ range header plus the raw
// diff lines (each prefixed '+', '-', or ' ').
type Hunk struct {
	Header string
	Lines  []string
}

// Content returns the hunk's lines joined into a single block, the form the
// prompt builder embeds inside a diff fence.
func (h Hunk) Content() string {
	return strings.Join(h.Lines, "\n")
}

// SourceLength approximates the source range from the raw line count rather
// than the header-declared count. GitHub's position coordinate only needs
// the raw sequence, so the declared ranges are never consulted.
func (h Hunk) SourceLength() int {
	return len(h.Lines)
}

// TargetLength approximates the target range from the raw line count.
func (h Hunk) TargetLength() int {
	return len(h.Lines)
}

// Content of a FileDiff is every hunk's content joined, used when follow-up
// resolution recovers code context for a whole file.
func (f FileDiff) Content() string {
	blocks := make([]string, 0, len(f.Hunks))
	for _, h := range f.Hunks {
		blocks = append(blocks, h.Content())
	}
	return strings.Join(blocks, "\n")
}

// FindFile returns the diff for the given path, if present.
func (cs ChangeSet) FindFile(path string) (FileDiff, bool) {
	for _, f := range cs {
		if f.Path == path {
			return f, true
		}
	}
	return FileDiff{}, false
}
