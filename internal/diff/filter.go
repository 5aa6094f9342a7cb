package diff

import (
	"regexp"
	"strings"
)

// Filter removes files whose path matches any exclusion pattern. This is a
// pure pre-filter applied before any analysis; patterns use shell glob
// syntax where '*' also crosses directory separators ("vendor/*" excludes
// the whole tree).
func Filter(cs ChangeSet, patterns []string) ChangeSet {
	if len(patterns) == 0 {
		return cs
	}

	filtered := make(ChangeSet, 0, len(cs))
	for _, file := range cs {
		if !matchesAny(file.Path, patterns) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if globMatch(pattern, path) {
			return true
		}
	}
	return false
}

// globMatch implements fnmatch-style matching: '*' matches any run of
// characters including '/', '?' matches a single character. path.Match is
// not used because its '*' stops at separators, which would let
// "vendor/*" miss nested files.
func globMatch(pattern, path string) bool {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return false
	}
	return re.MatchString(path)
}
