package guidance

import (
	"os"
	"path/filepath"
	"strings"
)

// RepoReader gives detection rules access to repository contents. The
// production implementation reads the checked-out working tree; tests supply
// an in-memory map.
type RepoReader interface {
	FileExists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSRepo reads the repository from the filesystem, rooted at the action's
// checkout directory.
type OSRepo struct {
	Root string
}

func (r OSRepo) FileExists(path string) bool {
	_, err := os.Stat(filepath.Join(r.Root, path))
	return err == nil
}

func (r OSRepo) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.Root, path))
}

// detectionRule pairs a predicate with the app type it assigns. Rules are
// evaluated in slice order and the first match wins, so new frameworks are
// added by inserting a row at the right priority.
type detectionRule struct {
	appType AppType
	matches func(path string, repo RepoReader) bool
}

var detectionRules = []detectionRule{
	{AppTypeRails, func(path string, repo RepoReader) bool {
		return hasExt(path, ".rb", ".erb") && manifestContains(repo, "Gemfile", "rails")
	}},
	{AppTypeReact, func(path string, repo RepoReader) bool {
		if hasExt(path, ".jsx", ".tsx") {
			return true
		}
		return hasExt(path, ".js", ".ts") && manifestContains(repo, "package.json", `"react"`)
	}},
	{AppTypeTypeScript, func(path string, repo RepoReader) bool {
		return hasExt(path, ".ts") && repo.FileExists("tsconfig.json")
	}},
	{AppTypeNode, func(path string, repo RepoReader) bool {
		return hasExt(path, ".js", ".ts", ".mjs") && repo.FileExists("package.json")
	}},
	{AppTypeGo, func(path string, repo RepoReader) bool {
		return hasExt(path, ".go") || (repo.FileExists("go.mod") && hasExt(path, ".mod", ".sum"))
	}},
	{AppTypePython, func(path string, repo RepoReader) bool {
		return hasExt(path, ".py") ||
			(repo.FileExists("pyproject.toml") && hasExt(path, ".toml")) ||
			(repo.FileExists("requirements.txt") && hasExt(path, ".txt"))
	}},
	{AppTypeJava, func(path string, repo RepoReader) bool {
		return hasExt(path, ".java", ".kt") ||
			(hasExt(path, ".xml") && repo.FileExists("pom.xml"))
	}},
	{AppTypeRust, func(path string, repo RepoReader) bool {
		return hasExt(path, ".rs") || (repo.FileExists("Cargo.toml") && hasExt(path, ".toml"))
	}},
}

// DetectAppType classifies a file by walking the rule table in priority
// order. There is always an answer: unmatched files are generic.
func DetectAppType(path string, repo RepoReader) AppType {
	for _, rule := range detectionRules {
		if rule.matches(path, repo) {
			return rule.appType
		}
	}
	return AppTypeGeneric
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// manifestContains reports whether a manifest file exists and mentions the
// given dependency marker.
func manifestContains(repo RepoReader, manifest, marker string) bool {
	if !repo.FileExists(manifest) {
		return false
	}
	data, err := repo.ReadFile(manifest)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), marker)
}

// ComponentRole guesses the architectural role of a file from its path,
// giving the model a hint for design-principle evaluation.
func ComponentRole(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.Contains(lower, "controller"):
		return "This appears to be a controller component."
	case strings.Contains(lower, "model"):
		return "This appears to be a model component."
	case strings.Contains(lower, "view"):
		return "This appears to be a view component."
	case strings.Contains(lower, "service"):
		return "This appears to be a service component."
	case strings.Contains(lower, "repository"):
		return "This appears to be a repository/data access component."
	case strings.Contains(lower, "util"), strings.Contains(lower, "helper"):
		return "This appears to be a utility/helper component."
	case strings.Contains(lower, "test"):
		return "This appears to be a test file."
	}
	return ""
}
