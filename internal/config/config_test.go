package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GITHUB_EVENT_PATH", "/tmp/event.json")
	t.Setenv("GITHUB_EVENT_NAME", "pull_request")
	t.Setenv("LANGUAGE", "")
	t.Setenv("INPUT_EXCLUDE", "")
	t.Setenv("INPUT_GUIDELINES", "")
	t.Setenv("INPUT_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 0.8, cfg.Gemini.Temperature)
	assert.Equal(t, 0.95, cfg.Gemini.TopP)
	assert.Equal(t, 1024, cfg.Gemini.ThinkingBudget)
	assert.Equal(t, "English", cfg.Review.Language)
	assert.Empty(t, cfg.Review.ExcludePatterns)
}

func TestLoadMissingToken(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "test-key")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestLoadMissingAPIKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadGoogleAPIKeyFallback(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "fallback-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fallback-key", cfg.Gemini.APIKey)
}

func TestLoadWorkflowInputs(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LANGUAGE", "Japanese")
	t.Setenv("INPUT_EXCLUDE", "*.md, vendor/*, ")
	t.Setenv("INPUT_GUIDELINES", "docs/style.md")
	t.Setenv("INPUT_MODEL", "gemini-2.5-pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Japanese", cfg.Review.Language)
	assert.Equal(t, []string{"*.md", "vendor/*"}, cfg.Review.ExcludePatterns)
	assert.Equal(t, []string{"docs/style.md"}, cfg.Review.GuidelinePaths)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
}

func TestLoadConfigFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LANGUAGE", "")
	t.Setenv("INPUT_EXCLUDE", "")
	t.Setenv("INPUT_GUIDELINES", "")
	t.Setenv("INPUT_MODEL", "")

	require.NoError(t, os.MkdirAll(".pr-review", 0755))
	content := `
gemini:
  model: gemini-custom
  temperature: 0.3
review:
  language: German
  exclude_patterns:
    - "*.lock"
`
	require.NoError(t, os.WriteFile(ConfigFile, []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-custom", cfg.Gemini.Model)
	assert.Equal(t, 0.3, cfg.Gemini.Temperature)
	// File values not set keep their defaults
	assert.Equal(t, 0.95, cfg.Gemini.TopP)
	assert.Equal(t, "German", cfg.Review.Language)
	assert.Equal(t, []string{"*.lock"}, cfg.Review.ExcludePatterns)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("GEMINI_API_KEY", "test-key")

	require.NoError(t, os.MkdirAll(".pr-review", 0755))
	require.NoError(t, os.WriteFile(ConfigFile, []byte("gemini: [not: valid"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

// chdirTemp moves the test into an empty directory so a developer's real
// .pr-review/config.yml never leaks into assertions.
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(original) })
}
