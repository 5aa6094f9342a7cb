package guidance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistryBuiltins(t *testing.T) {
	r := NewTemplateRegistry("")

	assert.Equal(t, AppTypeGo, r.Lookup(AppTypeGo).AppType)
	assert.Contains(t, r.Lookup(AppTypeRails).Considerations, "N+1")

	// Unknown app types resolve to the generic template, never fail.
	tmpl := r.Lookup(AppType("cobol"))
	assert.Equal(t, AppTypeGeneric, tmpl.AppType)
}

func TestTemplateRegistryCustomOverride(t *testing.T) {
	dir := t.TempDir()
	custom := `app_type: go
considerations: |
  Custom Go checklist for this repository.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.yml"), []byte(custom), 0644))

	r := NewTemplateRegistry(dir)
	assert.Contains(t, r.Lookup(AppTypeGo).Considerations, "Custom Go checklist")

	// Other templates are untouched
	assert.Contains(t, r.Lookup(AppTypePython).Considerations, "Python")
}

func TestTemplateRegistryMalformedCustomSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.yml"), []byte("app_type: [broken"), 0644))

	r := NewTemplateRegistry(dir)
	// Built-in survives
	assert.Contains(t, r.Lookup(AppTypeGo).Considerations, "goroutines")
}

func TestTemplateRegistryIncompleteCustomSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.yml"), []byte("app_type: go\n"), 0644))

	r := NewTemplateRegistry(dir)
	assert.Contains(t, r.Lookup(AppTypeGo).Considerations, "goroutines")
}

func TestTemplateRegistryIgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("app_type: go"), 0644))

	r := NewTemplateRegistry(dir)
	assert.Contains(t, r.Lookup(AppTypeGo).Considerations, "goroutines")
}

func TestTemplateRegistryMissingDir(t *testing.T) {
	r := NewTemplateRegistry("/nonexistent/dir")
	assert.Equal(t, AppTypeGeneric, r.Lookup(AppTypeGeneric).AppType)
}
