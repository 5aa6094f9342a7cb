package guidance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageInstruction(t *testing.T) {
	assert.Equal(t, "✍️ Answer must be in English.", LanguageInstruction("English"))
	assert.Equal(t, "✍️ 回答は必ず日本語でお願いします。", LanguageInstruction("Japanese"))
	assert.Equal(t, "✍️ Please answer in Klingon.", LanguageInstruction("Klingon"))
}

func newTestSelector(repo fakeRepo, guidelinePaths []string) *Selector {
	return NewSelector(repo, "", guidelinePaths, "English")
}

func TestSelectUsesGenericDefault(t *testing.T) {
	s := newTestSelector(fakeRepo{}, nil)

	sel := s.Select("Makefile")
	assert.Equal(t, AppTypeGeneric, sel.AppType)
	assert.Contains(t, sel.Template.Considerations, "Single Responsibility")
	assert.Equal(t, ReviewSystemInstruction, sel.SystemInstruction)
}

func TestBuildReviewPromptMergeOrder(t *testing.T) {
	repo := fakeRepo{"docs/style.md": "# Naming\n- use camelCase\n"}
	s := newTestSelector(repo, []string{"docs/style.md"})

	sel := s.Select("internal/service/billing.go")
	prompt := s.BuildReviewPrompt(sel, "internal/service/billing.go", "+added := 1", PRContext{
		Title:       "Add billing",
		Description: "Adds the billing service.",
	})

	// Every section present
	assert.Contains(t, prompt, "✍️ Answer must be in English.")
	assert.Contains(t, prompt, "File type: go")
	assert.Contains(t, prompt, "This appears to be a service component.")
	assert.Contains(t, prompt, "Add billing")
	assert.Contains(t, prompt, "```diff\n+added := 1\n```")
	assert.Contains(t, prompt, "use camelCase")

	// Guidelines come after the diff content
	diffIdx := strings.Index(prompt, "+added := 1")
	guidelineIdx := strings.Index(prompt, "use camelCase")
	require.True(t, diffIdx >= 0 && guidelineIdx >= 0)
	assert.Greater(t, guidelineIdx, diffIdx)

	// And they are marked as prioritized
	assert.Contains(t, prompt, "PRIORITIZED")
}

func TestBuildReviewPromptNoDescription(t *testing.T) {
	s := newTestSelector(fakeRepo{}, nil)
	sel := s.Select("a.go")

	prompt := s.BuildReviewPrompt(sel, "a.go", " ctx", PRContext{Title: "T"})
	assert.Contains(t, prompt, "No description provided")
}

func TestBuildFollowupPrompt(t *testing.T) {
	s := newTestSelector(fakeRepo{}, nil)

	history := []ConversationTurn{
		{Role: "assistant", Content: "Consider extracting this function."},
		{Role: "user", Content: "Why does that matter?"},
	}

	prompt := s.BuildFollowupPrompt("Why does that matter?", history,
		"internal/service/billing.go", "+code here", PRContext{Title: "Add billing"})

	assert.Contains(t, prompt, "AI: Consider extracting this function.")
	assert.Contains(t, prompt, "Developer: Why does that matter?")
	assert.Contains(t, prompt, "```diff\n+code here\n```")
	assert.Contains(t, prompt, "Design context:")
	assert.Contains(t, prompt, "New question from developer:")
}

func TestBuildFollowupPromptPathOnlyContext(t *testing.T) {
	s := newTestSelector(fakeRepo{}, nil)

	prompt := s.BuildFollowupPrompt("Is this gone?", nil, "deleted/file.go", "", PRContext{})
	assert.Contains(t, prompt, "no longer appears in the current diff")
	assert.NotContains(t, prompt, "```diff")
}
