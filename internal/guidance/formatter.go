package guidance

import (
	"fmt"
	"strings"
)

// languageInstructions maps the configured natural language to the
// instruction line that opens every prompt.
var languageInstructions = map[string]string{
	"English":    "✍️ Answer must be in English.",
	"Korean":     "✍️ 답변은 반드시 한국어로 해주세요.",
	"Japanese":   "✍️ 回答は必ず日本語でお願いします。",
	"Chinese":    "✍️ 回答必须使用中文。",
	"French":     "✍️ Veuillez répondre en français.",
	"German":     "✍️ Bitte antworten Sie auf Deutsch.",
	"Spanish":    "✍️ Por favor responde en español.",
	"Portuguese": "✍️ Por favor, responda em português.",
	"Russian":    "✍️ Пожалуйста, отвечайте на русском.",
	"Italian":    "✍️ Si prega di rispondere in italiano.",
	"Dutch":      "✍️ Antwoord alstublieft in het Nederlands.",
	"Arabic":     "✍️ الرجاء الرد باللغة العربية.",
	"Hindi":      "✍️ कृपया हिंदी में उत्तर दें।",
	"Turkish":    "✍️ Lütfen Türkçe cevap verin.",
	"Vietnamese": "✍️ Vui lòng trả lời bằng tiếng Việt.",
	"Thai":       "✍️ กรุณาตอบเป็นภาษาไทย",
	"Polish":     "✍️ Proszę odpowiedzieć po polsku.",
	"Ukrainian":  "✍️ Будь ласка, відповідайте українською.",
	"Indonesian": "✍️ Silakan jawab dalam Bahasa Indonesia.",
}

// LanguageInstruction returns the per-language answer instruction, with a
// generic fallback for languages outside the table.
func LanguageInstruction(language string) string {
	if instruction, ok := languageInstructions[language]; ok {
		return instruction
	}
	return fmt.Sprintf("✍️ Please answer in %s.", language)
}

// Selector chooses the template, system instruction, and guideline rules for
// each reviewed file. It is built once per run from the configuration.
type Selector struct {
	repo       RepoReader
	registry   *TemplateRegistry
	guidelines []GuidelineRule
	language   string
}

// NewSelector wires a selector over the repository. Guideline documents are
// loaded eagerly; a missing document degrades to fewer rules.
func NewSelector(repo RepoReader, templateDir string, guidelinePaths []string, language string) *Selector {
	return &Selector{
		repo:       repo,
		registry:   NewTemplateRegistry(templateDir),
		guidelines: LoadGuidelines(repo, guidelinePaths),
		language:   language,
	}
}

// Guidelines exposes the loaded rules, mainly for the follow-up path.
func (s *Selector) Guidelines() []GuidelineRule {
	return s.guidelines
}

// Select classifies the file and resolves its template and system
// instruction. It cannot fail: unknown technologies select the generic
// template and the shared review instruction.
func (s *Selector) Select(path string) Selection {
	appType := DetectAppType(path, s.repo)
	return Selection{
		AppType:           appType,
		Template:          s.registry.Lookup(appType),
		SystemInstruction: ReviewSystemInstruction,
	}
}

// PRContext carries the pull request metadata woven into prompts.
type PRContext struct {
	Title       string
	Description string
}

// BuildReviewPrompt assembles the per-hunk review prompt. Merge order is
// fixed: language instruction and task text, file-context annotation, PR
// context, diff content, app-type checklist, then guideline rules last.
func (s *Selector) BuildReviewPrompt(sel Selection, path, hunkContent string, pr PRContext) string {
	var sb strings.Builder

	sb.WriteString(LanguageInstruction(s.language))
	sb.WriteString("\n\n")
	sb.WriteString("Your task is reviewing this code fragment as part of a pull request, with particular attention to both functionality and design principles (SOLID, etc.).\n\n")

	sb.WriteString(fileContext(path))

	description := pr.Description
	if description == "" {
		description = "No description provided"
	}
	fmt.Fprintf(&sb, "Please analyze the following code diff in the file %q and consider the pull request context.\n\n", path)
	fmt.Fprintf(&sb, "Pull request title: %s\n", pr.Title)
	fmt.Fprintf(&sb, "Pull request description:\n---\n%s\n---\n", description)
	fmt.Fprintf(&sb, "Git diff to review:\n```diff\n%s\n```\n\n", hunkContent)

	sb.WriteString(sel.Template.Considerations)

	if guidelines := FormatGuidelines(s.guidelines); guidelines != "" {
		sb.WriteString("\n\n")
		sb.WriteString(guidelines)
	}

	return sb.String()
}

// ConversationTurn is one reconstructed exchange in a review thread.
type ConversationTurn struct {
	Role    string // "assistant" or "user"
	Content string
}

// BuildFollowupPrompt assembles the threaded-reply prompt from conversation
// history and whatever code context could be recovered. Guideline rules
// still close the prompt so project rules shape follow-up answers too.
func (s *Selector) BuildFollowupPrompt(question string, history []ConversationTurn, path, hunkContent string, pr PRContext) string {
	var sb strings.Builder

	sb.WriteString(LanguageInstruction(s.language))
	sb.WriteString("\n\n")
	sb.WriteString("You are an AI code reviewer continuing a conversation with a developer about code changes in a pull request. Focus on both functional correctness and software design principles (SOLID, DRY, YAGNI, etc.).\n\n")

	if hunkContent != "" {
		fmt.Fprintf(&sb, "The code being discussed is in file %q:\n```diff\n%s\n```\n\n", path, hunkContent)
	} else if path != "" {
		fmt.Fprintf(&sb, "The code being discussed is in file %q (the file no longer appears in the current diff).\n\n", path)
	}

	if pr.Title != "" || pr.Description != "" {
		description := pr.Description
		if description == "" {
			description = "No description provided"
		}
		fmt.Fprintf(&sb, "Pull request title: %s\nPull request description:\n---\n%s\n---\n\n", pr.Title, description)
	}

	if role := ComponentRole(path); role != "" {
		fmt.Fprintf(&sb, "Design context:\n%s\n\n", role)
	}

	sb.WriteString("Below is the conversation history:\n---\n")
	for i, turn := range history {
		speaker := "Developer"
		if turn.Role == "assistant" {
			speaker = "AI"
		}
		fmt.Fprintf(&sb, "%s: %s", speaker, turn.Content)
		if i < len(history)-1 {
			sb.WriteString("\n\n")
		}
	}
	sb.WriteString("\n---\n\n")

	fmt.Fprintf(&sb, "New question from developer:\n%s\n\n", question)
	sb.WriteString("Please provide a helpful, direct response to the developer's question. Maintain your role as a code reviewer, but be conversational and address their specific question or concern. When discussing design principles, be clear about which principle you're referencing and why it matters in this context.")

	if guidelines := FormatGuidelines(s.guidelines); guidelines != "" {
		sb.WriteString("\n\n")
		sb.WriteString(guidelines)
	}

	return sb.String()
}

// fileContext annotates the prompt with the file's type and likely
// architectural role.
func fileContext(path string) string {
	if path == "" {
		return ""
	}

	var sb strings.Builder
	if i := strings.LastIndex(path, "."); i >= 0 && i < len(path)-1 {
		fmt.Fprintf(&sb, "File type: %s\n", strings.ToLower(path[i+1:]))
	}
	if role := ComponentRole(path); role != "" {
		sb.WriteString(role)
		sb.WriteString("\n")
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}
