package guidance

import (
	"strings"

	"prreviewer/internal/ui"
)

// LoadGuidelines extracts rules from each configured guideline document.
// A missing or unreadable document is skipped with a warning, never fatal.
func LoadGuidelines(repo RepoReader, paths []string) []GuidelineRule {
	var rules []GuidelineRule
	for _, path := range paths {
		data, err := repo.ReadFile(path)
		if err != nil {
			ui.Warnf("skipping guideline document %s: %v", path, err)
			continue
		}
		rules = append(rules, ExtractRules(string(data), path)...)
	}
	return rules
}

// ExtractRules splits a free-form guideline document into rule entries.
// Headings and list items both open a new rule; subsequent plain lines
// accumulate onto the most recent rule's description. List items are rules
// in their own right, while a heading that never gathers description text
// is treated as a bare section marker and dropped.
func ExtractRules(content, source string) []GuidelineRule {
	type pendingRule struct {
		GuidelineRule
		fromHeading bool
	}
	var pending []pendingRule

	open := func(title string, fromHeading bool) {
		pending = append(pending, pendingRule{
			GuidelineRule: GuidelineRule{Title: title, Source: source},
			fromHeading:   fromHeading,
		})
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			open(strings.TrimSpace(strings.TrimLeft(line, "#")), true)
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			open(strings.TrimSpace(line[2:]), false)
		default:
			if len(pending) == 0 {
				// Prose before the first heading becomes its own rule.
				open(line, false)
				continue
			}
			last := &pending[len(pending)-1]
			if last.Description == "" {
				last.Description = line
			} else {
				last.Description += " " + line
			}
		}
	}

	var rules []GuidelineRule
	for _, p := range pending {
		if p.fromHeading && p.Description == "" {
			continue
		}
		rules = append(rules, p.GuidelineRule)
	}
	return rules
}

// FormatGuidelines renders extracted rules as the prioritized block appended
// to the end of every prompt. Guidelines are fenced off so the model weights
// them above its generic advice.
func FormatGuidelines(rules []GuidelineRule) string {
	if len(rules) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== PROJECT GUIDELINES (PRIORITIZED) ===\n")
	sb.WriteString("The following project-specific guidelines take precedence over generic review advice:\n")
	for _, rule := range rules {
		sb.WriteString("- ")
		sb.WriteString(rule.Title)
		if rule.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(rule.Description)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("=== END PROJECT GUIDELINES ===")
	return sb.String()
}
