package github

import (
	"html"
	"regexp"
	"strings"

	htmlparser "golang.org/x/net/html"
)

var multiNewlineRegex = regexp.MustCompile(`\n{3,}`)

// SanitizeCommentBody compacts a comment body before it enters a follow-up
// prompt: HTML entities are unescaped, collapsible <details> sections are
// dropped, remaining markup is flattened to text, and newline runs are
// squeezed. Falls back to the original text when parsing fails.
func SanitizeCommentBody(text string) string {
	if text == "" {
		return text
	}

	unescaped := html.UnescapeString(text)
	doc, err := htmlparser.Parse(strings.NewReader("<div>" + unescaped + "</div>"))
	if err != nil {
		return text
	}

	dropDetails(doc)

	var sb strings.Builder
	renderText(doc, &sb)

	cleaned := strings.TrimSpace(sb.String())
	return multiNewlineRegex.ReplaceAllString(cleaned, "\n\n")
}

// dropDetails removes <details> elements, which hold bot boilerplate that
// would bloat the prompt without informing the answer.
func dropDetails(n *htmlparser.Node) {
	var next *htmlparser.Node
	for child := n.FirstChild; child != nil; child = next {
		next = child.NextSibling
		if child.Type == htmlparser.ElementNode && child.Data == "details" {
			n.RemoveChild(child)
			continue
		}
		dropDetails(child)
	}
}

func renderText(n *htmlparser.Node, sb *strings.Builder) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case htmlparser.TextNode:
			sb.WriteString(child.Data)
		case htmlparser.ElementNode:
			switch child.Data {
			case "p", "div", "blockquote", "br":
				sb.WriteString("\n")
				renderText(child, sb)
				sb.WriteString("\n")
			default:
				renderText(child, sb)
			}
		default:
			renderText(child, sb)
		}
	}
}
