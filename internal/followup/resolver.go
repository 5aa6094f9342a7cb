// Package followup turns a reply on a bot review comment into a threaded
// answer, reconstructing the conversation and code context from scratch on
// every event.
package followup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"prreviewer/internal/config"
	"prreviewer/internal/diff"
	"prreviewer/internal/github"
	"prreviewer/internal/guidance"
	"prreviewer/internal/ui"
)

// botLogin is the authoring identity of comments this system posts when
// running as a GitHub Action.
const botLogin = "github-actions[bot]"

// apologyFallback is posted when the model call itself fails, so the thread
// always gets an answer.
const apologyFallback = "I apologize, but I encountered an error processing your question. Could you please rephrase or simplify your question?"

// GitHubAPI is the hosting surface the resolver needs.
type GitHubAPI interface {
	FindReviewComment(ctx context.Context, commentID int64) (*github.ReviewComment, error)
	ListReviewComments(ctx context.Context, prNumber int) ([]github.ReviewComment, error)
	FetchDiff(ctx context.Context, prNumber int) (string, error)
	ReplyToComment(ctx context.Context, prNumber int, commentID int64, body string) error
}

// Completer is the completion-service surface.
type Completer interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// Decision is the outcome of follow-up detection: either NOT_FOLLOWUP
// (terminal, no action) or FOLLOWUP with the resolved parent.
type Decision struct {
	IsFollowup bool
	Parent     *github.ReviewComment
	Question   string
}

// Resolver handles follow-up question resolution.
type Resolver struct {
	cfg      *config.Config
	gh       GitHubAPI
	llm      Completer
	selector *guidance.Selector
}

func NewResolver(cfg *config.Config, gh GitHubAPI, llm Completer, selector *guidance.Selector) *Resolver {
	return &Resolver{cfg: cfg, gh: gh, llm: llm, selector: selector}
}

// Detect decides whether an event is a follow-up: the comment must reply to
// a parent, and that parent's body must carry the bot's identity marker.
// Any failure to locate the parent resolves to NOT_FOLLOWUP.
func (r *Resolver) Detect(ctx context.Context, event *github.Event) Decision {
	if event.Comment == nil || event.Comment.InReplyTo == 0 {
		return Decision{}
	}

	parent, err := r.gh.FindReviewComment(ctx, event.Comment.InReplyTo)
	if err != nil {
		ui.Warnf("could not locate parent comment %d: %v", event.Comment.InReplyTo, err)
		return Decision{}
	}

	if !strings.Contains(parent.Body, github.ReviewTitle) {
		return Decision{}
	}

	return Decision{
		IsFollowup: true,
		Parent:     parent,
		Question:   event.Comment.Body,
	}
}

// Resolve answers a detected follow-up: reconstruct the conversation,
// recover the code context from the live diff, prompt the model, and post a
// threaded reply.
func (r *Resolver) Resolve(ctx context.Context, pr *github.PRDetails, event *github.Event, decision Decision) error {
	if !decision.IsFollowup {
		return fmt.Errorf("not a follow-up event")
	}
	parent := decision.Parent

	history := r.conversationHistory(ctx, pr.Number, parent, event)
	path, hunkContent := r.recoverContext(ctx, pr.Number, parent)

	prompt := r.selector.BuildFollowupPrompt(decision.Question, history, path, hunkContent,
		guidance.PRContext{Title: pr.Title, Description: pr.Description})

	answer, err := r.llm.Generate(ctx, guidance.FollowupSystemInstruction, prompt)
	if err != nil {
		ui.Warnf("follow-up model call failed: %v", err)
		answer = apologyFallback
	}

	return r.gh.ReplyToComment(ctx, pr.Number, parent.ID, answer)
}

// conversationHistory rebuilds the thread: the parent is the first
// assistant turn, then every comment referencing the parent joins in
// discovery order, classified by authoring identity. The triggering comment
// is excluded — it arrives separately as the new question.
func (r *Resolver) conversationHistory(ctx context.Context, prNumber int, parent *github.ReviewComment, event *github.Event) []guidance.ConversationTurn {
	history := []guidance.ConversationTurn{
		{Role: "assistant", Content: github.SanitizeCommentBody(parent.Body)},
	}

	comments, err := r.gh.ListReviewComments(ctx, prNumber)
	if err != nil {
		ui.Warnf("could not list comments for conversation history: %v", err)
		return history
	}

	parentRef := strconv.FormatInt(parent.ID, 10)
	for _, comment := range comments {
		if comment.ID == parent.ID {
			continue
		}
		if event.Comment != nil && comment.ID == event.Comment.ID {
			continue
		}
		if comment.InReplyTo != parent.ID && !strings.Contains(comment.Body, parentRef) {
			continue
		}

		role := "user"
		if comment.Author == botLogin {
			role = "assistant"
		}
		history = append(history, guidance.ConversationTurn{
			Role:    role,
			Content: github.SanitizeCommentBody(comment.Body),
		})
	}

	return history
}

// recoverContext re-fetches and re-parses the live diff and pulls out the
// hunks for the parent comment's file. When the file no longer appears in
// the diff, context degrades to the path alone.
func (r *Resolver) recoverContext(ctx context.Context, prNumber int, parent *github.ReviewComment) (string, string) {
	if parent.Path == "" {
		return "", ""
	}

	diffText, err := r.gh.FetchDiff(ctx, prNumber)
	if err != nil {
		ui.Warnf("could not re-fetch diff for follow-up context: %v", err)
		return parent.Path, ""
	}

	file, ok := diff.Parse(diffText).FindFile(parent.Path)
	if !ok {
		return parent.Path, ""
	}
	return parent.Path, file.Content()
}
