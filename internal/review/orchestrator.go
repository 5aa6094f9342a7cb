// Package review drives the initial review pass: parse the diff, prompt the
// model per hunk, map findings to comment positions, and post one batched
// review.
package review

import (
	"context"
	"fmt"
	"strings"

	"prreviewer/internal/config"
	"prreviewer/internal/diff"
	"prreviewer/internal/gemini"
	"prreviewer/internal/github"
	"prreviewer/internal/guidance"
	"prreviewer/internal/ui"
)

// GitHubAPI is the hosting surface the orchestrator needs.
type GitHubAPI interface {
	FetchDiff(ctx context.Context, prNumber int) (string, error)
	SummaryCommentExists(ctx context.Context, prNumber int) (bool, error)
	CreateReview(ctx context.Context, prNumber int, comments []github.PlacedComment) error
}

// Completer is the completion-service surface.
type Completer interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// Orchestrator runs one review pass. Execution is fully sequential: each
// hunk's completion call finishes before the next hunk starts.
type Orchestrator struct {
	cfg      *config.Config
	gh       GitHubAPI
	llm      Completer
	selector *guidance.Selector
}

func NewOrchestrator(cfg *config.Config, gh GitHubAPI, llm Completer, selector *guidance.Selector) *Orchestrator {
	return &Orchestrator{cfg: cfg, gh: gh, llm: llm, selector: selector}
}

// Run reviews one pull request end to end. The only hard failures are the
// initial diff fetch and the final review write; every per-hunk problem
// degrades to fewer comments.
func (o *Orchestrator) Run(ctx context.Context, pr *github.PRDetails) error {
	diffText, err := o.gh.FetchDiff(ctx, pr.Number)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diffText) == "" {
		ui.Infof("No diff found for PR #%d, nothing to review", pr.Number)
		return nil
	}

	changes := diff.Filter(diff.Parse(diffText), o.cfg.Review.ExcludePatterns)
	if len(changes) == 0 {
		ui.Infof("All changed files are excluded, nothing to review")
		return nil
	}

	// Best-effort singleton check: if the read fails we assume no summary
	// exists rather than aborting the run.
	summaryExists, err := o.gh.SummaryCommentExists(ctx, pr.Number)
	if err != nil {
		ui.Warnf("could not check for existing summary comment: %v", err)
		summaryExists = false
	}

	comments := o.Analyze(ctx, changes, pr, summaryExists)
	if len(comments) == 0 {
		ui.Infof("No review comments generated")
		return nil
	}

	if err := o.gh.CreateReview(ctx, pr.Number, comments); err != nil {
		return err
	}
	ui.Infof("%s", ui.Success(fmt.Sprintf("Posted %d review comment(s) to PR #%d", len(comments), pr.Number)))
	return nil
}

// Analyze walks the filtered change set and assembles the ordered comment
// batch. Only the first hunk of the first file may carry the summary, and
// only when no summary comment exists yet.
func (o *Orchestrator) Analyze(ctx context.Context, changes diff.ChangeSet, pr *github.PRDetails, summaryExists bool) []github.PlacedComment {
	var comments []github.PlacedComment
	prContext := guidance.PRContext{Title: pr.Title, Description: pr.Description}

	for fileIdx, file := range changes {
		selection := o.selector.Select(file.Path)

		for hunkIdx, hunk := range file.Hunks {
			prompt := o.selector.BuildReviewPrompt(selection, file.Path, hunk.Content(), prContext)

			raw, err := o.llm.Generate(ctx, selection.SystemInstruction, prompt)
			if err != nil {
				ui.Warnf("model call failed for %s hunk %d, skipping: %v", file.Path, hunkIdx+1, err)
				continue
			}

			result, ok := gemini.ParseReview(raw)
			if !ok {
				ui.Warnf("unparseable model response for %s hunk %d, skipping", file.Path, hunkIdx+1)
				continue
			}

			includeSummary := fileIdx == 0 && hunkIdx == 0 && !summaryExists
			if includeSummary && result.Summary != "" {
				// Position 1 is reserved for the summary, distinct from
				// any mapped line position.
				comments = append(comments, github.PlacedComment{
					Path:     file.Path,
					Position: 1,
					Body:     github.SummaryPrefix + "\n" + result.Summary,
				})
			}

			for _, finding := range result.Reviews {
				position, ok := diff.Position(hunk, finding.LineNumber)
				if !ok {
					ui.Warnf("dropping finding for %s: line %d is outside the hunk's added lines",
						file.Path, finding.LineNumber)
					continue
				}
				comments = append(comments, github.PlacedComment{
					Path:     file.Path,
					Position: position,
					Body:     finding.ReviewComment,
				})
			}
		}
	}

	return comments
}
