package cmd

import (
	"context"
	"fmt"

	"prreviewer/internal/config"
	"prreviewer/internal/followup"
	"prreviewer/internal/gemini"
	"prreviewer/internal/github"
	"prreviewer/internal/guidance"
	"prreviewer/internal/review"
	"prreviewer/internal/ui"
)

// app holds the wired run dependencies shared by every command.
type app struct {
	cfg      *config.Config
	event    *github.Event
	gh       *github.Client
	llm      *gemini.Client
	selector *guidance.Selector
}

// newApp loads configuration and the event payload and wires the clients.
// Failures here are the only fatal errors in the system.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	event, err := github.LoadEvent(cfg.GitHub.EventPath)
	if err != nil {
		return nil, err
	}

	gh, err := github.NewClient(cfg.GitHub.Token, event.Repository.FullName)
	if err != nil {
		return nil, err
	}

	selector := guidance.NewSelector(guidance.OSRepo{},
		cfg.Review.TemplateDir, cfg.Review.GuidelinePaths, cfg.Review.Language)

	return &app{
		cfg:      cfg,
		event:    event,
		gh:       gh,
		llm:      gemini.NewClient(cfg),
		selector: selector,
	}, nil
}

func (a *app) prDetails(ctx context.Context) (*github.PRDetails, error) {
	prNumber, err := a.event.PRNumber()
	if err != nil {
		return nil, err
	}
	return a.gh.GetPRDetails(ctx, prNumber)
}

func (a *app) review(ctx context.Context) error {
	pr, err := a.prDetails(ctx)
	if err != nil {
		return err
	}
	return review.NewOrchestrator(a.cfg, a.gh, a.llm, a.selector).Run(ctx, pr)
}

func (a *app) reply(ctx context.Context) error {
	resolver := followup.NewResolver(a.cfg, a.gh, a.llm, a.selector)

	decision := resolver.Detect(ctx, a.event)
	if !decision.IsFollowup {
		ui.Infof("Comment is not a follow-up to a review comment, nothing to do")
		return nil
	}

	pr, err := a.prDetails(ctx)
	if err != nil {
		return err
	}
	return resolver.Resolve(ctx, pr, a.event, decision)
}
