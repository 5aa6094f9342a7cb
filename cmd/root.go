package cmd

import (
	"github.com/spf13/cobra"

	"prreviewer/internal/ui"
)

// Version information (set at build time)
var (
	appVersion    = "dev"
	appCommitHash = "unknown"
	appBuildDate  = "unknown"
)

// SetVersionInfo sets the version information from build-time variables
func SetVersionInfo(version, commitHash, buildDate string) {
	appVersion = version
	appCommitHash = commitHash
	appBuildDate = buildDate
}

// NewRootCmd creates a new instance of the root command for testing
// This prevents shared state issues in concurrent tests
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pr-reviewer",
		Short: "Gemini-backed pull request reviewer",
		Long: `pr-reviewer reviews GitHub pull requests with Gemini and posts the
findings as inline review comments. Replies to those comments are answered
in-thread.

It is built to run inside GitHub Actions: without a subcommand it reads
GITHUB_EVENT_NAME and dispatches to the matching pass.

Examples:
  pr-reviewer          # dispatch on GITHUB_EVENT_NAME
  pr-reviewer review   # force a full review pass
  pr-reviewer reply    # force a follow-up reply pass`,
		Args: cobra.NoArgs,
		RunE: runAuto,
	}

	cmd.AddCommand(reviewCmd)
	cmd.AddCommand(replyCmd)
	cmd.AddCommand(versionCmd)

	return cmd
}

var rootCmd = &cobra.Command{
	Use:   "pr-reviewer",
	Short: "Gemini-backed pull request reviewer",
	Long: `pr-reviewer reviews GitHub pull requests with Gemini and posts the
findings as inline review comments. Replies to those comments are answered
in-thread.

It is built to run inside GitHub Actions: without a subcommand it reads
GITHUB_EVENT_NAME and dispatches to the matching pass.

Examples:
  pr-reviewer          # dispatch on GITHUB_EVENT_NAME
  pr-reviewer review   # force a full review pass
  pr-reviewer reply    # force a follow-up reply pass`,
	Args: cobra.NoArgs,
	RunE: runAuto,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(replyCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(versionCmd)
}

// runAuto picks the pass from the Actions event name, so one workflow step
// can serve both triggers.
func runAuto(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	switch app.cfg.GitHub.EventName {
	case "pull_request", "pull_request_target":
		return app.review(cmd.Context())
	case "issue_comment", "pull_request_review_comment":
		return app.reply(cmd.Context())
	default:
		ui.Infof("Nothing to do for event %q", app.cfg.GitHub.EventName)
		return nil
	}
}
