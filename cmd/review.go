package cmd

import (
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the pull request from the current event payload",
	Long: `Fetch the pull request's diff, send each hunk to Gemini, and post the
findings as one batched review with inline comments.`,
	Args: cobra.NoArgs,
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	return app.review(cmd.Context())
}
