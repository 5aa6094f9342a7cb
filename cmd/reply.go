package cmd

import (
	"github.com/spf13/cobra"
)

var replyCmd = &cobra.Command{
	Use:   "reply",
	Short: "Answer a follow-up question on a review comment",
	Long: `Inspect the comment from the current event payload. When it replies to
one of this reviewer's comments, rebuild the conversation thread and post a
threaded answer. Any other comment is left alone.`,
	Args: cobra.NoArgs,
	RunE: runReply,
}

func runReply(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	return app.reply(cmd.Context())
}
