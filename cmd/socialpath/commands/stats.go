package commands

import (
	"github.com/spf13/cobra"
)

func newStatsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show node, edge and average friend counts",
		Long: `Show statistics for the graph loaded with --data.

Example:
  socialpath stats --data friends.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return s.app.Renderer(out).Stats(out, s.app.Stats())
		},
	}
}
