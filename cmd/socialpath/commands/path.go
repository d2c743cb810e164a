package commands

import (
	"github.com/spf13/cobra"
)

func newPathCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Display the closest connection between two people",
		Long: `Display the cheapest chain of friends from FROM to TO in the graph
loaded with --data, and how many people sit between them.

Example:
  socialpath path user0 user20 --data friends.dot`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.app.Closest(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			return s.app.Renderer(out).Connection(out, c)
		},
	}
}
