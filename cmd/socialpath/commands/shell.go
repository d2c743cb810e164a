package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialpath/internal/shell"
)

func newShellCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			sh := shell.New(s.app, cmd.InOrStdin(), out, s.app.Renderer(out))

			return sh.Run(s.app.Context(cmd.Context()))
		},
	}
}
