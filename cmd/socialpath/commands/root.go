// Package commands holds the socialpath cobra command tree.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/socialpath/dotload"
	"github.com/katalvlaran/socialpath/internal/app"
	"github.com/katalvlaran/socialpath/internal/config"
)

// Execute runs the command tree against the OS filesystem and exits 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// session is shared by the root and its subcommands for one execution.
type session struct {
	fs      afero.Fs
	cfgFile string
	app     *app.App
}

// NewRootCommand builds the command tree. Data and config files are read from fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	s := &session{fs: fs}

	root := &cobra.Command{
		Use:   "socialpath",
		Short: "Closest connections in a social graph",
		Long: `socialpath loads friendships from a DOT edge list and finds the
cheapest chain of friends between two people.

Settings come from flags, SOCIALPATH_* environment variables and an
optional YAML config file, in that order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: s.setup,
	}

	root.PersistentFlags().StringVar(&s.cfgFile, "config", "", "YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newStatsCommand(s),
		newPathCommand(s),
		newShellCommand(s),
	)

	return root
}

// setup resolves the configuration, builds the App and preloads --data.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.New(), s.fs, s.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a, err := app.New(cfg, s.fs, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	s.app = a

	if cfg.Data == "" {
		return nil
	}
	if _, err := a.LoadFile(cmd.Context(), cfg.Data); err != nil {
		if errors.Is(err, dotload.ErrSourceUnavailable) {
			// The shell can still load another file.
			if cmd.Name() == "shell" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: File not found - "+cfg.Data)
				return nil
			}
			return fmt.Errorf("file not found - %s", cfg.Data)
		}
		return err
	}

	return nil
}
