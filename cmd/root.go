package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "schemapick",
		Short:         "Resolve which validation schema governs pipeline files",
		Long:          "schemapick derives the owning organization from a workspace's git remote (or a saved selection), fetches that organization's schema through a signed-in session, and falls back to the bundled schema when it cannot.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	app, err := wireApp(logger)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newResolveCmd(app),
		newOrganizationCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
