package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	app := newAppContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "semascribe",
		Short:         "Turn videos into transcripts, summaries, and chapter timestamps",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.yaml", "Configuration file path")

	rootCmd.AddCommand(newSummarizeCommand(app))
	rootCmd.AddCommand(newReportCommand(app))
	rootCmd.AddCommand(newChaptersCommand(app))
	rootCmd.AddCommand(newWatchCommand(app))

	return rootCmd
}
