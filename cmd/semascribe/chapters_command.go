package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"semascribe/internal/processor"
)

func newChaptersCommand(app *appContext) *cobra.Command {
	var thresholdFlag float64

	cmd := &cobra.Command{
		Use:   "chapters [video]",
		Short: "Detect topic changes and emit chapter timestamps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := app.ensure()
			if err != nil {
				return err
			}
			if err := cfg.RequireWhisper(); err != nil {
				return err
			}
			if err := cfg.RequireAPIKeys(); err != nil {
				return err
			}

			if cmd.Flags().Changed("threshold") {
				cfg.Chapters.SimilarityThreshold = thresholdFlag
			}

			videoPath := "video.mp4"
			if len(args) == 1 {
				videoPath = args[0]
			}
			if _, err := os.Stat(videoPath); err != nil {
				return fmt.Errorf("file not found: %s", videoPath)
			}
			if err := ensureDirectories(cfg); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}

			ctx := cmd.Context()
			deps, err := app.buildDeps(ctx, cfg, log, depOptions{embedder: true, history: true})
			if err != nil {
				return err
			}
			defer deps.History.Close()

			proc := processor.New(cfg, deps, log)
			result, err := proc.Chapters(ctx, videoPath)
			if err != nil {
				return err
			}

			fmt.Println("\nGenerated Timestamps:")
			fmt.Println()
			for _, m := range result.Markers {
				fmt.Printf("[%s] %s\n", m.Time, m.Label)
			}
			fmt.Printf("\nSaved timestamps to %s\n", result.OutputPath)

			return nil
		},
	}

	cmd.Flags().Float64Var(&thresholdFlag, "threshold", 0.65, "Similarity threshold below which a new chapter starts")

	return cmd
}
