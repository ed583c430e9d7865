package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"semascribe/internal/processor"
	"semascribe/internal/watcher"
)

func newWatchCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and summarize every new video",
		Args:  cobra.NoArgs,
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
			if err := ensureDirectories(cfg); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			deps, err := app.buildDeps(ctx, cfg, log, depOptions{history: true})
			if err != nil {
				return err
			}
			defer deps.History.Close()

			proc := processor.New(cfg, deps, log)

			handler := func(ctx context.Context, videoPath string) error {
				done, err := deps.History.Processed(ctx, videoPath, "summarize")
				if err != nil {
					return err
				}
				if done {
					log.Info(ctx, "Skipping already-processed video: %s", videoPath)
					return nil
				}
				_, err = proc.Summarize(ctx, videoPath)
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}

			log.Info(ctx, "Watch stopped")
			return nil
		},
	}
}
