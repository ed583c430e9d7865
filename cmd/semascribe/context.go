package main

import (
	"context"
	"fmt"
	"os"

	"semascribe/internal/config"
	"semascribe/internal/embedder"
	"semascribe/internal/history"
	"semascribe/internal/logger"
	"semascribe/internal/media"
	"semascribe/internal/processor"
	"semascribe/internal/summarizer"
	"semascribe/internal/transcriber"
	"semascribe/pkg/executor"
)

// appContext lazily loads the config and logger shared by all
// subcommands.
type appContext struct {
	configFlag *string

	cfg *config.Config
	log logger.Logger
}

func newAppContext(configFlag *string) *appContext {
	return &appContext{configFlag: configFlag}
}

func (a *appContext) ensure() (*config.Config, logger.Logger, error) {
	if a.cfg != nil {
		return a.cfg, a.log, nil
	}

	cfg, err := config.Load(*a.configFlag)
	if err != nil {
		return nil, nil, err
	}

	a.cfg = cfg
	a.log = logger.New(cfg.Logging.Level)
	return a.cfg, a.log, nil
}

// buildDeps constructs the model backends a pipeline needs. Everything
// is created once up front; the processor treats them as read-only.
type depOptions struct {
	embedder bool
	history  bool
}

func (a *appContext) buildDeps(ctx context.Context, cfg *config.Config, log logger.Logger, opts depOptions) (processor.Deps, error) {
	exec := executor.New()

	deps := processor.Deps{
		Extractor:   media.New(cfg.FFmpeg, exec, log),
		Transcriber: transcriber.New(cfg.Whisper, exec, log),
		Summarizer:  summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log),
	}

	if opts.embedder {
		emb, err := embedder.New(ctx, cfg.Gemini.APIKeys[0], cfg.Gemini.EmbeddingModel, log)
		if err != nil {
			return processor.Deps{}, fmt.Errorf("build embedder: %w", err)
		}
		deps.Embedder = emb
	}

	if opts.history {
		store, err := history.Open(cfg.Paths.History)
		if err != nil {
			return processor.Deps{}, fmt.Errorf("open history: %w", err)
		}
		deps.History = store
	}

	return deps, nil
}

// ensureDirectories creates the directories a pipeline run writes into.
// Every command that touches the filesystem calls this so a fresh
// checkout works without manual setup.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
