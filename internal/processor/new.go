package processor

import (
	"semascribe/internal/config"
	"semascribe/internal/embedder"
	"semascribe/internal/history"
	"semascribe/internal/logger"
	"semascribe/internal/media"
	"semascribe/internal/summarizer"
	"semascribe/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	extractor   media.Extractor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	embedder    embedder.Embedder
	history     *history.Store
	logger      logger.Logger
}

// Deps carries the constructed model backends. Everything is built once
// at startup and used read-only afterwards; inference calls hold no
// state between runs.
type Deps struct {
	Extractor   media.Extractor
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Embedder    embedder.Embedder
	History     *history.Store
}

// New creates a Processor. History may be nil when run tracking is not
// wanted (one-shot CLI invocations).
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		extractor:   deps.Extractor,
		transcriber: deps.Transcriber,
		summarizer:  deps.Summarizer,
		embedder:    deps.Embedder,
		history:     deps.History,
		logger:      log,
	}
}
