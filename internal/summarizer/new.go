package summarizer

import (
	"sync"

	"semascribe/internal/logger"
)

type implSummarizer struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	// mu guards currentKey: watch mode shares one Summarizer across
	// concurrent handler goroutines
	mu         sync.Mutex
	currentKey int

	// queries and control seed the report battery
	queries []string
	control string
}

// New creates a Summarizer that rotates through the supplied Gemini API
// keys when one is rate limited.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
		queries: []string{
			"How is AI used in healthcare?",
			"How is AI used in finance?",
		},
		control: "Must discuss ethical concerns of AI",
	}
}
