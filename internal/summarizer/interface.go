package summarizer

import "context"

// Summarizer condenses transcripts with a generative model.
type Summarizer interface {
	// Summarize produces one summary honoring the given options.
	Summarize(ctx context.Context, text string, opts Options) (string, error)
	// GenerateReport produces the full battery of controllable
	// summaries for one transcript.
	GenerateReport(ctx context.Context, text string) (*Report, error)
}

// Options controls a single summary. The zero value asks for a default
// summary with length derived from the input.
type Options struct {
	// Query focuses the summary on answering a question.
	Query string
	// MaxWords caps the summary length. 0 derives the cap from the
	// input word count.
	MaxWords int
	// Mode selects a domain style: "paper" or "news".
	Mode string
	// Style selects "extractive" (verbatim sentences) or "abstractive"
	// (paraphrased).
	Style string
	// Control is a free-form constraint the summary must honor.
	Control string
}
