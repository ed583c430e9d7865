package processor

import (
	"context"

	"semascribe/internal/chapters"
)

// Processor runs the end-to-end pipelines over a single video file.
type Processor interface {
	// Summarize transcribes a video, corrects the transcript, and
	// summarizes it, saving both as timestamped text files.
	Summarize(ctx context.Context, videoPath string) (*SummarizeResult, error)
	// Chapters transcribes a video, embeds each segment, and detects
	// topic-change markers, saving them as JSON.
	Chapters(ctx context.Context, videoPath string) (*ChaptersResult, error)
}

// SummarizeResult is the output of one summarize run.
type SummarizeResult struct {
	JobID             string
	Transcription     string
	Summary           string
	TranscriptionPath string
	SummaryPath       string
}

// ChaptersResult is the output of one chapters run.
type ChaptersResult struct {
	JobID      string
	Markers    []chapters.Marker
	OutputPath string
}
