package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"semascribe/internal/history"
	"semascribe/internal/summarizer"
	"semascribe/internal/textproc"
)

// Summarize runs the full video-to-summary pipeline. Any step failure
// aborts the run; there is no partial-result recovery.
func (p *implProcessor) Summarize(ctx context.Context, videoPath string) (*SummarizeResult, error) {
	jobID := uuid.NewString()
	startTime := time.Now()

	p.logger.Info(ctx, "[%s] Starting summarize run: %s", jobID, videoPath)

	audioPath, err := p.extractor.ExtractAudio(ctx, videoPath, p.cfg.Paths.Temp)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	transcription := textproc.Correct(result.FullText())

	summary, err := p.summarizer.Summarize(ctx, transcription, summarizer.Options{})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	stamp := startTime.Format("20060102_150405")
	transcriptionPath := filepath.Join(p.cfg.Paths.Output, fmt.Sprintf("transcription_%s.txt", stamp))
	summaryPath := filepath.Join(p.cfg.Paths.Output, fmt.Sprintf("summary_%s.txt", stamp))

	if err := os.WriteFile(transcriptionPath, []byte(transcription), 0644); err != nil {
		return nil, fmt.Errorf("write transcription: %w", err)
	}
	if err := os.WriteFile(summaryPath, []byte(summary), 0644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	p.recordRun(ctx, jobID, videoPath, "summarize")

	p.logger.Info(ctx, "[%s] Summarize run completed in %s", jobID, time.Since(startTime))

	return &SummarizeResult{
		JobID:             jobID,
		Transcription:     transcription,
		Summary:           summary,
		TranscriptionPath: transcriptionPath,
		SummaryPath:       summaryPath,
	}, nil
}

func (p *implProcessor) recordRun(ctx context.Context, jobID, sourcePath, kind string) {
	if p.history == nil {
		return
	}
	err := p.history.Record(ctx, history.Run{
		ID:         jobID,
		SourcePath: sourcePath,
		Kind:       kind,
		FinishedAt: time.Now(),
	})
	if err != nil {
		p.logger.Warn(ctx, "Failed to record run history: %v", err)
	}
}

// cleanupTempFile removes a temporary file, logging instead of failing
// the run when removal does not work.
func (p *implProcessor) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
