package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"semascribe/internal/chapters"
	"semascribe/internal/transcriber"
)

// Chapters transcribes the video, embeds each segment, and emits
// topic-change markers.
func (p *implProcessor) Chapters(ctx context.Context, videoPath string) (*ChaptersResult, error) {
	jobID := uuid.NewString()
	startTime := time.Now()

	p.logger.Info(ctx, "[%s] Starting chapters run: %s", jobID, videoPath)

	audioPath, err := p.extractor.ExtractAudio(ctx, videoPath, p.cfg.Paths.Temp)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	segments, err := p.embedSegments(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("embed segments: %w", err)
	}

	detector := chapters.NewDetector(
		p.cfg.Chapters.SimilarityThreshold,
		p.cfg.Chapters.MaxLabelLength,
	)
	markers, err := detector.Detect(segments)
	if err != nil {
		return nil, fmt.Errorf("detect chapters: %w", err)
	}

	outputPath := filepath.Join(p.cfg.Paths.Output, "semantic_timestamps.json")
	if err := chapters.WriteJSON(outputPath, markers); err != nil {
		return nil, fmt.Errorf("save timestamps: %w", err)
	}

	p.recordRun(ctx, jobID, videoPath, "chapters")

	p.logger.Info(ctx, "[%s] Chapters run completed in %s: %d markers",
		jobID, time.Since(startTime), len(markers))

	return &ChaptersResult{
		JobID:      jobID,
		Markers:    markers,
		OutputPath: outputPath,
	}, nil
}

// embedSegments requests one embedding per segment, sequentially. The
// first failed call aborts the run.
func (p *implProcessor) embedSegments(ctx context.Context, result *transcriber.Result) ([]chapters.Segment, error) {
	bar := progressbar.Default(int64(len(result.Segments)), "embedding segments")

	segments := make([]chapters.Segment, 0, len(result.Segments))
	for i, seg := range result.Segments {
		vector, err := p.embedder.Embed(ctx, seg.Text)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, chapters.Segment{
			Start:  seg.Start,
			Text:   seg.Text,
			Vector: vector,
		})
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return segments, nil
}
