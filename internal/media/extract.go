package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"semascribe/internal/config"
	"semascribe/internal/logger"
	"semascribe/pkg/executor"
)

type implExtractor struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Extractor backed by the configured ffmpeg binary.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// ExtractAudio converts the audio track to 16kHz mono PCM WAV, the input
// format Whisper expects. The caller owns the returned file and removes it
// when the run finishes.
func (e *implExtractor) ExtractAudio(ctx context.Context, videoPath, destDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(destDir, base+"_audio.wav")

	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn", // drop video stream
		"-ar", strconv.Itoa(e.cfg.SampleRate),
		"-ac", "1", // mono
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	e.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
