package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"semascribe/internal/config"
	"semascribe/internal/logger"
	"semascribe/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber that shells out to whisper.cpp.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// whisperOutput mirrors the JSON file whisper.cpp writes with -oj.
// Offsets are milliseconds from the start of the audio.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp over the audio file and parses its JSON
// output into timed segments.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, audioPath)

	// -oj writes <output-file>.json with per-segment offsets
	// -bo 5 trades speed for accuracy
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}
	if !t.cfg.UseGPU {
		args = append(args, "-ng")
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	result, err := parseWhisperJSON(jsonPath)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transcription completed: %d segments", len(result.Segments))
	return result, nil
}

func parseWhisperJSON(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	return parseWhisperOutput(data)
}

func parseWhisperOutput(data []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	result := &Result{Language: out.Result.Language}
	for _, seg := range out.Transcription {
		result.Segments = append(result.Segments, Segment{
			Start: time.Duration(seg.Offsets.From) * time.Millisecond,
			End:   time.Duration(seg.Offsets.To) * time.Millisecond,
			Text:  seg.Text,
		})
	}

	if len(result.Segments) == 0 {
		return nil, fmt.Errorf("whisper output contains no segments")
	}

	return result, nil
}
